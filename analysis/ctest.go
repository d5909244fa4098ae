// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/soe"
	"gonum.org/v1/gonum/floats"
)

// ConvergenceTest checks the iterations of an algorithm
type ConvergenceTest interface {
	Name() string             // identifier; e.g. "norm_unbalance_conv_test"
	Start()                   // resets the iteration counter
	Test(s soe.LinearSOE) int // ≥ 0: converged after this many iterations; -1: continue; -2: failed
	Norms() []float64         // norms computed since Start
	Copy() ConvergenceTest    // returns a copy
}

// NewConvergenceTest returns a new convergence test by name
//  Parameters:
//   tol     -- tolerance [default = 1e-8]
//   maxit   -- maximum number of iterations [default = 25]
//   verbose -- show norms if not zero [default = 0]
func NewConvergenceTest(name string, prms Params) (t ConvergenceTest, err error) {
	b := ctbase{Tol: prms.Get("tol", 1e-8), MaxIt: int(prms.Get("maxit", 25)), Verbose: prms.Get("verbose", 0) != 0}
	switch name {
	case "norm_unbalance_conv_test":
		return &NormUnbalance{b}, nil
	case "norm_disp_incr_conv_test":
		return &NormDispIncr{b}, nil
	}
	return nil, config_error("convergence test %q is not available", name)
}

// ConvergenceTestNames returns the names of all convergence tests
func ConvergenceTestNames() []string {
	return []string{"norm_disp_incr_conv_test", "norm_unbalance_conv_test"}
}

// ctbase holds data shared by convergence tests
type ctbase struct {
	Tol     float64   // tolerance
	MaxIt   int       // maximum number of iterations
	Verbose bool      // show norms
	norms   []float64 // norms computed since Start
}

// Start resets the iteration counter
func (o *ctbase) Start() { o.norms = o.norms[:0] }

// Norms returns the norms computed since Start
func (o *ctbase) Norms() []float64 { return o.norms }

// check records norm and decides
func (o *ctbase) check(name string, norm float64) int {
	o.norms = append(o.norms, norm)
	it := len(o.norms)
	if o.Verbose {
		io.Pf("%s: it=%3d norm=%23.15e\n", name, it, norm)
	}
	if norm <= o.Tol {
		return it
	}
	if it >= o.MaxIt {
		io.Pfred("WARNING: %s: failed to converge after %d iterations. norm=%g > tol=%g\n", name, it, norm, o.Tol)
		return -2
	}
	return -1
}

// NormUnbalance checks the Euclidean norm of the right-hand side
type NormUnbalance struct {
	ctbase
}

// Name returns the identifier
func (o *NormUnbalance) Name() string { return "norm_unbalance_conv_test" }

// Test checks ‖b‖
func (o *NormUnbalance) Test(s soe.LinearSOE) int {
	return o.check(o.Name(), floats.Norm(s.B(), 2))
}

// Copy returns a copy
func (o *NormUnbalance) Copy() ConvergenceTest {
	return &NormUnbalance{ctbase{Tol: o.Tol, MaxIt: o.MaxIt, Verbose: o.Verbose}}
}

// NormDispIncr checks the Euclidean norm of the solution increment
type NormDispIncr struct {
	ctbase
}

// Name returns the identifier
func (o *NormDispIncr) Name() string { return "norm_disp_incr_conv_test" }

// Test checks ‖x‖
func (o *NormDispIncr) Test(s soe.LinearSOE) int {
	return o.check(o.Name(), floats.Norm(s.X(), 2))
}

// Copy returns a copy
func (o *NormDispIncr) Copy() ConvergenceTest {
	return &NormDispIncr{ctbase{Tol: o.Tol, MaxIt: o.MaxIt, Verbose: o.Verbose}}
}
