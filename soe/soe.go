// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package soe implements linear systems of equations assembled from element contributions
package soe

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosolu/graph"
	"gonum.org/v1/gonum/mat"
)

// error kinds
var (
	ErrAssembly = errors.New("soe: assembly error")
	ErrCapacity = errors.New("soe: insufficient capacity")
	ErrSolver   = errors.New("soe: solver error")
	ErrState    = errors.New("soe: invalid state")
)

// State holds the assembly state of a system of equations
type State int

// states
const (
	Unsized   State = iota // SetSize was never called
	Sized                  // storage allocated; coefficients zero
	Assembled              // coefficients were added; any factorization is stale
	Factored               // factorization is valid; Solve may be called
)

// String returns the name of the state
func (s State) String() string {
	switch s {
	case Unsized:
		return "unsized"
	case Sized:
		return "sized"
	case Assembled:
		return "assembled"
	case Factored:
		return "factored"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// LinearSOE defines a linear system of equations A・x = b
type LinearSOE interface {
	Name() string                                      // identifier; e.g. "band_gen_lin_soe"
	SetSize(g graph.Connectivity) (err error)          // allocates storage according to the DOF graph
	Size() int                                         // number of equations
	AddA(m [][]float64, ids []int, fact float64) error // accumulates fact・m into A at rows/cols ids
	ZeroA()                                            // zeroes A
	AddB(v []float64, ids []int, fact float64) error   // accumulates fact・v into b at ids
	SetB(v []float64, fact float64) error              // sets b = fact・v
	ZeroB()                                            // zeroes b
	B() []float64                                      // right-hand side
	X() []float64                                      // solution
	Factor() (err error)                               // factorises A
	Solve() (err error)                                // solves with the current factorization
	State() State                                      // assembly state
	IsFactored() bool                                  // tells whether the factorization is valid
	Matrix() mat.Matrix                                // view of A; nil if size is zero
	Reallocs() int                                     // number of times storage for A was (re)allocated
	Copy() LinearSOE                                   // deep copy
}

// base holds data shared by all systems of equations
type base struct {
	Verbose  bool         // show messages
	name     string       // identifier
	size     int          // number of equations
	b, x     []float64    // right-hand side and solution
	state    State        // assembly state
	solver   LinearSolver // linear solver
	reallocs int          // number of allocations of A
}

// Name returns the identifier
func (o *base) Name() string { return o.name }

// Size returns the number of equations
func (o *base) Size() int { return o.size }

// B returns the right-hand side
func (o *base) B() []float64 { return o.b }

// X returns the solution vector
func (o *base) X() []float64 { return o.x }

// State returns the assembly state
func (o *base) State() State { return o.state }

// IsFactored tells whether the factorization is valid
func (o *base) IsFactored() bool { return o.state == Factored }

// Reallocs returns how many times storage for A was allocated
func (o *base) Reallocs() int { return o.reallocs }

// Solver returns the linear solver
func (o *base) Solver() LinearSolver { return o.solver }

// AddB accumulates fact・v into b; ids outside [0,size) are skipped
func (o *base) AddB(v []float64, ids []int, fact float64) error {
	if fact == 0 {
		return nil
	}
	if len(v) != len(ids) {
		return fmt.Errorf("%w: vector has %d components but %d ids were given", ErrAssembly, len(v), len(ids))
	}
	for i, r := range ids {
		if r >= 0 && r < o.size {
			o.b[r] += fact * v[i]
		}
	}
	return nil
}

// SetB sets b = fact・v
func (o *base) SetB(v []float64, fact float64) error {
	if len(v) != o.size {
		return fmt.Errorf("%w: vector has %d components but system has %d equations", ErrAssembly, len(v), o.size)
	}
	for i, val := range v {
		o.b[i] = fact * val
	}
	return nil
}

// ZeroB zeroes b
func (o *base) ZeroB() {
	for i := range o.b {
		o.b[i] = 0
	}
}

// resize sets size and reallocates b and x when needed
func (o *base) resize(n int) (err error) {
	o.size = n
	if cap(o.b) < n {
		o.b = make([]float64, n)
		o.x = make([]float64, n)
	} else {
		o.b, o.x = o.b[:n], o.x[:n]
		o.ZeroB()
		for i := range o.x {
			o.x[i] = 0
		}
	}
	o.state = Sized
	if o.solver != nil {
		err = o.solver.SetSize(n)
		if err != nil {
			return fmt.Errorf("%w: solver failed SetSize:\n%v", ErrSolver, err)
		}
	}
	return
}

// factor factorises a if the system is not factored yet
func (o *base) factor(a mat.Matrix) (err error) {
	switch o.state {
	case Unsized:
		return fmt.Errorf("%w: cannot factorise %s before SetSize", ErrState, o.name)
	case Factored:
		return
	}
	if o.solver == nil {
		return fmt.Errorf("%w: %s has no solver", ErrSolver, o.name)
	}
	err = o.solver.Factor(a)
	if err != nil {
		return
	}
	o.state = Factored
	return
}

// solve solves using the current factorization
func (o *base) solve() (err error) {
	if o.state != Factored {
		return fmt.Errorf("%w: cannot solve %s in state %q", ErrState, o.name, o.state)
	}
	return o.solver.Solve(o.x, o.b)
}

// copy_base returns a deep copy of base data
func (o *base) copy_base() (c base) {
	c = *o
	c.b = append([]float64(nil), o.b...)
	c.x = append([]float64(nil), o.x...)
	if o.solver != nil {
		c.solver = o.solver.Copy()
		c.solver.SetSize(o.size)
		if c.state == Factored {
			c.state = Assembled
		}
	}
	return
}

// check_shape makes sure that m is a square matrix matching ids
func check_shape(m [][]float64, ids []int) error {
	if len(m) != len(ids) {
		return fmt.Errorf("%w: matrix has %d rows but %d ids were given", ErrAssembly, len(m), len(ids))
	}
	for i, row := range m {
		if len(row) != len(ids) {
			return fmt.Errorf("%w: row %d of matrix has %d columns but %d ids were given", ErrAssembly, i, len(row), len(ids))
		}
	}
	return nil
}
