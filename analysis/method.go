// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosolu/dom"
	"github.com/cpmech/gosolu/graph"
	"github.com/cpmech/gosolu/soe"
)

// EigenSOE defines eigenvalue systems of equations
type EigenSOE interface {
	Name() string                             // identifier
	SetSize(g graph.Connectivity) (err error) // allocates storage
	Solve(nmodes int) (err error)             // computes nmodes eigenpairs
	Eigenvalue(mode int) float64              // returns eigenvalue of mode
}

// DomainSolver defines linear solvers that condense subdomains
type DomainSolver interface {
	soe.LinearSolver
	Condense(nint int) (err error) // condenses the first nint equations
}

// Subdomain defines partitions of the domain handled by their own strategy
type Subdomain interface {
	Tag() int            // subdomain tag
	Domain() *dom.Domain // subdomain's domain
	ComputeTangent() int // computes condensed tangent
}

// Method holds the domain and all collaborators of a solution method
type Method struct {

	// data
	Verbose bool        // show messages
	Domain  *dom.Domain // domain

	// collaborators
	bundle     *Bundle         // model, handler and numberer
	linsoe     soe.LinearSOE   // linear system of equations
	eigsoe     EigenSOE        // eigenvalue system of equations
	integrator Integrator      // integrator
	algorithm  Algorithm       // solution algorithm
	test       ConvergenceTest // convergence test
	solver     DomainSolver    // subdomain solver
	subdomain  Subdomain       // subdomain
}

// NewMethod returns a new solution method using bundle b; b may be nil
func NewMethod(d *dom.Domain, b *Bundle) (o *Method) {
	o = &Method{Domain: d}
	o.SetBundle(b)
	return
}

// SetBundle sets the bundle; the previous bundle is detached
func (o *Method) SetBundle(b *Bundle) {
	if o.bundle != nil {
		o.bundle.owner = nil
	}
	o.bundle = b
	if b != nil {
		b.owner = o
		b.Verbose = b.Verbose || o.Verbose
	}
}

// Bundle returns the bundle; nil if absent
func (o *Method) Bundle() *Bundle { return o.bundle }

// LinearSOE returns the linear system of equations; nil if absent
func (o *Method) LinearSOE() soe.LinearSOE { return o.linsoe }

// Integrator returns the integrator; nil if absent
func (o *Method) Integrator() Integrator { return o.integrator }

// Algorithm returns the algorithm; nil if absent
func (o *Method) Algorithm() Algorithm { return o.algorithm }

// ConvergenceTest returns the convergence test; nil if absent
func (o *Method) ConvergenceTest() ConvergenceTest { return o.test }

// SetNumberer replaces the numberer of the bundle by a copy of n; returns 0 if there is no bundle
func (o *Method) SetNumberer(n Numberer) int {
	if o.bundle == nil {
		return 0
	}
	return o.bundle.SetNumberer(n)
}

// SetLinearSOE replaces the linear system of equations
func (o *Method) SetLinearSOE(s soe.LinearSOE) int {
	o.linsoe = s
	if o.bundle != nil && o.bundle.model != nil {
		o.bundle.model.numbered = false
	}
	return 0
}

// SetEigenSOE replaces the eigenvalue system of equations
func (o *Method) SetEigenSOE(s EigenSOE) int {
	o.eigsoe = s
	return 0
}

// SetIntegrator replaces the integrator
func (o *Method) SetIntegrator(i Integrator) int {
	if o.integrator != nil {
		o.integrator.attach(nil)
	}
	o.integrator = i
	if i != nil {
		i.attach(o)
	}
	return 0
}

// SetAlgorithm replaces the solution algorithm
func (o *Method) SetAlgorithm(a Algorithm) int {
	if o.algorithm != nil {
		o.algorithm.attach(nil)
	}
	o.algorithm = a
	if a != nil {
		a.attach(o)
	}
	return 0
}

// SetConvergenceTest replaces the convergence test
func (o *Method) SetConvergenceTest(t ConvergenceTest) int {
	o.test = t
	return 0
}

// SetDomainSolver replaces the subdomain solver
func (o *Method) SetDomainSolver(s DomainSolver) int {
	o.solver = s
	return 0
}

// SetSubdomain replaces the subdomain
func (o *Method) SetSubdomain(s Subdomain) int {
	o.subdomain = s
	return 0
}

// model returns the analysis model or nil
func (o *Method) model() *Model {
	if o.bundle == nil {
		return nil
	}
	return o.bundle.model
}
