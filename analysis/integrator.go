// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/soe"
)

// Integrator advances the state of the model and forms the system of equations
type Integrator interface {
	Name() string            // identifier; e.g. "load_control"
	NewStep() int            // starts a new step
	FormTangent() int        // assembles A
	FormUnbalance() int      // assembles b
	Update(dx []float64) int // applies the solution of the system of equations
	Commit() int             // accepts the current state
	Revert() int             // goes back to the last committed state
	Copy() Integrator        // returns a copy without owner
	attach(m *Method)        // sets owner
}

// IncrementalIntegrator defines integrators advancing with increments of the load or time
type IncrementalIntegrator interface {
	Integrator
	incremental()
}

// StaticIntegrator defines incremental integrators for static analyses
type StaticIntegrator interface {
	IncrementalIntegrator
	static()
}

// TransientIntegrator defines incremental integrators for dynamic analyses
type TransientIntegrator interface {
	IncrementalIntegrator
	transient()
}

// EigenIntegrator defines integrators forming eigenvalue problems
type EigenIntegrator interface {
	Integrator
	FormEigenMatrices() int // assembles the matrices of the eigenvalue problem
}

// LinearBucklingIntegrator defines eigen integrators for linear buckling analyses
type LinearBucklingIntegrator interface {
	EigenIntegrator
	buckling()
}

// NewIntegrator returns a new integrator by name
func NewIntegrator(name string, prms Params) (i Integrator, err error) {
	allocator, ok := integratorAllocators[name]
	if !ok {
		return nil, config_error("integrator %q is not available", name)
	}
	return allocator(prms), nil
}

// IntegratorNames returns the names of all integrators
func IntegratorNames() (names []string) {
	for name := range integratorAllocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// integratorAllocators holds all integrators
var integratorAllocators = map[string]func(prms Params) Integrator{
	"load_control": func(prms Params) Integrator { return &LoadControl{DLambda: prms.Get("dlambda", 1)} },
}

// LoadControl increments the load factor by a constant amount at each step
type LoadControl struct {
	DLambda float64 // load factor increment
	owner   *Method // method using this integrator
}

// Name returns the identifier
func (o *LoadControl) Name() string { return "load_control" }

// NewStep sets λ = λ(committed) + Δλ
func (o *LoadControl) NewStep() int {
	m := o.model()
	if m == nil {
		return -1
	}
	d := o.owner.Domain
	d.Lambda = d.CommittedLambda() + o.DLambda
	m.Enforce()
	if o.owner.Verbose {
		io.Pf("> %s: λ = %g\n", o.Name(), d.Lambda)
	}
	return 0
}

// FormTangent assembles the tangent of all FEs into A
func (o *LoadControl) FormTangent() int {
	m, s := o.model(), o.linsoe()
	if m == nil || s == nil {
		return -1
	}
	s.ZeroA()
	for _, fe := range m.FEs {
		err := s.AddA(fe.Tangent(o.owner.Domain), fe.Ids(), 1)
		if err != nil {
			io.Pfred("ERROR: %s: cannot assemble tangent:\n%v\n", o.Name(), err)
			return -2
		}
	}
	return 0
}

// FormUnbalance assembles λ・P plus the residual of all FEs into b
func (o *LoadControl) FormUnbalance() int {
	m, s := o.model(), o.linsoe()
	if m == nil || s == nil {
		return -1
	}
	d := o.owner.Domain
	s.ZeroB()
	if err := m.AddLoads(s, d.Lambda); err != nil {
		io.Pfred("ERROR: %s: cannot assemble loads:\n%v\n", o.Name(), err)
		return -2
	}
	for _, fe := range m.FEs {
		err := s.AddB(fe.Residual(d), fe.Ids(), 1)
		if err != nil {
			io.Pfred("ERROR: %s: cannot assemble residual:\n%v\n", o.Name(), err)
			return -2
		}
	}
	return 0
}

// Update applies the increments dx
func (o *LoadControl) Update(dx []float64) int {
	m := o.model()
	if m == nil {
		return -1
	}
	m.ApplyResults(dx)
	return 0
}

// Commit accepts the current state
func (o *LoadControl) Commit() int {
	m := o.model()
	if m == nil {
		return -1
	}
	return m.Commit()
}

// Revert goes back to the last committed state
func (o *LoadControl) Revert() int {
	m := o.model()
	if m == nil {
		return -1
	}
	return m.Revert()
}

// Copy returns a copy without owner
func (o *LoadControl) Copy() Integrator {
	return &LoadControl{DLambda: o.DLambda}
}

func (o *LoadControl) attach(m *Method) { o.owner = m }

func (o *LoadControl) incremental() {}

func (o *LoadControl) static() {}

// model returns the analysis model or nil
func (o *LoadControl) model() *Model {
	if o.owner == nil || o.owner.Domain == nil || o.owner.model() == nil {
		config_error("%s: integrator is not attached to a complete solution method", o.Name())
		return nil
	}
	return o.owner.model()
}

// linsoe returns the linear system of equations or nil
func (o *LoadControl) linsoe() soe.LinearSOE {
	if o.owner == nil || o.owner.linsoe == nil {
		config_error("%s: linear system of equations is not set", o.Name())
		return nil
	}
	return o.owner.linsoe
}
