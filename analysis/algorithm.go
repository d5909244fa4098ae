// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/soe"
)

// Algorithm defines solution algorithms
type Algorithm interface {
	Name() string     // identifier; e.g. "linear_soln_algo"
	Copy() Algorithm  // returns a copy without owner
	attach(m *Method) // sets owner
}

// EquiSolnAlgo defines algorithms that find the equilibrium of the current step
type EquiSolnAlgo interface {
	Algorithm
	SolveCurrentStep() int // ≥ 0: success; < 0: failure
}

// EigenAlgorithm defines algorithms computing eigenpairs
type EigenAlgorithm interface {
	Algorithm
	SolveEigen(nmodes int) int // computes nmodes eigenpairs
}

// DomainDecompAlgo defines algorithms solving subdomains
type DomainDecompAlgo interface {
	Algorithm
	SolveSubdomain() int // solves the current subdomain
}

// NewAlgorithm returns a new algorithm by name
func NewAlgorithm(name string, prms Params) (a Algorithm, err error) {
	allocator, ok := algorithmAllocators[name]
	if !ok {
		return nil, config_error("algorithm %q is not available", name)
	}
	return allocator(prms), nil
}

// AlgorithmNames returns the names of all algorithms
func AlgorithmNames() (names []string) {
	for name := range algorithmAllocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// algorithmAllocators holds all algorithms
var algorithmAllocators = map[string]func(prms Params) Algorithm{
	"linear_soln_algo":         func(prms Params) Algorithm { return new(Linear) },
	"newton_raphson_soln_algo": func(prms Params) Algorithm { return new(NewtonRaphson) },
}

// abase holds data shared by algorithms
type abase struct {
	owner *Method
}

func (o *abase) attach(m *Method) { o.owner = m }

// parts returns the integrator and the system of equations of the owner
func (o *abase) parts(name string) (integ Integrator, s soe.LinearSOE, ok bool) {
	if o.owner == nil {
		config_error("%s: algorithm is not attached to a solution method", name)
		return
	}
	integ, s = o.owner.integrator, o.owner.linsoe
	if integ == nil || s == nil {
		config_error("%s: integrator and linear system of equations must be set", name)
		return
	}
	return integ, s, true
}

// solve factorises and solves s
func solve(name string, s soe.LinearSOE) int {
	err := s.Factor()
	if err == nil {
		err = s.Solve()
	}
	if err != nil {
		io.Pfred("ERROR: %s: cannot solve linear system:\n%v\n", name, err)
		return -3
	}
	return 0
}

// Linear solves one linear system per step
type Linear struct {
	abase
}

// Name returns the identifier
func (o *Linear) Name() string { return "linear_soln_algo" }

// SolveCurrentStep forms and solves the system of equations once
func (o *Linear) SolveCurrentStep() int {
	integ, s, ok := o.parts(o.Name())
	if !ok {
		return -1
	}
	if st := integ.FormTangent(); st < 0 {
		return st
	}
	if st := integ.FormUnbalance(); st < 0 {
		return st
	}
	if st := solve(o.Name(), s); st < 0 {
		return st
	}
	return integ.Update(s.X())
}

// Copy returns a copy without owner
func (o *Linear) Copy() Algorithm { return new(Linear) }

// NewtonRaphson iterates with the tangent until the convergence test is satisfied
type NewtonRaphson struct {
	abase
}

// Name returns the identifier
func (o *NewtonRaphson) Name() string { return "newton_raphson_soln_algo" }

// SolveCurrentStep iterates until convergence
func (o *NewtonRaphson) SolveCurrentStep() int {
	integ, s, ok := o.parts(o.Name())
	if !ok {
		return -1
	}
	test := o.owner.test
	if test == nil {
		config_error("%s: convergence test is not set", o.Name())
		return -1
	}
	test.Start()
	if st := integ.FormUnbalance(); st < 0 {
		return st
	}
	for {
		if st := integ.FormTangent(); st < 0 {
			return st
		}
		if st := solve(o.Name(), s); st < 0 {
			return st
		}
		if st := integ.Update(s.X()); st < 0 {
			return st
		}
		if st := integ.FormUnbalance(); st < 0 {
			return st
		}
		res := test.Test(s)
		if res >= 0 {
			return 0
		}
		if res == -2 {
			return -4
		}
	}
}

// Copy returns a copy without owner
func (o *NewtonRaphson) Copy() Algorithm { return new(NewtonRaphson) }
