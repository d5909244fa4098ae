// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosolu/inp"
	"github.com/cpmech/gosolu/soe"
)

// NewAnalysis builds the domain and a driver with all collaborators named in sim
func NewAnalysis(sim *inp.Simulation) (drv *Driver, err error) {

	// domain
	d, err := sim.Domain()
	if err != nil {
		return
	}

	// bundle
	stg := sim.Strategy
	prms := Params(stg.Prms)
	b := NewBundle()
	b.Verbose = sim.Data.Verbose
	h, err := NewConstraintHandler(stg.Handler, prms)
	if err != nil {
		return
	}
	n, err := NewNumberer(stg.Numberer, prms)
	if err != nil {
		return
	}
	b.set_handler(h)
	b.set_numberer(n)

	// system of equations
	s, err := soe.New(stg.Soe, nil)
	if err != nil {
		return nil, config_error("%v", err)
	}
	if sp, ok := s.(*soe.SparseGen); ok {
		sp.Slack = stg.Slack
	}

	// integrator, algorithm and convergence test
	integ, err := NewIntegrator(stg.Integrator, prms)
	if err != nil {
		return
	}
	algo, err := NewAlgorithm(stg.Algorithm, prms)
	if err != nil {
		return
	}
	test, err := NewConvergenceTest(stg.Test, prms)
	if err != nil {
		return
	}

	// method
	m := NewMethod(d, b)
	m.Verbose = sim.Data.Verbose
	m.SetLinearSOE(s)
	m.SetIntegrator(integ)
	m.SetAlgorithm(algo)
	m.SetConvergenceTest(test)
	drv = NewDriver(m)
	drv.ShowMsg = sim.Data.ShowMsg
	return
}

// Run runs all steps of sim
func Run(sim *inp.Simulation) (drv *Driver, status int, err error) {
	drv, err = NewAnalysis(sim)
	if err != nil {
		return
	}
	status = drv.Analyze(sim.Control.Nsteps, sim.Control.Dt)
	return
}
