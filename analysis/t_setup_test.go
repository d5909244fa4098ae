// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosolu/ana"
	"github.com/cpmech/gosolu/inp"
	"github.com/cpmech/gosolu/soe"
)

func Test_setup01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("setup01. run simulation from JSON file")

	sim, err := inp.ReadSim("../inp/data/chain.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	drv, st, err := Run(sim)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.IntAssert(st, 0)

	m := drv.Method()
	chk.String(tst, m.Bundle().Handler().Name(), "penalty_constraint_handler")
	chk.String(tst, m.LinearSOE().Name(), "sparse_gen_lin_soe")
	chk.Float64(tst, "slack", 1e-17, m.LinearSOE().(*soe.SparseGen).Slack, 4)
	chk.Float64(tst, "α", 1e-17, m.Bundle().Handler().(*PenaltyHandler).AlphaSP, 1e10)

	d := m.Domain
	chk.Float64(tst, "t", 1e-15, d.Time, 1)
	chk.Float64(tst, "λ", 1e-15, d.CommittedLambda(), 2)
	check_disp(tst, d, 1e-8, ana.Chain{Ks: []float64{1, 2, 4}}.Disp(2))
}

func Test_setup02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("setup02. run simulation from YAML file")

	sim, err := inp.ReadSim("../inp/data/linked.yaml")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	drv, st, err := Run(sim)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.IntAssert(st, 0)

	// u(2) = f・P/k0; u(3) = f・u(2); 3δ + δ³/2 = P
	d := drv.Method().Domain
	chk.Float64(tst, "λ", 1e-15, d.CommittedLambda(), 1)
	u2, u3, u4 := d.Node(2).U[0], d.Node(3).U[0], d.Node(4).U[0]
	δ, err := ana.Cubic{K: 3, C: 0.5}.Elongation(1)
	if err != nil {
		tst.Errorf("Elongation failed:\n%v", err)
		return
	}
	chk.Float64(tst, "u2", 1e-9, u2, 0.25)
	chk.Float64(tst, "u3", 1e-9, u3, 0.125)
	chk.Float64(tst, "δ", 1e-9, u4-u3, δ)
}

func Test_setup03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("setup03. invalid strategies")

	sim, err := inp.ReadSim("../inp/data/chain.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	for _, set := range []func(s *inp.StrategyData){
		func(s *inp.StrategyData) { s.Handler = "fancy_handler" },
		func(s *inp.StrategyData) { s.Numberer = "fancy_numberer" },
		func(s *inp.StrategyData) { s.Soe = "fancy_lin_soe" },
		func(s *inp.StrategyData) { s.Integrator = "fancy_integrator" },
		func(s *inp.StrategyData) { s.Algorithm = "fancy_algorithm" },
		func(s *inp.StrategyData) { s.Test = "fancy_test" },
	} {
		stg := sim.Strategy
		set(&sim.Strategy)
		_, err = NewAnalysis(sim)
		if !errors.Is(err, ErrConfiguration) {
			tst.Errorf("unknown collaborator must fail with configuration error. err = %v", err)
			return
		}
		sim.Strategy = stg
	}
}
