// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosolu/ana"
	"github.com/cpmech/gosolu/soe"
	"github.com/cpmech/gosolu/tests"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func Test_driver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver01. driver without solution method")

	drv := NewDriver(nil)
	nconfig := testutil.ToFloat64(StepCount.WithLabelValues("config"))
	chk.IntAssert(drv.AdvanceStep(1), -1)
	chk.IntAssert(drv.Analyze(1, 1), -1)
	chk.IntAssert(drv.DomainChanged(), -1)
	chk.Float64(tst, "config steps", 1e-17, testutil.ToFloat64(StepCount.WithLabelValues("config")), nconfig+2)

	// accessors
	if _, ok := drv.ConstraintHandler(); ok {
		tst.Errorf("handler must be absent")
		return
	}
	if _, ok := drv.Numberer(); ok {
		tst.Errorf("numberer must be absent")
		return
	}
	if _, ok := drv.Model(); ok {
		tst.Errorf("model must be absent")
		return
	}
	if _, ok := drv.LinearSOE(); ok {
		tst.Errorf("linear system of equations must be absent")
		return
	}
	if _, ok := drv.EigenSOE(); ok {
		tst.Errorf("eigenvalue system of equations must be absent")
		return
	}
	if _, ok := drv.Integrator(); ok {
		tst.Errorf("integrator must be absent")
		return
	}
	if _, ok := drv.StaticIntegrator(); ok {
		tst.Errorf("static integrator must be absent")
		return
	}
	if _, ok := drv.EquiSolnAlgo(); ok {
		tst.Errorf("algorithm must be absent")
		return
	}
	if _, ok := drv.ConvergenceTest(); ok {
		tst.Errorf("convergence test must be absent")
		return
	}
	if _, ok := drv.DomainSolver(); ok {
		tst.Errorf("domain solver must be absent")
		return
	}
	if _, ok := drv.Subdomain(); ok {
		tst.Errorf("subdomain must be absent")
		return
	}

	// setters are ignored
	chk.IntAssert(drv.SetNumberer(new(PlainNumberer)), 0)
	chk.IntAssert(drv.SetLinearSOE(soe.NewBandGen(nil)), 0)
	chk.IntAssert(drv.SetEigenSOE(nil), 0)
	chk.IntAssert(drv.SetIntegrator(new(LoadControl)), 0)
	chk.IntAssert(drv.SetAlgorithm(new(Linear)), 0)
	if drv.Method() != nil {
		tst.Errorf("driver must not create a method")
		return
	}
}

func Test_driver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver02. incomplete strategies and accessors")

	d := tests.SpringChain([]float64{1}, 0, 1)
	m := NewMethod(d, nil)
	drv := NewDriver(m)
	chk.IntAssert(drv.AdvanceStep(1), -1)
	chk.IntAssert(drv.SetNumberer(new(PlainNumberer)), 0)
	if m.Bundle() != nil {
		tst.Errorf("SetNumberer must not create a bundle")
		return
	}

	b := NewBundle()
	m.SetBundle(b)
	chk.IntAssert(drv.AdvanceStep(1), -1)
	b.NewConstraintHandler("plain_handler")
	chk.IntAssert(drv.AdvanceStep(1), -1)
	chk.IntAssert(drv.SetNumberer(new(PlainNumberer)), 0)
	plain := b.Numberer()
	chk.IntAssert(drv.SetNumberer(nil), -1)
	if b.Numberer() != plain {
		tst.Errorf("nil numberer must keep the current one")
		return
	}

	// complete bundle
	chk.IntAssert(drv.AdvanceStep(math.NaN()), -1)
	chk.IntAssert(drv.AdvanceStep(math.Inf(1)), -1)
	chk.IntAssert(drv.AdvanceStep(0.5), 0)
	chk.Float64(tst, "t", 1e-17, d.Time, 0.5)

	// missing integrator, algorithm and linear system of equations
	chk.IntAssert(drv.Analyze(1, 1), -1)

	// accessors
	h, ok := drv.ConstraintHandler()
	if !ok || h != b.Handler() {
		tst.Errorf("handler must be available")
		return
	}
	if _, ok := drv.Numberer(); !ok {
		tst.Errorf("numberer must be available")
		return
	}
	if mdl, ok := drv.Model(); !ok || mdl != b.Model() {
		tst.Errorf("model must be available")
		return
	}

	// integrator and algorithm
	drv.SetIntegrator(new(LoadControl))
	drv.SetAlgorithm(new(NewtonRaphson))
	if _, ok := drv.IncrementalIntegrator(); !ok {
		tst.Errorf("load control must be incremental")
		return
	}
	if _, ok := drv.StaticIntegrator(); !ok {
		tst.Errorf("load control must be static")
		return
	}
	if _, ok := drv.TransientIntegrator(); ok {
		tst.Errorf("load control must not be transient")
		return
	}
	if _, ok := drv.EigenIntegrator(); ok {
		tst.Errorf("load control must not form eigenvalue problems")
		return
	}
	if _, ok := drv.LinearBucklingIntegrator(); ok {
		tst.Errorf("load control must not be a buckling integrator")
		return
	}
	if _, ok := drv.EquiSolnAlgo(); !ok {
		tst.Errorf("Newton-Raphson must find equilibrium states")
		return
	}
	if _, ok := drv.EigenAlgorithm(); ok {
		tst.Errorf("Newton-Raphson must not compute eigenpairs")
		return
	}
	if _, ok := drv.DomainDecompAlgo(); ok {
		tst.Errorf("Newton-Raphson must not solve subdomains")
		return
	}

	// replacing the integrator detaches the old one
	i0 := m.Integrator().(*LoadControl)
	drv.SetIntegrator(new(LoadControl))
	if i0.owner != nil {
		tst.Errorf("replaced integrator must be detached")
		return
	}
	chk.IntAssert(i0.NewStep(), -1)
}

func Test_driver03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver03. collaborators created by broker")

	var br FactoryBroker
	desc := func(kind, tag, payload string) (d Descriptor) {
		d = Descriptor{Kind: kind, Tag: tag}
		if payload != "" {
			d.Payload = json.RawMessage(payload)
		}
		return
	}

	// without method
	drv := NewDriver(nil)
	chk.IntAssert(drv.BrokeConstraintHandler(desc(KindHandler, "plain_handler", ""), br), -1)
	chk.IntAssert(drv.BrokeLinearSOE(desc(KindLinearSOE, "band_gen_lin_soe", ""), br), -1)

	// with method
	d := tests.SpringChain([]float64{1, 3}, 0, 2)
	m := NewMethod(d, NewBundle())
	drv.SetMethod(m)
	chk.IntAssert(drv.BrokeConstraintHandler(desc(KindHandler, "penalty_constraint_handler", `{"alpha_sp":1e10}`), br), 0)
	chk.IntAssert(drv.BrokeNumberer(desc(KindNumberer, "default_numberer", ""), br), 0)
	chk.IntAssert(drv.BrokeAnalysisModel(desc(KindModel, "", ""), br), 0)
	chk.IntAssert(drv.BrokeLinearSOE(desc(KindLinearSOE, "sparse_gen_lin_soe", `{"slack":5}`), br), 0)
	chk.IntAssert(drv.BrokeIntegrator(desc(KindIntegrator, "load_control", `{"dlambda":0.5}`), br), 0)
	chk.IntAssert(drv.BrokeAlgorithm(desc(KindAlgorithm, "newton_raphson_soln_algo", ""), br), 0)
	chk.IntAssert(drv.BrokeConvergenceTest(desc(KindConvergence, "norm_disp_incr_conv_test", `{"tol":1e-12}`), br), 0)

	h := m.Bundle().Handler().(*PenaltyHandler)
	chk.Float64(tst, "αsp", 1e-17, h.AlphaSP, 1e10)
	chk.String(tst, m.Bundle().Numberer().Name(), "default_numberer")
	chk.Float64(tst, "slack", 1e-17, m.LinearSOE().(*soe.SparseGen).Slack, 5)
	chk.Float64(tst, "Δλ", 1e-17, m.Integrator().(*LoadControl).DLambda, 0.5)
	chk.Float64(tst, "tol", 1e-17, m.ConvergenceTest().(*NormDispIncr).Tol, 1e-12)

	// failures leave collaborators unchanged
	chk.IntAssert(drv.BrokeConstraintHandler(desc(KindNumberer, "plain_handler", ""), br), -1)
	chk.IntAssert(drv.BrokeConstraintHandler(desc(KindHandler, "fancy_handler", ""), br), -1)
	chk.IntAssert(drv.BrokeConstraintHandler(desc(KindHandler, "plain_handler", `{"alpha_sp":`), br), -1)
	chk.IntAssert(drv.BrokeLinearSOE(desc(KindLinearSOE, "fancy_lin_soe", ""), br), -1)
	if m.Bundle().Handler() != ConstraintHandler(h) {
		tst.Errorf("failed broker must not replace the handler")
		return
	}

	// run
	chk.IntAssert(drv.Analyze(2, 1), 0)
	check_disp(tst, d, 1e-8, ana.Chain{Ks: []float64{1, 3}}.Disp(2))
}
