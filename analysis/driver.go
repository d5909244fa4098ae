// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/dom"
	"github.com/cpmech/gosolu/soe"
)

// Recorder records the committed state of the domain after each successful step
type Recorder interface {
	Record(d *dom.Domain)
}

// Driver advances the analysis using a solution method it does not own
type Driver struct {
	ShowMsg   bool       // show messages
	method    *Method    // solution method; may be nil
	recorders []Recorder // recorders
}

// NewDriver returns a new driver using method m; m may be nil
func NewDriver(m *Method) *Driver {
	return &Driver{method: m}
}

// Method returns the solution method; nil if absent
func (o *Driver) Method() *Method { return o.method }

// SetMethod sets the solution method
func (o *Driver) SetMethod(m *Method) { o.method = m }

// AddRecorder adds a recorder called after each successful step
func (o *Driver) AddRecorder(r Recorder) { o.recorders = append(o.recorders, r) }

// AdvanceStep advances the domain by dt.
// It returns -1 if the strategy bundle is incomplete or the step cannot be started.
func (o *Driver) AdvanceStep(dt float64) int {
	b := o.bundle()
	if b == nil || !b.CheckComplete() {
		config_error("cannot advance step because the strategy is incomplete")
		StepCount.WithLabelValues("config").Inc()
		return -1
	}
	return b.Model().NewStepDomain(dt)
}

// Analyze runs nsteps steps with increment dt.
// On failure, the domain is reverted to the last committed state and the
// negative status of the failing collaborator is returned.
func (o *Driver) Analyze(nsteps int, dt float64) (status int) {

	// check
	if o.method == nil || !o.bundle_ok() {
		config_error("cannot analyze because the strategy is incomplete")
		StepCount.WithLabelValues("config").Inc()
		return -1
	}
	m := o.method
	algo, ok := m.algorithm.(EquiSolnAlgo)
	if m.integrator == nil || m.linsoe == nil || !ok {
		config_error("cannot analyze because integrator, algorithm or linear system of equations is missing")
		StepCount.WithLabelValues("config").Inc()
		return -1
	}

	// message
	cputime := time.Now()
	if o.ShowMsg {
		io.Pf("> Running %d steps\n", nsteps)
	}

	// loop over steps
	for k := 0; k < nsteps; k++ {
		status = o.step(algo, dt)
		if status < 0 {
			StepCount.WithLabelValues("failed").Inc()
			m.integrator.Revert()
			if o.ShowMsg {
				io.Pfred("> Failed at step %d with status %d\n", k, status)
			}
			return
		}
		StepCount.WithLabelValues("ok").Inc()
		for _, r := range o.recorders {
			r.Record(m.Domain)
		}
		if o.ShowMsg {
			io.Pf("> step %4d: t=%g λ=%g\n", k, m.Domain.Time, m.Domain.Lambda)
		}
	}

	// message
	if o.ShowMsg {
		io.Pfgreen("> Success\n")
		io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
	}
	return 0
}

// DomainChanged rebuilds DOF groups, equation numbers and storage
func (o *Driver) DomainChanged() int {
	if !o.bundle_ok() || o.method.linsoe == nil {
		config_error("cannot handle domain change because the strategy is incomplete")
		return -1
	}
	b, s := o.method.bundle, o.method.linsoe
	if err := b.handler.Handle(); err != nil {
		io.Pfred("ERROR: %s failed:\n%v\n", b.handler.Name(), err)
		return -2
	}
	neq := b.numberer.Number()
	if neq < 0 {
		return -2
	}
	if err := s.SetSize(b.model.DofGraph()); err != nil {
		io.Pfred("ERROR: %s.SetSize failed:\n%v\n", s.Name(), err)
		return -2
	}
	DomainChangeCount.Inc()
	if o.ShowMsg {
		io.Pf("> %s: neq=%d\n", s.Name(), neq)
	}
	return 0
}

// step runs one step
func (o *Driver) step(algo EquiSolnAlgo, dt float64) int {
	m := o.method
	if st := o.AdvanceStep(dt); st < 0 {
		return st
	}
	if m.model().Changed() {
		if st := o.DomainChanged(); st < 0 {
			return st
		}
	}
	if st := m.integrator.NewStep(); st < 0 {
		return st
	}
	if st := algo.SolveCurrentStep(); st < 0 {
		return st
	}
	return m.integrator.Commit()
}

// setters /////////////////////////////////////////////////////////////////////////////////////

// SetNumberer replaces the numberer; returns 0 if there is no solution method
func (o *Driver) SetNumberer(n Numberer) int {
	if o.method == nil {
		return 0
	}
	return o.method.SetNumberer(n)
}

// SetLinearSOE replaces the linear system of equations; returns 0 if there is no solution method
func (o *Driver) SetLinearSOE(s soe.LinearSOE) int {
	if o.method == nil {
		return 0
	}
	return o.method.SetLinearSOE(s)
}

// SetEigenSOE replaces the eigenvalue system of equations; returns 0 if there is no solution method
func (o *Driver) SetEigenSOE(s EigenSOE) int {
	if o.method == nil {
		return 0
	}
	return o.method.SetEigenSOE(s)
}

// SetIntegrator replaces the integrator; returns 0 if there is no solution method
func (o *Driver) SetIntegrator(i Integrator) int {
	if o.method == nil {
		return 0
	}
	return o.method.SetIntegrator(i)
}

// SetAlgorithm replaces the algorithm; returns 0 if there is no solution method
func (o *Driver) SetAlgorithm(a Algorithm) int {
	if o.method == nil {
		return 0
	}
	return o.method.SetAlgorithm(a)
}

// accessors ///////////////////////////////////////////////////////////////////////////////////

// ConstraintHandler returns the constraint handler
func (o *Driver) ConstraintHandler() (h ConstraintHandler, ok bool) {
	if b := o.bundle(); b != nil && b.handler != nil {
		return b.handler, true
	}
	return
}

// Numberer returns the numberer
func (o *Driver) Numberer() (n Numberer, ok bool) {
	if b := o.bundle(); b != nil && b.numberer != nil {
		return b.numberer, true
	}
	return
}

// Model returns the analysis model
func (o *Driver) Model() (m *Model, ok bool) {
	if b := o.bundle(); b != nil && b.model != nil {
		return b.model, true
	}
	return
}

// LinearSOE returns the linear system of equations
func (o *Driver) LinearSOE() (s soe.LinearSOE, ok bool) {
	if o.method != nil && o.method.linsoe != nil {
		return o.method.linsoe, true
	}
	return
}

// EigenSOE returns the eigenvalue system of equations
func (o *Driver) EigenSOE() (s EigenSOE, ok bool) {
	if o.method != nil && o.method.eigsoe != nil {
		return o.method.eigsoe, true
	}
	return
}

// Integrator returns the integrator
func (o *Driver) Integrator() (i Integrator, ok bool) {
	if o.method != nil && o.method.integrator != nil {
		return o.method.integrator, true
	}
	return
}

// IncrementalIntegrator returns the integrator if it is incremental
func (o *Driver) IncrementalIntegrator() (i IncrementalIntegrator, ok bool) {
	if o.method != nil {
		i, ok = o.method.integrator.(IncrementalIntegrator)
	}
	return
}

// StaticIntegrator returns the integrator if it is static
func (o *Driver) StaticIntegrator() (i StaticIntegrator, ok bool) {
	if o.method != nil {
		i, ok = o.method.integrator.(StaticIntegrator)
	}
	return
}

// TransientIntegrator returns the integrator if it is transient
func (o *Driver) TransientIntegrator() (i TransientIntegrator, ok bool) {
	if o.method != nil {
		i, ok = o.method.integrator.(TransientIntegrator)
	}
	return
}

// EigenIntegrator returns the integrator if it forms eigenvalue problems
func (o *Driver) EigenIntegrator() (i EigenIntegrator, ok bool) {
	if o.method != nil {
		i, ok = o.method.integrator.(EigenIntegrator)
	}
	return
}

// LinearBucklingIntegrator returns the integrator if it is a linear buckling integrator
func (o *Driver) LinearBucklingIntegrator() (i LinearBucklingIntegrator, ok bool) {
	if o.method != nil {
		i, ok = o.method.integrator.(LinearBucklingIntegrator)
	}
	return
}

// EquiSolnAlgo returns the algorithm if it finds equilibrium states
func (o *Driver) EquiSolnAlgo() (a EquiSolnAlgo, ok bool) {
	if o.method != nil {
		a, ok = o.method.algorithm.(EquiSolnAlgo)
	}
	return
}

// EigenAlgorithm returns the algorithm if it computes eigenpairs
func (o *Driver) EigenAlgorithm() (a EigenAlgorithm, ok bool) {
	if o.method != nil {
		a, ok = o.method.algorithm.(EigenAlgorithm)
	}
	return
}

// DomainDecompAlgo returns the algorithm if it solves subdomains
func (o *Driver) DomainDecompAlgo() (a DomainDecompAlgo, ok bool) {
	if o.method != nil {
		a, ok = o.method.algorithm.(DomainDecompAlgo)
	}
	return
}

// ConvergenceTest returns the convergence test
func (o *Driver) ConvergenceTest() (t ConvergenceTest, ok bool) {
	if o.method != nil && o.method.test != nil {
		return o.method.test, true
	}
	return
}

// DomainSolver returns the subdomain solver
func (o *Driver) DomainSolver() (s DomainSolver, ok bool) {
	if o.method != nil && o.method.solver != nil {
		return o.method.solver, true
	}
	return
}

// Subdomain returns the subdomain
func (o *Driver) Subdomain() (s Subdomain, ok bool) {
	if o.method != nil && o.method.subdomain != nil {
		return o.method.subdomain, true
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////

// bundle returns the bundle of the method or nil
func (o *Driver) bundle() *Bundle {
	if o.method == nil {
		return nil
	}
	return o.method.bundle
}

// bundle_ok tells whether the bundle is complete
func (o *Driver) bundle_ok() bool {
	b := o.bundle()
	return b != nil && b.CheckComplete()
}
