// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/soe"
)

// kinds of descriptors
const (
	KindHandler     = "handler"
	KindNumberer    = "numberer"
	KindModel       = "model"
	KindLinearSOE   = "linear_soe"
	KindIntegrator  = "integrator"
	KindAlgorithm   = "algorithm"
	KindConvergence = "convergence_test"
)

// Descriptor describes a collaborator exchanged between processes
type Descriptor struct {
	Kind    string          `json:"kind"`    // kind of collaborator; e.g. "handler"
	Tag     string          `json:"tag"`     // identifier; e.g. "penalty_constraint_handler"
	Payload json.RawMessage `json:"payload"` // parameters
}

// Broker creates collaborators from descriptors
type Broker interface {
	ConstraintHandler(d Descriptor) (ConstraintHandler, error)
	Numberer(d Descriptor) (Numberer, error)
	AnalysisModel(d Descriptor) (*Model, error)
	LinearSOE(d Descriptor) (soe.LinearSOE, error)
	Integrator(d Descriptor) (Integrator, error)
	Algorithm(d Descriptor) (Algorithm, error)
	ConvergenceTest(d Descriptor) (ConvergenceTest, error)
}

// FactoryBroker creates collaborators using the factories of this package.
// Payloads are JSON objects mapping parameter names to numbers; e.g. {"alpha_sp":1e10}
type FactoryBroker struct{}

// ConstraintHandler creates a constraint handler
func (o FactoryBroker) ConstraintHandler(d Descriptor) (ConstraintHandler, error) {
	prms, err := decode(d, KindHandler)
	if err != nil {
		return nil, err
	}
	return NewConstraintHandler(d.Tag, prms)
}

// Numberer creates a numberer
func (o FactoryBroker) Numberer(d Descriptor) (Numberer, error) {
	prms, err := decode(d, KindNumberer)
	if err != nil {
		return nil, err
	}
	return NewNumberer(d.Tag, prms)
}

// AnalysisModel creates an empty analysis model
func (o FactoryBroker) AnalysisModel(d Descriptor) (*Model, error) {
	if _, err := decode(d, KindModel); err != nil {
		return nil, err
	}
	return NewModel(), nil
}

// LinearSOE creates a linear system of equations; "slack" sets the capacity multiplier of compressed storage
func (o FactoryBroker) LinearSOE(d Descriptor) (soe.LinearSOE, error) {
	prms, err := decode(d, KindLinearSOE)
	if err != nil {
		return nil, err
	}
	s, err := soe.New(d.Tag, nil)
	if err != nil {
		return nil, config_error("%v", err)
	}
	if sp, ok := s.(*soe.SparseGen); ok {
		sp.Slack = prms.Get("slack", sp.Slack)
	}
	return s, nil
}

// Integrator creates an integrator
func (o FactoryBroker) Integrator(d Descriptor) (Integrator, error) {
	prms, err := decode(d, KindIntegrator)
	if err != nil {
		return nil, err
	}
	return NewIntegrator(d.Tag, prms)
}

// Algorithm creates an algorithm
func (o FactoryBroker) Algorithm(d Descriptor) (Algorithm, error) {
	prms, err := decode(d, KindAlgorithm)
	if err != nil {
		return nil, err
	}
	return NewAlgorithm(d.Tag, prms)
}

// ConvergenceTest creates a convergence test
func (o FactoryBroker) ConvergenceTest(d Descriptor) (ConvergenceTest, error) {
	prms, err := decode(d, KindConvergence)
	if err != nil {
		return nil, err
	}
	return NewConvergenceTest(d.Tag, prms)
}

// decode checks the kind of d and decodes its payload
func decode(d Descriptor, kind string) (prms Params, err error) {
	if d.Kind != kind {
		return nil, config_error("descriptor of kind %q cannot be used to create a %s", d.Kind, kind)
	}
	if len(d.Payload) == 0 {
		return
	}
	err = json.Unmarshal(d.Payload, &prms)
	if err != nil {
		return nil, config_error("cannot decode payload of %s %q:\n%v", kind, d.Tag, err)
	}
	return
}

// broke hooks ///////////////////////////////////////////////////////////////////////////////////

// BrokeConstraintHandler replaces the handler by one created from d
func (o *Bundle) BrokeConstraintHandler(d Descriptor, br Broker) int {
	h, err := br.ConstraintHandler(d)
	if err != nil {
		return broke_failed(d, err)
	}
	o.set_handler(h)
	return 0
}

// BrokeNumberer replaces the numberer by one created from d
func (o *Bundle) BrokeNumberer(d Descriptor, br Broker) int {
	n, err := br.Numberer(d)
	if err != nil {
		return broke_failed(d, err)
	}
	o.set_numberer(n)
	return 0
}

// BrokeAnalysisModel replaces the analysis model by one created from d
func (o *Bundle) BrokeAnalysisModel(d Descriptor, br Broker) int {
	m, err := br.AnalysisModel(d)
	if err != nil {
		return broke_failed(d, err)
	}
	o.set_model(m)
	return 0
}

// BrokeConstraintHandler replaces the handler of the bundle by one created from d
func (o *Driver) BrokeConstraintHandler(d Descriptor, br Broker) int {
	if b := o.bundle(); b != nil {
		return b.BrokeConstraintHandler(d, br)
	}
	return broke_failed(d, chk.Err("there is no strategy bundle"))
}

// BrokeNumberer replaces the numberer of the bundle by one created from d
func (o *Driver) BrokeNumberer(d Descriptor, br Broker) int {
	if b := o.bundle(); b != nil {
		return b.BrokeNumberer(d, br)
	}
	return broke_failed(d, chk.Err("there is no strategy bundle"))
}

// BrokeAnalysisModel replaces the analysis model of the bundle by one created from d
func (o *Driver) BrokeAnalysisModel(d Descriptor, br Broker) int {
	if b := o.bundle(); b != nil {
		return b.BrokeAnalysisModel(d, br)
	}
	return broke_failed(d, chk.Err("there is no strategy bundle"))
}

// BrokeLinearSOE replaces the linear system of equations by one created from d
func (o *Driver) BrokeLinearSOE(d Descriptor, br Broker) int {
	if o.method == nil {
		return broke_failed(d, chk.Err("there is no solution method"))
	}
	s, err := br.LinearSOE(d)
	if err != nil {
		return broke_failed(d, err)
	}
	return o.method.SetLinearSOE(s)
}

// BrokeIntegrator replaces the integrator by one created from d
func (o *Driver) BrokeIntegrator(d Descriptor, br Broker) int {
	if o.method == nil {
		return broke_failed(d, chk.Err("there is no solution method"))
	}
	i, err := br.Integrator(d)
	if err != nil {
		return broke_failed(d, err)
	}
	return o.method.SetIntegrator(i)
}

// BrokeAlgorithm replaces the algorithm by one created from d
func (o *Driver) BrokeAlgorithm(d Descriptor, br Broker) int {
	if o.method == nil {
		return broke_failed(d, chk.Err("there is no solution method"))
	}
	a, err := br.Algorithm(d)
	if err != nil {
		return broke_failed(d, err)
	}
	return o.method.SetAlgorithm(a)
}

// BrokeConvergenceTest replaces the convergence test by one created from d
func (o *Driver) BrokeConvergenceTest(d Descriptor, br Broker) int {
	if o.method == nil {
		return broke_failed(d, chk.Err("there is no solution method"))
	}
	t, err := br.ConvergenceTest(d)
	if err != nil {
		return broke_failed(d, err)
	}
	return o.method.SetConvergenceTest(t)
}

// broke_failed prints a diagnostic and returns -1
func broke_failed(d Descriptor, err error) int {
	io.Pfred("ERROR: cannot create %s %q from descriptor:\n%v\n", d.Kind, d.Tag, err)
	return -1
}
