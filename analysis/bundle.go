// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/dom"
)

// Bundle holds the analysis model, the constraint handler and the numberer of a strategy.
// The bundle owns the three collaborators; each of them points back to the bundle.
type Bundle struct {
	Verbose  bool              // show messages
	owner    *Method           // solution method using this bundle; may be nil
	model    *Model            // analysis model
	handler  ConstraintHandler // constraint handler
	numberer Numberer          // DOF numberer
}

// NewBundle returns a new bundle with an empty analysis model and without handler or numberer
func NewBundle() (o *Bundle) {
	o = new(Bundle)
	o.NewAnalysisModel()
	return
}

// Model returns the analysis model; nil if absent
func (o *Bundle) Model() *Model { return o.model }

// Handler returns the constraint handler; nil if absent
func (o *Bundle) Handler() ConstraintHandler { return o.handler }

// Numberer returns the numberer; nil if absent
func (o *Bundle) Numberer() Numberer { return o.numberer }

// Owner returns the solution method using this bundle; nil if absent
func (o *Bundle) Owner() *Method { return o.owner }

// Domain returns the domain of the owner method; nil if absent
func (o *Bundle) Domain() *dom.Domain {
	if o.owner == nil {
		return nil
	}
	return o.owner.Domain
}

// Integrator returns the integrator of the owner method; nil if absent
func (o *Bundle) Integrator() Integrator {
	if o.owner == nil {
		return nil
	}
	return o.owner.integrator
}

// NewConstraintHandler replaces the constraint handler by a new one.
// With an unknown name, the handler is left unset and an error is returned.
func (o *Bundle) NewConstraintHandler(name string) (err error) {
	o.free_handler()
	h, err := NewConstraintHandler(name, nil)
	if err != nil {
		return
	}
	o.set_handler(h)
	return
}

// NewNumberer replaces the numberer by a new one.
// With an unknown name, the numberer is left unset and an error is returned.
func (o *Bundle) NewNumberer(name string) (err error) {
	o.free_numberer()
	n, err := NewNumberer(name, nil)
	if err != nil {
		return
	}
	o.set_numberer(n)
	return
}

// NewAnalysisModel replaces the analysis model by a new empty one
func (o *Bundle) NewAnalysisModel() {
	o.set_model(NewModel())
}

// SetNumberer replaces the numberer by a copy of n. A nil n is a configuration
// error (-1) and the current numberer is kept
func (o *Bundle) SetNumberer(n Numberer) int {
	if n == nil {
		config_error("cannot set numberer because the given numberer is nil")
		return -1
	}
	o.set_numberer(n.Copy())
	return 0
}

// CheckComplete tells whether model, handler and numberer are all present.
// The first missing collaborator is reported.
func (o *Bundle) CheckComplete() bool {
	if o.model == nil {
		io.Pfred("WARNING: analysis model is not set\n")
		return false
	}
	if o.handler == nil {
		io.Pfred("WARNING: constraint handler is not set\n")
		return false
	}
	if o.numberer == nil {
		io.Pfred("WARNING: numberer is not set\n")
		return false
	}
	return true
}

// Copy returns a deep copy whose collaborators point back to the copy; the copy has no owner
func (o *Bundle) Copy() (c *Bundle) {
	c = &Bundle{Verbose: o.Verbose}
	if o.model != nil {
		c.set_model(o.model.Copy())
	}
	if o.handler != nil {
		c.set_handler(o.handler.Copy())
	}
	if o.numberer != nil {
		c.set_numberer(o.numberer.Copy())
	}
	return
}

// Clear releases all collaborators
func (o *Bundle) Clear() {
	o.free_model()
	o.free_handler()
	o.free_numberer()
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////

func (o *Bundle) set_model(m *Model) {
	o.free_model()
	o.model = m
	m.owner = o
}

func (o *Bundle) set_handler(h ConstraintHandler) {
	o.free_handler()
	o.handler = h
	h.attach(o)
}

func (o *Bundle) set_numberer(n Numberer) {
	o.free_numberer()
	o.numberer = n
	n.attach(o)
}

func (o *Bundle) free_model() {
	if o.model != nil {
		o.model.release()
		o.model = nil
	}
}

func (o *Bundle) free_handler() {
	if o.handler != nil {
		o.handler.release()
		o.handler = nil
	}
}

func (o *Bundle) free_numberer() {
	if o.numberer != nil {
		o.numberer.release()
		o.numberer = nil
	}
}
