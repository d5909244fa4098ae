// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"sort"

	"github.com/cpmech/gosolu/dom"
)

// ConstraintHandler builds the model's DOF groups and FEs and decides how constraints are enforced
type ConstraintHandler interface {
	Name() string            // identifier; e.g. "plain_handler"
	Handle() (err error)     // creates DOF groups and FEs in the owner's model
	Owner() *Bundle          // bundle owning this handler; nil if detached
	Copy() ConstraintHandler // returns a copy without owner
	attach(b *Bundle)        // sets owner
	release()                // detaches from owner
}

// NewConstraintHandler returns a new constraint handler by name
func NewConstraintHandler(name string, prms Params) (h ConstraintHandler, err error) {
	allocator, ok := handlerAllocators[name]
	if !ok {
		return nil, config_error("constraint handler %q is not available", name)
	}
	return allocator(prms), nil
}

// HandlerNames returns the names of all constraint handlers
func HandlerNames() (names []string) {
	for name := range handlerAllocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// handlerAllocators holds all constraint handlers
var handlerAllocators = map[string]func(prms Params) ConstraintHandler{
	"plain_handler":                     func(prms Params) ConstraintHandler { return new(PlainHandler) },
	"penalty_constraint_handler":        func(prms Params) ConstraintHandler { return NewPenaltyHandler(prms) },
	"lagrange_constraint_handler":       func(prms Params) ConstraintHandler { return NewLagrangeHandler(prms) },
	"transformation_constraint_handler": func(prms Params) ConstraintHandler { return new(TransformationHandler) },
}

// hbase holds data shared by all handlers
type hbase struct {
	owner *Bundle
}

// Owner returns the bundle owning this handler
func (o *hbase) Owner() *Bundle { return o.owner }

func (o *hbase) attach(b *Bundle) { o.owner = b }

func (o *hbase) release() { o.owner = nil }

// begin returns the domain and the model after creating node groups and element FEs
func (o *hbase) begin(name string) (d *dom.Domain, m *Model, err error) {
	if o.owner == nil {
		return nil, nil, config_error("%s: handler is not attached to a strategy", name)
	}
	d, m = o.owner.Domain(), o.owner.Model()
	if d == nil {
		return nil, nil, config_error("%s: domain is not available", name)
	}
	if m == nil {
		return nil, nil, config_error("%s: analysis model is not available", name)
	}
	m.Build(d)
	return
}
