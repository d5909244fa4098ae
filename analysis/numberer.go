// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"sort"

	"github.com/cpmech/gosl/io"
)

// Numberer assigns equation numbers to the DOFs of the owner's model
type Numberer interface {
	Name() string     // identifier; e.g. "plain_numberer"
	Number() int      // numbers DOFs; returns the number of equations or a negative status
	Owner() *Bundle   // bundle owning this numberer; nil if detached
	Copy() Numberer   // returns a copy without owner
	attach(b *Bundle) // sets owner
	release()         // detaches from owner
}

// NewNumberer returns a new numberer by name
func NewNumberer(name string, prms Params) (n Numberer, err error) {
	allocator, ok := numbererAllocators[name]
	if !ok {
		return nil, config_error("numberer %q is not available", name)
	}
	return allocator(prms), nil
}

// NumbererNames returns the names of all numberers
func NumbererNames() (names []string) {
	for name := range numbererAllocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// numbererAllocators holds all numberers
var numbererAllocators = map[string]func(prms Params) Numberer{
	"plain_numberer":    func(prms Params) Numberer { return new(PlainNumberer) },
	"default_numberer":  func(prms Params) Numberer { return new(RCMNumberer) },
	"parallel_numberer": func(prms Params) Numberer { return new(ParallelNumberer) },
}

// nbase holds data shared by all numberers
type nbase struct {
	owner *Bundle
}

// Owner returns the bundle owning this numberer
func (o *nbase) Owner() *Bundle { return o.owner }

func (o *nbase) attach(b *Bundle) { o.owner = b }

func (o *nbase) release() { o.owner = nil }

// model returns the owner's model or nil
func (o *nbase) model(name string) *Model {
	if o.owner == nil || o.owner.Model() == nil {
		config_error("%s: analysis model is not available", name)
		return nil
	}
	return o.owner.Model()
}

// number_groups numbers Free DOFs of groups in the given order, then Multiplier DOFs in the same order
func number_groups(m *Model, order []int, verbose bool) (neq int) {
	for _, g := range m.Groups {
		for i, eq := range g.Eqs {
			if eq >= 0 {
				g.Eqs[i] = Free
				if g.IsMultiplier() {
					g.Eqs[i] = Multiplier
				}
			}
		}
	}
	for _, idx := range order {
		for i, eq := range m.Groups[idx].Eqs {
			if eq == Free {
				m.Groups[idx].Eqs[i] = neq
				neq++
			}
		}
	}
	for _, idx := range order {
		for i, eq := range m.Groups[idx].Eqs {
			if eq == Multiplier {
				m.Groups[idx].Eqs[i] = neq
				neq++
			}
		}
	}
	m.DoneNumbering(neq)
	if verbose {
		io.Pforan("neq = %d\n", neq)
		m.Print()
	}
	return
}
