// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosl/io"
)

// PlainHandler eliminates homogeneous single-point constraints; other constraints are ignored
type PlainHandler struct {
	hbase
}

// Name returns the identifier
func (o *PlainHandler) Name() string { return "plain_handler" }

// Handle creates DOF groups and FEs
func (o *PlainHandler) Handle() (err error) {
	d, m, err := o.begin(o.Name())
	if err != nil {
		return
	}
	for _, sp := range d.SPs {
		if sp.Value != 0 {
			io.Pfred("WARNING: %s: non-zero single-point constraint at node %d (dof=%d) is ignored; use another handler\n", o.Name(), sp.Node, sp.Dof)
			continue
		}
		m.NodeGroup(sp.Node).Eqs[sp.Dof] = Eliminated
		m.Fixed = append(m.Fixed, sp)
	}
	for _, mp := range d.MPs {
		io.Pfred("WARNING: %s: multi-point constraint {%d,%d} <= {%d,%d} is ignored; use another handler\n", o.Name(), mp.Constrained, mp.CDof, mp.Retained, mp.RDof)
	}
	return
}

// Copy returns a copy without owner
func (o *PlainHandler) Copy() ConstraintHandler {
	return new(PlainHandler)
}
