// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

// LagrangeHandler enforces all constraints with Lagrange multipliers
//  Each constraint gets one multiplier in its own DOF group; these groups are numbered last.
//  The augmented system reads:
//      _       _
//     |  K  Cᵀ  | / δu \   /  R - Cᵀ・μ \
//     |         | |    | = |           |
//     |_ C   0 _| \ δμ /   \  g - C・u  /
//
//  Parameters:
//   alpha_sp -- scaling factor for single-point constraints [default = 1]
//   alpha_mp -- scaling factor for multi-point constraints [default = 1]
type LagrangeHandler struct {
	hbase
	AlphaSP float64 // scaling factor for single-point constraints
	AlphaMP float64 // scaling factor for multi-point constraints
}

// NewLagrangeHandler returns a new Lagrange multipliers handler
func NewLagrangeHandler(prms Params) *LagrangeHandler {
	return &LagrangeHandler{
		AlphaSP: prms.Get("alpha_sp", 1),
		AlphaMP: prms.Get("alpha_mp", 1),
	}
}

// Name returns the identifier
func (o *LagrangeHandler) Name() string { return "lagrange_constraint_handler" }

// Handle creates DOF groups and FEs
func (o *LagrangeHandler) Handle() (err error) {
	d, m, err := o.begin(o.Name())
	if err != nil {
		return
	}
	for _, sp := range d.SPs {
		grp := m.NodeGroup(sp.Node)
		mult := m.AddMultiplierGroup(1, grp.Part)
		m.AddFE(&LagrangeSP{Alpha: o.AlphaSP, Sp: sp, group: grp, mult: mult})
	}
	for _, mp := range d.MPs {
		cgrp, rgrp := m.NodeGroup(mp.Constrained), m.NodeGroup(mp.Retained)
		mult := m.AddMultiplierGroup(1, cgrp.Part)
		m.AddFE(&LagrangeMP{Alpha: o.AlphaMP, Mp: mp, cgrp: cgrp, rgrp: rgrp, mult: mult})
	}
	return
}

// Copy returns a copy without owner
func (o *LagrangeHandler) Copy() ConstraintHandler {
	return &LagrangeHandler{AlphaSP: o.AlphaSP, AlphaMP: o.AlphaMP}
}
