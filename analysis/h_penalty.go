// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

// PenaltyHandler enforces all constraints with penalty FEs
//  Parameters:
//   alpha_sp -- penalty number for single-point constraints [default = 1e12]
//   alpha_mp -- penalty number for multi-point constraints [default = 1e12]
type PenaltyHandler struct {
	hbase
	AlphaSP float64 // penalty number for single-point constraints
	AlphaMP float64 // penalty number for multi-point constraints
}

// NewPenaltyHandler returns a new penalty handler
func NewPenaltyHandler(prms Params) *PenaltyHandler {
	return &PenaltyHandler{
		AlphaSP: prms.Get("alpha_sp", 1e12),
		AlphaMP: prms.Get("alpha_mp", 1e12),
	}
}

// Name returns the identifier
func (o *PenaltyHandler) Name() string { return "penalty_constraint_handler" }

// Handle creates DOF groups and FEs
func (o *PenaltyHandler) Handle() (err error) {
	d, m, err := o.begin(o.Name())
	if err != nil {
		return
	}
	for _, sp := range d.SPs {
		m.AddFE(&PenaltySP{Alpha: o.AlphaSP, Sp: sp, group: m.NodeGroup(sp.Node)})
	}
	for _, mp := range d.MPs {
		m.AddFE(&PenaltyMP{Alpha: o.AlphaMP, Mp: mp, cgrp: m.NodeGroup(mp.Constrained), rgrp: m.NodeGroup(mp.Retained)})
	}
	return
}

// Copy returns a copy without owner
func (o *PenaltyHandler) Copy() ConstraintHandler {
	return &PenaltyHandler{AlphaSP: o.AlphaSP, AlphaMP: o.AlphaMP}
}
