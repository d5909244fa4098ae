// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosl/io"
)

// TransformationHandler eliminates constrained DOFs
//  Single-point constrained DOFs are removed and their trial values are set to λ・value.
//  Multi-point constrained DOFs are removed and the FEs touching them are transformed
//  onto the retained DOFs: K* = Tᵀ・K・T and R* = Tᵀ・R.
type TransformationHandler struct {
	hbase
}

// Name returns the identifier
func (o *TransformationHandler) Name() string { return "transformation_constraint_handler" }

// Handle creates DOF groups and FEs
func (o *TransformationHandler) Handle() (err error) {
	d, m, err := o.begin(o.Name())
	if err != nil {
		return
	}

	// single-point constraints
	for _, sp := range d.SPs {
		m.NodeGroup(sp.Node).Eqs[sp.Dof] = Eliminated
		m.Fixed = append(m.Fixed, sp)
	}

	// multi-point constraints
	for _, mp := range d.MPs {
		cgrp := m.NodeGroup(mp.Constrained)
		if cgrp.Eqs[mp.CDof] == Eliminated {
			io.Pfred("WARNING: %s: DOF %d of node %d is eliminated already; multi-point constraint is ignored\n", o.Name(), mp.CDof, mp.Constrained)
			continue
		}
		cgrp.Eqs[mp.CDof] = Eliminated
		m.AddSlave(mp)
	}

	// couple FEs with retained groups
	for _, fe := range m.FEs {
		efe, ok := fe.(*ElemFE)
		if !ok {
			continue
		}
		for _, id := range efe.Elem.Nodes() {
			for _, mp := range m.Slaves {
				if mp.Constrained == id {
					efe.groups = append(efe.groups, m.NodeGroup(mp.Retained))
				}
			}
		}
	}
	m.Enforce()
	return
}

// Copy returns a copy without owner
func (o *TransformationHandler) Copy() ConstraintHandler {
	return new(TransformationHandler)
}
