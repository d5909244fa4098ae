// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosolu/dom"
)

// equation markers used before numbering
const (
	Eliminated = -1 // DOF removed from the system of equations
	Free       = -2 // DOF to be numbered
	Multiplier = -3 // Lagrange multiplier to be numbered after all free DOFs
)

// DofGroup holds the DOFs of one node or the Lagrange multipliers of one constraint
type DofGroup struct {
	Tag  int       // position in Model.Groups
	Node *dom.Node // node; nil for Lagrange multipliers
	Part int       // partition
	Eqs  []int     // equation numbers; before numbering: Eliminated, Free or Multiplier
	Lam  []float64 // trial Lagrange multipliers
	lamC []float64 // committed Lagrange multipliers
}

// IsMultiplier tells whether this group holds Lagrange multipliers
func (o *DofGroup) IsMultiplier() bool {
	return o.Node == nil
}

// Ndof returns the number of DOFs in this group
func (o *DofGroup) Ndof() int {
	return len(o.Eqs)
}
