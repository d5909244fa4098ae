// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Spring implements a spring connecting the same DOF of two nodes
//  The axial force is N = K・δ + C・δ³ where δ = u(B) - u(A); thus C ≠ 0 gives a
//  hardening (C > 0) or softening (C < 0) spring
type Spring struct {
	Eid int     // element id
	A   int     // first node id
	B   int     // second node id
	Dof int     // DOF index at both nodes
	K   float64 // linear stiffness
	C   float64 // cubic coefficient
}

// init registers spring in factory
func init() {
	SetAllocator("spring", func(id int, verts []int, prms map[string]float64) (Element, error) {
		if len(verts) != 2 {
			return nil, chk.Err("spring %d needs 2 nodes. %d were given", id, len(verts))
		}
		k, ok := prms["k"]
		if !ok {
			return nil, chk.Err("spring %d needs parameter \"k\"", id)
		}
		return &Spring{Eid: id, A: verts[0], B: verts[1], Dof: int(prms["dof"]), K: k, C: prms["c"]}, nil
	})
}

// NewSpring returns a new linear spring
func NewSpring(id, a, b, dof int, k float64) *Spring {
	return &Spring{Eid: id, A: a, B: b, Dof: dof, K: k}
}

// Id returns the element id
func (o *Spring) Id() int { return o.Eid }

// Nodes returns the ids of connected nodes
func (o *Spring) Nodes() []int { return []int{o.A, o.B} }

// Check checks that both nodes have DOF Dof
func (o *Spring) Check(d *Domain) (err error) {
	for _, id := range o.Nodes() {
		if err = d.check_dof(id, o.Dof); err != nil {
			return
		}
	}
	return
}

// Tangent returns the tangent matrix at the trial state
func (o *Spring) Tangent(d *Domain) (K [][]float64) {
	na, nb, δ := o.dims(d)
	K = utl.Alloc(na+nb, na+nb)
	kt := o.K + 3.0*o.C*δ*δ
	i, j := o.Dof, na+o.Dof
	K[i][i], K[i][j] = kt, -kt
	K[j][i], K[j][j] = -kt, kt
	return
}

// Resisting returns the resisting forces at the trial state
func (o *Spring) Resisting(d *Domain) (f []float64) {
	na, nb, δ := o.dims(d)
	f = make([]float64, na+nb)
	N := o.K*δ + o.C*δ*δ*δ
	f[o.Dof] = -N
	f[na+o.Dof] = N
	return
}

// Copy returns a copy of this spring
func (o *Spring) Copy() Element {
	c := *o
	return &c
}

// dims returns the number of DOFs of each node and the current elongation
func (o *Spring) dims(d *Domain) (na, nb int, δ float64) {
	a, b := d.Node(o.A), d.Node(o.B)
	return a.Ndof, b.Ndof, b.Ut[o.Dof] - a.Ut[o.Dof]
}
