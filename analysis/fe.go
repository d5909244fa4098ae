// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gosolu/dom"
	"gonum.org/v1/gonum/mat"
)

// FE maps the contributions of an element or a constraint to equation numbers
//  The residual is the contribution to the unbalance: external minus internal forces
//  for elements, or the constraint violation terms for penalty and Lagrange FEs.
type FE interface {
	Groups() []*DofGroup               // DOF groups coupled by this FE
	Ids() []int                        // equation numbers of rows/columns of Tangent and Residual
	Tangent(d *dom.Domain) [][]float64 // tangent matrix
	Residual(d *dom.Domain) []float64  // contribution to the unbalance
	set_ids(m *Model)                  // computes Ids after numbering
}

// term holds the contribution of an equation to a local DOF: u(local) += coef・x(eq)
type term struct {
	eq   int
	coef float64
}

// ElemFE wraps an element
type ElemFE struct {
	Elem   dom.Element // element
	groups []*DofGroup // groups of element nodes, followed by groups coupled through transformation
	ids    []int       // equation numbers
	T      [][]float64 // [nlocal][len(ids)] transformation: u(local) = T・x(ids); nil => identity
}

// Groups returns the coupled DOF groups
func (o *ElemFE) Groups() []*DofGroup { return o.groups }

// Ids returns the equation numbers
func (o *ElemFE) Ids() []int { return o.ids }

// Tangent returns the element tangent; Tᵀ・K・T if transformed
func (o *ElemFE) Tangent(d *dom.Domain) [][]float64 {
	K := o.Elem.Tangent(d)
	if o.T == nil {
		return K
	}
	nl, nr := len(o.T), len(o.ids)
	Km := mat.NewDense(nl, nl, flatten(K))
	Tm := mat.NewDense(nl, nr, flatten(o.T))
	var Kr mat.Dense
	Kr.Product(Tm.T(), Km, Tm)
	return rows(&Kr)
}

// Residual returns the negative of the resisting forces; -Tᵀ・f if transformed
func (o *ElemFE) Residual(d *dom.Domain) (r []float64) {
	f := o.Elem.Resisting(d)
	if o.T == nil {
		r = make([]float64, len(f))
		for i, v := range f {
			r[i] = -v
		}
		return
	}
	r = make([]float64, len(o.ids))
	for i, row := range o.T {
		for j, t := range row {
			r[j] -= t * f[i]
		}
	}
	return
}

// set_ids computes equation numbers and the transformation matrix
func (o *ElemFE) set_ids(m *Model) {
	var local [][]term
	identity := true
	for _, id := range o.Elem.Nodes() {
		g := m.NodeGroup(id)
		for dof := 0; dof < g.Ndof(); dof++ {
			ts := m.terms(g, dof, 0)
			if len(ts) > 1 || (len(ts) == 1 && (ts[0].eq != g.Eqs[dof] || ts[0].coef != 1)) {
				identity = false
			}
			local = append(local, ts)
		}
	}

	// plain mapping
	o.T = nil
	if identity {
		o.ids = make([]int, len(local))
		for i, ts := range local {
			o.ids[i] = Eliminated
			if len(ts) == 1 {
				o.ids[i] = ts[0].eq
			}
		}
		return
	}

	// transformation
	col := make(map[int]int)
	o.ids = o.ids[:0]
	for _, ts := range local {
		for _, t := range ts {
			if _, ok := col[t.eq]; !ok {
				col[t.eq] = len(o.ids)
				o.ids = append(o.ids, t.eq)
			}
		}
	}
	o.T = utl.Alloc(len(local), len(o.ids))
	for i, ts := range local {
		for _, t := range ts {
			o.T[i][col[t.eq]] += t.coef
		}
	}
}

// PenaltySP enforces u = λ・value with a penalty number
type PenaltySP struct {
	Alpha float64   // penalty number
	Sp    *dom.SP   // constraint
	group *DofGroup // group of constrained node
	ids   []int     // equation number
}

// Groups returns the coupled DOF groups
func (o *PenaltySP) Groups() []*DofGroup { return []*DofGroup{o.group} }

// Ids returns the equation numbers
func (o *PenaltySP) Ids() []int { return o.ids }

// Tangent returns [[α]]
func (o *PenaltySP) Tangent(d *dom.Domain) [][]float64 {
	return [][]float64{{o.Alpha}}
}

// Residual returns α・(λ・value - u)
func (o *PenaltySP) Residual(d *dom.Domain) []float64 {
	u := o.group.Node.Ut[o.Sp.Dof]
	return []float64{o.Alpha * (d.Lambda*o.Sp.Value - u)}
}

func (o *PenaltySP) set_ids(m *Model) {
	o.ids = []int{o.group.Eqs[o.Sp.Dof]}
}

// PenaltyMP enforces u(c) = factor・u(r) with a penalty number
type PenaltyMP struct {
	Alpha float64   // penalty number
	Mp    *dom.MP   // constraint
	cgrp  *DofGroup // group of constrained node
	rgrp  *DofGroup // group of retained node
	ids   []int     // equation numbers: constrained, retained
}

// Groups returns the coupled DOF groups
func (o *PenaltyMP) Groups() []*DofGroup { return []*DofGroup{o.cgrp, o.rgrp} }

// Ids returns the equation numbers
func (o *PenaltyMP) Ids() []int { return o.ids }

// Tangent returns α・C・Cᵀ with C = [1, -factor]
func (o *PenaltyMP) Tangent(d *dom.Domain) [][]float64 {
	c := []float64{1, -o.Mp.Factor}
	return [][]float64{
		{o.Alpha * c[0] * c[0], o.Alpha * c[0] * c[1]},
		{o.Alpha * c[1] * c[0], o.Alpha * c[1] * c[1]},
	}
}

// Residual returns -α・C・(u(c) - factor・u(r))
func (o *PenaltyMP) Residual(d *dom.Domain) []float64 {
	g := mp_violation(o.Mp, o.cgrp, o.rgrp)
	return []float64{-o.Alpha * g, o.Alpha * o.Mp.Factor * g}
}

func (o *PenaltyMP) set_ids(m *Model) {
	o.ids = []int{o.cgrp.Eqs[o.Mp.CDof], o.rgrp.Eqs[o.Mp.RDof]}
}

// LagrangeSP enforces u = λ・value with a Lagrange multiplier
type LagrangeSP struct {
	Alpha float64   // scaling factor
	Sp    *dom.SP   // constraint
	group *DofGroup // group of constrained node
	mult  *DofGroup // group holding the multiplier
	ids   []int     // equation numbers: constrained DOF, multiplier
}

// Groups returns the coupled DOF groups
func (o *LagrangeSP) Groups() []*DofGroup { return []*DofGroup{o.group, o.mult} }

// Ids returns the equation numbers
func (o *LagrangeSP) Ids() []int { return o.ids }

// Tangent returns α・[[0,1],[1,0]]
func (o *LagrangeSP) Tangent(d *dom.Domain) [][]float64 {
	return [][]float64{{0, o.Alpha}, {o.Alpha, 0}}
}

// Residual returns α・[-μ, λ・value - u]
func (o *LagrangeSP) Residual(d *dom.Domain) []float64 {
	u := o.group.Node.Ut[o.Sp.Dof]
	μ := o.mult.Lam[0]
	return []float64{-o.Alpha * μ, o.Alpha * (d.Lambda*o.Sp.Value - u)}
}

func (o *LagrangeSP) set_ids(m *Model) {
	o.ids = []int{o.group.Eqs[o.Sp.Dof], o.mult.Eqs[0]}
}

// LagrangeMP enforces u(c) = factor・u(r) with a Lagrange multiplier
type LagrangeMP struct {
	Alpha float64   // scaling factor
	Mp    *dom.MP   // constraint
	cgrp  *DofGroup // group of constrained node
	rgrp  *DofGroup // group of retained node
	mult  *DofGroup // group holding the multiplier
	ids   []int     // equation numbers: constrained, retained, multiplier
}

// Groups returns the coupled DOF groups
func (o *LagrangeMP) Groups() []*DofGroup { return []*DofGroup{o.cgrp, o.rgrp, o.mult} }

// Ids returns the equation numbers
func (o *LagrangeMP) Ids() []int { return o.ids }

// Tangent returns α・[[0,Cᵀ],[C,0]] with C = [1, -factor]
func (o *LagrangeMP) Tangent(d *dom.Domain) [][]float64 {
	a, f := o.Alpha, o.Mp.Factor
	return [][]float64{
		{0, 0, a},
		{0, 0, -a * f},
		{a, -a * f, 0},
	}
}

// Residual returns α・[-Cᵀ・μ, -(u(c) - factor・u(r))]
func (o *LagrangeMP) Residual(d *dom.Domain) []float64 {
	a, f := o.Alpha, o.Mp.Factor
	μ := o.mult.Lam[0]
	g := mp_violation(o.Mp, o.cgrp, o.rgrp)
	return []float64{-a * μ, a * f * μ, -a * g}
}

func (o *LagrangeMP) set_ids(m *Model) {
	o.ids = []int{o.cgrp.Eqs[o.Mp.CDof], o.rgrp.Eqs[o.Mp.RDof], o.mult.Eqs[0]}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////

// mp_violation returns u(c) - factor・u(r)
func mp_violation(mp *dom.MP, cgrp, rgrp *DofGroup) float64 {
	return cgrp.Node.Ut[mp.CDof] - mp.Factor*rgrp.Node.Ut[mp.RDof]
}

// rows returns the rows of matrix a
func rows(a mat.Matrix) (r [][]float64) {
	m, n := a.Dims()
	r = utl.Alloc(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			r[i][j] = a.At(i, j)
		}
	}
	return
}

// flatten returns the rows of a stored contiguously
func flatten(a [][]float64) (v []float64) {
	for _, row := range a {
		v = append(v, row...)
	}
	return
}
