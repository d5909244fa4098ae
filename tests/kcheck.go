// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/dom"
	"gonum.org/v1/gonum/diff/fd"
)

// CheckTangent compares the tangent of element e with the numerical derivatives of its
// resisting forces with respect to the trial displacements of its nodes
//  step -- step for finite differences; use 0 for default (1e-6)
func CheckTangent(tst *testing.T, d *dom.Domain, e dom.Element, tol, step float64, verb bool) {

	// local DOFs
	type ldof struct {
		nod *dom.Node
		dof int
	}
	var dofs []ldof
	for _, id := range e.Nodes() {
		nod := d.Node(id)
		for i := 0; i < nod.Ndof; i++ {
			dofs = append(dofs, ldof{nod, i})
		}
	}

	// derivatives
	if step < 1e-14 {
		step = 1e-6
	}
	Kana := e.Tangent(d)
	settings := &fd.Settings{Formula: fd.Central, Step: step}
	for i := range dofs {
		for j, J := range dofs {
			bkp := J.nod.Ut[J.dof]
			dnum := fd.Derivative(func(x float64) float64 {
				J.nod.Ut[J.dof] = x
				return e.Resisting(d)[i]
			}, bkp, settings)
			J.nod.Ut[J.dof] = bkp
			chk.AnaNum(tst, io.Sf("K%d%d", i, j), tol, Kana[i][j], dnum, verb)
		}
	}
}
