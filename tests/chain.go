// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test strategies and systems of equations
package tests

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosolu/dom"
	"gonum.org/v1/gonum/mat"
)

// SpringChain returns a domain with nodes 1..len(ks)+1 (one DOF each) connected by springs
//
//     1 --k0-- 2 --k1-- 3 ... n      u(1) = u1;  P(n) = load
//
// The analytical solution is given by ana.Chain
func SpringChain(ks []float64, u1, load float64) (d *dom.Domain) {
	d = dom.New()
	n := len(ks) + 1
	for i := 0; i < n; i++ {
		if _, err := d.AddNode(i+1, 1, 0); err != nil {
			chk.Panic("SpringChain: %v", err)
		}
	}
	for i, k := range ks {
		if err := d.AddElement(dom.NewSpring(i, i+1, i+2, 0, k)); err != nil {
			chk.Panic("SpringChain: %v", err)
		}
	}
	if err := d.AddSP(1, 0, u1); err != nil {
		chk.Panic("SpringChain: %v", err)
	}
	if err := d.SetLoad(n, 0, load); err != nil {
		chk.Panic("SpringChain: %v", err)
	}
	return
}

// LinkedChains returns two chains of springs linked by a multi-point constraint
//
//     1 --k0-- 2    3 --k1-- 4      u(1) = 0;  u(3) = factor・u(2);  P(4) = load
//
// The analytical solution is given by ana.Linked
func LinkedChains(k0, k1, factor, load float64) (d *dom.Domain) {
	d = dom.New()
	for i := 1; i <= 4; i++ {
		d.AddNode(i, 1, 0)
	}
	d.AddElement(dom.NewSpring(0, 1, 2, 0, k0))
	d.AddElement(dom.NewSpring(1, 3, 4, 0, k1))
	d.AddSP(1, 0, 0)
	d.AddMP(2, 0, 3, 0, factor)
	d.SetLoad(4, 0, load)
	return
}

// Dense returns the entries of a as a slice of rows
func Dense(a mat.Matrix) (res [][]float64) {
	if a == nil {
		return
	}
	m, n := a.Dims()
	res = make([][]float64, m)
	for i := 0; i < m; i++ {
		res[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			res[i][j] = a.At(i, j)
		}
	}
	return
}
