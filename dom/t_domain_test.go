// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_dom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dom01. nodes, elements and constraints")

	d := New()
	d.AddNode(1, 1, 0)
	d.AddNode(2, 2, 0)
	s0 := d.Stamp()

	_, err := d.AddNode(1, 1, 0)
	if err == nil {
		tst.Errorf("repeated node must fail")
		return
	}
	_, err = d.AddNode(3, 0, 0)
	if err == nil {
		tst.Errorf("node without DOFs must fail")
		return
	}
	err = d.AddElement(NewSpring(0, 1, 9, 0, 1))
	if err == nil {
		tst.Errorf("element with unknown node must fail")
		return
	}
	err = d.AddElement(NewSpring(0, 1, 2, 1, 1))
	if err == nil {
		tst.Errorf("spring at DOF 1 of node with 1 DOF must fail")
		return
	}
	err = d.AddElement(NewSpring(0, 1, 2, -1, 1))
	if err == nil {
		tst.Errorf("spring at negative DOF must fail")
		return
	}
	chk.IntAssert(len(d.Elems), 0)
	chk.IntAssert(d.Stamp(), s0)

	err = d.AddElement(NewSpring(0, 1, 2, 0, 1))
	if err != nil {
		tst.Errorf("AddElement failed:\n%v", err)
		return
	}
	err = d.AddSP(1, 0, 0)
	if err != nil {
		tst.Errorf("AddSP failed:\n%v", err)
		return
	}
	if d.AddSP(1, 0, 1) == nil {
		tst.Errorf("repeated SP must fail")
		return
	}
	if d.AddSP(2, 2, 0) == nil {
		tst.Errorf("SP on missing DOF must fail")
		return
	}
	if d.AddMP(2, 1, 2, 1, 1) == nil {
		tst.Errorf("MP with the same retained and constrained DOF must fail")
		return
	}
	err = d.AddMP(2, 0, 2, 1, 0.5)
	if err != nil {
		tst.Errorf("AddMP failed:\n%v", err)
		return
	}
	chk.IntAssert(d.Stamp(), s0+3)
	chk.IntAssert(d.ElemDofs(d.Elems[0]), 3)
	chk.Ints(tst, "ids", d.SortedNodeIds(), []int{1, 2})

	// loads do not change topology
	d.SetLoad(2, 0, 10)
	chk.IntAssert(d.Stamp(), s0+3)
	chk.Array(tst, "P", 1e-17, d.Node(2).P, []float64{10, 0})
}

func Test_dom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dom02. steps, commit and revert")

	d := New()
	d.AddNode(1, 1, 0)
	chk.IntAssert(d.NewStep(math.NaN()), -1)
	chk.IntAssert(d.NewStep(math.Inf(1)), -1)
	chk.Float64(tst, "time", 1e-17, d.Time, 0)

	chk.IntAssert(d.NewStep(0.5), 0)
	d.Lambda = 0.5
	d.SetTrial(1, []float64{2})
	d.Commit()
	chk.Float64(tst, "time", 1e-17, d.Time, 0.5)
	chk.Float64(tst, "U", 1e-17, d.Node(1).U[0], 2)

	d.NewStep(0.5)
	d.Lambda = 1
	d.SetTrial(1, []float64{3})
	chk.Float64(tst, "time", 1e-17, d.Time, 1)
	d.Revert()
	chk.Float64(tst, "time", 1e-17, d.Time, 0.5)
	chk.Float64(tst, "lambda", 1e-17, d.Lambda, 0.5)
	chk.Float64(tst, "Ut", 1e-17, d.Node(1).Ut[0], 2)

	if d.SetTrial(1, []float64{1, 2}) == nil {
		tst.Errorf("SetTrial with wrong length must fail")
		return
	}

	c := d.Copy()
	c.Node(1).Ut[0] = 7
	chk.Float64(tst, "Ut of original", 1e-17, d.Node(1).Ut[0], 2)
	chk.IntAssert(c.Stamp(), d.Stamp())
}

func Test_spring01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spring01. linear and cubic springs")

	d := New()
	d.AddNode(1, 2, 0)
	d.AddNode(2, 2, 0)

	e, err := NewElement("spring", 7, []int{1, 2}, map[string]float64{"k": 3, "dof": 1, "c": 2})
	if err != nil {
		tst.Errorf("NewElement failed:\n%v", err)
		return
	}
	d.AddElement(e)
	chk.Deep2(tst, "K(δ=0)", 1e-17, e.Tangent(d), [][]float64{
		{0, 0, 0, 0},
		{0, 3, 0, -3},
		{0, 0, 0, 0},
		{0, -3, 0, 3},
	})

	// δ = 1 => N = 3 + 2 = 5; kt = 3 + 6 = 9
	d.SetTrial(2, []float64{0, 1})
	chk.Array(tst, "f", 1e-17, e.Resisting(d), []float64{0, -5, 0, 5})
	chk.Float64(tst, "kt", 1e-17, e.Tangent(d)[1][1], 9)

	c := e.Copy().(*Spring)
	c.K = 100
	chk.Float64(tst, "K of original", 1e-17, e.(*Spring).K, 3)

	_, err = NewElement("beam", 1, []int{1, 2}, nil)
	if err == nil {
		tst.Errorf("unknown element must fail")
		return
	}
	_, err = NewElement("spring", 1, []int{1, 2}, nil)
	if err == nil {
		tst.Errorf("spring without stiffness must fail")
		return
	}
}
