// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soe

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/graph"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// dense returns A as a slice of rows
func dense(s LinearSOE) (a [][]float64) {
	n := s.Size()
	a = make([][]float64, n)
	m := s.Matrix()
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			a[i][j] = m.At(i, j)
		}
	}
	return
}

// spring returns the stiffness matrix of a spring
func spring(k float64) [][]float64 {
	return [][]float64{{k, -k}, {-k, k}}
}

func Test_sparse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse01. 2 DOFs without coupling")

	s := NewSparseGen(nil)
	chk.String(tst, s.State().String(), "unsized")

	err := s.SetSize(graph.FromEqs(2, nil))
	if err != nil {
		tst.Errorf("SetSize failed:\n%v", err)
		return
	}
	chk.IntAssert(s.Nnz, 2)
	chk.IntAssert(s.Capacity(), 40)
	chk.Ints(tst, "RowStart", s.RowStart, []int{0, 1, 2})
	chk.String(tst, s.State().String(), "sized")

	err = s.AddA([][]float64{{1, 0}, {0, 1}}, []int{0, 1}, 1.0)
	if err != nil {
		tst.Errorf("AddA failed:\n%v", err)
		return
	}
	chk.Deep2(tst, "A", 1e-17, dense(s), [][]float64{{1, 0}, {0, 1}})
	chk.String(tst, s.State().String(), "assembled")

	// non-zero entries outside the pattern are rejected without touching A
	err = s.AddA(spring(3), []int{0, 1}, 1.0)
	if !errors.Is(err, ErrAssembly) {
		tst.Errorf("non-zero entries outside the sparsity pattern must be rejected. err = %v", err)
		return
	}
	chk.Deep2(tst, "A", 1e-17, dense(s), [][]float64{{1, 0}, {0, 1}})

	s.ZeroA()
	chk.Deep2(tst, "A", 1e-17, dense(s), [][]float64{{0, 0}, {0, 0}})
	chk.String(tst, s.State().String(), "sized")
}

func Test_sparse02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse02. shape mismatch")

	s := NewSparseGen(nil)
	err := s.SetSize(graph.FromEqs(2, [][]int{{0, 1}}))
	if err != nil {
		tst.Errorf("SetSize failed:\n%v", err)
		return
	}
	err = s.AddA(spring(2), []int{0, 1}, 1)
	if err != nil {
		tst.Errorf("AddA failed:\n%v", err)
		return
	}

	before := testutil.ToFloat64(AssembleCount.WithLabelValues(s.Name(), "error"))
	err = s.AddA([][]float64{{1, 2}, {3, 4}, {5, 6}}, []int{0, 1}, 1)
	if !errors.Is(err, ErrAssembly) {
		tst.Errorf("AddA should have failed with an assembly error. err = %v", err)
		return
	}
	io.Pforan("err = %v\n", err)
	chk.Deep2(tst, "A", 1e-17, dense(s), [][]float64{{2, -2}, {-2, 2}})
	chk.Float64(tst, "errors counted", 1e-17, testutil.ToFloat64(AssembleCount.WithLabelValues(s.Name(), "error"))-before, 1)

	// ragged matrix
	err = s.AddA([][]float64{{1, 2}, {3}}, []int{0, 1}, 1)
	if !errors.Is(err, ErrAssembly) {
		tst.Errorf("AddA with ragged matrix should have failed. err = %v", err)
		return
	}
	chk.Deep2(tst, "A", 1e-17, dense(s), [][]float64{{2, -2}, {-2, 2}})
}

func Test_sparse03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse03. order independence and re-assembly")

	// 0 --(e0)-- 1 --(e1)-- 2 --(e2)-- 3
	eqs := [][]int{{0, 1}, {1, 2}, {2, 3}}
	kes := [][][]float64{spring(1), spring(10), spring(100)}
	g := graph.FromEqs(4, eqs)

	a := NewSparseGen(nil)
	b := NewSparseGen(nil)
	a.SetSize(g)
	b.SetSize(g)
	for i := 0; i < 3; i++ {
		a.AddA(kes[i], eqs[i], 1)
	}
	for i := 2; i >= 0; i-- {
		b.AddA(kes[i], eqs[i], 1)
	}
	chk.Deep2(tst, "A(forward) == A(backward)", 1e-15, dense(a), dense(b))
	first := dense(a)

	a.ZeroA()
	for i := 0; i < 3; i++ {
		a.AddA(kes[i], eqs[i], 1)
	}
	chk.Deep2(tst, "A after zero and reassembly", 1e-17, dense(a), first)

	// column indices must be ascending within rows
	for i := 0; i < a.Size(); i++ {
		for k := a.RowStart[i] + 1; k < a.RowStart[i+1]; k++ {
			if a.ColA[k-1] >= a.ColA[k] {
				tst.Errorf("column indices of row %d are not ascending: %v", i, a.ColA[a.RowStart[i]:a.RowStart[i+1]])
				return
			}
		}
	}
	chk.Ints(tst, "RowStart", a.RowStart, []int{0, 2, 5, 8, 10})
}

func Test_sparse04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse04. capacity growth")

	s := NewSparseGen(nil)
	s.Slack = 2
	s.SetSize(graph.FromEqs(3, [][]int{{0, 1}, {1, 2}}))
	chk.IntAssert(s.Nnz, 7)
	chk.IntAssert(s.Reallocs(), 1)
	chk.IntAssert(s.Capacity(), 14)

	// same or fewer non-zeros => no reallocation
	s.SetSize(graph.FromEqs(3, [][]int{{0, 1}, {1, 2}}))
	s.SetSize(graph.FromEqs(3, [][]int{{0, 1}}))
	chk.IntAssert(s.Reallocs(), 1)
	chk.IntAssert(s.Capacity(), 14)
	chk.IntAssert(s.Nnz, 5)

	// more non-zeros => reallocation
	s.SetSize(graph.FromEqs(3, [][]int{{0, 1, 2}}))
	chk.IntAssert(s.Nnz, 9)
	chk.IntAssert(s.Reallocs(), 2)
	if s.Capacity() < s.Nnz {
		tst.Errorf("capacity=%d must be >= nnz=%d", s.Capacity(), s.Nnz)
		return
	}
}

func Test_sparse05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse05. zero DOFs, skipped ids and solution")

	s := NewSparseGen(nil)
	err := s.SetSize(graph.FromEqs(0, nil))
	if err != nil {
		tst.Errorf("SetSize with zero DOFs must not fail:\n%v", err)
		return
	}
	chk.IntAssert(s.Size(), 0)
	chk.IntAssert(s.Nnz, 0)
	if s.Matrix() != nil {
		tst.Errorf("empty system must not have a matrix")
		return
	}

	// fixed-free spring chain: u0 eliminated (id = -1)
	//  -1 --(k=2)-- 0 --(k=2)-- 1   P = 1 at last node
	s.SetSize(graph.FromEqs(2, [][]int{{0, 1}}))
	s.AddA(spring(2), []int{-1, 0}, 1)
	s.AddA(spring(2), []int{0, 1}, 1)
	s.AddB([]float64{1}, []int{1}, 1)
	chk.Deep2(tst, "A", 1e-17, dense(s), [][]float64{{4, -2}, {-2, 2}})

	err = s.Solve()
	if !errors.Is(err, ErrState) {
		tst.Errorf("Solve before Factor must fail. err = %v", err)
		return
	}
	err = s.Factor()
	if err != nil {
		tst.Errorf("Factor failed:\n%v", err)
		return
	}
	err = s.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Array(tst, "x", 1e-14, s.X(), []float64{0.5, 1.0})

	// adding invalidates factorization
	s.AddA(spring(1), []int{0, 1}, 0.5)
	if s.IsFactored() {
		tst.Errorf("AddA must invalidate factorization")
		return
	}
}

func Test_sparse06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse06. singular system and factory")

	s, err := New("sparse_gen_lin_soe", nil)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	s.SetSize(graph.FromEqs(2, [][]int{{0, 1}}))
	s.AddA(spring(1), []int{0, 1}, 1)
	err = s.Factor()
	if !errors.Is(err, ErrSolver) {
		tst.Errorf("Factor of singular matrix must fail. err = %v", err)
		return
	}
	io.Pforan("err = %v\n", err)

	_, err = New("umfpack_gen_lin_soe", nil)
	if err == nil {
		tst.Errorf("New with unknown name must fail")
		return
	}
	chk.Strings(tst, "names", Names(), []string{"band_gen_lin_soe", "sparse_gen_lin_soe"})
}

// holes is a graph missing the vertex at position 1
type holes struct{ n int }

func (o holes) NumVertex() int { return o.n }

func (o holes) Vertex(i int) *graph.Vertex {
	if i == 1 {
		return nil
	}
	return &graph.Vertex{Tag: i}
}

func Test_sparse07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse07. missing vertex resets size")

	s := NewSparseGen(nil)
	err := s.SetSize(graph.FromEqs(2, [][]int{{0, 1}}))
	if err != nil {
		tst.Errorf("SetSize failed:\n%v", err)
		return
	}
	chk.IntAssert(s.Size(), 2)

	err = s.SetSize(holes{3})
	if !errors.Is(err, ErrAssembly) {
		tst.Errorf("SetSize with missing vertex must fail. err = %v", err)
		return
	}
	io.Pforan("err = %v\n", err)
	chk.IntAssert(s.Size(), 0)
	chk.IntAssert(s.Nnz, 0)
	chk.IntAssert(len(s.B()), 0)
	if s.Matrix() != nil {
		tst.Errorf("empty system must not have a matrix")
		return
	}
}
