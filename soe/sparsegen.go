// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soe

import (
	"fmt"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/graph"
	"gonum.org/v1/gonum/mat"
)

// DefaultSlack is the default over-allocation multiplier of SparseGen.
// It leaves room for the fill-in of direct sparse solvers.
const DefaultSlack = 20.0

// SparseGen implements a general sparse system of equations in compressed row form
//  The entries of row i are stored in A[RowStart[i]:RowStart[i+1]] with the
//  corresponding (ascending) column indices in ColA.
type SparseGen struct {
	base
	Slack    float64   // over-allocation multiplier applied to nnz when storage must grow
	Nnz      int       // number of non-zeros required by the current graph
	RowStart []int     // [size+1] start of each row in ColA and A
	ColA     []int     // column indices; len(ColA) >= Nnz
	A        []float64 // values; len(A) is the capacity
}

// NewSparseGen returns a new sparse system of equations. solver may be nil => DenseLU
func NewSparseGen(solver LinearSolver) (o *SparseGen) {
	if solver == nil {
		solver = NewDenseLU()
	}
	o = new(SparseGen)
	o.name = "sparse_gen_lin_soe"
	o.solver = solver
	o.Slack = DefaultSlack
	return
}

// Capacity returns the number of values that can be stored without reallocation
func (o *SparseGen) Capacity() int {
	return len(o.A)
}

// SetSize computes the number of non-zeros and the row/column structure from the DOF graph
func (o *SparseGen) SetSize(g graph.Connectivity) (err error) {

	// count non-zeros; a missing vertex leaves an empty system
	n := g.NumVertex()
	nnz := 0
	for i := 0; i < n; i++ {
		v := g.Vertex(i)
		if v == nil {
			o.Nnz = 0
			o.RowStart = append(o.RowStart[:0], 0)
			o.resize(0)
			return fmt.Errorf("%w: vertex %d is not in graph", ErrAssembly, i)
		}
		nnz += len(v.Adj) + 1 // +1 => diagonal
	}
	if n == 0 {
		io.Pfred("WARNING: %s.SetSize: the model has no degrees of freedom; add some nodes or change the constraint handler\n", o.name)
	}
	o.Nnz = nnz

	// storage
	slack := o.Slack
	if slack < 1 {
		slack = 1
	}
	need := int(slack * float64(nnz))
	if need > len(o.A) {
		o.A = make([]float64, need)
		o.ColA = make([]int, need)
		o.reallocs++
		ReallocCount.WithLabelValues(o.name).Inc()
	} else {
		for i := range o.A {
			o.A[i] = 0
		}
	}
	if cap(o.RowStart) < n+1 {
		o.RowStart = make([]int, n+1)
	} else {
		o.RowStart = o.RowStart[:n+1]
	}
	if o.Verbose {
		io.Pf("> %s.SetSize: n=%d nnz=%d capacity=%d\n", o.name, n, nnz, len(o.A))
	}

	// row starts and ordered column indices
	o.RowStart[0] = 0
	last := 0
	for i := 0; i < n; i++ {
		v := g.Vertex(i)
		start := last
		o.ColA[last] = v.Tag
		last++
		for _, col := range v.Adj {
			k := last
			for k > start && o.ColA[k-1] > col {
				o.ColA[k] = o.ColA[k-1]
				k--
			}
			o.ColA[k] = col
			last++
		}
		o.RowStart[i+1] = last
	}
	return o.resize(n)
}

// AddA accumulates fact・m into A. Rows and columns outside [0,size) are skipped
// since they correspond to constrained DOFs. Zero entries without a slot are skipped too;
// non-zero ones are rejected before any value is modified.
func (o *SparseGen) AddA(m [][]float64, ids []int, fact float64) (err error) {
	defer func() { AssembleCount.WithLabelValues(o.name, result_label(err)).Inc() }()
	if fact == 0 {
		return
	}
	if err = check_shape(m, ids); err != nil {
		return
	}
	if o.state == Unsized {
		return fmt.Errorf("%w: %s.AddA called before SetSize", ErrState, o.name)
	}
	for i, r := range ids {
		if r < 0 || r >= o.size {
			continue
		}
		for j, c := range ids {
			if c < 0 || c >= o.size || m[i][j] == 0 {
				continue
			}
			if o.slot(r, c) < 0 {
				return fmt.Errorf("%w: non-zero entry (%d,%d) is not in the sparsity pattern", ErrAssembly, r, c)
			}
		}
	}
	for i, r := range ids {
		if r < 0 || r >= o.size {
			continue
		}
		for j, c := range ids {
			if c < 0 || c >= o.size {
				continue
			}
			if k := o.slot(r, c); k >= 0 {
				o.A[k] += fact * m[i][j]
			}
		}
	}
	o.state = Assembled
	return
}

// ZeroA zeroes A and invalidates the factorization
func (o *SparseGen) ZeroA() {
	for i := range o.A {
		o.A[i] = 0
	}
	if o.state != Unsized {
		o.state = Sized
	}
}

// Get returns A(i,j); zero if (i,j) is not in the sparsity pattern
func (o *SparseGen) Get(i, j int) float64 {
	if i < 0 || i >= o.size {
		return 0
	}
	if k := o.slot(i, j); k >= 0 {
		return o.A[k]
	}
	return 0
}

// Matrix returns a dense copy of A
func (o *SparseGen) Matrix() mat.Matrix {
	if o.size == 0 {
		return nil
	}
	d := mat.NewDense(o.size, o.size, nil)
	for i := 0; i < o.size; i++ {
		for k := o.RowStart[i]; k < o.RowStart[i+1]; k++ {
			d.Set(i, o.ColA[k], o.A[k])
		}
	}
	return d
}

// Factor factorises A
func (o *SparseGen) Factor() (err error) {
	defer func() { FactorCount.WithLabelValues(o.name, result_label(err)).Inc() }()
	if o.size == 0 {
		return o.factor(nil)
	}
	return o.factor(o.Matrix())
}

// Solve solves A・x = b; the system must be factored
func (o *SparseGen) Solve() (err error) {
	return o.solve()
}

// Copy returns a deep copy
func (o *SparseGen) Copy() LinearSOE {
	c := &SparseGen{base: o.copy_base(), Slack: o.Slack, Nnz: o.Nnz}
	c.RowStart = append([]int(nil), o.RowStart...)
	c.ColA = append([]int(nil), o.ColA...)
	c.A = append([]float64(nil), o.A...)
	return c
}

// slot returns the position of A(r,c) or -1 if (r,c) is not stored
func (o *SparseGen) slot(r, c int) int {
	for k := o.RowStart[r]; k < o.RowStart[r+1]; k++ {
		if o.ColA[k] == c {
			return k
		}
	}
	return -1
}
