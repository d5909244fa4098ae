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

// BandGen implements a general (unsymmetric) banded system of equations.
//  A is stored row by row keeping only the Nsub sub-diagonals, the main diagonal
//  and the Nsuper super-diagonals:
//      A(i,j) = Abuf[i*(Nsub+Nsuper+1) + Nsub + j - i]    for -Nsub <= j-i <= Nsuper
//  which is the layout of gonum's mat.BandDense.
type BandGen struct {
	base
	Nsuper int       // number of super-diagonals
	Nsub   int       // number of sub-diagonals
	Abuf   []float64 // band storage; len == size・(Nsub+Nsuper+1)
}

// NewBandGen returns a new banded system of equations. solver may be nil => DenseLU
func NewBandGen(solver LinearSolver) (o *BandGen) {
	if solver == nil {
		solver = NewDenseLU()
	}
	o = new(BandGen)
	o.name = "band_gen_lin_soe"
	o.solver = solver
	return
}

// SetSize computes half-bandwidths from the DOF graph and allocates the band buffer
func (o *BandGen) SetSize(g graph.Connectivity) (err error) {

	// dimensions
	n := g.NumVertex()
	if n == 0 {
		io.Pfred("WARNING: %s.SetSize: the model has no degrees of freedom; add some nodes or change the constraint handler\n", o.name)
	}
	nsup, nsub := graph.HalfBandwidths(g)

	// storage
	need := n * (nsup + nsub + 1)
	if need > cap(o.Abuf) {
		o.Abuf = make([]float64, need)
		o.reallocs++
		ReallocCount.WithLabelValues(o.name).Inc()
	} else {
		o.Abuf = o.Abuf[:need]
		for i := range o.Abuf {
			o.Abuf[i] = 0
		}
	}
	o.Nsuper, o.Nsub = nsup, nsub

	// vectors and solver
	if o.Verbose {
		io.Pf("> %s.SetSize: n=%d nsuper=%d nsub=%d len(A)=%d\n", o.name, n, nsup, nsub, need)
	}
	return o.resize(n)
}

// AddA accumulates fact・m into A. Rows and columns outside [0,size) are skipped.
// Zero entries outside the band are skipped; non-zero ones are rejected before
// any coefficient is modified.
func (o *BandGen) AddA(m [][]float64, ids []int, fact float64) (err error) {
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
			if _, ok := o.offset(r, c); !ok {
				return fmt.Errorf("%w: non-zero entry (%d,%d) is outside the band (nsuper=%d, nsub=%d)", ErrAssembly, r, c, o.Nsuper, o.Nsub)
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
			if k, ok := o.offset(r, c); ok {
				o.Abuf[k] += fact * m[i][j]
			}
		}
	}
	o.state = Assembled
	return
}

// ZeroA zeroes A and invalidates the factorization
func (o *BandGen) ZeroA() {
	for i := range o.Abuf {
		o.Abuf[i] = 0
	}
	if o.state != Unsized {
		o.state = Sized
	}
}

// Get returns A(i,j); zero outside the band
func (o *BandGen) Get(i, j int) float64 {
	if k, ok := o.offset(i, j); ok {
		return o.Abuf[k]
	}
	return 0
}

// Matrix returns a view of A sharing the band buffer
func (o *BandGen) Matrix() mat.Matrix {
	if o.size == 0 {
		return nil
	}
	return mat.NewBandDense(o.size, o.size, o.Nsub, o.Nsuper, o.Abuf)
}

// Factor factorises A
func (o *BandGen) Factor() (err error) {
	defer func() { FactorCount.WithLabelValues(o.name, result_label(err)).Inc() }()
	if o.size == 0 {
		return o.factor(nil)
	}
	return o.factor(o.Matrix())
}

// Solve solves A・x = b; the system must be factored
func (o *BandGen) Solve() (err error) {
	return o.solve()
}

// Copy returns a deep copy
func (o *BandGen) Copy() LinearSOE {
	c := &BandGen{base: o.copy_base(), Nsuper: o.Nsuper, Nsub: o.Nsub}
	c.Abuf = append([]float64(nil), o.Abuf...)
	return c
}

// offset returns the position of A(i,j) in Abuf
func (o *BandGen) offset(i, j int) (k int, ok bool) {
	d := j - i
	if d > o.Nsuper || -d > o.Nsub || i < 0 || i >= o.size || j < 0 || j >= o.size {
		return -1, false
	}
	return i*(o.Nsub+o.Nsuper+1) + o.Nsub + d, true
}
