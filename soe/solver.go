// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LinearSolver defines the factorise/solve back end of a system of equations
type LinearSolver interface {
	SetSize(n int) (err error)        // prepares for a system with n equations
	Factor(a mat.Matrix) (err error)  // factorises a (n×n)
	Solve(x, b []float64) (err error) // solves A・x = b using the last factorization
	Copy() LinearSolver               // returns a new solver with the same settings and no factorization
}

// DenseLU implements LinearSolver with a dense LU decomposition (partial pivoting)
type DenseLU struct {
	CondMax float64 // largest acceptable condition number
	n       int     // number of equations
	lu      mat.LU  // decomposition
	ok      bool    // factorization is available
}

// NewDenseLU returns a new dense LU solver
func NewDenseLU() *DenseLU {
	return &DenseLU{CondMax: mat.ConditionTolerance}
}

// SetSize prepares for a system with n equations
func (o *DenseLU) SetSize(n int) (err error) {
	if n < 0 {
		return fmt.Errorf("%w: size must be non-negative. n=%d is invalid", ErrSolver, n)
	}
	o.n = n
	o.ok = false
	return
}

// Factor factorises a
func (o *DenseLU) Factor(a mat.Matrix) (err error) {
	o.ok = false
	if o.n == 0 {
		o.ok = true
		return
	}
	r, c := a.Dims()
	if r != o.n || c != o.n {
		return fmt.Errorf("%w: matrix is %d×%d but solver was sized with n=%d", ErrSolver, r, c, o.n)
	}
	o.lu.Factorize(a)
	cond := o.lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) || cond > o.CondMax {
		return fmt.Errorf("%w: matrix is singular or ill-conditioned. cond=%g", ErrSolver, cond)
	}
	o.ok = true
	return
}

// Solve solves A・x = b
func (o *DenseLU) Solve(x, b []float64) (err error) {
	if !o.ok {
		return fmt.Errorf("%w: factorization is not available", ErrState)
	}
	if o.n == 0 {
		return
	}
	if len(x) != o.n || len(b) != o.n {
		return fmt.Errorf("%w: len(x)=%d and len(b)=%d must be equal to %d", ErrSolver, len(x), len(b), o.n)
	}
	err = o.lu.SolveVecTo(mat.NewVecDense(o.n, x), false, mat.NewVecDense(o.n, b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSolver, err)
	}
	return
}

// Copy returns a new solver with the same settings
func (o *DenseLU) Copy() LinearSolver {
	return &DenseLU{CondMax: o.CondMax}
}
