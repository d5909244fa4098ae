// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions of systems of springs
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Chain holds the solution of a chain of linear springs fixed at its first node
//
//     1 --k0-- 2 --k1-- 3 ... n      u(1) = U1;  P(n) = load
//
type Chain struct {
	Ks []float64 // stiffnesses
	U1 float64   // prescribed displacement of first node
}

// Disp returns the displacements of all nodes
func (o Chain) Disp(load float64) (u []float64) {
	u = []float64{o.U1}
	for _, k := range o.Ks {
		u = append(u, u[len(u)-1]+load/k)
	}
	return
}

// Linked holds the solution of two linear springs linked by u(3) = Factor・u(2)
//
//     1 --K0-- 2    3 --K1-- 4      u(1) = 0;  P(4) = load
//
//  The constraint transmits Factor・load to node 2
type Linked struct {
	K0, K1 float64 // stiffnesses
	Factor float64 // coupling factor
}

// Disp returns the displacements of nodes 1 to 4
func (o Linked) Disp(load float64) []float64 {
	u2 := o.Factor * load / o.K0
	u3 := o.Factor * u2
	return []float64{0, u2, u3, u3 + load/o.K1}
}

// Cubic holds the solution of a spring with N = K・δ + C・δ³
type Cubic struct {
	K float64 // linear stiffness; K > 0
	C float64 // cubic coefficient; C ≥ 0
}

// Force returns the spring force corresponding to elongation δ
func (o Cubic) Force(δ float64) float64 {
	return o.K*δ + o.C*δ*δ*δ
}

// Elongation returns δ such that Force(δ) = load
func (o Cubic) Elongation(load float64) (δ float64, err error) {
	if o.K <= 0 || o.C < 0 {
		return 0, chk.Err("cubic spring requires K > 0 and C ≥ 0. K=%g and C=%g are invalid", o.K, o.C)
	}

	// Newton's method from the linear solution
	δ = load / o.K
	for it := 0; it < 100; it++ {
		r := o.Force(δ) - load
		if math.Abs(r) < 1e-14*(1+math.Abs(load)) {
			return
		}
		δ -= r / (o.K + 3.0*o.C*δ*δ)
	}
	return δ, chk.Err("Newton's method did not converge. load=%g", load)
}
