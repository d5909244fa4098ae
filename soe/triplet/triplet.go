// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package triplet exports assembled systems as gosl triplets for external sparse solvers
//  Note: gosl/la needs cgo (lapacke and mpi); soe itself does not
package triplet

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosolu/soe"
)

// FromSparse returns the stored entries of A as a triplet; nil if size is zero
func FromSparse(s *soe.SparseGen) (t *la.Triplet) {
	n := s.Size()
	if n == 0 {
		return nil
	}
	t = new(la.Triplet)
	t.Init(n, n, s.Nnz)
	for i := 0; i < n; i++ {
		for k := s.RowStart[i]; k < s.RowStart[i+1]; k++ {
			t.Put(i, s.ColA[k], s.A[k])
		}
	}
	return
}

// FromBand returns the entries inside the band of A as a triplet; nil if size is zero
func FromBand(s *soe.BandGen) (t *la.Triplet) {
	n := s.Size()
	if n == 0 {
		return nil
	}
	t = new(la.Triplet)
	t.Init(n, n, len(s.Abuf))
	for i := 0; i < n; i++ {
		for j := max(0, i-s.Nsub); j <= min(n-1, i+s.Nsuper); j++ {
			t.Put(i, j, s.Get(i, j))
		}
	}
	return
}
