// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"sort"
)

// ParallelNumberer numbers node groups partition by partition (ascending); each partition
// gets a contiguous range of equations. Lagrange multipliers are numbered last.
type ParallelNumberer struct {
	nbase
}

// Name returns the identifier
func (o *ParallelNumberer) Name() string { return "parallel_numberer" }

// Number numbers all DOFs
func (o *ParallelNumberer) Number() int {
	m := o.model(o.Name())
	if m == nil {
		return -1
	}
	order := make([]int, len(m.Groups))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return m.Groups[order[a]].Part < m.Groups[order[b]].Part
	})
	return number_groups(m, order, o.owner.Verbose)
}

// Copy returns a copy without owner
func (o *ParallelNumberer) Copy() Numberer {
	return new(ParallelNumberer)
}
