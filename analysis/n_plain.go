// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosl/utl"
)

// PlainNumberer numbers DOF groups in storage order
type PlainNumberer struct {
	nbase
}

// Name returns the identifier
func (o *PlainNumberer) Name() string { return "plain_numberer" }

// Number numbers all DOFs
func (o *PlainNumberer) Number() int {
	m := o.model(o.Name())
	if m == nil {
		return -1
	}
	return number_groups(m, utl.IntRange(len(m.Groups)), o.owner.Verbose)
}

// Copy returns a copy without owner
func (o *PlainNumberer) Copy() Numberer {
	return new(PlainNumberer)
}
