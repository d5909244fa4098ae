// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/graph"
)

// RCMNumberer numbers DOF groups following the reverse Cuthill-McKee ordering of the group graph
type RCMNumberer struct {
	nbase
}

// Name returns the identifier
func (o *RCMNumberer) Name() string { return "default_numberer" }

// Number numbers all DOFs
func (o *RCMNumberer) Number() int {
	m := o.model(o.Name())
	if m == nil {
		return -1
	}
	g := m.GroupGraph()
	order := graph.RCM(g)
	if o.owner.Verbose {
		io.Pf("> %s: group bandwidth = %d\n", o.Name(), graph.Bandwidth(g, order))
	}
	return number_groups(m, order, o.owner.Verbose)
}

// Copy returns a copy without owner
func (o *RCMNumberer) Copy() Numberer {
	return new(RCMNumberer)
}
