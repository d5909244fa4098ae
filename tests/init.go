// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/dom"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// GetNidsU returns the node ids and the committed displacements of all nodes
func GetNidsU(d *dom.Domain) (nids []int, u [][]float64) {
	for _, nod := range d.Nodes {
		nids = append(nids, nod.Id)
		u = append(u, append([]float64(nil), nod.U...))
	}
	return
}
