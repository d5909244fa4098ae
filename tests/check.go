// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/dom"
	"github.com/cpmech/gosolu/out"
)

// CompareResults compares the committed state of d at step tidx with a (.cmp) JSON file
func CompareResults(tst *testing.T, d *dom.Domain, cmpfname string, tidx int, tol float64, verbose bool) {

	// read file with comparison results
	cmp_set, err := out.ReadResults(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: %v\n", err)
		return
	}
	if tidx < 0 || tidx >= len(cmp_set) {
		tst.Errorf("CompareResults: file %q has no results for step %d\n", cmpfname, tidx)
		return
	}
	cmp := cmp_set[tidx]

	// check load factor
	if verbose {
		io.Pfyel("%s\n", cmp.Note)
	}
	chk.AnaNum(tst, "λ", tol, d.CommittedLambda(), cmp.LoadFactor, verbose)

	// check displacements
	for nid, uref := range cmp.Disp {
		nod := d.Node(nid)
		if nod == nil {
			tst.Errorf("CompareResults: node %d does not exist\n", nid)
			return
		}
		for i, val := range uref {
			chk.AnaNum(tst, io.Sf("u%d(node %d)", i, nid), tol, nod.U[i], val, verbose)
		}
	}
}
