// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosolu/tests"
)

func Test_bundle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bundle01. complete and incomplete bundles")

	b := NewBundle()
	if b.Model() == nil {
		tst.Errorf("new bundle must have a model")
		return
	}
	if b.Model().Owner() != b {
		tst.Errorf("model must point back to bundle")
		return
	}
	if b.CheckComplete() {
		tst.Errorf("bundle without handler and numberer must be incomplete")
		return
	}

	err := b.NewConstraintHandler("plain_handler")
	if err != nil {
		tst.Errorf("NewConstraintHandler failed:\n%v", err)
		return
	}
	if b.CheckComplete() {
		tst.Errorf("bundle without numberer must be incomplete")
		return
	}
	err = b.NewNumberer("plain_numberer")
	if err != nil {
		tst.Errorf("NewNumberer failed:\n%v", err)
		return
	}
	if !b.CheckComplete() {
		tst.Errorf("bundle must be complete")
		return
	}
	chk.String(tst, b.Handler().Name(), "plain_handler")
	chk.String(tst, b.Numberer().Name(), "plain_numberer")
	if b.Handler().Owner() != b || b.Numberer().Owner() != b {
		tst.Errorf("collaborators must point back to bundle")
		return
	}

	// without owner
	if b.Owner() != nil || b.Domain() != nil || b.Integrator() != nil {
		tst.Errorf("bundle without method must not reach domain or integrator")
		return
	}
	d := tests.SpringChain([]float64{1}, 0, 1)
	m := NewMethod(d, b)
	if b.Owner() != m || b.Domain() != d {
		tst.Errorf("bundle must reach domain through method")
		return
	}
	if b.Model().Domain() != d {
		tst.Errorf("model must reach domain through bundle")
		return
	}
}

func Test_bundle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bundle02. replacing collaborators")

	b := NewBundle()
	b.NewConstraintHandler("penalty_constraint_handler")
	b.NewNumberer("plain_numberer")
	h0, n0, m0 := b.Handler(), b.Numberer(), b.Model()

	// replace handler
	err := b.NewConstraintHandler("lagrange_constraint_handler")
	if err != nil {
		tst.Errorf("NewConstraintHandler failed:\n%v", err)
		return
	}
	if h0.Owner() != nil {
		tst.Errorf("replaced handler must be released")
		return
	}
	chk.String(tst, b.Handler().Name(), "lagrange_constraint_handler")

	// replace numberer with a copy
	rcm := new(RCMNumberer)
	chk.IntAssert(b.SetNumberer(rcm), 0)
	if n0.Owner() != nil {
		tst.Errorf("replaced numberer must be released")
		return
	}
	if b.Numberer() == Numberer(rcm) || rcm.Owner() != nil {
		tst.Errorf("bundle must store a copy of the numberer")
		return
	}
	chk.String(tst, b.Numberer().Name(), "default_numberer")

	// nil numberer is rejected
	n1 := b.Numberer()
	chk.IntAssert(b.SetNumberer(nil), -1)
	if b.Numberer() != n1 || n1.Owner() != b {
		tst.Errorf("nil numberer must keep the current one")
		return
	}

	// replace model
	b.NewAnalysisModel()
	if m0.Owner() != nil || b.Model() == m0 {
		tst.Errorf("replaced model must be released")
		return
	}

	// unknown names
	err = b.NewNumberer("fancy_numberer")
	if !errors.Is(err, ErrConfiguration) {
		tst.Errorf("unknown numberer must fail with configuration error. err = %v", err)
		return
	}
	if b.Numberer() != nil {
		tst.Errorf("numberer must be unset after failure")
		return
	}
	err = b.NewConstraintHandler("fancy_handler")
	if !errors.Is(err, ErrConfiguration) {
		tst.Errorf("unknown handler must fail with configuration error. err = %v", err)
		return
	}
	if b.Handler() != nil {
		tst.Errorf("handler must be unset after failure")
		return
	}
	if b.CheckComplete() {
		tst.Errorf("bundle must be incomplete")
		return
	}
}

func Test_bundle03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bundle03. copy and clear")

	b := NewBundle()
	b.NewConstraintHandler("transformation_constraint_handler")
	b.NewNumberer("parallel_numberer")
	NewMethod(tests.SpringChain([]float64{1, 2}, 0, 1), b)

	c := b.Copy()
	if c.Owner() != nil {
		tst.Errorf("copy must not have an owner")
		return
	}
	if c.Model() == b.Model() || c.Handler() == b.Handler() || c.Numberer() == b.Numberer() {
		tst.Errorf("copy must not share collaborators")
		return
	}
	if c.Model().Owner() != c || c.Handler().Owner() != c || c.Numberer().Owner() != c {
		tst.Errorf("collaborators of copy must point back to copy")
		return
	}
	if b.Model().Owner() != b || b.Handler().Owner() != b || b.Numberer().Owner() != b {
		tst.Errorf("collaborators of original must still point back to original")
		return
	}
	chk.String(tst, c.Handler().Name(), b.Handler().Name())
	chk.String(tst, c.Numberer().Name(), b.Numberer().Name())

	h, n, m := b.Handler(), b.Numberer(), b.Model()
	b.Clear()
	if b.Model() != nil || b.Handler() != nil || b.Numberer() != nil {
		tst.Errorf("cleared bundle must not hold collaborators")
		return
	}
	if h.Owner() != nil || n.Owner() != nil || m.Owner() != nil {
		tst.Errorf("cleared collaborators must be released")
		return
	}
	if !c.CheckComplete() {
		tst.Errorf("copy must remain complete")
		return
	}
}

func Test_registry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01. bundles by identifier")

	r := NewRegistry()
	if r.Exists("a") || r.Get("a") != nil {
		tst.Errorf("empty registry must not have bundles")
		return
	}

	a := r.GetOrCreate("a")
	if a == nil || !r.Exists("a") {
		tst.Errorf("GetOrCreate must create bundle")
		return
	}
	if r.GetOrCreate("a") != a || r.Get("a") != a {
		tst.Errorf("GetOrCreate must return the same bundle")
		return
	}
	r.GetOrCreate("c")
	r.GetOrCreate("b")
	chk.IntAssert(r.Len(), 3)
	chk.Strings(tst, "keys", r.Keys(), []string{"a", "b", "c"})

	a.NewConstraintHandler("plain_handler")
	h := a.Handler()
	r.Clear()
	chk.IntAssert(r.Len(), 0)
	if r.Exists("a") {
		tst.Errorf("cleared registry must not have bundles")
		return
	}
	if h.Owner() != nil {
		tst.Errorf("handler of cleared bundle must be released")
		return
	}
	if r.GetOrCreate("a") == a {
		tst.Errorf("GetOrCreate must create a new bundle after Clear")
		return
	}
}
