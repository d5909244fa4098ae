// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soe

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// New returns a new system of equations by name. solver may be nil => DenseLU
func New(name string, solver LinearSolver) (o LinearSOE, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("system of equations %q is not available", name)
	}
	return allocator(solver), nil
}

// SetAllocator sets a new callback function to allocate a system of equations
func SetAllocator(name string, fcn func(solver LinearSolver) LinearSOE) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator for %q because system of equations name exists already", name)
	}
	allocators[name] = fcn
}

// Names returns the sorted names of all available systems of equations
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available systems of equations
var allocators = map[string]func(solver LinearSolver) LinearSOE{
	"band_gen_lin_soe":   func(s LinearSolver) LinearSOE { return NewBandGen(s) },
	"sparse_gen_lin_soe": func(s LinearSolver) LinearSOE { return NewSparseGen(s) },
}
