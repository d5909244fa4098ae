// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"github.com/cpmech/gosl/chk"
)

// AllocatorType defines a function that allocates an element
//  verts -- ids of connected nodes
//  prms  -- element parameters; e.g. "k" for springs
type AllocatorType func(id int, verts []int, prms map[string]float64) (Element, error)

// NewElement returns a new element from factory
func NewElement(kind string, id int, verts []int, prms map[string]float64) (e Element, err error) {
	fcn, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {type=%q, id=%d}", kind, id)
	}
	return fcn(id, verts, prms)
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(kind string, fcn AllocatorType) {
	if _, ok := allocators[kind]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", kind)
	}
	allocators[kind] = fcn
}

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
