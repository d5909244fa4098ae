// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"sort"
)

// Registry holds bundles by identifier
type Registry struct {
	bundles map[string]*Bundle
}

// NewRegistry returns a new empty registry
func NewRegistry() *Registry {
	return &Registry{bundles: make(map[string]*Bundle)}
}

// GetOrCreate returns the bundle with identifier id, creating it if necessary
func (o *Registry) GetOrCreate(id string) *Bundle {
	if b, ok := o.bundles[id]; ok {
		return b
	}
	b := NewBundle()
	o.bundles[id] = b
	return b
}

// Exists tells whether a bundle with identifier id exists
func (o *Registry) Exists(id string) bool {
	_, ok := o.bundles[id]
	return ok
}

// Get returns the bundle with identifier id or nil
func (o *Registry) Get(id string) *Bundle {
	return o.bundles[id]
}

// Keys returns all identifiers in ascending order
func (o *Registry) Keys() (keys []string) {
	for k := range o.bundles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

// Len returns the number of bundles
func (o *Registry) Len() int {
	return len(o.bundles)
}

// Clear releases and removes all bundles
func (o *Registry) Clear() {
	for k, b := range o.bundles {
		b.Clear()
		delete(o.bundles, k)
	}
}
