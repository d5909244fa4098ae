// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package graph implements the connectivity graphs consumed by numberers and systems of equations
package graph

import (
	"github.com/cpmech/gosl/chk"
)

// Connectivity defines what systems of equations need from a graph
//  Note: vertex i of a DOF graph has Tag == i (the equation number)
type Connectivity interface {
	NumVertex() int       // number of vertices
	Vertex(i int) *Vertex // returns vertex at position i or nil if it does not exist
}

// Vertex holds a graph vertex and its adjacency set
type Vertex struct {
	Tag int   // tag; e.g. equation number or DOF group id
	Ref int   // reference to the object represented by this vertex; e.g. index in a list of DOF groups
	Adj []int // tags of adjacent vertices, without Tag itself and without repetitions; insertion order is kept
	has map[int]bool
}

// Degree returns the number of adjacent vertices
func (o *Vertex) Degree() int {
	return len(o.Adj)
}

// addAdj adds tag to adjacency set if not there yet
func (o *Vertex) addAdj(tag int) bool {
	if tag == o.Tag || o.has[tag] {
		return false
	}
	if o.has == nil {
		o.has = make(map[int]bool)
	}
	o.has[tag] = true
	o.Adj = append(o.Adj, tag)
	return true
}

// Graph implements Connectivity with vertices stored by position
type Graph struct {
	Verts    []*Vertex   // all vertices
	tag2vert map[int]int // maps tag to position in Verts
	nedges   int         // number of (undirected) edges
}

// New returns a new graph with room for nv vertices
func New(nv int) (o *Graph) {
	o = new(Graph)
	o.Verts = make([]*Vertex, 0, nv)
	o.tag2vert = make(map[int]int, nv)
	return
}

// NumVertex returns the number of vertices
func (o *Graph) NumVertex() int {
	return len(o.Verts)
}

// NumEdges returns the number of undirected edges
func (o *Graph) NumEdges() int {
	return o.nedges
}

// Vertex returns vertex at position i or nil
func (o *Graph) Vertex(i int) *Vertex {
	if i < 0 || i >= len(o.Verts) {
		return nil
	}
	return o.Verts[i]
}

// VertexByTag returns vertex with given tag or nil
func (o *Graph) VertexByTag(tag int) *Vertex {
	if idx, ok := o.tag2vert[tag]; ok {
		return o.Verts[idx]
	}
	return nil
}

// AddVertex adds a new vertex. It panics if tag is already present
func (o *Graph) AddVertex(tag, ref int) *Vertex {
	if o.tag2vert == nil {
		o.tag2vert = make(map[int]int)
	}
	if _, ok := o.tag2vert[tag]; ok {
		chk.Panic("cannot add vertex with tag=%d because it exists already", tag)
	}
	v := &Vertex{Tag: tag, Ref: ref}
	o.tag2vert[tag] = len(o.Verts)
	o.Verts = append(o.Verts, v)
	return v
}

// AddEdge connects vertices with tags a and b (both directions)
func (o *Graph) AddEdge(a, b int) (err error) {
	if a == b {
		return
	}
	va, vb := o.VertexByTag(a), o.VertexByTag(b)
	if va == nil || vb == nil {
		return chk.Err("cannot add edge {%d,%d} because vertex does not exist", a, b)
	}
	if va.addAdj(b) {
		vb.addAdj(a)
		o.nedges++
	}
	return
}

// FromEqs builds the DOF graph of a system with neq equations.
//  Each entry in eqs holds the equations touched by one element; negative
//  equations (constrained DOFs) and equations >= neq are ignored.
func FromEqs(neq int, eqs [][]int) (o *Graph) {
	o = New(neq)
	for i := 0; i < neq; i++ {
		o.AddVertex(i, i)
	}
	for _, list := range eqs {
		for _, a := range list {
			if a < 0 || a >= neq {
				continue
			}
			for _, b := range list {
				if b < 0 || b >= neq || a == b {
					continue
				}
				o.AddEdge(a, b)
			}
		}
	}
	return
}

// HalfBandwidths returns the number of super- and sub-diagonals required to
// store the adjacency of g in a band matrix
func HalfBandwidths(g Connectivity) (nsuper, nsub int) {
	for i := 0; i < g.NumVertex(); i++ {
		v := g.Vertex(i)
		if v == nil {
			continue
		}
		for _, tag := range v.Adj {
			diff := tag - v.Tag
			if diff > 0 {
				nsuper = max(nsuper, diff)
			} else {
				nsub = max(nsub, -diff)
			}
		}
	}
	return
}
