// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"sort"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// RCM computes the reverse Cuthill-McKee ordering of g
//  Output:
//   order -- positions (indices in g.Verts) in the order they must be numbered
//  Note: each connected component starts at a pseudo-peripheral vertex
func RCM(g *Graph) (order []int) {
	nv := g.NumVertex()
	order = make([]int, 0, nv)
	visited := make([]bool, nv)
	mirror := g.mirror()
	for {

		// unvisited vertex with smallest degree
		start := -1
		for i, v := range g.Verts {
			if !visited[i] && (start < 0 || v.Degree() < g.Verts[start].Degree()) {
				start = i
			}
		}
		if start < 0 {
			break
		}

		// improve start by moving to the far end of the component
		start = pseudo_peripheral(g, mirror, start)

		// Cuthill-McKee sweep
		beg := len(order)
		order = append(order, start)
		visited[start] = true
		for k := beg; k < len(order); k++ {
			v := g.Verts[order[k]]
			var next []int
			for _, tag := range v.Adj {
				idx := g.tag2vert[tag]
				if !visited[idx] {
					visited[idx] = true
					next = append(next, idx)
				}
			}
			sort.SliceStable(next, func(a, b int) bool {
				return g.Verts[next[a]].Degree() < g.Verts[next[b]].Degree()
			})
			order = append(order, next...)
		}
	}

	// reverse
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return
}

// Bandwidth returns the maximum |i-j| of a permutation applied to g
//  perm[k] is the position of the vertex numbered k
func Bandwidth(g *Graph, perm []int) (bw int) {
	newnum := make([]int, g.NumVertex())
	for k, pos := range perm {
		newnum[pos] = k
	}
	for i, v := range g.Verts {
		for _, tag := range v.Adj {
			d := newnum[i] - newnum[g.tag2vert[tag]]
			if d < 0 {
				d = -d
			}
			bw = max(bw, d)
		}
	}
	return
}

// pseudo_peripheral returns a vertex in the last level of a breadth-first
// search from start with the smallest degree
//  Note: ties are broken by the smallest position
func pseudo_peripheral(g *Graph, mirror *core.Graph, start int) int {
	res, err := bfs.BFS(mirror, strconv.Itoa(start))
	if err != nil {
		chk.Panic("cannot compute level structure rooted at vertex %d:\n%v", start, err)
	}
	best, depth := start, 0
	for id, d := range res.Depth {
		idx, _ := strconv.Atoi(id)
		switch {
		case d > depth:
			best, depth = idx, d
		case d == depth:
			db, di := g.Verts[best].Degree(), g.Verts[idx].Degree()
			if di < db || (di == db && idx < best) {
				best = idx
			}
		}
	}
	return best
}

// mirror returns an undirected copy of g whose vertex ids are the positions in g.Verts
func (o *Graph) mirror() (m *core.Graph) {
	m = core.NewGraph()
	for i, v := range o.Verts {
		m.AddVertex(strconv.Itoa(i))
		for _, tag := range v.Adj {
			j := o.tag2vert[tag]
			if j > i {
				m.AddEdge(strconv.Itoa(i), strconv.Itoa(j), 0)
			}
		}
	}
	return
}
