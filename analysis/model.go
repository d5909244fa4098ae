// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/dom"
	"github.com/cpmech/gosolu/graph"
	"github.com/cpmech/gosolu/soe"
)

// Model holds the DOF groups and FEs built from the domain by a constraint handler
type Model struct {

	// data
	Groups []*DofGroup // node groups in domain order, followed by Lagrange multiplier groups
	FEs    []FE        // element FEs, followed by constraint FEs
	Neq    int         // number of equations; set by numberers

	// constraints enforced directly on trial displacements
	Fixed  []*dom.SP // eliminated single-point constraints
	Slaves []*dom.MP // eliminated multi-point constraints

	// auxiliary
	owner    *Bundle            // bundle owning this model
	nid2grp  map[int]*DofGroup  // node id => group
	slave    map[[2]int]*dom.MP // {node id, dof} => multi-point constraint eliminating it
	stamp    int                // domain stamp when groups were built
	numbered bool               // equation numbers are valid
}

// NewModel returns a new empty model
func NewModel() (o *Model) {
	o = new(Model)
	o.reset()
	return
}

// Owner returns the bundle owning this model; nil if detached
func (o *Model) Owner() *Bundle {
	return o.owner
}

// Domain returns the domain reached through the owner bundle; nil if not available
func (o *Model) Domain() *dom.Domain {
	if o.owner == nil {
		return nil
	}
	return o.owner.Domain()
}

// NewStepDomain advances the domain to the next step
func (o *Model) NewStepDomain(dt float64) int {
	d := o.Domain()
	if d == nil {
		config_error("analysis model is not connected to a domain")
		return -1
	}
	return d.NewStep(dt)
}

// Changed tells whether the domain changed since groups and FEs were built
func (o *Model) Changed() bool {
	d := o.Domain()
	return d == nil || !o.numbered || d.Stamp() != o.stamp
}

// NodeGroup returns the group of node with given id or nil
func (o *Model) NodeGroup(nid int) *DofGroup {
	return o.nid2grp[nid]
}

// AddNodeGroup adds a group with all DOFs of nod marked Free
func (o *Model) AddNodeGroup(nod *dom.Node) (g *DofGroup) {
	g = &DofGroup{Tag: len(o.Groups), Node: nod, Part: nod.Part}
	g.Eqs = make([]int, nod.Ndof)
	for i := range g.Eqs {
		g.Eqs[i] = Free
	}
	o.Groups = append(o.Groups, g)
	o.nid2grp[nod.Id] = g
	return
}

// AddMultiplierGroup adds a group with n Lagrange multipliers marked Multiplier
func (o *Model) AddMultiplierGroup(n, part int) (g *DofGroup) {
	g = &DofGroup{Tag: len(o.Groups), Part: part}
	g.Eqs = make([]int, n)
	for i := range g.Eqs {
		g.Eqs[i] = Multiplier
	}
	g.Lam = make([]float64, n)
	g.lamC = make([]float64, n)
	o.Groups = append(o.Groups, g)
	return
}

// AddFE adds an FE
func (o *Model) AddFE(fe FE) {
	o.FEs = append(o.FEs, fe)
}

// AddSlave records that DOF mp.CDof of mp.Constrained is eliminated by mp
func (o *Model) AddSlave(mp *dom.MP) {
	o.Slaves = append(o.Slaves, mp)
	o.slave[[2]int{mp.Constrained, mp.CDof}] = mp
}

// Build creates one group per node and one FE per element of d; constraints are left to handlers
func (o *Model) Build(d *dom.Domain) {
	o.reset()
	for _, nod := range d.Nodes {
		o.AddNodeGroup(nod)
	}
	for _, e := range d.Elems {
		fe := &ElemFE{Elem: e}
		for _, id := range e.Nodes() {
			fe.groups = append(fe.groups, o.nid2grp[id])
		}
		o.AddFE(fe)
	}
	o.stamp = d.Stamp()
}

// GroupGraph returns the graph of DOF groups; groups sharing an FE are adjacent
func (o *Model) GroupGraph() (g *graph.Graph) {
	g = graph.New(len(o.Groups))
	for _, grp := range o.Groups {
		g.AddVertex(grp.Tag, grp.Tag)
	}
	for _, fe := range o.FEs {
		gs := fe.Groups()
		for _, a := range gs {
			for _, b := range gs {
				g.AddEdge(a.Tag, b.Tag)
			}
		}
	}
	return
}

// DoneNumbering sets the number of equations and updates all FEs
func (o *Model) DoneNumbering(neq int) {
	o.Neq = neq
	for _, fe := range o.FEs {
		fe.set_ids(o)
	}
	o.numbered = true
	if d := o.Domain(); d != nil {
		o.stamp = d.Stamp()
	}
}

// DofGraph returns the graph of equations; equations sharing an FE are adjacent
func (o *Model) DofGraph() *graph.Graph {
	eqs := make([][]int, len(o.FEs))
	for i, fe := range o.FEs {
		eqs[i] = fe.Ids()
	}
	return graph.FromEqs(o.Neq, eqs)
}

// AddLoads adds λ・P of all nodes to the right-hand side of s
func (o *Model) AddLoads(s soe.LinearSOE, λ float64) (err error) {
	for _, g := range o.Groups {
		if g.IsMultiplier() {
			continue
		}
		for dof, p := range g.Node.P {
			if p == 0 {
				continue
			}
			for _, t := range o.terms(g, dof, 0) {
				err = s.AddB([]float64{p * t.coef}, []int{t.eq}, λ)
				if err != nil {
					return
				}
			}
		}
	}
	return
}

// ApplyResults adds the increments dx to trial displacements and multipliers
func (o *Model) ApplyResults(dx []float64) {
	for _, g := range o.Groups {
		for i, eq := range g.Eqs {
			if eq < 0 || eq >= len(dx) {
				continue
			}
			if g.IsMultiplier() {
				g.Lam[i] += dx[eq]
			} else {
				g.Node.Ut[i] += dx[eq]
			}
		}
	}
	o.Enforce()
}

// Enforce sets trial displacements of eliminated DOFs
func (o *Model) Enforce() {
	d := o.Domain()
	if d == nil {
		return
	}
	for _, sp := range o.Fixed {
		d.Node(sp.Node).Ut[sp.Dof] = d.Lambda * sp.Value
	}
	for _, mp := range o.Slaves {
		d.Node(mp.Constrained).Ut[mp.CDof] = mp.Factor * d.Node(mp.Retained).Ut[mp.RDof]
	}
}

// Commit commits the domain and the Lagrange multipliers
func (o *Model) Commit() int {
	for _, g := range o.Groups {
		copy(g.lamC, g.Lam)
	}
	if d := o.Domain(); d != nil {
		return d.Commit()
	}
	return 0
}

// Revert reverts the domain and the Lagrange multipliers
func (o *Model) Revert() int {
	for _, g := range o.Groups {
		copy(g.Lam, g.lamC)
	}
	if d := o.Domain(); d != nil {
		return d.Revert()
	}
	return 0
}

// Copy returns a new model without owner; DOF groups and FEs are rebuilt by the next handler run
func (o *Model) Copy() (c *Model) {
	c = NewModel()
	c.Neq = o.Neq
	return
}

// Print prints the equation numbers of all groups
func (o *Model) Print() {
	for _, g := range o.Groups {
		if g.IsMultiplier() {
			io.Pf("group %3d (multiplier) : eqs = %v\n", g.Tag, g.Eqs)
			continue
		}
		io.Pf("group %3d (node %d) : eqs = %v\n", g.Tag, g.Node.Id, g.Eqs)
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////

// reset clears groups and FEs
func (o *Model) reset() {
	o.Groups, o.FEs = nil, nil
	o.Fixed, o.Slaves = nil, nil
	o.Neq, o.stamp, o.numbered = 0, -1, false
	o.nid2grp = make(map[int]*DofGroup)
	o.slave = make(map[[2]int]*dom.MP)
}

// release detaches this model from its owner
func (o *Model) release() {
	o.owner = nil
}

// terms returns the equations contributing to DOF dof of group g
func (o *Model) terms(g *DofGroup, dof, depth int) []term {
	eq := g.Eqs[dof]
	if eq >= 0 {
		return []term{{eq, 1}}
	}
	if g.IsMultiplier() || depth > len(o.Slaves) {
		return nil
	}
	mp := o.slave[[2]int{g.Node.Id, dof}]
	if mp == nil {
		return nil
	}
	ts := o.terms(o.nid2grp[mp.Retained], mp.RDof, depth+1)
	res := make([]term, len(ts))
	for i, t := range ts {
		res[i] = term{t.eq, mp.Factor * t.coef}
	}
	return res
}
