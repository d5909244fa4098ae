// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dom implements the domain (nodes, elements and constraints) seen by the analysis layer
package dom

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Node holds a node and its degrees of freedom
type Node struct {
	Id   int       // node id
	Ndof int       // number of DOFs
	Part int       // partition (processor) owning this node
	U    []float64 // [ndof] committed displacements
	Ut   []float64 // [ndof] trial displacements
	P    []float64 // [ndof] reference load; applied load = Lambda・P
}

// Element defines what elements must supply to the analysis layer
//  The local DOFs are ordered node by node, following Nodes(), with all
//  DOFs of each node.
type Element interface {
	Id() int                       // element id
	Nodes() []int                  // ids of connected nodes
	Check(d *Domain) error         // checks element data against the nodes of d
	Tangent(d *Domain) [][]float64 // tangent matrix at trial state
	Resisting(d *Domain) []float64 // resisting (internal) forces at trial state
	Copy() Element                 // returns a deep copy
}

// SP holds a single-point constraint: u(Node,Dof) = Value
type SP struct {
	Node  int     // node id
	Dof   int     // local DOF index
	Value float64 // prescribed value
}

// MP holds a multi-point constraint: u(Constrained,CDof) = Factor・u(Retained,RDof)
type MP struct {
	Retained    int     // retained node id
	RDof        int     // retained DOF
	Constrained int     // constrained node id
	CDof        int     // constrained DOF
	Factor      float64 // coupling factor
}

// Domain holds nodes, elements, constraints and the time/load state
type Domain struct {

	// data
	Verbose bool      // show messages
	Nodes   []*Node   // all nodes
	Elems   []Element // all elements
	SPs     []*SP     // single-point constraints
	MPs     []*MP     // multi-point constraints

	// state
	Time    float64 // current (trial) time
	Dt      float64 // last time increment
	Lambda  float64 // current (trial) load factor
	timeC   float64 // committed time
	lambdaC float64 // committed load factor

	// auxiliary
	vid2node map[int]*Node // node id => node
	stamp    int           // incremented whenever nodes, elements or constraints change
}

// New returns a new domain
func New() (o *Domain) {
	o = new(Domain)
	o.vid2node = make(map[int]*Node)
	return
}

// AddNode adds a new node with ndof DOFs belonging to partition part
func (o *Domain) AddNode(id, ndof, part int) (nod *Node, err error) {
	if _, ok := o.vid2node[id]; ok {
		return nil, chk.Err("cannot add node %d because it exists already", id)
	}
	if ndof < 1 {
		return nil, chk.Err("node %d must have at least one DOF. ndof=%d is invalid", id, ndof)
	}
	nod = &Node{Id: id, Ndof: ndof, Part: part}
	nod.U = make([]float64, ndof)
	nod.Ut = make([]float64, ndof)
	nod.P = make([]float64, ndof)
	o.vid2node[id] = nod
	o.Nodes = append(o.Nodes, nod)
	o.stamp++
	return
}

// Node returns node with given id or nil
func (o *Domain) Node(id int) *Node {
	return o.vid2node[id]
}

// AddElement adds an element; all its nodes must exist and match its data
func (o *Domain) AddElement(e Element) (err error) {
	for _, id := range e.Nodes() {
		if o.vid2node[id] == nil {
			return chk.Err("cannot add element %d because node %d does not exist", e.Id(), id)
		}
	}
	if err = e.Check(o); err != nil {
		return chk.Err("cannot add element %d:\n%v", e.Id(), err)
	}
	o.Elems = append(o.Elems, e)
	o.stamp++
	return
}

// AddSP adds a single-point constraint
func (o *Domain) AddSP(node, dof int, value float64) (err error) {
	if err = o.check_dof(node, dof); err != nil {
		return
	}
	for _, sp := range o.SPs {
		if sp.Node == node && sp.Dof == dof {
			return chk.Err("DOF %d of node %d is constrained already", dof, node)
		}
	}
	o.SPs = append(o.SPs, &SP{Node: node, Dof: dof, Value: value})
	o.stamp++
	return
}

// AddMP adds a multi-point constraint u(cnode,cdof) = factor・u(rnode,rdof)
func (o *Domain) AddMP(rnode, rdof, cnode, cdof int, factor float64) (err error) {
	if err = o.check_dof(rnode, rdof); err != nil {
		return
	}
	if err = o.check_dof(cnode, cdof); err != nil {
		return
	}
	if rnode == cnode && rdof == cdof {
		return chk.Err("multi-point constraint cannot retain and constrain the same DOF %d of node %d", cdof, cnode)
	}
	o.MPs = append(o.MPs, &MP{Retained: rnode, RDof: rdof, Constrained: cnode, CDof: cdof, Factor: factor})
	o.stamp++
	return
}

// SetLoad sets the reference load at DOF dof of node
func (o *Domain) SetLoad(node, dof int, value float64) (err error) {
	if err = o.check_dof(node, dof); err != nil {
		return
	}
	o.vid2node[node].P[dof] = value
	return
}

// Stamp returns a counter that changes whenever the topology or constraints change
func (o *Domain) Stamp() int {
	return o.stamp
}

// NewStep advances time by dt. It returns a negative status if dt is not finite
func (o *Domain) NewStep(dt float64) int {
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		io.Pfred("ERROR: Domain.NewStep: time increment must be finite. dt=%v is invalid\n", dt)
		return -1
	}
	o.Dt = dt
	o.Time = o.timeC + dt
	return 0
}

// Commit accepts the trial state
func (o *Domain) Commit() int {
	for _, nod := range o.Nodes {
		copy(nod.U, nod.Ut)
	}
	o.timeC = o.Time
	o.lambdaC = o.Lambda
	return 0
}

// Revert goes back to the last committed state
func (o *Domain) Revert() int {
	for _, nod := range o.Nodes {
		copy(nod.Ut, nod.U)
	}
	o.Time = o.timeC
	o.Lambda = o.lambdaC
	return 0
}

// SetTrial sets the trial displacements of node
func (o *Domain) SetTrial(node int, u []float64) (err error) {
	nod := o.vid2node[node]
	if nod == nil {
		return chk.Err("node %d does not exist", node)
	}
	if len(u) != nod.Ndof {
		return chk.Err("node %d has %d DOFs but %d values were given", node, nod.Ndof, len(u))
	}
	copy(nod.Ut, u)
	return
}

// CommittedLambda returns the committed load factor
func (o *Domain) CommittedLambda() float64 {
	return o.lambdaC
}

// ElemDofs returns the number of local DOFs of element e
func (o *Domain) ElemDofs(e Element) (n int) {
	for _, id := range e.Nodes() {
		n += o.vid2node[id].Ndof
	}
	return
}

// ElemDisp returns the local trial displacements of element e
func (o *Domain) ElemDisp(e Element) (u []float64) {
	for _, id := range e.Nodes() {
		u = append(u, o.vid2node[id].Ut...)
	}
	return
}

// SortedNodeIds returns all node ids in ascending order
func (o *Domain) SortedNodeIds() (ids []int) {
	ids = make([]int, len(o.Nodes))
	for i, nod := range o.Nodes {
		ids[i] = nod.Id
	}
	sort.Ints(ids)
	return
}

// Copy returns a deep copy of the domain
func (o *Domain) Copy() (c *Domain) {
	c = New()
	c.Verbose = o.Verbose
	for _, nod := range o.Nodes {
		n, _ := c.AddNode(nod.Id, nod.Ndof, nod.Part)
		copy(n.U, nod.U)
		copy(n.Ut, nod.Ut)
		copy(n.P, nod.P)
	}
	for _, e := range o.Elems {
		c.Elems = append(c.Elems, e.Copy())
	}
	for _, sp := range o.SPs {
		s := *sp
		c.SPs = append(c.SPs, &s)
	}
	for _, mp := range o.MPs {
		m := *mp
		c.MPs = append(c.MPs, &m)
	}
	c.Time, c.Dt, c.Lambda = o.Time, o.Dt, o.Lambda
	c.timeC, c.lambdaC = o.timeC, o.lambdaC
	c.stamp = o.stamp
	return
}

// check_dof checks whether node exists and has DOF dof
func (o *Domain) check_dof(node, dof int) (err error) {
	nod := o.vid2node[node]
	if nod == nil {
		return chk.Err("node %d does not exist", node)
	}
	if dof < 0 || dof >= nod.Ndof {
		return chk.Err("node %d does not have DOF %d. ndof=%d", node, dof, nod.Ndof)
	}
	return
}
