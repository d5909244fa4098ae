// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of results of analyses
package out

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosolu/dom"
)

// Results holds the committed state of a domain at the end of one step
type Results struct {
	Note       string            `json:"note,omitempty"` // note; e.g. reference solution
	Time       float64           `json:"time"`           // time
	LoadFactor float64           `json:"loadfactor"`     // load factor
	Disp       map[int][]float64 `json:"disp"`           // node id => displacements
}

// ResultsSet holds results; one per step
type ResultsSet []*Results

// Recorder collects the results of selected nodes after each step
type Recorder struct {
	Nids  []int      // selected nodes; empty => all nodes
	Steps ResultsSet // recorded results
}

// NewRecorder returns a new recorder of nodes nids; all nodes if none is given
func NewRecorder(nids ...int) *Recorder {
	return &Recorder{Nids: nids}
}

// Record appends the committed state of d
func (o *Recorder) Record(d *dom.Domain) {
	nids := o.Nids
	if len(nids) == 0 {
		nids = d.SortedNodeIds()
	}
	res := &Results{Time: d.Time, LoadFactor: d.CommittedLambda(), Disp: make(map[int][]float64)}
	for _, id := range nids {
		if nod := d.Node(id); nod != nil {
			res.Disp[id] = append([]float64(nil), nod.U...)
		}
	}
	o.Steps = append(o.Steps, res)
}

// Save writes all results to dirout/fnkey.res (JSON)
func (o *Recorder) Save(dirout, fnkey string) (fnpath string, err error) {
	b, err := json.MarshalIndent(o.Steps, "", "  ")
	if err != nil {
		return "", chk.Err("cannot encode results:\n%v", err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create directory for output results (%s): %v", dirout, err)
	}
	fnpath = filepath.Join(dirout, fnkey+".res")
	err = os.WriteFile(fnpath, b, 0644)
	if err != nil {
		return "", chk.Err("cannot write results file %q:\n%v", fnpath, err)
	}
	return
}

// ReadResults reads results from a JSON file
func ReadResults(fnpath string) (res ResultsSet, err error) {
	b, err := os.ReadFile(os.ExpandEnv(fnpath))
	if err != nil {
		return nil, chk.Err("cannot read results file %q:\n%v", fnpath, err)
	}
	err = json.Unmarshal(b, &res)
	if err != nil {
		return nil, chk.Err("cannot decode results file %q:\n%v", fnpath, err)
	}
	return
}

// Series returns the time and load factor series and the displacement history of DOF dof of node nid
func (o ResultsSet) Series(nid, dof int) (t, λ, u []float64) {
	for _, res := range o {
		vals, ok := res.Disp[nid]
		if !ok || dof >= len(vals) {
			continue
		}
		t = append(t, res.Time)
		λ = append(λ, res.LoadFactor)
		u = append(u, vals[dof])
	}
	return
}
