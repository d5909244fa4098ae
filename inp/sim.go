// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or (.yaml) file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosolu/dom"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate checks the simulation data using the `validate` struct tags
var validate = validator.New()

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"    yaml:"desc"`    // description of simulation
	DirOut  string `json:"dirout"  yaml:"dirout"`  // directory for output results; e.g. /tmp/gosolu
	Verbose bool   `json:"verbose" yaml:"verbose"` // show messages of collaborators
	ShowMsg bool   `json:"showmsg" yaml:"showmsg"` // show messages of driver
}

// StrategyData holds the identifiers and parameters of the solution strategy
type StrategyData struct {
	Handler    string             `json:"handler"    yaml:"handler"    validate:"required"` // constraint handler; e.g. "penalty_constraint_handler"
	Numberer   string             `json:"numberer"   yaml:"numberer"   validate:"required"` // numberer; e.g. "default_numberer"
	Soe        string             `json:"soe"        yaml:"soe"        validate:"required"` // linear system of equations; e.g. "band_gen_lin_soe"
	Integrator string             `json:"integrator" yaml:"integrator" validate:"required"` // integrator; e.g. "load_control"
	Algorithm  string             `json:"algorithm"  yaml:"algorithm"  validate:"required"` // algorithm; e.g. "newton_raphson_soln_algo"
	Test       string             `json:"test"       yaml:"test"       validate:"required"` // convergence test; e.g. "norm_disp_incr_conv_test"
	Slack      float64            `json:"slack"      yaml:"slack"      validate:"gte=1"`    // capacity multiplier of compressed storage
	Prms       map[string]float64 `json:"prms"       yaml:"prms"`                           // parameters; e.g. "alpha_sp", "dlambda", "tol", "maxit"
}

// TimeControl holds data for defining the simulation stepping
type TimeControl struct {
	Nsteps int     `json:"nsteps" yaml:"nsteps" validate:"gte=1"` // number of steps
	Dt     float64 `json:"dt"     yaml:"dt"     validate:"gt=0"`  // time increment
}

// NodeData holds node data
type NodeData struct {
	Id   int `json:"id"   yaml:"id"`                    // node id
	Ndof int `json:"ndof" yaml:"ndof" validate:"gte=1"` // number of DOFs
	Part int `json:"part" yaml:"part" validate:"gte=0"` // partition
}

// ElemData holds element data
type ElemData struct {
	Id    int                `json:"id"    yaml:"id"`                        // element id
	Type  string             `json:"type"  yaml:"type"  validate:"required"` // element type; e.g. "spring"
	Verts []int              `json:"verts" yaml:"verts" validate:"min=1"`    // connected nodes
	Prms  map[string]float64 `json:"prms"  yaml:"prms"`                      // parameters; e.g. "k"
}

// SpData holds single-point constraint data
type SpData struct {
	Node  int     `json:"node"  yaml:"node"`  // node id
	Dof   int     `json:"dof"   yaml:"dof"`   // DOF index
	Value float64 `json:"value" yaml:"value"` // prescribed value at λ = 1
}

// MpData holds multi-point constraint data: u(constrained) = factor・u(retained)
type MpData struct {
	Retained    int     `json:"retained"    yaml:"retained"`    // retained node id
	Rdof        int     `json:"rdof"        yaml:"rdof"`        // retained DOF
	Constrained int     `json:"constrained" yaml:"constrained"` // constrained node id
	Cdof        int     `json:"cdof"        yaml:"cdof"`        // constrained DOF
	Factor      float64 `json:"factor"      yaml:"factor"`      // coupling factor
}

// LoadData holds reference nodal loads
type LoadData struct {
	Node  int     `json:"node"  yaml:"node"`  // node id
	Dof   int     `json:"dof"   yaml:"dof"`   // DOF index
	Value float64 `json:"value" yaml:"value"` // load at λ = 1
}

// Overrides holds settings read from environment variables
type Overrides struct {
	Verbose  bool    `env:"GOSOLU_VERBOSE"`  // show messages
	Slack    float64 `env:"GOSOLU_SLACK"`    // capacity multiplier of compressed storage
	Handler  string  `env:"GOSOLU_HANDLER"`  // constraint handler
	Numberer string  `env:"GOSOLU_NUMBERER"` // numberer
	Soe      string  `env:"GOSOLU_SOE"`      // linear system of equations
	DirOut   string  `env:"GOSOLU_DIROUT"`   // directory for output results
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data     Data         `json:"data"     yaml:"data"`                                    // global data
	Strategy StrategyData `json:"strategy" yaml:"strategy"`                                // solution strategy
	Control  TimeControl  `json:"control"  yaml:"control"`                                 // stepping
	Nodes    []*NodeData  `json:"nodes"    yaml:"nodes"    validate:"required,min=1,dive"` // nodes
	Elems    []*ElemData  `json:"elems"    yaml:"elems"    validate:"dive"`                // elements
	Sps      []*SpData    `json:"sps"      yaml:"sps"`                                     // single-point constraints
	Mps      []*MpData    `json:"mps"      yaml:"mps"`                                     // multi-point constraints
	Loads    []*LoadData  `json:"loads"    yaml:"loads"`                                   // nodal loads

	// derived
	Key string `json:"-" yaml:"-"` // simulation key; e.g. chain.sim => chain
}

// ReadSim reads all simulation data from a .sim (JSON) or .yaml file.
// Environment variables listed in Overrides take precedence over the file.
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(simfilepath))
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o = new(Simulation)
	o.Data.SetDefault()
	o.Strategy.SetDefault()
	o.Control.SetDefault()

	// decode
	switch ext := strings.ToLower(filepath.Ext(simfilepath)); ext {
	case ".sim", ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("ReadSim: extension %q of simulation file %q is not supported", ext, simfilepath)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// environment
	var ovr Overrides
	err = env.Parse(&ovr)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot parse environment variables:\n%v", err)
	}
	o.Apply(&ovr)

	// check
	err = o.PostProcess()
	return
}

// Apply replaces settings by the non-empty values in ovr
func (o *Simulation) Apply(ovr *Overrides) {
	if ovr.Verbose {
		o.Data.Verbose = true
		o.Data.ShowMsg = true
	}
	if ovr.Slack > 0 {
		o.Strategy.Slack = ovr.Slack
	}
	if ovr.Handler != "" {
		o.Strategy.Handler = ovr.Handler
	}
	if ovr.Numberer != "" {
		o.Strategy.Numberer = ovr.Numberer
	}
	if ovr.Soe != "" {
		o.Strategy.Soe = ovr.Soe
	}
	if ovr.DirOut != "" {
		o.Data.DirOut = ovr.DirOut
	}
}

// PostProcess checks the data just read
func (o *Simulation) PostProcess() (err error) {
	err = validate.Struct(o)
	if err != nil {
		return chk.Err("simulation %q is invalid:\n%v", o.Key, err)
	}
	if o.Strategy.Prms == nil {
		o.Strategy.Prms = make(map[string]float64)
	}
	return
}

// Domain builds the domain described by the simulation data
func (o *Simulation) Domain() (d *dom.Domain, err error) {
	d = dom.New()
	d.Verbose = o.Data.Verbose
	for _, n := range o.Nodes {
		if _, err = d.AddNode(n.Id, n.Ndof, n.Part); err != nil {
			return nil, err
		}
	}
	for _, e := range o.Elems {
		ele, err := dom.NewElement(e.Type, e.Id, e.Verts, e.Prms)
		if err != nil {
			return nil, err
		}
		if err = d.AddElement(ele); err != nil {
			return nil, err
		}
	}
	for _, sp := range o.Sps {
		if err = d.AddSP(sp.Node, sp.Dof, sp.Value); err != nil {
			return nil, err
		}
	}
	for _, mp := range o.Mps {
		if err = d.AddMP(mp.Retained, mp.Rdof, mp.Constrained, mp.Cdof, mp.Factor); err != nil {
			return nil, err
		}
	}
	for _, l := range o.Loads {
		if err = d.SetLoad(l.Node, l.Dof, l.Value); err != nil {
			return nil, err
		}
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *Data) SetDefault() {
	o.DirOut = "/tmp/gosolu"
}

// SetDefault sets defaults values
func (o *StrategyData) SetDefault() {
	o.Handler = "transformation_constraint_handler"
	o.Numberer = "default_numberer"
	o.Soe = "band_gen_lin_soe"
	o.Integrator = "load_control"
	o.Algorithm = "newton_raphson_soln_algo"
	o.Test = "norm_disp_incr_conv_test"
	o.Slack = 20
}

// SetDefault sets defaults values
func (o *TimeControl) SetDefault() {
	o.Nsteps = 1
	o.Dt = 1
}
