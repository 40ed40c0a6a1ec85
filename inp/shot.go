// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.shot) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mr-pablinho/espresso-time/ana"
	"github.com/mr-pablinho/espresso-time/mdl/bed"
	"github.com/mr-pablinho/espresso-time/mdl/fluid"
	"github.com/mr-pablinho/espresso-time/mdl/process"
	"github.com/mr-pablinho/espresso-time/mdl/transfer"
	"github.com/mr-pablinho/espresso-time/sim"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// SolverData holds ODE solver and sampling data
type SolverData struct {
	Method string  `json:"method"` // ODE method; e.g. "Radau5"
	Atol   float64 `json:"atol"`   // absolute tolerance
	Rtol   float64 `json:"rtol"`   // relative tolerance
	HMin   float64 `json:"hmin"`   // column height below which the concentration is taken as zero [m]
	Tmax   float64 `json:"tmax"`   // final time [s]
	Npts   int     `json:"npts"`   // number of samples
	Target float64 `json:"target"` // target column height [mm]
}

// Shot holds all data of one espresso shot
type Shot struct {

	// global information
	Desc   string `json:"desc"`   // description of shot
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/espresso
	Plot   bool   `json:"plot"`   // save figure with trajectories

	// parameters
	Fluid    dbf.Params `json:"fluid"`    // liquid constants
	Bed      dbf.Params `json:"bed"`      // puck geometry
	Process  dbf.Params `json:"process"`  // pressure, temperature and dose
	Transfer dbf.Params `json:"transfer"` // mass transfer law
	Darcy    dbf.Params `json:"darcy"`    // steady Darcy flow calculator; optional

	// solver
	Solver SolverData `json:"solver"`

	// derived
	Key string // filename key; e.g. espresso.shot => espresso
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	var ctrl sim.Control
	ctrl.SetDefault()
	o.Method = ctrl.Method
	o.Atol = ctrl.Atol
	o.Rtol = ctrl.Rtol
	o.HMin = ctrl.HMin
	o.Tmax = 30
	o.Npts = sim.DefaultNpts
	o.Target = 30
}

// Control returns the simulator settings
func (o SolverData) Control(verbose bool) *sim.Control {
	return &sim.Control{Method: o.Method, Atol: o.Atol, Rtol: o.Rtol, HMin: o.HMin, Verbose: verbose}
}

// ReadShot reads a shot file
func ReadShot(shotfilepath string) (o *Shot, err error) {

	// read file. io.ReadFile panics on failure
	if _, err = os.Stat(os.ExpandEnv(shotfilepath)); err != nil {
		return nil, chk.Err("ReadShot: cannot read shot file %q:\n%v", shotfilepath, err)
	}
	b := io.ReadFile(shotfilepath)

	// set default values
	o = new(Shot)
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadShot: cannot unmarshal shot file %q:\n%v", shotfilepath, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(filepath.Base(shotfilepath))
	o.DirOut = os.ExpandEnv(o.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/espresso/" + o.Key
	}
	return
}

// Simulator allocates the extraction simulator
func (o Shot) Simulator(verbose bool) (s *sim.Simulator, err error) {
	var fld fluid.Model
	if err = fld.Init(o.Fluid); err != nil {
		return
	}
	var geo bed.Geometry
	if err = geo.Init(o.Bed); err != nil {
		return
	}
	var prc process.Model
	if err = prc.Init(o.Process); err != nil {
		return
	}
	var mtr transfer.Model
	if err = mtr.Init(o.Transfer); err != nil {
		return
	}
	return sim.New(fld, geo, prc, mtr, o.Solver.Control(verbose))
}

// SteadyDarcy allocates the steady Darcy flow calculator. nil is returned if
// the shot file has no "darcy" parameters
func (o Shot) SteadyDarcy() (d *ana.SteadyDarcy, err error) {
	if len(o.Darcy) == 0 {
		return
	}
	d = new(ana.SteadyDarcy)
	if err = d.Init(o.Darcy); err != nil {
		return nil, err
	}
	return
}
