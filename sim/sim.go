// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the extraction simulator of an espresso shot. The state
// y = {h, mₑ} holds the height of the liquid column and the extracted mass:
//
//	Q(h)    = (k・A/(μ・L))・(P + ρ・g・h)
//
//	        / dh/dt  \   /       Q(h)/A        \
//	dy/dt = |        | = |                     |
//	        \ dmₑ/dt /   \ kc・(Cs・ρ・A・h - mₑ)・φ \
//
// with y(0) = {0, 0}. See package transfer for φ.
package sim

import (
	"math"

	"github.com/mr-pablinho/espresso-time/errs"
	"github.com/mr-pablinho/espresso-time/mdl/bed"
	"github.com/mr-pablinho/espresso-time/mdl/fluid"
	"github.com/mr-pablinho/espresso-time/mdl/process"
	"github.com/mr-pablinho/espresso-time/mdl/transfer"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/utl"
)

// Simulator holds all data of the extraction model. It is not modified by Simulate
type Simulator struct {

	// models
	Fluid fluid.Model    // liquid constants
	Bed   bed.Geometry   // puck geometry
	Proc  process.Model  // shot parameters
	Mtr   transfer.Model // mass transfer law
	Ctrl  Control        // solver settings

	// derived
	area  float64 // A
	cflow float64 // k・A/(μ・L)
	rhoA  float64 // ρ・A
}

// New returns a new simulator. ctrl may be nil to use default solver settings
func New(fld fluid.Model, geo bed.Geometry, prc process.Model, mtr transfer.Model, ctrl *Control) (o *Simulator, err error) {

	// check models
	if fld.Rho <= 0 || fld.Mu <= 0 || fld.Grav <= 0 {
		return nil, errs.Invalid("sim: fluid constants must be positive. rho=%g mu=%g g=%g", fld.Rho, fld.Mu, fld.Grav)
	}
	if geo.Area() <= 0 || geo.Perm() <= 0 || geo.H <= 0 {
		return nil, errs.Invalid("sim: bed geometry has not been initialised")
	}
	if prc.P < 0 || prc.Mc <= 0 {
		return nil, errs.Invalid("sim: process parameters are invalid. P=%g mc=%g", prc.P, prc.Mc)
	}
	if mtr.Kc < 0 || mtr.Cs < 0 || mtr.Fsol < 0 || mtr.Fsol > 1 {
		return nil, errs.Invalid("sim: mass transfer parameters are invalid. kc=%g Cs=%g fsol=%g", mtr.Kc, mtr.Cs, mtr.Fsol)
	}

	// solver settings
	o = &Simulator{Fluid: fld, Bed: geo, Proc: prc, Mtr: mtr}
	if ctrl == nil {
		o.Ctrl.SetDefault()
	} else {
		o.Ctrl = *ctrl
	}
	if err = o.Ctrl.check(); err != nil {
		return nil, err
	}

	// derived
	o.area = geo.Area()
	o.cflow = geo.Perm() * o.area / (fld.Mu * geo.H)
	o.rhoA = fld.Rho * o.area
	return
}

// Flow computes the Darcy flow rate Q(h) [m³/s]
func (o Simulator) Flow(h float64) float64 {
	return o.cflow * (o.Proc.P + o.Fluid.Hydrostatic(h))
}

// Simulate integrates the model from t=0 up to tmax and samples npts uniformly
// spaced times. tmax == 0 returns the initial state only
func (o Simulator) Simulate(tmax float64, npts int) (res *Result, err error) {

	// check input
	if tmax < 0 || math.IsNaN(tmax) || math.IsInf(tmax, 0) {
		return nil, errs.Invalid("sim: tmax must be finite and non-negative. tmax=%g", tmax)
	}
	if tmax == 0 {
		return o.newResult([]float64{0}), nil
	}
	if npts < 2 {
		return nil, errs.Invalid("sim: at least two samples are required. npts=%d", npts)
	}

	// results
	res = o.newResult(utl.LinSpace(0, tmax, npts))

	// the solver panics on non-convergence, singular iteration matrices and
	// non-finite rates
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, errs.Integration("sim: ODE solver failed: %v", r)
		}
	}()

	// ode solver
	conf := ode.NewConfig(methods[o.Ctrl.Method], "", nil)
	conf.SetTols(o.Ctrl.Atol, o.Ctrl.Rtol)
	conf.GoChan = false // linear solver panics must reach the recover above
	sol := ode.NewSolver(2, conf, o.fcn, o.jac, nil)
	defer sol.Free()

	// integrate over each sampling interval
	y := la.NewVector(2)
	for i := 1; i < npts; i++ {
		t0, t1 := res.T[i-1], res.T[i]
		sol.Solve(y, t0, t1)
		if !finite(y) {
			return nil, errs.Integration("sim: state diverged at t=%g. h=%g mₑ=%g", t1, y[0], y[1])
		}
		res.H[i], res.Me[i] = y[0], y[1]
	}

	// message
	if o.Ctrl.Verbose {
		h, me := res.Final()
		io.Pforan("sim: P=%g bar tmax=%g s npts=%d => h=%g m mₑ=%g g\n", o.Proc.Bar(), tmax, npts, h, me)
	}
	return
}

// newResult allocates a result for the sampling times T
func (o Simulator) newResult(T []float64) *Result {
	return &Result{
		T:    T,
		H:    make([]float64, len(T)),
		Me:   make([]float64, len(T)),
		Mc:   o.Proc.Mc,
		RhoA: o.rhoA,
		HMin: o.Ctrl.HMin,
	}
}

// rates computes f = dy/dt
func (o Simulator) rates(f, y []float64) {
	h, me := y[0], y[1]
	f[0] = o.Flow(h) / o.area
	f[1] = o.Mtr.Rate(o.rhoA*h, me, o.Proc.Mc)
}

// derivs computes ∂f/∂y
func (o Simulator) derivs(y []float64) (dfdy [2][2]float64) {
	h, me := y[0], y[1]
	dRdV, dRdm := o.Mtr.Derivs(o.rhoA*h, me, o.Proc.Mc)
	dfdy[0][0] = o.cflow * o.Fluid.Rho * o.Fluid.Grav / o.area
	dfdy[1][0] = dRdV * o.rhoA
	dfdy[1][1] = dRdm
	return
}

// fcn is the ODE callback
func (o Simulator) fcn(f la.Vector, dt, t float64, y la.Vector) {
	o.rates(f, y)
	if !finite(f) {
		chk.Panic("non-finite rates at t=%g. f=%v y=%v\n", t, f, y)
	}
}

// jac is the Jacobian callback
func (o Simulator) jac(dfdy *la.Triplet, dt, t float64, y la.Vector) {
	if dfdy.Max() == 0 {
		dfdy.Init(2, 2, 4)
	}
	d := o.derivs(y)
	dfdy.Start()
	dfdy.Put(0, 0, d[0][0])
	dfdy.Put(0, 1, d[0][1])
	dfdy.Put(1, 0, d[1][0])
	dfdy.Put(1, 1, d[1][1])
}

// finite checks that all values are finite
func finite(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
