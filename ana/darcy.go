// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions for flow through porous beds
package ana

import (
	"math"
	"strings"

	"github.com/mr-pablinho/espresso-time/errs"

	"github.com/cpmech/gosl/fun/dbf"
)

// SteadyDarcy computes the steady flow through a bed of length L and diameter D
// under a constant pressure drop Δp = pin - pout. The solution is:
//
//	 A    = π・(D/2)²
//	 Q    = -A・k・(Δp/L)/μ
//	 v    = Q/A
//	 Re   = v・D/μ
//	 time = vol/|Q|
//
//	Note: the leading minus sign of Q is kept; thus Q < 0 for Δp > 0
type SteadyDarcy struct {
	K    float64 // intrinsic permeability [m²]
	Mu   float64 // dynamic viscosity [Pa・s]
	L    float64 // bed length [m]
	D    float64 // bed diameter [m]
	Pin  float64 // inlet pressure [Pa]
	Pout float64 // outlet pressure [Pa]
	Vol  float64 // target volume
}

// DarcyFlow holds the results of SteadyDarcy
type DarcyFlow struct {
	Area float64 // cross-sectional area [m²]
	Q    float64 // volumetric flow rate [m³/s]
	Vel  float64 // superficial velocity [m/s]
	Re   float64 // Reynolds number
	Time float64 // time to deliver the target volume [s]
}

// NewSteadyDarcy returns a new steady Darcy flow calculator
func NewSteadyDarcy(k, mu, L, D, pin, pout, vol float64) (o *SteadyDarcy, err error) {
	o = new(SteadyDarcy)
	err = o.Init(dbf.Params{
		&dbf.P{N: "k", V: k},
		&dbf.P{N: "mu", V: mu},
		&dbf.P{N: "L", V: L},
		&dbf.P{N: "D", V: D},
		&dbf.P{N: "pin", V: pin},
		&dbf.P{N: "pout", V: pout},
		&dbf.P{N: "vol", V: vol},
	})
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises this structure
func (o *SteadyDarcy) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			o.K = p.V
		case "mu":
			o.Mu = p.V
		case "l":
			o.L = p.V
		case "d":
			o.D = p.V
		case "pin":
			o.Pin = p.V
		case "pout":
			o.Pout = p.V
		case "vol":
			o.Vol = p.V
		default:
			return errs.Invalid("darcy: parameter named %q is incorrect", p.N)
		}
	}
	return o.check()
}

// GetPrms gets (an example of) parameters
func (o SteadyDarcy) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "k", V: 1e-8},      // [m²]
			&dbf.P{N: "mu", V: 1e-3},     // [Pa・s]
			&dbf.P{N: "L", V: 0.02},      // [m]
			&dbf.P{N: "D", V: 0.058},     // [m]
			&dbf.P{N: "pin", V: 900000},  // [Pa]
			&dbf.P{N: "pout", V: 890000}, // [Pa]
			&dbf.P{N: "vol", V: 0.06},    // [L]
		}
	}
	return dbf.Params{
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "mu", V: o.Mu},
		&dbf.P{N: "L", V: o.L},
		&dbf.P{N: "D", V: o.D},
		&dbf.P{N: "pin", V: o.Pin},
		&dbf.P{N: "pout", V: o.Pout},
		&dbf.P{N: "vol", V: o.Vol},
	}
}

// Calc computes the steady flow
func (o SteadyDarcy) Calc() (res DarcyFlow, err error) {
	if err = o.check(); err != nil {
		return
	}
	Δp := o.Pin - o.Pout
	res.Area = math.Pi * math.Pow(o.D/2.0, 2)
	res.Q = -res.Area * o.K * (Δp / o.L) / o.Mu
	res.Vel = res.Q / res.Area
	res.Re = res.Vel * o.D / o.Mu
	res.Time = o.Vol / math.Abs(res.Q)
	return
}

// QLitres returns the flow rate in L/s
func (o DarcyFlow) QLitres() float64 {
	return o.Q * 1000.0
}

// check validates the parameters before any division
func (o SteadyDarcy) check() error {
	if o.D <= 0 {
		return errs.Invalid("darcy: diameter must be positive. D=%g", o.D)
	}
	if o.L <= 0 {
		return errs.Invalid("darcy: length must be positive. L=%g", o.L)
	}
	if o.Mu <= 0 {
		return errs.Invalid("darcy: viscosity must be positive. mu=%g", o.Mu)
	}
	return nil
}
