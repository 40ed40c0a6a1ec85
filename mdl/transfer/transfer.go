// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package transfer implements the solid-liquid mass transfer law of the extraction
package transfer

import (
	"strings"

	"github.com/mr-pablinho/espresso-time/errs"

	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements the approach-to-saturation law kc・(Cs - m/V)・V scaled by a
// soluble-fraction depletion factor φ, which is active by default (fsol = 0.3);
// set fsol = 0 to recover the plain law. With V = ρ・A・h being the amount of
// liquid in the column and m the extracted mass:
//
//	dm/dt = kc・(Cs - m/V)・V・φ(m) = kc・(Cs・V - m)・φ(m)
//
//	φ(m) = 1 - m/(fsol・mc)    or    φ = 1 if fsol == 0
//
// The second form is used for evaluation; it is finite at V = 0.
// φ limits m to the soluble part (fsol) of the dose (mc).
type Model struct {
	Kc   float64 // mass transfer coefficient [1/s]
	Cs   float64 // saturation concentration
	Fsol float64 // soluble fraction of the dose [-]; 0 means no depletion
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	o.Kc, o.Cs, o.Fsol = 0.05, 0.3, 0.3
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "kc":
			o.Kc = p.V
		case "cs":
			o.Cs = p.V
		case "fsol":
			o.Fsol = p.V
		default:
			return errs.Invalid("transfer: parameter named %q is incorrect", p.N)
		}
	}
	if o.Kc < 0 {
		return errs.Invalid("transfer: kc must be non-negative. kc=%g", o.Kc)
	}
	if o.Cs < 0 {
		return errs.Invalid("transfer: Cs must be non-negative. Cs=%g", o.Cs)
	}
	if o.Fsol < 0 || o.Fsol > 1 {
		return errs.Invalid("transfer: fsol must be in [0,1]. fsol=%g", o.Fsol)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "kc", V: 0.05},  // [1/s]
			&dbf.P{N: "Cs", V: 0.3},   // [g/mL]
			&dbf.P{N: "fsol", V: 0.3}, // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "kc", V: o.Kc},
		&dbf.P{N: "Cs", V: o.Cs},
		&dbf.P{N: "fsol", V: o.Fsol},
	}
}

// Capacity returns the saturation capacity Cs・V of a liquid amount V
func (o Model) Capacity(V float64) float64 {
	return o.Cs * V
}

// Rate computes dm/dt for liquid amount V, extracted mass m and dose mc
func (o Model) Rate(V, m, mc float64) float64 {
	return o.Kc * (o.Cs*V - m) * o.depletion(m, mc)
}

// Derivs computes ∂(dm/dt)/∂V and ∂(dm/dt)/∂m
func (o Model) Derivs(V, m, mc float64) (dRdV, dRdm float64) {
	φ := o.depletion(m, mc)
	dRdV = o.Kc * o.Cs * φ
	dRdm = -o.Kc * φ
	if o.Fsol > 0 {
		dRdm -= o.Kc * (o.Cs*V - m) / (o.Fsol * mc)
	}
	return
}

// depletion computes φ(m)
func (o Model) depletion(m, mc float64) float64 {
	if o.Fsol == 0 {
		return 1
	}
	return 1 - m/(o.Fsol*mc)
}
