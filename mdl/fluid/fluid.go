// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements the physical constants of the brewing liquid
package fluid

import (
	"strings"

	"github.com/mr-pablinho/espresso-time/errs"

	"github.com/cpmech/gosl/fun/dbf"
)

// Model holds the constants of an incompressible liquid under gravity (g).
// The hydrostatic pressure of a liquid column with height h is:
//
//	p(h) = ρ・g・h
type Model struct {
	Rho  float64 // intrinsic density [kg/m³]
	Mu   float64 // dynamic viscosity [Pa・s]
	Grav float64 // gravity acceleration (positive constant) [m/s²]
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	o.Rho, o.Mu, o.Grav = 1000.0, 8.90e-4, 9.81
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rho":
			o.Rho = p.V
		case "mu":
			o.Mu = p.V
		case "g", "grav":
			o.Grav = p.V
		default:
			return errs.Invalid("fluid: parameter named %q is incorrect", p.N)
		}
	}
	if o.Rho <= 0 {
		return errs.Invalid("fluid: density must be positive. rho=%g", o.Rho)
	}
	if o.Mu <= 0 {
		return errs.Invalid("fluid: viscosity must be positive. mu=%g", o.Mu)
	}
	if o.Grav <= 0 {
		return errs.Invalid("fluid: gravity must be positive. g=%g", o.Grav)
	}
	return
}

// GetPrms gets (an example of) parameters
//
//	Input:
//	 example -- returns example of parameters (water at brewing temperature); othewise returs current parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rho", V: 1000.0}, // [kg/m³]
			&dbf.P{N: "mu", V: 8.90e-4}, // [Pa・s]
			&dbf.P{N: "g", V: 9.81},     // [m/s²]
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho", V: o.Rho},
		&dbf.P{N: "mu", V: o.Mu},
		&dbf.P{N: "g", V: o.Grav},
	}
}

// Hydrostatic computes the pressure at the bottom of a liquid column with height h
func (o Model) Hydrostatic(h float64) float64 {
	return o.Rho * o.Grav * h
}
