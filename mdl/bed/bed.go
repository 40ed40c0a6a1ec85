// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bed implements the geometry of a packed coffee bed (puck)
//
//	References:
//	 [1] Bear J (1972) Dynamics of fluids in porous media. Elsevier. (Carman-Kozeny, Ergun)
package bed

import (
	"math"
	"strings"

	"github.com/mr-pablinho/espresso-time/errs"

	"github.com/cpmech/gosl/fun/dbf"
)

// Geometry holds the dimensions of a cylindrical bed of packed particles.
// The intrinsic permeability follows the Ergun-type correlation:
//
//	       dp²・φ³
//	k = -------------
//	     180・(1-φ)²
type Geometry struct {

	// parameters
	H   float64 // bed height [m]
	D   float64 // bed diameter [m]
	Dp  float64 // particle diameter [m]
	Phi float64 // porosity [-]

	// derived
	area float64 // cross-sectional area [m²]
	perm float64 // intrinsic permeability [m²]
}

// New returns a new bed geometry
func New(H, D, Dp, Phi float64) (o *Geometry, err error) {
	o = new(Geometry)
	err = o.Init(dbf.Params{
		&dbf.P{N: "H", V: H},
		&dbf.P{N: "D", V: D},
		&dbf.P{N: "dp", V: Dp},
		&dbf.P{N: "phi", V: Phi},
	})
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises this structure. Porosity is 0.4 if not given
func (o *Geometry) Init(prms dbf.Params) (err error) {
	o.Phi = 0.4
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "h":
			o.H = p.V
		case "d":
			o.D = p.V
		case "dp":
			o.Dp = p.V
		case "phi":
			o.Phi = p.V
		default:
			return errs.Invalid("bed: parameter named %q is incorrect", p.N)
		}
	}
	if o.H <= 0 {
		return errs.Invalid("bed: height must be positive. H=%g", o.H)
	}
	if o.D <= 0 {
		return errs.Invalid("bed: diameter must be positive. D=%g", o.D)
	}
	if o.Dp <= 0 {
		return errs.Invalid("bed: particle diameter must be positive. dp=%g", o.Dp)
	}
	if o.Phi <= 0 || o.Phi >= 1 {
		return errs.Invalid("bed: porosity must be in (0,1). phi=%g", o.Phi)
	}
	o.area = math.Pi * math.Pow(o.D/2.0, 2)
	o.perm = o.Dp * o.Dp * math.Pow(o.Phi, 3) / (180.0 * math.Pow(1.0-o.Phi, 2))
	return
}

// GetPrms gets (an example of) parameters
func (o Geometry) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "H", V: 0.03},    // [m]
			&dbf.P{N: "D", V: 0.058},   // [m]
			&dbf.P{N: "dp", V: 400e-6}, // [m]
			&dbf.P{N: "phi", V: 0.4},   // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "H", V: o.H},
		&dbf.P{N: "D", V: o.D},
		&dbf.P{N: "dp", V: o.Dp},
		&dbf.P{N: "phi", V: o.Phi},
	}
}

// Area returns the cross-sectional area π・(D/2)²
func (o Geometry) Area() float64 {
	return o.area
}

// Perm returns the intrinsic permeability
func (o Geometry) Perm() float64 {
	return o.perm
}
