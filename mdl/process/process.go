// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package process implements the brewing process parameters
package process

import (
	"strings"

	"github.com/mr-pablinho/espresso-time/errs"

	"github.com/cpmech/gosl/fun/dbf"
)

// BarToPa converts bar into Pa
const BarToPa = 1e5

// Model holds the parameters of one shot
type Model struct {
	P  float64 // applied pressure [Pa]
	T  float64 // water temperature [°C]; informational only
	Mc float64 // coffee mass (dose) [g]
}

// New returns a new set of process parameters. The pressure is given in bar
func New(pbar, temp, mc float64) (o *Model, err error) {
	o = new(Model)
	err = o.Init(dbf.Params{
		&dbf.P{N: "pbar", V: pbar},
		&dbf.P{N: "temp", V: temp},
		&dbf.P{N: "mc", V: mc},
	})
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises this structure
//
//	Note: "pbar" is given in bar and "pa" in Pa
func (o *Model) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pbar":
			o.P = p.V * BarToPa
		case "pa":
			o.P = p.V
		case "temp":
			o.T = p.V
		case "mc":
			o.Mc = p.V
		default:
			return errs.Invalid("process: parameter named %q is incorrect", p.N)
		}
	}
	if o.P < 0 {
		return errs.Invalid("process: pressure must be non-negative. P=%g Pa", o.P)
	}
	if o.Mc <= 0 {
		return errs.Invalid("process: coffee mass must be positive. mc=%g", o.Mc)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "pbar", V: 9},  // [bar]
			&dbf.P{N: "temp", V: 93}, // [°C]
			&dbf.P{N: "mc", V: 18},   // [g]
		}
	}
	return dbf.Params{
		&dbf.P{N: "pbar", V: o.Bar()},
		&dbf.P{N: "temp", V: o.T},
		&dbf.P{N: "mc", V: o.Mc},
	}
}

// Bar returns the applied pressure in bar
func (o Model) Bar() float64 {
	return o.P / BarToPa
}
