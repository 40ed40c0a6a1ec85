// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/mr-pablinho/espresso-time/errs"
)

// DefaultNpts is the default number of samples in a trajectory
const DefaultNpts = 1000

// methods maps the adaptive ODE methods accepted by Control to the solver keys.
// Fixed-step methods are not available because Simulate relies on step size control
var methods = map[string]string{
	"Dopri5": "dopri5",
	"Radau5": "radau5",
}

// minAtol is the smallest absolute tolerance accepted by the ODE solver
const minAtol = 1e-15

// Control holds the ODE solver settings
type Control struct {
	Method  string  // ODE method: "Radau5" or "Dopri5"
	Atol    float64 // absolute tolerance
	Rtol    float64 // relative tolerance
	HMin    float64 // column height below which the concentration is taken as zero [m]
	Verbose bool    // show messages
}

// SetDefault sets default values
func (o *Control) SetDefault() {
	o.Method = "Radau5"
	o.Atol = 1e-8
	o.Rtol = 1e-6
	o.HMin = 1e-9
}

// check validates the settings
func (o Control) check() error {
	if _, ok := methods[o.Method]; !ok {
		return errs.Invalid("sim: ODE method %q is not available", o.Method)
	}
	if o.Atol <= minAtol || o.Rtol <= 0 {
		return errs.Invalid("sim: tolerances must be positive and atol > %g. atol=%g rtol=%g", minAtol, o.Atol, o.Rtol)
	}
	if o.HMin < 0 {
		return errs.Invalid("sim: HMin must be non-negative. HMin=%g", o.HMin)
	}
	return nil
}
