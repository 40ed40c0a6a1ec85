// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/mr-pablinho/espresso-time/errs"
)

// Result holds the trajectory of one simulation and the data needed by diagnostics
type Result struct {
	T  []float64 // times [s]
	H  []float64 // heights of liquid column [m]
	Me []float64 // extracted masses [g]

	// constants of the run
	Mc   float64 // coffee mass [g]
	RhoA float64 // ρ・A
	HMin float64 // column height below which the concentration is taken as zero [m]
}

// Final returns the terminal state
func (o *Result) Final() (h, me float64) {
	n := len(o.T) - 1
	return o.H[n], o.Me[n]
}

// HeightMm returns the heights in mm
func (o *Result) HeightMm() (hmm []float64) {
	hmm = make([]float64, len(o.H))
	for i, h := range o.H {
		hmm[i] = h * 1000.0
	}
	return
}

// Yield returns the extraction yield mₑ/mc・100 [%] at all times
func (o *Result) Yield() (ey []float64) {
	ey = make([]float64, len(o.Me))
	for i, me := range o.Me {
		ey[i] = me / o.Mc * 100.0
	}
	return
}

// FinalYield returns the extraction yield at tmax [%]
func (o *Result) FinalYield() float64 {
	_, me := o.Final()
	return me / o.Mc * 100.0
}

// Concentration returns mₑ/(ρ・A・h) at sample i. It is zero while h ≤ HMin
func (o *Result) Concentration(i int) float64 {
	if o.H[i] <= o.HMin {
		return 0
	}
	return o.Me[i] / (o.RhoA * o.H[i])
}

// TDS returns the total dissolved solids in the final liquid [%]. A zero value and
// ErrDegenerate are returned if the column is empty at tmax
func (o *Result) TDS() (float64, error) {
	h, _ := o.Final()
	if h <= o.HMin {
		return 0, errs.Degenerate("sim: TDS is undefined with an empty column. h=%g", h)
	}
	return o.Concentration(len(o.T)-1) * 100.0, nil
}

// TimeToHeight returns the first sampled time when the column reaches hmm [mm]
func (o *Result) TimeToHeight(hmm float64) (float64, error) {
	if hmm <= 0 {
		return 0, errs.Invalid("sim: target height must be positive. target=%g mm", hmm)
	}
	for i, h := range o.H {
		if h*1000.0 >= hmm {
			return o.T[i], nil
		}
	}
	return 0, errs.NotReached("sim: column height of %g mm not reached within %g s", hmm, o.T[len(o.T)-1])
}
