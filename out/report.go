// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reporting and plotting of results
package out

import (
	"errors"

	"github.com/mr-pablinho/espresso-time/ana"
	"github.com/mr-pablinho/espresso-time/errs"
	"github.com/mr-pablinho/espresso-time/sim"

	"github.com/cpmech/gosl/io"
)

// Report returns a summary of the results. flow and/or res may be nil
//
//	target -- target column height [mm]
func Report(flow *ana.DarcyFlow, res *sim.Result, target float64) (l string) {

	// steady flow
	if flow != nil {
		l += io.Sf("Flow rate = %.4f L/s\n", flow.QLitres())
		l += io.Sf("Time = %.4f s\n", flow.Time)
		l += io.Sf("Velocity = %.4f m/s\n", flow.Vel)
		l += io.Sf("Reynolds number = %.4f\n", flow.Re)
	}
	if res == nil {
		return
	}

	// extraction
	tex, err := res.TimeToHeight(target)
	switch {
	case err == nil:
		l += io.Sf("Extraction time to %gmm: %.2f s\n", target, tex)
	case errors.Is(err, errs.ErrTargetNotReached):
		l += io.Sf("Extraction time to %gmm: not reached within %g s\n", target, res.T[len(res.T)-1])
	default:
		l += io.Sf("Extraction time to %gmm: %v\n", target, err)
	}
	l += io.Sf("Final extraction yield: %.2f%%\n", res.FinalYield())
	tds, err := res.TDS()
	if err != nil {
		l += "Total Dissolved Solids: undefined\n"
	} else {
		l += io.Sf("Total Dissolved Solids: %.2f%%\n", tds)
	}
	return
}
