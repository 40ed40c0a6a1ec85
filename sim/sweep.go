// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"sync"

	"github.com/mr-pablinho/espresso-time/errs"
	"github.com/mr-pablinho/espresso-time/mdl/process"
)

// Sweep runs one simulation for each applied pressure (in bar) concurrently.
// Results are returned in the same order as pbars; the first error is returned
func (o Simulator) Sweep(pbars []float64, tmax float64, npts int) (results []*Result, err error) {

	// check pressures
	for _, pbar := range pbars {
		if pbar < 0 {
			return nil, errs.Invalid("sim: pressure must be non-negative. P=%g bar", pbar)
		}
	}

	// run
	results = make([]*Result, len(pbars))
	failures := make([]error, len(pbars))
	var wg sync.WaitGroup
	for i, pbar := range pbars {
		wg.Add(1)
		go func(i int, pbar float64) {
			defer wg.Done()
			s := o
			s.Proc.P = pbar * process.BarToPa
			results[i], failures[i] = s.Simulate(tmax, npts)
		}(i, pbar)
	}
	wg.Wait()

	// first error
	for _, e := range failures {
		if e != nil {
			return nil, e
		}
	}
	return
}
