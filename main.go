// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/mr-pablinho/espresso-time/ana"
	"github.com/mr-pablinho/espresso-time/inp"
	"github.com/mr-pablinho/espresso-time/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".shot", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nEspresso-time -- flow and extraction in an espresso puck\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save figure", "doplot", doplot,
		))
	}

	// input data
	shot, err := inp.ReadShot(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}

	// steady flow
	var flow *ana.DarcyFlow
	darcy, err := shot.SteadyDarcy()
	if err != nil {
		chk.Panic("%v", err)
	}
	if darcy != nil {
		res, err := darcy.Calc()
		if err != nil {
			chk.Panic("%v", err)
		}
		flow = &res
	}

	// extraction
	simulator, err := shot.Simulator(verbose)
	if err != nil {
		chk.Panic("%v", err)
	}
	res, err := simulator.Simulate(shot.Solver.Tmax, shot.Solver.Npts)
	if err != nil {
		chk.Panic("%v", err)
	}

	// results
	io.Pf("\n%s", out.Report(flow, res, shot.Solver.Target))
	if doplot || shot.Plot {
		out.Plot(res, shot.DirOut, shot.Key)
		if verbose {
			io.Pforan("figure saved to %s/%s.eps\n", shot.DirOut, shot.Key)
		}
	}
}
