// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"math"
	"testing"

	"github.com/mr-pablinho/espresso-time/errs"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_darcy01(tst *testing.T) {

	chk.PrintTitle("darcy01. steady flow through coffee bed")

	var o SteadyDarcy
	err := o.Init(o.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	res, err := o.Calc()
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	io.Pforan("Flow rate = %.4f L/s\n", res.QLitres())
	io.Pforan("Time = %.4f s\n", res.Time)
	io.Pforan("Velocity = %.4f m/s\n", res.Vel)
	io.Pforan("Reynolds number = %.4f\n", res.Re)

	chk.Float64(tst, "A   ", 1e-17, res.Area, 0.0026420794216690164)
	chk.Float64(tst, "Q   ", 1e-15, res.Q, -0.013210397108345083)
	chk.Float64(tst, "Q[L]", 1e-12, res.QLitres(), -13.210397108345083)
	chk.Float64(tst, "v   ", 1e-12, res.Vel, -5.0)
	chk.Float64(tst, "Re  ", 1e-10, res.Re, -290.0)
	chk.Float64(tst, "time", 1e-12, res.Time, 4.541877091802006)
}

func Test_darcy02(tst *testing.T) {

	chk.PrintTitle("darcy02. closed-form formulas and sign convention")

	k, mu, L, D, vol := 2e-10, 8.9e-4, 0.03, 0.058, 0.04
	for _, Δp := range []float64{-5e5, -1, 1, 1e4, 9e5} {
		o, err := NewSteadyDarcy(k, mu, L, D, 1e6, 1e6-Δp, vol)
		if err != nil {
			tst.Errorf("NewSteadyDarcy failed: %v\n", err)
			return
		}
		res, err := o.Calc()
		if err != nil {
			tst.Errorf("Calc failed: %v\n", err)
			return
		}
		A := math.Pi * math.Pow(D/2, 2)
		Q := -A * k * (Δp / L) / mu
		chk.AnaNum(tst, "Q ", 1e-15, Q, res.Q, chk.Verbose)
		chk.AnaNum(tst, "v ", 1e-12, Q/A, res.Vel, chk.Verbose)
		chk.AnaNum(tst, "Re", 1e-9, Q/A*D/mu, res.Re, chk.Verbose)
		chk.AnaNum(tst, "t ", 1e-9, vol/math.Abs(Q), res.Time, chk.Verbose)
		if Δp > 0 && res.Q >= 0 {
			tst.Errorf("Q must be negative for positive pressure drop. Q=%g\n", res.Q)
		}
		if res.Time <= 0 {
			tst.Errorf("time must be positive. time=%g\n", res.Time)
		}
	}
}

func Test_darcy03(tst *testing.T) {

	chk.PrintTitle("darcy03. invalid geometry")

	for i, c := range [][]float64{
		{1e-8, 1e-3, 0.02, 0},
		{1e-8, 1e-3, 0.02, -0.058},
		{1e-8, 1e-3, 0, 0.058},
		{1e-8, 0, 0.02, 0.058},
	} {
		_, err := NewSteadyDarcy(c[0], c[1], c[2], c[3], 9e5, 8.9e5, 0.06)
		if !errors.Is(err, errs.ErrInvalidParameter) {
			tst.Errorf("case %d: ErrInvalidParameter expected. err=%v\n", i, err)
		}
	}

	// also guarded when fields are set directly
	o := SteadyDarcy{K: 1e-8, Mu: 1e-3, L: 0.02}
	res, err := o.Calc()
	if !errors.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("ErrInvalidParameter expected. err=%v\n", err)
	}
	if res.Q != 0 || math.IsNaN(res.Vel) {
		tst.Errorf("no computation may happen on invalid input. res=%+v\n", res)
	}
}
