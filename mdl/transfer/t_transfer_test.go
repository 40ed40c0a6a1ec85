// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transfer

import (
	"errors"
	"testing"

	"github.com/mr-pablinho/espresso-time/errs"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_transfer01(tst *testing.T) {

	chk.PrintTitle("transfer01. rate and derivatives")

	var o Model
	err := o.Init(o.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	mc := 18.0
	V, m := 2.0, 0.1

	// concentration form of the law
	conc := o.Kc * (o.Cs - m/V) * V * (1 - m/(o.Fsol*mc))
	chk.Float64(tst, "rate", 1e-15, o.Rate(V, m, mc), conc)
	chk.Float64(tst, "rate(V=0,m=0)", 1e-15, o.Rate(0, 0, mc), 0)
	chk.Float64(tst, "capacity", 1e-15, o.Capacity(V), 0.6)

	dRdV, dRdm := o.Derivs(V, m, mc)
	chk.DerivScaSca(tst, "dR/dV", 1e-9, dRdV, V, 1e-3, chk.Verbose, func(x float64) float64 {
		return o.Rate(x, m, mc)
	})
	chk.DerivScaSca(tst, "dR/dm", 1e-9, dRdm, m, 1e-3, chk.Verbose, func(x float64) float64 {
		return o.Rate(V, x, mc)
	})
}

func Test_transfer02(tst *testing.T) {

	chk.PrintTitle("transfer02. no depletion")

	var o Model
	err := o.Init(dbf.Params{&dbf.P{N: "fsol", V: 0}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rate", 1e-15, o.Rate(2, 0.1, 18), 0.05*(0.3*2-0.1))
	dRdV, dRdm := o.Derivs(2, 0.1, 18)
	chk.Float64(tst, "dR/dV", 1e-15, dRdV, 0.015)
	chk.Float64(tst, "dR/dm", 1e-15, dRdm, -0.05)

	for _, prms := range []dbf.Params{
		{&dbf.P{N: "kc", V: -1}},
		{&dbf.P{N: "Cs", V: -0.3}},
		{&dbf.P{N: "fsol", V: 1.5}},
		{&dbf.P{N: "alpha", V: 1}},
	} {
		var bad Model
		if err := bad.Init(prms); !errors.Is(err, errs.ErrInvalidParameter) {
			tst.Errorf("%q: ErrInvalidParameter expected. err=%v\n", prms[0].N, err)
		}
	}
}

func Test_transfer03(tst *testing.T) {

	chk.PrintTitle("transfer03. default depletion")

	var o Model
	if err := o.Init(nil); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "fsol", 1e-15, o.Fsol, 0.3)

	// no extraction once the soluble part of the dose is gone
	mc := 18.0
	chk.Float64(tst, "rate(m=fsol・mc)", 1e-15, o.Rate(2, o.Fsol*mc, mc), 0)

	// the plain law is recovered with fsol = 0
	var p Model
	if err := p.Init(dbf.Params{&dbf.P{N: "fsol", V: 0}}); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "plain rate", 1e-15, p.Rate(2, 5.4, mc), p.Kc*(p.Cs-5.4/2)*2)
}
