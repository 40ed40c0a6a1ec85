// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

import (
	"errors"
	"math"
	"testing"

	"github.com/mr-pablinho/espresso-time/errs"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_bed01(tst *testing.T) {

	chk.PrintTitle("bed01. area and permeability of espresso puck")

	var o Geometry
	err := o.Init(o.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A", 1e-15, o.Area(), math.Pi*0.029*0.029)
	chk.Float64(tst, "k", 1e-22, o.Perm(), 1.6e-7*0.064/(180*0.36))
	io.Pforan("A = %v\n", o.Area())
	io.Pforan("k = %v\n", o.Perm())
}

func Test_bed02(tst *testing.T) {

	chk.PrintTitle("bed02. positive permeability for all geometries")

	for _, D := range utl.LinSpace(0.01, 0.1, 5) {
		for _, dp := range utl.LinSpace(50e-6, 1e-3, 5) {
			for _, phi := range utl.LinSpace(0.05, 0.95, 7) {
				o, err := New(0.02, D, dp, phi)
				if err != nil {
					tst.Errorf("New failed: %v\n", err)
					return
				}
				if o.Area() != math.Pi*math.Pow(D/2.0, 2) {
					tst.Errorf("area is incorrect: D=%g A=%g\n", D, o.Area())
				}
				if o.Perm() <= 0 {
					tst.Errorf("permeability must be positive: dp=%g phi=%g k=%g\n", dp, phi, o.Perm())
				}
			}
		}
	}
}

func Test_bed03(tst *testing.T) {

	chk.PrintTitle("bed03. invalid geometry")

	for i, g := range [][]float64{
		{0, 0.058, 400e-6, 0.4},
		{0.03, 0, 400e-6, 0.4},
		{0.03, -0.058, 400e-6, 0.4},
		{0.03, 0.058, 0, 0.4},
		{0.03, 0.058, 400e-6, 0},
		{0.03, 0.058, 400e-6, 1},
	} {
		o, err := New(g[0], g[1], g[2], g[3])
		if !errors.Is(err, errs.ErrInvalidParameter) {
			tst.Errorf("case %d: ErrInvalidParameter expected. err=%v\n", i, err)
		}
		if o != nil {
			tst.Errorf("case %d: geometry must be nil on error\n", i)
		}
	}
}
