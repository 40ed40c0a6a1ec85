// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/mr-pablinho/espresso-time/sim"

	"github.com/cpmech/gosl/plt"
)

// Plot plots column height, extracted mass and extraction yield versus time
func Plot(res *sim.Result, dirout, fnkey string) {

	plt.Reset(true, &plt.A{Eps: true, Prop: 1.5})

	plt.Subplot(3, 1, 1)
	plt.Plot(res.T, res.HeightMm(), &plt.A{C: "b", Ls: "-", L: "height"})
	plt.Gll("$t\\;\\mathrm{[s]}$", "$h\\;\\mathrm{[mm]}$", nil)

	plt.Subplot(3, 1, 2)
	plt.Plot(res.T, res.Me, &plt.A{C: "r", Ls: "-", L: "extracted"})
	plt.Gll("$t\\;\\mathrm{[s]}$", "$m_e\\;\\mathrm{[g]}$", nil)

	plt.Subplot(3, 1, 3)
	plt.Plot(res.T, res.Yield(), &plt.A{C: "k", Ls: "-", L: "yield"})
	plt.Gll("$t\\;\\mathrm{[s]}$", "$EY\\;\\mathrm{[\\%]}$", nil)

	plt.Save(dirout, fnkey)
}
