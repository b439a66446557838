// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Check checks the inverse sw(pc(sw)) and the derivative ∂pc/∂sw at npts stations in [sw0, swf]
//  swSkip -- stations to skip in the derivative check (e.g. kinks)
func Check(tst *testing.T, mdl Model, sw0, swf float64, npts int, tolSw, tolD float64, swSkip []float64, tolSkip float64, verbose bool) {
	for _, sw := range utl.LinSpace(sw0, swf, npts) {
		pc := mdl.Pc(sw)
		if verbose {
			io.Pforan("sw = %8.5f  pc = %13.6e\n", sw, pc)
		}
		chk.Float64(tst, "sw(pc(sw))", tolSw, mdl.Sw(pc), sw)
		if doskip(sw, swSkip, tolSkip) {
			continue
		}
		h := 1e-6
		num := (mdl.Pc(sw+h) - mdl.Pc(sw-h)) / (2.0 * h)
		chk.Float64(tst, "∂pc/∂sw", tolD, mdl.DpcDsw(sw), num)
	}
}

// doskip analyse whether a point should be skip or not
func doskip(x float64, xskip []float64, tol float64) bool {
	for _, v := range xskip {
		if math.Abs(x-v) < tol {
			return true
		}
	}
	return false
}
