// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements straight-line relative permeabilities
//   krw = krwmax・swe   krn = krnmax・(1 - swe)   with swe clipped to [0,1]
type Lin struct {
	swmin, swmax   float64 // saturation limits
	krwmax, krnmax float64 // end-point values
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises this structure
func (o *Lin) Init(prms dbf.Params) (err error) {
	o.swmax, o.krwmax, o.krnmax = 1, 1, 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "swmin":
			o.swmin = p.V
		case "swmax":
			o.swmax = p.V
		case "krwmax":
			o.krwmax = p.V
		case "krnmax":
			o.krnmax = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.swmin < 0 || o.swmax > 1 || o.swmin >= o.swmax {
		return chk.Err("lin: saturation limits are incorrect: swmin = %g, swmax = %g", o.swmin, o.swmax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "swmin", V: 0.2},
			&dbf.P{N: "swmax", V: 0.9},
			&dbf.P{N: "krwmax", V: 0.6},
			&dbf.P{N: "krnmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "swmin", V: o.swmin},
		&dbf.P{N: "swmax", V: o.swmax},
		&dbf.P{N: "krwmax", V: o.krwmax},
		&dbf.P{N: "krnmax", V: o.krnmax},
	}
}

func (o Lin) swe(sw float64) (swe float64, inside bool) {
	swe = (sw - o.swmin) / (o.swmax - o.swmin)
	if swe <= 0 {
		return 0, false
	}
	if swe >= 1 {
		return 1, false
	}
	return swe, true
}

// Krw returns krw
func (o Lin) Krw(sw float64) float64 {
	swe, _ := o.swe(sw)
	return o.krwmax * swe
}

// Krn returns krn
func (o Lin) Krn(sw float64) float64 {
	swe, _ := o.swe(sw)
	return o.krnmax * (1 - swe)
}

// DkrwDsw returns ∂krw/∂sw
func (o Lin) DkrwDsw(sw float64) float64 {
	if _, inside := o.swe(sw); !inside {
		return 0
	}
	return o.krwmax / (o.swmax - o.swmin)
}

// DkrnDsw returns ∂krn/∂sw
func (o Lin) DkrnDsw(sw float64) float64 {
	if _, inside := o.swe(sw); !inside {
		return 0
	}
	return -o.krnmax / (o.swmax - o.swmin)
}
