// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brooks

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Input holds the Brooks-Corey data read from a list of parameters
//  Parameters: pe, lam, swmin, swmax and, if regularized, pclow, krnlow, krwhigh
type Input struct {
	Params
	Reg   Regularization // nil if not regularized
	Swmin float64        // residual wetting saturation
	Swmax float64        // maximum wetting saturation
}

// ReadInput reads parameters. Regularization thresholds not given take the default values
func ReadInput(prms dbf.Params, regularized bool) (o Input, err error) {
	o.Swmax = 1.0
	var def DefaultRegularization
	thr := Thresholds{def.PcLowSw(), def.KrnLowSw(), def.KrwHighSw()}
	custom := false
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pe":
			o.Pe = p.V
		case "lam":
			o.Lambda = p.V
		case "swmin":
			o.Swmin = p.V
		case "swmax":
			o.Swmax = p.V
		case "pclow":
			thr.PcLow, custom = p.V, true
		case "krnlow":
			thr.KrnLow, custom = p.V, true
		case "krwhigh":
			thr.KrwHigh, custom = p.V, true
		default:
			return o, chk.Err("brooks: parameter named %q is incorrect\n", p.N)
		}
	}
	if custom && !regularized {
		return o, chk.Err("brooks: regularization thresholds are only available in the regularized model")
	}
	if o.Swmin < 0 || o.Swmax > 1 || o.Swmin >= o.Swmax {
		return o, chk.Err("brooks: saturation limits are incorrect: swmin = %g, swmax = %g", o.Swmin, o.Swmax)
	}
	if !regularized {
		err = o.Params.Validate()
		return
	}
	var reg Regularization = def
	if custom {
		reg = thr
	}
	r, err := NewRegularized(o.Params, reg)
	if err != nil {
		return
	}
	o.Reg = r.Reg
	return
}

// GetPrms returns the current parameters
func (o Input) GetPrms() dbf.Params {
	prms := dbf.Params{
		&dbf.P{N: "pe", V: o.Pe},
		&dbf.P{N: "lam", V: o.Lambda},
		&dbf.P{N: "swmin", V: o.Swmin},
		&dbf.P{N: "swmax", V: o.Swmax},
	}
	if o.Reg != nil {
		prms = append(prms,
			&dbf.P{N: "pclow", V: o.Reg.PcLowSw()},
			&dbf.P{N: "krnlow", V: o.Reg.KrnLowSw()},
			&dbf.P{N: "krwhigh", V: o.Reg.KrwHighSw()},
		)
	}
	return prms
}

// Eff converts sw into swe
func (o Input) Eff(sw float64) float64 {
	return (sw - o.Swmin) / (o.Swmax - o.Swmin)
}

// Abs converts swe into sw
func (o Input) Abs(swe float64) float64 {
	return o.Swmin + swe*(o.Swmax-o.Swmin)
}

// ExamplePrms returns an example of parameters
func ExamplePrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "pe", V: 5.0},
		&dbf.P{N: "lam", V: 2.0},
		&dbf.P{N: "swmin", V: 0.1},
		&dbf.P{N: "swmax", V: 1.0},
	}
}
