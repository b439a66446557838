// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// VanGen implements van Genuchten's model
//   swe(pc) = (1 + (α・pc)ⁿ)⁻ᵐ
//   pc(swe) = (swe^(-1/m) - 1)^(1/n) / α
type VanGen struct {
	satRange

	// parameters
	α, m, n float64 // parameters
	pcmax   float64 // pc is capped at this value as swe → 0
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	o.swmax, o.pcmax = 1.0, 1e+30
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		case "swmin":
			o.swmin = p.V
		case "swmax":
			o.swmax = p.V
		case "pcmax":
			o.pcmax = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if err = o.check("vg"); err != nil {
		return
	}
	if o.α <= 0 || o.m <= 0 || o.n <= 0 {
		return chk.Err("vg: parameters must be positive: alp = %g, m = %g, n = %g", o.α, o.m, o.n)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "alp", V: 0.08},
			&dbf.P{N: "m", V: 4},
			&dbf.P{N: "n", V: 4},
			&dbf.P{N: "swmin", V: 0.01},
			&dbf.P{N: "swmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "alp", V: o.α},
		&dbf.P{N: "m", V: o.m},
		&dbf.P{N: "n", V: o.n},
		&dbf.P{N: "swmin", V: o.swmin},
		&dbf.P{N: "swmax", V: o.swmax},
		&dbf.P{N: "pcmax", V: o.pcmax},
	}
}

// Pc computes pc(sw)
func (o VanGen) Pc(sw float64) float64 {
	swe := o.eff(sw)
	if swe >= 1 {
		return 0
	}
	if swe <= 0 {
		return o.pcmax
	}
	return math.Min(math.Pow(math.Pow(swe, -1.0/o.m)-1.0, 1.0/o.n)/o.α, o.pcmax)
}

// Sw computes sw directly from pc
func (o VanGen) Sw(pc float64) float64 {
	if pc <= 0 {
		return o.swmax
	}
	c := math.Pow(o.α*pc, o.n)
	return o.abs(math.Pow(1+c, -o.m))
}

// DpcDsw computes ∂pc/∂sw
func (o VanGen) DpcDsw(sw float64) float64 {
	swe := o.eff(sw)
	if swe >= 1 || swe <= 0 {
		return 0
	}
	a := math.Pow(swe, -1.0/o.m)
	pc := math.Pow(a-1.0, 1.0/o.n) / o.α
	if pc >= o.pcmax {
		return 0
	}
	dpcDswe := -pc / (o.n * o.m) * a / ((a - 1.0) * swe)
	return dpcDswe / (o.swmax - o.swmin)
}
