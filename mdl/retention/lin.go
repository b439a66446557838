// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a linear retention model: sw(pc) := swmax - λ・(pc - pcae)
type Lin struct {
	satRange

	// parameters
	λ    float64 // slope coefficient
	pcae float64 // air-entry pressure

	// derived
	pcres float64 // residual pc corresponding to swmin
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	o.swmax = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "swmin":
			o.swmin = p.V
		case "swmax":
			o.swmax = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if err = o.check("lin"); err != nil {
		return
	}
	if o.λ < 1e-13 {
		return chk.Err("lin: slope coefficient must be positive. lam = %g is incorrect", o.λ)
	}
	o.pcres = o.pcae + (o.swmax-o.swmin)/o.λ
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lam", V: 0.5},
			&dbf.P{N: "pcae", V: 0.2},
			&dbf.P{N: "swmin", V: 0.1},
			&dbf.P{N: "swmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "lam", V: o.λ},
		&dbf.P{N: "pcae", V: o.pcae},
		&dbf.P{N: "swmin", V: o.swmin},
		&dbf.P{N: "swmax", V: o.swmax},
	}
}

// Pc computes pc(sw); the straight line is extended beyond [swmin, swmax]
func (o Lin) Pc(sw float64) float64 {
	return o.pcae + (o.swmax-sw)/o.λ
}

// Sw computes sw directly from pc
func (o Lin) Sw(pc float64) float64 {
	if pc <= o.pcae {
		return o.swmax
	}
	if pc >= o.pcres {
		return o.swmin
	}
	return o.swmax - o.λ*(pc-o.pcae)
}

// DpcDsw computes ∂pc/∂sw
func (o Lin) DpcDsw(sw float64) float64 {
	return -1.0 / o.λ
}
