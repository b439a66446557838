// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/porousflow/eclmat/mdl/brooks"
)

// curve is the effective-saturation law behind BrooksCorey
type curve interface {
	Pc(swe float64) float64
	Sw(pc float64) float64
	DpcDsw(swe float64) float64
}

// BrooksCorey implements the Brooks-Corey capillary pressure model; optionally regularized
//  Note: the raw curve is clipped to pe above swmax and is +Inf at and below swmin;
//        use the regularized model for finite values there
type BrooksCorey struct {
	Regularized bool         // use the regularized curve
	In          brooks.Input // parameters
	law         curve
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
	allocators["rbc"] = func() Model { return &BrooksCorey{Regularized: true} }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
	o.In, err = brooks.ReadInput(prms, o.Regularized)
	if err != nil {
		return
	}
	if o.Regularized {
		o.law = brooks.Regularized{Params: o.In.Params, Reg: o.In.Reg}
		return
	}
	o.law = o.In.Params
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	if example {
		return brooks.ExamplePrms()
	}
	return o.In.GetPrms()
}

// SwMin returns sw_min
func (o BrooksCorey) SwMin() float64 {
	return o.In.Swmin
}

// SwMax returns sw_max
func (o BrooksCorey) SwMax() float64 {
	return o.In.Swmax
}

// Pc computes pc(sw)
func (o BrooksCorey) Pc(sw float64) float64 {
	swe := o.In.Eff(sw)
	if !o.Regularized {
		if swe <= 0 {
			return math.Inf(1)
		}
		if swe > 1 {
			swe = 1
		}
	}
	return o.law.Pc(swe)
}

// Sw computes sw directly from pc
func (o BrooksCorey) Sw(pc float64) float64 {
	return o.In.Abs(o.law.Sw(pc))
}

// DpcDsw computes ∂pc/∂sw
func (o BrooksCorey) DpcDsw(sw float64) float64 {
	swe := o.In.Eff(sw)
	if !o.Regularized {
		if swe <= 0 {
			return math.Inf(-1)
		}
		if swe > 1 {
			return 0
		}
	}
	return o.law.DpcDsw(swe) / (o.In.Swmax - o.In.Swmin)
}
