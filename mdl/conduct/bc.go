// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/porousflow/eclmat/mdl/brooks"
)

// curve is the effective-saturation law behind BrooksCorey
type curve interface {
	Krw(swe float64) float64
	Krn(swe float64) float64
	DkrwDsw(swe float64) float64
	DkrnDsw(swe float64) float64
}

// BrooksCorey implements the Brooks-Corey relative permeabilities; optionally regularized
//  Note: the raw curves are clipped to [0,1] outside [swmin, swmax]
type BrooksCorey struct {
	Regularized bool         // use the regularized curves
	In          brooks.Input // parameters
	law         curve
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
	allocators["rbc"] = func() Model { return &BrooksCorey{Regularized: true} }
}

// Init initialises this structure
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

// swe returns the effective saturation, clipped for the raw curves
func (o BrooksCorey) swe(sw float64) float64 {
	swe := o.In.Eff(sw)
	if !o.Regularized {
		if swe < 0 {
			return 0
		}
		if swe > 1 {
			return 1
		}
	}
	return swe
}

// Krw returns krw
func (o BrooksCorey) Krw(sw float64) float64 {
	return o.law.Krw(o.swe(sw))
}

// Krn returns krn
func (o BrooksCorey) Krn(sw float64) float64 {
	return o.law.Krn(o.swe(sw))
}

// DkrwDsw returns ∂krw/∂sw
func (o BrooksCorey) DkrwDsw(sw float64) float64 {
	swe := o.In.Eff(sw)
	if !o.Regularized && (swe < 0 || swe > 1) {
		return 0
	}
	return o.law.DkrwDsw(swe) / (o.In.Swmax - o.In.Swmin)
}

// DkrnDsw returns ∂krn/∂sw
func (o BrooksCorey) DkrnDsw(sw float64) float64 {
	swe := o.In.Eff(sw)
	if !o.Regularized && (swe < 0 || swe > 1) {
		return 0
	}
	return o.law.DkrnDsw(swe) / (o.In.Swmax - o.In.Swmin)
}
