// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements capillary pressure models for two-phase systems.
// All models take the absolute wetting saturation sw and convert it to the
// effective saturation swe = (sw - swmin) / (swmax - swmin)
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a capillary pressure model
type Model interface {
	Init(prms dbf.Params) error      // initialises retention model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	SwMin() float64                  // returns sw_min
	SwMax() float64                  // returns sw_max
	Pc(sw float64) float64           // computes pc(sw)
	Sw(pc float64) float64           // computes sw(pc)
	DpcDsw(sw float64) float64       // computes ∂pc/∂sw
}

// New returns new capillary pressure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// satRange holds the saturation limits used to compute effective saturations
type satRange struct {
	swmin float64 // residual (minimum) wetting saturation
	swmax float64 // maximum wetting saturation
}

// check checks the limits
func (o satRange) check(model string) error {
	if o.swmin < 0 || o.swmax > 1 || o.swmin >= o.swmax {
		return chk.Err("%s: saturation limits are incorrect: swmin = %g, swmax = %g", model, o.swmin, o.swmax)
	}
	return nil
}

// eff converts sw into swe
func (o satRange) eff(sw float64) float64 {
	return (sw - o.swmin) / (o.swmax - o.swmin)
}

// abs converts swe into sw
func (o satRange) abs(swe float64) float64 {
	return o.swmin + swe*(o.swmax-o.swmin)
}

// SwMin returns sw_min
func (o satRange) SwMin() float64 {
	return o.swmin
}

// SwMax returns sw_max
func (o satRange) SwMax() float64 {
	return o.swmax
}
