// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements relative permeability models for two-phase systems.
// The wetting phase is water (oil-water) or oil (gas-oil)
package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines wetting/non-wetting relative permeability models
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Krw(sw float64) float64          // Krw returns krw
	Krn(sw float64) float64          // Krn returns krn
	DkrwDsw(sw float64) float64      // DkrwDsw returns ∂krw/∂sw
	DkrnDsw(sw float64) float64      // DkrnDsw returns ∂krn/∂sw
}

// New conductivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
