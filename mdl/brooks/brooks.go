// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package brooks implements the Brooks-Corey capillary pressure and relative
// permeability curves as functions of the effective wetting saturation swe ∈ [0,1]
//  References:
//   [1] Brooks RH and Corey AT (1964) Hydraulic properties of porous media.
//       Hydrology Papers, Colorado State University, 3
package brooks

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Params holds the Brooks-Corey parameters
//   pc(swe)  = pe・swe^(-1/λ)
//   krw(swe) = swe^(2/λ+3)
//   krn(swe) = (1-swe)²・(1-swe^(2/λ+1))
type Params struct {
	Pe     float64 // entry pressure
	Lambda float64 // shape parameter λ
}

// Validate checks the parameters
func (o Params) Validate() error {
	if o.Pe <= 0 {
		return chk.Err("brooks: entry pressure must be positive. Pe = %g is incorrect", o.Pe)
	}
	if o.Lambda <= 0 {
		return chk.Err("brooks: shape parameter must be positive. λ = %g is incorrect", o.Lambda)
	}
	return nil
}

// Pc computes the capillary pressure
func (o Params) Pc(swe float64) float64 {
	return o.Pe * math.Pow(swe, -1.0/o.Lambda)
}

// Sw computes the effective saturation corresponding to pc
func (o Params) Sw(pc float64) float64 {
	if pc <= o.Pe {
		return 1
	}
	return math.Pow(pc/o.Pe, -o.Lambda)
}

// DpcDsw computes ∂pc/∂swe
func (o Params) DpcDsw(swe float64) float64 {
	return -o.Pe / o.Lambda * math.Pow(swe, -1.0/o.Lambda-1.0)
}

// DswDpc computes ∂swe/∂pc
func (o Params) DswDpc(pc float64) float64 {
	if pc <= o.Pe {
		return 0
	}
	return -o.Lambda / o.Pe * math.Pow(pc/o.Pe, -o.Lambda-1.0)
}

// Krw computes the wetting relative permeability
func (o Params) Krw(swe float64) float64 {
	return math.Pow(swe, 2.0/o.Lambda+3.0)
}

// Krn computes the non-wetting relative permeability
func (o Params) Krn(swe float64) float64 {
	d := 1.0 - swe
	return d * d * (1.0 - math.Pow(swe, 2.0/o.Lambda+1.0))
}

// DkrwDsw computes ∂krw/∂swe
func (o Params) DkrwDsw(swe float64) float64 {
	a := 2.0/o.Lambda + 3.0
	return a * math.Pow(swe, a-1.0)
}

// DkrnDsw computes ∂krn/∂swe
func (o Params) DkrnDsw(swe float64) float64 {
	a := 2.0/o.Lambda + 1.0
	d := 1.0 - swe
	return -2.0*d*(1.0-math.Pow(swe, a)) - d*d*a*math.Pow(swe, a-1.0)
}
