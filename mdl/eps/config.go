// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eps implements the configuration of endpoint scaling for two-phase
// saturation functions, derived from the keywords present in a reservoir deck
package eps

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// TwoPhaseSystem selects the fluids involved in a two-phase material law
type TwoPhaseSystem int

const (
	GasOil TwoPhaseSystem = iota
	OilWater
	GasWater
)

// String returns the name of the system
func (o TwoPhaseSystem) String() string {
	switch o {
	case GasOil:
		return "GasOil"
	case OilWater:
		return "OilWater"
	case GasWater:
		return "GasWater"
	}
	return io.Sf("TwoPhaseSystem(%d)", int(o))
}

// ParseTwoPhaseSystem converts a name such as "ow" or "OilWater" into a system
func ParseTwoPhaseSystem(s string) (sys TwoPhaseSystem, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "go", "gasoil":
		return GasOil, nil
	case "ow", "oilwater":
		return OilWater, nil
	case "gw", "gaswater":
		return GasWater, nil
	}
	return 0, chk.Err("two-phase system %q is incorrect; options are \"go\", \"ow\" and \"gw\"", s)
}

// Config holds the endpoint scaling flags of one two-phase system
//  Note: the zero value means "no scaling". When LeverettScaling is set,
//        PcScaling is ignored by the evaluators.
type Config struct {

	// x-axis
	SatScaling             bool // rescale input saturations
	ThreePointKrSatScaling bool // use two linear segments (three points) to rescale saturations for kr

	// y-axis
	PcScaling       bool // rescale capillary pressure
	LeverettScaling bool // use the Leverett J-function instead of PcScaling
	KrwScaling      bool // rescale wetting kr
	KrnScaling      bool // rescale non-wetting kr

	// three-point vertical scaling; e.g. KRWR + KRW or KRORW + KRO
	ThreePointKrwScaling bool
	ThreePointKrnScaling bool
}

// Any returns true if at least one flag is set
func (o Config) Any() bool {
	return o != Config{}
}

// Prms returns the flags as parameters with value 1 (true) or 0 (false)
func (o Config) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "sat", V: b2f(o.SatScaling)},
		&dbf.P{N: "sat3p", V: b2f(o.ThreePointKrSatScaling)},
		&dbf.P{N: "pc", V: b2f(o.PcScaling)},
		&dbf.P{N: "leverett", V: b2f(o.LeverettScaling)},
		&dbf.P{N: "krw", V: b2f(o.KrwScaling)},
		&dbf.P{N: "krn", V: b2f(o.KrnScaling)},
		&dbf.P{N: "krw3p", V: b2f(o.ThreePointKrwScaling)},
		&dbf.P{N: "krn3p", V: b2f(o.ThreePointKrnScaling)},
	}
}

// String prints the flags
func (o Config) String() string {
	l := ""
	for i, p := range o.Prms() {
		if i > 0 {
			l += " "
		}
		l += io.Sf("%s=%v", p.N, p.V > 0)
	}
	return l
}

func b2f(yes bool) float64 {
	if yes {
		return 1
	}
	return 0
}
