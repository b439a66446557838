// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eps

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// ConflictError is returned by Resolve when both Pc scaling and Leverett scaling are requested
type ConflictError struct {
	System TwoPhaseSystem // system being resolved
	Flag   JFuncFlag      // JFUNC flag found in deck
}

// Error implements error
func (o *ConflictError) Error() string {
	return io.Sf("Capillary pressure scaling and the Leverett scaling function are mutually exclusive. "+
		"The deck contains the PCW/PCG property and the JFUNC keyword (%v) applies to the %v system.", o.Flag, o.System)
}

// IsConflict tells whether err is (or wraps) a ConflictError
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// Resolve computes the endpoint scaling configuration of a two-phase system.
// Field properties are looked up as prefix+"KR"+tag+suffix and prefix+"PC"+tag
//  Note: GasWater systems only get saturation scaling; vertical and Leverett scaling are not supported for them.
func Resolve(deck Deck, sys TwoPhaseSystem, prefix, suffix string) (cfg Config, err error) {

	// no endpoint scaling at all
	if !deck.EndpointScaling() {
		return
	}

	// saturations
	cfg.SatScaling = true
	cfg.ThreePointKrSatScaling = deck.ThreePoint()

	// Leverett J-function
	flag, hasJFunc := deck.JFunc()
	if hasJFunc {
		cfg.LeverettScaling = (sys != GasWater && flag == JFuncBoth) ||
			(sys == OilWater && flag == JFuncWater) ||
			(sys == GasOil && flag == JFuncGas)
	}

	hasKR := func(tag string) bool {
		return deck.HasDouble(prefix + "KR" + tag + suffix)
	}
	hasPC := func(tag string) bool {
		return deck.HasDouble(prefix + "PC" + tag)
	}

	// vertical scaling
	switch sys {
	case OilWater:
		cfg.ThreePointKrwScaling = hasKR("WR")
		cfg.ThreePointKrnScaling = hasKR("ORW")
		cfg.KrnScaling = hasKR("O") || cfg.ThreePointKrnScaling
		cfg.KrwScaling = hasKR("W") || cfg.ThreePointKrwScaling
		cfg.PcScaling = hasPC("W") || deck.HasDouble("SWATINIT")
	case GasOil:
		cfg.ThreePointKrwScaling = hasKR("ORG")
		cfg.ThreePointKrnScaling = hasKR("GR")
		cfg.KrnScaling = hasKR("G") || cfg.ThreePointKrnScaling
		cfg.KrwScaling = hasKR("O") || cfg.ThreePointKrwScaling
		cfg.PcScaling = hasPC("G")
	case GasWater:
		// TODO: vertical scaling for gas-water systems (KRGR, KRWR, PCW with gas as non-wetting)
	}

	// check
	if cfg.PcScaling && cfg.LeverettScaling {
		return Config{}, &ConflictError{System: sys, Flag: flag}
	}
	return
}

// FieldKeys returns the field property names that Resolve may look up for a system
func FieldKeys(sys TwoPhaseSystem, prefix, suffix string) (keys []string) {
	kr := func(tag string) string { return prefix + "KR" + tag + suffix }
	pc := func(tag string) string { return prefix + "PC" + tag }
	switch sys {
	case OilWater:
		keys = []string{kr("WR"), kr("ORW"), kr("O"), kr("W"), pc("W"), "SWATINIT"}
	case GasOil:
		keys = []string{kr("ORG"), kr("GR"), kr("G"), kr("O"), pc("G")}
	}
	return
}
