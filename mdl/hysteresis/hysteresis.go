// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hysteresis implements a two-phase law that switches between drainage and
// imbibition relative permeability curves following the saturation history
package hysteresis

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/porousflow/eclmat/mdl/conduct"
	"github.com/porousflow/eclmat/mdl/retention"
)

// Config holds the hysteresis options
//  KrModel: <0 => no kr hysteresis; 0 => drainage curve for krw; 1 => imbibition curve for krw
//  PcModel: <0 => no pc hysteresis (the drainage curve is always used for pc)
//  DeltaSwImbKrn: shift of sw applied to the imbibition krn curve after reversal
type Config struct {
	Enable        bool
	KrModel       int
	PcModel       int
	DeltaSwImbKrn float64
}

// ReadConfig reads "enable", "kr", "pc" and "dswkrn" from a list of parameters
func ReadConfig(prms dbf.Params) (o Config, err error) {
	o.KrModel, o.PcModel = -1, -1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "enable":
			o.Enable = p.V > 0
		case "kr":
			o.KrModel = int(p.V)
		case "pc":
			o.PcModel = int(p.V)
		case "dswkrn":
			o.DeltaSwImbKrn = p.V
		default:
			return o, chk.Err("hysteresis: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.KrModel > 1 {
		return o, chk.Err("hysteresis: kr model %d is not available; options are -1, 0 and 1", o.KrModel)
	}
	return
}

// Params holds the drainage and imbibition curves and the state of the hysteresis law
type Params struct {

	// input
	Cfg        Config          // options
	Pc         retention.Model // drainage capillary pressure
	Drainage   conduct.Model   // drainage relative permeabilities
	Imbibition conduct.Model   // imbibition relative permeabilities; may be nil if Cfg.Enable is false

	// state
	KrnSwMdc float64 // minimum wetting saturation seen so far; krn leaves the drainage curve above it
}

// Init initialises this structure
func (o *Params) Init(cfg Config, pc retention.Model, drainage, imbibition conduct.Model) (err error) {
	if pc == nil || drainage == nil {
		return chk.Err("hysteresis: capillary pressure and drainage models are required")
	}
	if cfg.KrModel > 1 {
		return chk.Err("hysteresis: kr model %d is not available; options are -1, 0 and 1", cfg.KrModel)
	}
	if cfg.Enable && cfg.KrModel >= 0 && imbibition == nil {
		return chk.Err("hysteresis: imbibition model is required when kr hysteresis is enabled")
	}
	o.Cfg = cfg
	o.Pc = pc
	o.Drainage = drainage
	o.Imbibition = imbibition
	o.Reset()
	return
}

// Reset clears the saturation history
func (o *Params) Reset() {
	o.KrnSwMdc = 1.0
}

// Update records the saturation history
func (o *Params) Update(sw float64) {
	o.KrnSwMdc = math.Min(o.KrnSwMdc, sw)
}

// krHysteresis tells whether kr hysteresis is active
func (o Params) krHysteresis() bool {
	return o.Cfg.Enable && o.Cfg.KrModel >= 0
}

// Pcnw computes the capillary pressure; only the drainage curve is used
func (o Params) Pcnw(sw float64) float64 {
	return o.Pc.Pc(sw)
}

// Krw computes the wetting relative permeability
func (o Params) Krw(sw float64) float64 {
	if !o.krHysteresis() || o.Cfg.KrModel == 0 {
		return o.Drainage.Krw(sw)
	}
	return o.Imbibition.Krw(sw)
}

// Krn computes the non-wetting relative permeability. After reversal, the imbibition
// curve is used with the saturation shifted by Cfg.DeltaSwImbKrn
func (o Params) Krn(sw float64) float64 {
	if !o.krHysteresis() || sw <= o.KrnSwMdc {
		return o.Drainage.Krn(sw)
	}
	return o.Imbibition.Krn(sw + o.Cfg.DeltaSwImbKrn)
}
