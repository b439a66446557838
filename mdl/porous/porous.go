// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package porous implements two-phase materials: a capillary pressure model, a relative
// permeability model, an optional hysteresis law and the endpoint scaling configuration
package porous

import (
	"github.com/cpmech/gosl/chk"
	"github.com/porousflow/eclmat/mdl/conduct"
	"github.com/porousflow/eclmat/mdl/eps"
	"github.com/porousflow/eclmat/mdl/hysteresis"
	"github.com/porousflow/eclmat/mdl/retention"
)

// Model holds the saturation functions of one two-phase system
type Model struct {

	// input
	System eps.TwoPhaseSystem // fluids involved
	Prefix string             // prefix of field property names; e.g. "I" for imbibition
	Suffix string             // suffix of KR field property names

	// auxiliary models
	Cnd  conduct.Model      // relative permeabilities (drainage)
	Lrm  retention.Model    // capillary pressure (drainage)
	Hyst *hysteresis.Params // hysteresis law; nil if not used

	// derived
	Eps      eps.Config // endpoint scaling configuration
	resolved bool       // Eps has been set
}

// Init initialises this structure
//  hyst -- hysteresis options; may be nil
//  imb  -- imbibition relative permeabilities; required if hyst enables kr hysteresis
func (o *Model) Init(sys eps.TwoPhaseSystem, Cnd conduct.Model, Lrm retention.Model, hyst *hysteresis.Config, imb conduct.Model) (err error) {
	if Cnd == nil || Lrm == nil {
		return chk.Err("porous model: Cnd and Lrm models must be all non-nil\n")
	}
	o.System = sys
	o.Cnd = Cnd
	o.Lrm = Lrm
	if hyst != nil {
		o.Hyst = new(hysteresis.Params)
		err = o.Hyst.Init(*hyst, Lrm, Cnd, imb)
	}
	return
}

// ResolveEps sets the endpoint scaling configuration from a deck. It can only be called once
func (o *Model) ResolveEps(deck eps.Deck) (err error) {
	cfg, err := o.CalcEps(deck)
	if err != nil {
		return
	}
	return o.SetEps(cfg)
}

// CalcEps computes the endpoint scaling configuration without changing the model
func (o Model) CalcEps(deck eps.Deck) (cfg eps.Config, err error) {
	if o.resolved {
		return cfg, chk.Err("porous model: endpoint scaling configuration of %v system has already been resolved", o.System)
	}
	return eps.Resolve(deck, o.System, o.Prefix, o.Suffix)
}

// SetEps attaches a configuration computed by CalcEps
func (o *Model) SetEps(cfg eps.Config) (err error) {
	if o.resolved {
		return chk.Err("porous model: endpoint scaling configuration of %v system has already been resolved", o.System)
	}
	o.Eps = cfg
	o.resolved = true
	return
}

// Resolved tells whether ResolveEps has succeeded
func (o Model) Resolved() bool {
	return o.resolved
}

// Leverett tells whether the J-function replaces the capillary pressure scaling
func (o Model) Leverett() bool {
	return o.Eps.LeverettScaling
}

// Pcnw computes the capillary pressure pn - pw
func (o Model) Pcnw(sw float64) float64 {
	if o.Hyst != nil {
		return o.Hyst.Pcnw(sw)
	}
	return o.Lrm.Pc(sw)
}

// Krw computes the wetting relative permeability
func (o Model) Krw(sw float64) float64 {
	if o.Hyst != nil {
		return o.Hyst.Krw(sw)
	}
	return o.Cnd.Krw(sw)
}

// Krn computes the non-wetting relative permeability
func (o Model) Krn(sw float64) float64 {
	if o.Hyst != nil {
		return o.Hyst.Krn(sw)
	}
	return o.Cnd.Krn(sw)
}

// Update records the saturation history (hysteresis only)
func (o *Model) Update(sw float64) {
	if o.Hyst != nil {
		o.Hyst.Update(sw)
	}
}

// Reset clears the saturation history (hysteresis only)
func (o *Model) Reset() {
	if o.Hyst != nil {
		o.Hyst.Reset()
	}
}
