// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// State holds the results at one station of a saturation path
type State struct {
	Sw  float64 // wetting saturation
	Pc  float64 // capillary pressure
	Krw float64 // wetting relative permeability
	Krn float64 // non-wetting relative permeability
}

// Driver runs a porous model along a saturation path
type Driver struct {

	// input
	Mdl *Model // porous model

	// settings
	ShowR bool // print results

	// results
	Res []*State // results
}

// Init initialises driver
func (o *Driver) Init(mdl *Model) (err error) {
	if mdl == nil {
		return chk.Err("driver: model must be non-nil")
	}
	o.Mdl = mdl
	return
}

// Run runs the path. The saturation history is cleared at the start of each run and
// updated before evaluating each station
func (o *Driver) Run(Sw []float64) (err error) {
	if len(Sw) < 1 {
		return chk.Err("driver: at least one saturation station is required")
	}
	o.Mdl.Reset()
	o.Res = make([]*State, len(Sw))
	if o.ShowR {
		io.Pf("%12s%14s%12s%12s\n", "sw", "pc", "krw", "krn")
	}
	for i, sw := range Sw {
		o.Mdl.Update(sw)
		o.Res[i] = &State{Sw: sw, Pc: o.Mdl.Pcnw(sw), Krw: o.Mdl.Krw(sw), Krn: o.Mdl.Krn(sw)}
		if o.ShowR {
			r := o.Res[i]
			io.Pf("%12.6f%14.6e%12.6f%12.6f\n", r.Sw, r.Pc, r.Krw, r.Krn)
		}
	}
	return
}
