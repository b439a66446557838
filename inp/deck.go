// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/porousflow/eclmat/mdl/eps"
	"gopkg.in/yaml.v3"
)

// Deck holds a snapshot of the parsed input deck: the keywords and the field
// properties present at the moment the saturation functions are set up
type Deck struct {

	// input
	Endscale   bool     `json:"endscale" yaml:"endscale"`     // ENDSCALE keyword present
	Threepoint bool     `json:"threepoint" yaml:"threepoint"` // SCALECRS keyword present with YES
	Jfunc      string   `json:"jfunc" yaml:"jfunc"`           // JFUNC keyword item FLAG; empty if JFUNC is absent
	Props      []string `json:"props" yaml:"props"`           // names of double-valued field properties

	// derived
	jflag eps.JFuncFlag   // parsed Jfunc
	props map[string]bool // set of property names
}

// ReadDeck reads a deck snapshot from a .yaml, .yml or .json file
func ReadDeck(dir, fn string) (deck *Deck, err error) {

	// read file
	b, err := readFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	deck = new(Deck)
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, deck)
	case ".json":
		err = json.Unmarshal(b, deck)
	default:
		return nil, chk.Err("deck file %q has an unknown extension; options are .yaml, .yml and .json", fn)
	}
	if err != nil {
		return nil, chk.Err("cannot decode deck file %q:\n%v", fn, err)
	}

	// derived data
	err = deck.PostProcess()
	if err != nil {
		return nil, err
	}
	return
}

// PostProcess validates the input and sets derived data. Property names are upper-cased
func (o *Deck) PostProcess() (err error) {
	o.jflag = eps.JFuncBoth
	if o.Jfunc != "" {
		o.jflag, err = eps.ParseJFuncFlag(o.Jfunc)
		if err != nil {
			return
		}
	}
	o.props = make(map[string]bool)
	for i, name := range o.Props {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" {
			return chk.Err("deck: property name # %d is empty", i)
		}
		o.Props[i] = name
		o.props[name] = true
	}
	return
}

// EndpointScaling tells whether ENDSCALE is present
func (o *Deck) EndpointScaling() bool { return o.Endscale }

// ThreePoint tells whether three-point scaling is requested
func (o *Deck) ThreePoint() bool { return o.Threepoint }

// JFunc returns the JFUNC flag and whether JFUNC is present
func (o *Deck) JFunc() (eps.JFuncFlag, bool) {
	return o.jflag, o.Jfunc != ""
}

// HasDouble tells whether a double-valued field property exists
func (o *Deck) HasDouble(name string) bool {
	return o.props[name]
}

// String prints the deck
func (o Deck) String() string {
	props, _ := json.Marshal(o.Props)
	return io.Sf("{\n  \"endscale\"   : %v,\n  \"threepoint\" : %v,\n  \"jfunc\"      : %q,\n  \"props\"      : %s\n}", o.Endscale, o.Threepoint, o.Jfunc, props)
}
