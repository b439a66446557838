// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) simulation, (.mat)
// materials and deck snapshot (.yaml or .json) files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/rs/zerolog/log"
)

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc"`     // description of simulation
	Deckfile string `json:"deckfile"` // deck snapshot file path
	Matfile  string `json:"matfile"`  // materials file path
	DirOut   string `json:"dirout"`   // directory for output; e.g. /tmp/eclmat
}

// RunData associates a group with a saturation path
type RunData struct {
	Group string `json:"group"` // name of group material
	Path  string `json:"path"`  // name of saturation path
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data Data       `json:"data"` // stores global simulation data
	Runs []*RunData `json:"runs"` // runs to be performed after resolution

	// derived
	Deck   *Deck  // deck snapshot
	MatDb  *MatDb // materials database
	DirOut string // directory to save results
	Key    string // simulation key; e.g. mysim01.sim => mysim01
}

// ReadSim reads all simulation data from a .sim JSON file.
// The deck and materials files are relative to the directory of the .sim file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := readFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: %v", err)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/eclmat/" + o.Key
	}

	// deck
	if o.Data.Deckfile == "" {
		return nil, chk.Err("ReadSim: deck file must be given in %q", simfilepath)
	}
	o.Deck, err = ReadDeck(dir, o.Data.Deckfile)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read deck file:\n%v", err)
	}

	// materials
	if o.Data.Matfile == "" {
		return nil, chk.Err("ReadSim: materials file must be given in %q", simfilepath)
	}
	o.MatDb, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read materials file:\n%v", err)
	}

	// runs
	for i, run := range o.Runs {
		if _, ok := o.MatDb.Groups[run.Group]; !ok {
			return nil, chk.Err("ReadSim: run # %d: cannot find group %q", i, run.Group)
		}
		if _, err = o.MatDb.Paths.Get(run.Path); err != nil {
			return nil, chk.Err("ReadSim: run # %d: %v", i, err)
		}
	}

	log.Debug().
		Str("key", o.Key).
		Int("groups", len(o.MatDb.Groups)).
		Int("runs", len(o.Runs)).
		Msg("simulation read")
	return
}

// readFile reads a whole file. Missing files, directories and read failures are
// returned as errors instead of panics
func readFile(fn string) (b []byte, err error) {
	info, err := os.Stat(fn)
	if err != nil {
		return nil, chk.Err("cannot read file %q: %v", fn, err)
	}
	if info.IsDir() {
		return nil, chk.Err("cannot read file %q: it is a directory", fn)
	}
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read file %q: %v", fn, r)
		}
	}()
	return io.ReadFile(fn), nil
}
