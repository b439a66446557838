// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/porousflow/eclmat/mdl/conduct"
	"github.com/porousflow/eclmat/mdl/eps"
	"github.com/porousflow/eclmat/mdl/hysteresis"
	"github.com/porousflow/eclmat/mdl/porous"
	"github.com/porousflow/eclmat/mdl/retention"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; e.g. "conduct", "reten", "hyst", "group"
	Model string     `json:"model"` // name of model; e.g. "bc", "rbc", "vg", "lin"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Conduct conduct.Model      // pointer to actual conductivity model
	Reten   retention.Model    // pointer to actual retention model
	Hyst    *hysteresis.Config // hysteresis options
	Porous  *porous.Model      // porous model (groups only)
}

// Mats holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Paths     PathsData `json:"paths"`     // saturation paths
	Materials MatsData  `json:"materials"` // all materials

	// derived
	Conducts map[string]*Material // subset with materials/models: conductivities
	Retens   map[string]*Material // subset with materials/models: retention models
	Hysts    map[string]*Material // subset with materials/models: hysteresis options
	Groups   map[string]*Material // subset with materials/models: groups
}

// ReadMat reads all materials data from a .mat JSON file
//  Groups combine other materials. The extra field of a group holds the names of
//  one retention model, one conductivity model and, optionally, one hysteresis
//  material, followed by keycodes:
//   !sys:ow     -- two-phase system: "ow", "go" or "gw" [required]
//   !prefix:I   -- prefix of field property names (upper-cased)
//   !suffix:X   -- suffix of KR field property names (upper-cased)
//   !imb:name   -- conductivity model used along imbibition
//  Example: "bc-pc bc-kr hyst1 !sys:ow !imb:lin-kr"
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := readFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials file %q:\n%v", fn, err)
	}

	// subsets
	mdb.Conducts = make(map[string]*Material)
	mdb.Retens = make(map[string]*Material)
	mdb.Hysts = make(map[string]*Material)
	mdb.Groups = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if mdb.Get(m.Name) != m {
			return nil, chk.Err("material named %q is duplicated", m.Name)
		}
		switch m.Type {
		case "conduct":
			mdb.Conducts[m.Name] = m
		case "reten":
			mdb.Retens[m.Name] = m
		case "hyst":
			mdb.Hysts[m.Name] = m
		case "group":
			mdb.Groups[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"conduct\", \"reten\", \"hyst\" and \"group\"", m.Type)
		}
	}

	// alloc/init: conducts
	for _, m := range mdb.Conducts {
		m.Conduct, err = conduct.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Conduct.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise conductivity model of material %q:\n%v", m.Name, err)
		}
	}

	// alloc/init: retens
	for _, m := range mdb.Retens {
		m.Reten, err = retention.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Reten.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise retention model of material %q:\n%v", m.Name, err)
		}
	}

	// hysteresis options
	for _, m := range mdb.Hysts {
		cfg, err := hysteresis.ReadConfig(m.Prms)
		if err != nil {
			return nil, chk.Err("cannot read hysteresis options of material %q:\n%v", m.Name, err)
		}
		m.Hyst = &cfg
	}

	// handle groups
	for _, m := range mdb.Groups {
		err = mdb.initGroup(m)
		if err != nil {
			return nil, err
		}
	}
	return
}

// initGroup collects the models of a group and initialises its porous model
func (o *MatDb) initGroup(m *Material) (err error) {

	// split names and keycodes
	var names, codes []string
	for _, s := range strings.Fields(m.Extra) {
		if strings.HasPrefix(s, "!") {
			codes = append(codes, s)
			continue
		}
		names = append(names, s)
	}
	keycodes := strings.Join(codes, " ")

	// models
	for _, name := range names {
		found := false
		if mm, ok := o.Conducts[name]; ok {
			if m.Conduct != nil {
				return chk.Err("group %q has more than one conductivity model", m.Name)
			}
			m.Conduct, found = mm.Conduct, true
		}
		if mm, ok := o.Retens[name]; ok {
			if m.Reten != nil {
				return chk.Err("group %q has more than one retention model", m.Name)
			}
			m.Reten, found = mm.Reten, true
		}
		if mm, ok := o.Hysts[name]; ok {
			if m.Hyst != nil {
				return chk.Err("group %q has more than one hysteresis material", m.Name)
			}
			m.Hyst, found = mm.Hyst, true
		}
		if !found {
			return chk.Err("cannot find material %q in group %q", name, m.Name)
		}
	}
	if m.Conduct == nil {
		return chk.Err("group %q must have conductivity model", m.Name)
	}
	if m.Reten == nil {
		return chk.Err("group %q must have liquid retention model", m.Name)
	}

	// two-phase system
	ssys, found := io.Keycode(keycodes, "sys")
	if !found {
		return chk.Err("group %q must have the two-phase system given by keycode !sys", m.Name)
	}
	sys, err := eps.ParseTwoPhaseSystem(ssys)
	if err != nil {
		return chk.Err("group %q: %v", m.Name, err)
	}

	// imbibition curves
	var imb conduct.Model
	if name, found := io.Keycode(keycodes, "imb"); found {
		mm, ok := o.Conducts[strings.TrimSpace(name)]
		if !ok {
			return chk.Err("cannot find imbibition conductivity model %q of group %q", name, m.Name)
		}
		imb = mm.Conduct
	}

	// porous model
	m.Porous = new(porous.Model)
	err = m.Porous.Init(sys, m.Conduct, m.Reten, m.Hyst, imb)
	if err != nil {
		return chk.Err("cannot initialise porous model of group %q:\n%v", m.Name, err)
	}
	if prefix, found := io.Keycode(keycodes, "prefix"); found {
		m.Porous.Prefix = strings.ToUpper(strings.TrimSpace(prefix))
	}
	if suffix, found := io.Keycode(keycodes, "suffix"); found {
		m.Porous.Suffix = strings.ToUpper(strings.TrimSpace(suffix))
	}
	return
}

// GroupNames returns the sorted names of all groups
func (o MatDb) GroupNames() (names []string) {
	for name := range o.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// ResolveEps resolves the endpoint scaling configuration of all groups concurrently.
// Configurations are attached only if all groups succeed, so a failed call can be
// repeated with another deck. The deck must not be modified while this function runs
func (o *MatDb) ResolveEps(ctx context.Context, deck eps.Deck) error {
	names := o.GroupNames()
	cfgs := make([]eps.Config, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i := i
		m := o.Groups[name]
		g.Go(func() (err error) {
			if err = ctx.Err(); err != nil {
				return
			}
			cfgs[i], err = m.Porous.CalcEps(deck)
			if err != nil {
				log.Debug().Str("group", m.Name).Err(err).Msg("endpoint scaling failed")
				return fmt.Errorf("group %q: %w", m.Name, err)
			}
			return
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, name := range names {
		m := o.Groups[name]
		if err := m.Porous.SetEps(cfgs[i]); err != nil {
			return err
		}
		log.Debug().
			Str("group", m.Name).
			Stringer("system", m.Porous.System).
			Stringer("eps", m.Porous.Eps).
			Msg("endpoint scaling resolved")
	}
	return nil
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [", o.Name, o.Type, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	if len(o.Prms) > 0 {
		l += "\n      "
	}
	return l + "]\n    }"
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v,\n%v\n}", o.Paths, o.Materials)
}
