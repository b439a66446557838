// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// PathData holds the definition of a saturation path
//  Either Sw is given or the path is generated with Np points from Sw0 to Swf
type PathData struct {
	Name string    `json:"name"` // name of path. ex: drainage, imbibition
	Sw0  float64   `json:"sw0"`  // initial wetting saturation
	Swf  float64   `json:"swf"`  // final wetting saturation
	Np   int       `json:"np"`   // number of points
	Sw   []float64 `json:"sw"`   // explicit stations; overrides Sw0, Swf and Np
}

// PathsData holds paths
type PathsData []*PathData

// Get returns the saturation stations of a path
func (o PathsData) Get(name string) (Sw []float64, err error) {
	for _, p := range o {
		if p.Name == name {
			if len(p.Sw) > 0 {
				return p.Sw, nil
			}
			if p.Np < 2 {
				return nil, chk.Err("path %q must have at least 2 points. np = %d is incorrect", name, p.Np)
			}
			return utl.LinSpace(p.Sw0, p.Swf, p.Np), nil
		}
	}
	return nil, chk.Err("cannot find path named %q\n", name)
}

// String prints one path
func (o PathData) String() string {
	if len(o.Sw) > 0 {
		return io.Sf("    {\"name\":%q, \"sw\":%v}", o.Name, o.Sw)
	}
	return io.Sf("    {\"name\":%q, \"sw0\":%g, \"swf\":%g, \"np\":%d}", o.Name, o.Sw0, o.Swf, o.Np)
}

// String prints paths
func (o PathsData) String() string {
	if len(o) == 0 {
		return "  \"paths\" : []"
	}
	l := "  \"paths\" : [\n"
	for i, p := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", p)
	}
	l += "\n  ]"
	return l
}
