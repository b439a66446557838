// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eps

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// JFuncFlag tells which phases the JFUNC keyword applies to
type JFuncFlag int

const (
	JFuncBoth JFuncFlag = iota
	JFuncWater
	JFuncGas
)

// String returns the deck spelling of the flag
func (o JFuncFlag) String() string {
	switch o {
	case JFuncBoth:
		return "BOTH"
	case JFuncWater:
		return "WATER"
	case JFuncGas:
		return "GAS"
	}
	return "UNKNOWN"
}

// ParseJFuncFlag converts "BOTH", "WATER" or "GAS" into a flag
func ParseJFuncFlag(s string) (flag JFuncFlag, err error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BOTH":
		return JFuncBoth, nil
	case "WATER":
		return JFuncWater, nil
	case "GAS":
		return JFuncGas, nil
	}
	return 0, chk.Err("JFUNC flag %q is incorrect; options are \"BOTH\", \"WATER\" and \"GAS\"", s)
}

// Deck is the read-only view of a parsed deck needed by Resolve
type Deck interface {
	EndpointScaling() bool            // ENDSCALE is present
	ThreePoint() bool                 // three-point saturation scaling is requested
	JFunc() (flag JFuncFlag, ok bool) // JFUNC flag; ok is false without JFUNC
	HasDouble(name string) bool       // a double-valued field property exists
}
