// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brooks

import "github.com/cpmech/gosl/chk"

// Regularization gives the saturation thresholds beyond which the raw curves are replaced
type Regularization interface {
	PcLowSw() float64   // pc is extended linearly below this saturation
	KrnLowSw() float64  // krn is smoothed below this saturation
	KrwHighSw() float64 // krw is smoothed above this saturation
}

// DefaultRegularization uses 5% for pc, 15% for krn and 85% for krw
type DefaultRegularization struct{}

func (DefaultRegularization) PcLowSw() float64   { return 0.05 }
func (DefaultRegularization) KrnLowSw() float64  { return 0.15 }
func (DefaultRegularization) KrwHighSw() float64 { return 0.85 }

// Thresholds holds user-defined regularization thresholds
type Thresholds struct {
	PcLow   float64
	KrnLow  float64
	KrwHigh float64
}

func (o Thresholds) PcLowSw() float64   { return o.PcLow }
func (o Thresholds) KrnLowSw() float64  { return o.KrnLow }
func (o Thresholds) KrwHighSw() float64 { return o.KrwHigh }

// Regularized implements the regularized Brooks-Corey curves
//  pc:  linear extension with the slope at PcLowSw for swe ≤ PcLowSw and with the slope at 1 for swe > 1
//  krw: 0 for swe ≤ 0, 1 for swe ≥ 1, cubic spline in [KrwHighSw, 1]
//  krn: 1 for swe ≤ 0, 0 for swe ≥ 1, cubic spline in [0, KrnLowSw]
type Regularized struct {
	Params
	Reg Regularization
}

// NewRegularized returns a regularized law; reg may be nil to use DefaultRegularization
func NewRegularized(prms Params, reg Regularization) (o *Regularized, err error) {
	if reg == nil {
		reg = DefaultRegularization{}
	}
	if err = prms.Validate(); err != nil {
		return
	}
	check := func(name string, v float64) error {
		if v <= 0 || v >= 1 {
			return chk.Err("brooks: regularization threshold %s = %g must be in (0,1)", name, v)
		}
		return nil
	}
	if err = check("pclow", reg.PcLowSw()); err != nil {
		return
	}
	if err = check("krnlow", reg.KrnLowSw()); err != nil {
		return
	}
	if err = check("krwhigh", reg.KrwHighSw()); err != nil {
		return
	}
	return &Regularized{Params: prms, Reg: reg}, nil
}

// Pc computes the regularized capillary pressure
func (o Regularized) Pc(swe float64) float64 {
	sth := o.Reg.PcLowSw()
	if swe <= sth {
		return o.Params.Pc(sth) + o.Params.DpcDsw(sth)*(swe-sth)
	}
	if swe > 1 {
		return o.Params.Pc(1) + o.Params.DpcDsw(1)*(swe-1)
	}
	return o.Params.Pc(swe)
}

// Sw inverts Pc
func (o Regularized) Sw(pc float64) float64 {
	sth := o.Reg.PcLowSw()
	pcLow := o.Params.Pc(sth)
	if pc >= pcLow {
		return sth + (pc-pcLow)/o.Params.DpcDsw(sth)
	}
	if pc < o.Pe {
		return 1 + (pc-o.Pe)/o.Params.DpcDsw(1)
	}
	return o.Params.Sw(pc)
}

// DpcDsw computes ∂pc/∂swe of the regularized curve
func (o Regularized) DpcDsw(swe float64) float64 {
	sth := o.Reg.PcLowSw()
	if swe <= sth {
		return o.Params.DpcDsw(sth)
	}
	if swe > 1 {
		return o.Params.DpcDsw(1)
	}
	return o.Params.DpcDsw(swe)
}

// DswDpc computes ∂swe/∂pc of the regularized curve
func (o Regularized) DswDpc(pc float64) float64 {
	sth := o.Reg.PcLowSw()
	if pc >= o.Params.Pc(sth) {
		return 1.0 / o.Params.DpcDsw(sth)
	}
	if pc < o.Pe {
		return 1.0 / o.Params.DpcDsw(1)
	}
	return o.Params.DswDpc(pc)
}

// Krw computes the regularized wetting relative permeability
func (o Regularized) Krw(swe float64) float64 {
	if swe <= 0 {
		return 0
	}
	if swe >= 1 {
		return 1
	}
	shi := o.Reg.KrwHighSw()
	if swe >= shi {
		sp := hermite{shi, 1, o.Params.Krw(shi), 1, o.Params.DkrwDsw(shi), 0}
		return sp.eval(swe)
	}
	return o.Params.Krw(swe)
}

// DkrwDsw computes ∂krw/∂swe of the regularized curve
func (o Regularized) DkrwDsw(swe float64) float64 {
	if swe <= 0 || swe >= 1 {
		return 0
	}
	shi := o.Reg.KrwHighSw()
	if swe >= shi {
		sp := hermite{shi, 1, o.Params.Krw(shi), 1, o.Params.DkrwDsw(shi), 0}
		return sp.deriv(swe)
	}
	return o.Params.DkrwDsw(swe)
}

// Krn computes the regularized non-wetting relative permeability
func (o Regularized) Krn(swe float64) float64 {
	if swe >= 1 {
		return 0
	}
	if swe <= 0 {
		return 1
	}
	slo := o.Reg.KrnLowSw()
	if swe < slo {
		sp := hermite{0, slo, 1, o.Params.Krn(slo), 0, o.Params.DkrnDsw(slo)}
		return sp.eval(swe)
	}
	return o.Params.Krn(swe)
}

// DkrnDsw computes ∂krn/∂swe of the regularized curve
func (o Regularized) DkrnDsw(swe float64) float64 {
	if swe <= 0 || swe >= 1 {
		return 0
	}
	slo := o.Reg.KrnLowSw()
	if swe < slo {
		sp := hermite{0, slo, 1, o.Params.Krn(slo), 0, o.Params.DkrnDsw(slo)}
		return sp.deriv(swe)
	}
	return o.Params.DkrnDsw(swe)
}

// hermite is the cubic through (x0,y0) and (x1,y1) with slopes m0 and m1
type hermite struct {
	x0, x1, y0, y1, m0, m1 float64
}

func (o hermite) eval(x float64) float64 {
	h := o.x1 - o.x0
	t := (x - o.x0) / h
	tt, ttt := t*t, t*t*t
	return (2*ttt-3*tt+1)*o.y0 + (ttt-2*tt+t)*h*o.m0 + (-2*ttt+3*tt)*o.y1 + (ttt-tt)*h*o.m1
}

func (o hermite) deriv(x float64) float64 {
	h := o.x1 - o.x0
	t := (x - o.x0) / h
	tt := t * t
	return ((6*tt-6*t)*o.y0+(-6*tt+6*t)*o.y1)/h + (3*tt-4*t+1)*o.m0 + (3*tt-2*t)*o.m1
}
