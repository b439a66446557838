// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hysteresis

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/porousflow/eclmat/mdl/conduct"
	"github.com/porousflow/eclmat/mdl/retention"
)

// models allocates the drainage/imbibition curves used in tests
func models(tst *testing.T) (pc retention.Model, drn, imb conduct.Model) {
	var err error
	pc, err = retention.New("rbc")
	if err != nil {
		tst.Fatalf("retention.New failed: %v\n", err)
	}
	if err = pc.Init(pc.GetPrms(true)); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	drn, err = conduct.New("bc")
	if err != nil {
		tst.Fatalf("conduct.New failed: %v\n", err)
	}
	if err = drn.Init(drn.GetPrms(true)); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	imb, err = conduct.New("lin")
	if err != nil {
		tst.Fatalf("conduct.New failed: %v\n", err)
	}
	if err = imb.Init(imb.GetPrms(true)); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return
}

func Test_hyst01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyst01. disabled")

	pc, drn, imb := models(tst)
	var o Params
	err := o.Init(Config{Enable: false, KrModel: 1, PcModel: -1}, pc, drn, imb)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	o.Update(0.3)
	for _, sw := range []float64{0.2, 0.5, 0.8} {
		chk.Float64(tst, "pcnw", 1e-17, o.Pcnw(sw), pc.Pc(sw))
		chk.Float64(tst, "krw", 1e-17, o.Krw(sw), drn.Krw(sw))
		chk.Float64(tst, "krn", 1e-17, o.Krn(sw), drn.Krn(sw))
	}
}

func Test_hyst02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyst02. kr models")

	pc, drn, imb := models(tst)

	// model 0: drainage krw, imbibition krn after reversal
	var o Params
	err := o.Init(Config{Enable: true, KrModel: 0, PcModel: -1, DeltaSwImbKrn: 0.05}, pc, drn, imb)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	o.Update(0.6)
	o.Update(0.4)
	o.Update(0.7)
	chk.Float64(tst, "KrnSwMdc", 1e-17, o.KrnSwMdc, 0.4)
	chk.Float64(tst, "krw", 1e-17, o.Krw(0.5), drn.Krw(0.5))
	chk.Float64(tst, "krn below reversal", 1e-17, o.Krn(0.35), drn.Krn(0.35))
	chk.Float64(tst, "krn above reversal", 1e-17, o.Krn(0.5), imb.Krn(0.55))

	// history is cleared by Reset
	o.Reset()
	chk.Float64(tst, "KrnSwMdc after reset", 1e-17, o.KrnSwMdc, 1)
	chk.Float64(tst, "krn after reset", 1e-17, o.Krn(0.5), drn.Krn(0.5))

	// model 1: imbibition krw
	o = Params{}
	err = o.Init(Config{Enable: true, KrModel: 1, PcModel: 0}, pc, drn, imb)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "krw", 1e-17, o.Krw(0.5), imb.Krw(0.5))
	chk.Float64(tst, "pcnw", 1e-17, o.Pcnw(0.5), pc.Pc(0.5))
	chk.Float64(tst, "krn (no history)", 1e-17, o.Krn(0.5), drn.Krn(0.5))
}

func Test_hyst03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyst03. config")

	cfg, err := ReadConfig(dbf.Params{&dbf.P{N: "enable", V: 1}, &dbf.P{N: "kr", V: 1}, &dbf.P{N: "dswkrn", V: 0.02}})
	if err != nil {
		tst.Errorf("ReadConfig failed: %v\n", err)
		return
	}
	if !cfg.Enable {
		tst.Errorf("hysteresis should be enabled\n")
	}
	chk.Int(tst, "kr model", cfg.KrModel, 1)
	chk.Int(tst, "pc model", cfg.PcModel, -1)
	chk.Float64(tst, "dswkrn", 1e-17, cfg.DeltaSwImbKrn, 0.02)

	if _, err = ReadConfig(dbf.Params{&dbf.P{N: "kr", V: 2}}); err == nil {
		tst.Errorf("kr model 2 should fail\n")
	}
	if _, err = ReadConfig(dbf.Params{&dbf.P{N: "killough", V: 1}}); err == nil {
		tst.Errorf("unknown parameter should fail\n")
	}

	pc, drn, _ := models(tst)
	var o Params
	if err = o.Init(Config{Enable: true, KrModel: 0}, pc, drn, nil); err == nil {
		tst.Errorf("missing imbibition model should fail\n")
	}
}
