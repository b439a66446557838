// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"context"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/porousflow/eclmat/mdl/eps"
	"github.com/porousflow/eclmat/mdl/porous"
	"github.com/rs/zerolog"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	if !chk.Verbose {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
	os.Exit(m.Run())
}

func checkEps(tst *testing.T, msg string, res, correct eps.Config) {
	if res != correct {
		tst.Errorf("%s: config is incorrect\n got:  %v\n want: %v\n", msg, res, correct)
	}
}

func Test_deck01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck01. yaml and json snapshots")

	deck, err := ReadDeck("data", "ow.yaml")
	if err != nil {
		tst.Errorf("ReadDeck failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", deck)
	chk.Strings(tst, "props", deck.Props, []string{"SWL", "KRW", "IKRORW", "PCG"})
	if !deck.EndpointScaling() || deck.ThreePoint() {
		tst.Errorf("keywords are incorrect\n")
		return
	}
	flag, ok := deck.JFunc()
	if !ok || flag != eps.JFuncWater {
		tst.Errorf("JFUNC is incorrect: %v %v\n", flag, ok)
		return
	}
	if !deck.HasDouble("IKRORW") || deck.HasDouble("ikrorw") || deck.HasDouble("PCW") {
		tst.Errorf("HasDouble is incorrect\n")
		return
	}

	deck, err = ReadDeck("data", "conflict.json")
	if err != nil {
		tst.Errorf("ReadDeck failed:\n%v", err)
		return
	}
	flag, ok = deck.JFunc()
	if !ok || flag != eps.JFuncBoth {
		tst.Errorf("JFUNC is incorrect: %v %v\n", flag, ok)
		return
	}

	deck, err = ReadDeck("data", "noscale.yml")
	if err != nil {
		tst.Errorf("ReadDeck failed:\n%v", err)
		return
	}
	if deck.EndpointScaling() {
		tst.Errorf("ENDSCALE should be absent\n")
		return
	}

	// no JFUNC
	deck = &Deck{Endscale: true}
	if err = deck.PostProcess(); err != nil {
		tst.Errorf("PostProcess failed:\n%v", err)
		return
	}
	if _, ok = deck.JFunc(); ok {
		tst.Errorf("JFUNC should be absent\n")
		return
	}

	// errors
	if _, err = ReadDeck("data", "badjfunc.yaml"); err == nil {
		tst.Errorf("unknown JFUNC flag should fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if _, err = ReadDeck("data", "eclmat.mat"); err == nil {
		tst.Errorf("unknown extension should fail\n")
		return
	}
	if _, err = ReadDeck("data", "missing.yaml"); err == nil {
		tst.Errorf("missing file should fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if err = (&Deck{Props: []string{"SWL", " "}}).PostProcess(); err == nil {
		tst.Errorf("empty property name should fail\n")
	}
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb, err := ReadMat("data", "eclmat.mat")
	if err != nil {
		tst.Errorf("ReadMat failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", mdb)

	chk.Int(tst, "number of materials", len(mdb.Materials), 7)
	chk.Int(tst, "number of conducts", len(mdb.Conducts), 2)
	chk.Int(tst, "number of retens", len(mdb.Retens), 1)
	chk.Int(tst, "number of hysts", len(mdb.Hysts), 1)
	chk.Strings(tst, "groups", mdb.GroupNames(), []string{"go", "ow", "ow-imb"})

	ow := mdb.Get("ow")
	if ow == nil || ow.Porous == nil {
		tst.Errorf("group ow must have a porous model\n")
		return
	}
	if ow.Porous.System != eps.OilWater || ow.Porous.Prefix != "" || ow.Porous.Suffix != "" || ow.Porous.Hyst != nil {
		tst.Errorf("group ow is incorrect\n")
		return
	}
	if mdb.Get("go").Porous.System != eps.GasOil {
		tst.Errorf("group go must be a gas-oil system\n")
		return
	}

	imb := mdb.Get("ow-imb")
	chk.String(tst, imb.Porous.Prefix, "I")
	if imb.Porous.Hyst == nil {
		tst.Errorf("group ow-imb must have hysteresis\n")
		return
	}
	if imb.Porous.Hyst.Imbibition != mdb.Conducts["lin-kr"].Conduct {
		tst.Errorf("imbibition model of group ow-imb is incorrect\n")
		return
	}
	if mdb.Get("nothing") != nil {
		tst.Errorf("Get should return nil\n")
		return
	}

	// paths
	sw, err := mdb.Paths.Get("drainage")
	if err != nil {
		tst.Errorf("Paths.Get failed:\n%v", err)
		return
	}
	chk.Array(tst, "drainage", 1e-15, sw, []float64{1.0, 0.8, 0.6, 0.4, 0.2})
	sw, err = mdb.Paths.Get("cycle")
	if err != nil {
		tst.Errorf("Paths.Get failed:\n%v", err)
		return
	}
	chk.Array(tst, "cycle", 1e-17, sw, []float64{1.0, 0.5, 0.3, 0.6, 0.9})
	if _, err = mdb.Paths.Get("unknown"); err == nil {
		tst.Errorf("unknown path should fail\n")
		return
	}

	// errors
	if _, err = ReadMat("data", "missing.mat"); err == nil {
		tst.Errorf("missing file should fail\n")
		return
	}
	if _, err = ReadMat(".", "data"); err == nil {
		tst.Errorf("directory should fail\n")
		return
	}
	if _, err = ReadMat("data", "badgroup.mat"); err == nil {
		tst.Errorf("group without retention model should fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_resolve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resolve01. concurrent resolution of groups")

	defer goleak.VerifyNone(tst)

	mdb, err := ReadMat("data", "eclmat.mat")
	if err != nil {
		tst.Errorf("ReadMat failed:\n%v", err)
		return
	}
	deck, err := ReadDeck("data", "ow.yaml")
	if err != nil {
		tst.Errorf("ReadDeck failed:\n%v", err)
		return
	}

	err = mdb.ResolveEps(context.Background(), deck)
	if err != nil {
		tst.Errorf("ResolveEps failed:\n%v", err)
		return
	}
	for _, name := range mdb.GroupNames() {
		m := mdb.Groups[name]
		io.Pforan("%-7s: %v\n", name, m.Porous.Eps)
		if !m.Porous.Resolved() {
			tst.Errorf("group %q should be resolved\n", name)
			return
		}
	}

	checkEps(tst, "ow", mdb.Groups["ow"].Porous.Eps, eps.Config{
		SatScaling:      true,
		LeverettScaling: true,
		KrwScaling:      true,
	})
	checkEps(tst, "go", mdb.Groups["go"].Porous.Eps, eps.Config{
		SatScaling: true,
		PcScaling:  true,
	})
	checkEps(tst, "ow-imb", mdb.Groups["ow-imb"].Porous.Eps, eps.Config{
		SatScaling:           true,
		LeverettScaling:      true,
		KrnScaling:           true,
		ThreePointKrnScaling: true,
	})

	// resolution happens once only
	if err = mdb.ResolveEps(context.Background(), deck); err == nil {
		tst.Errorf("second resolution should fail\n")
	}
}

func Test_resolve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resolve02. conflict and cancellation")

	defer goleak.VerifyNone(tst)

	mdb, err := ReadMat("data", "eclmat.mat")
	if err != nil {
		tst.Errorf("ReadMat failed:\n%v", err)
		return
	}
	deck, err := ReadDeck("data", "conflict.json")
	if err != nil {
		tst.Errorf("ReadDeck failed:\n%v", err)
		return
	}

	err = mdb.ResolveEps(context.Background(), deck)
	if err == nil {
		tst.Errorf("PCW with JFUNC=BOTH should fail\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if !eps.IsConflict(err) {
		tst.Errorf("error should be a conflict: %v\n", err)
		return
	}
	for _, m := range mdb.Groups {
		if m.Porous.Resolved() {
			tst.Errorf("group %q must not be resolved after a conflict\n", m.Name)
			return
		}
	}

	// retry with another deck
	good, err := ReadDeck("data", "ow.yaml")
	if err != nil {
		tst.Errorf("ReadDeck failed:\n%v", err)
		return
	}
	err = mdb.ResolveEps(context.Background(), good)
	if err != nil {
		tst.Errorf("ResolveEps after conflict failed:\n%v", err)
		return
	}
	for _, m := range mdb.Groups {
		if !m.Porous.Resolved() {
			tst.Errorf("group %q should be resolved\n", m.Name)
			return
		}
	}
	checkEps(tst, "ow after retry", mdb.Groups["ow"].Porous.Eps, eps.Config{
		SatScaling:      true,
		LeverettScaling: true,
		KrwScaling:      true,
	})

	// cancelled context
	mdb, err = ReadMat("data", "eclmat.mat")
	if err != nil {
		tst.Errorf("ReadMat failed:\n%v", err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err = mdb.ResolveEps(ctx, deck); err == nil {
		tst.Errorf("cancelled context should fail\n")
		return
	}
	for _, m := range mdb.Groups {
		if m.Porous.Resolved() {
			tst.Errorf("group %q must not be resolved\n", m.Name)
			return
		}
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. simulation file")

	sim, err := ReadSim("data/ow.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "ow")
	chk.String(tst, sim.DirOut, "/tmp/eclmat/ow")
	chk.Int(tst, "number of runs", len(sim.Runs), 2)
	if sim.Deck == nil || sim.MatDb == nil {
		tst.Errorf("deck and materials must be read\n")
		return
	}

	err = sim.MatDb.ResolveEps(context.Background(), sim.Deck)
	if err != nil {
		tst.Errorf("ResolveEps failed:\n%v", err)
		return
	}

	// hysteresis run
	run := sim.Runs[1]
	sw, err := sim.MatDb.Paths.Get(run.Path)
	if err != nil {
		tst.Errorf("Paths.Get failed:\n%v", err)
		return
	}
	var drv porous.Driver
	drv.ShowR = chk.Verbose
	err = drv.Init(sim.MatDb.Groups[run.Group].Porous)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	err = drv.Run(sw)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	drainage := sim.MatDb.Conducts["bc-kr"].Conduct
	chk.Float64(tst, "krn(0.5)", 1e-17, drv.Res[1].Krn, drainage.Krn(0.5))
	chk.Float64(tst, "krn(0.3)", 1e-17, drv.Res[2].Krn, drainage.Krn(0.3))
	chk.Float64(tst, "krn(0.6) imbibition", 1e-15, drv.Res[3].Krn, 3.0/7.0)
	chk.Float64(tst, "krn(0.9) imbibition", 1e-15, drv.Res[4].Krn, 0)
	chk.Float64(tst, "krw(0.6) drainage", 1e-17, drv.Res[3].Krw, drainage.Krw(0.6))

	// another run on the same group does not inherit the reversal point
	sw, err = sim.MatDb.Paths.Get("drainage")
	if err != nil {
		tst.Errorf("Paths.Get failed:\n%v", err)
		return
	}
	err = drv.Run(sw)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Float64(tst, "krn(0.6) drainage", 1e-17, drv.Res[2].Krn, drainage.Krn(drv.Res[2].Sw))

	// other simulation
	sim, err = ReadSim("data/conflict.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.String(tst, sim.DirOut, "/tmp/eclmat/conflict")
	if _, err = ReadSim("data/missing.sim"); err == nil {
		tst.Errorf("missing file should fail\n")
	}
}
