// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/porousflow/eclmat/inp"
	"github.com/porousflow/eclmat/mdl/porous"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	debug := io.ArgToBool(2, false)

	// logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// message
	if verbose {
		io.PfWhite("\nEclmat -- endpoint scaling and saturation functions\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"debug messages", "debug", debug,
		))
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("ReadSim failed:\n%v", err)
	}

	// endpoint scaling
	err = sim.MatDb.ResolveEps(context.Background(), sim.Deck)
	if err != nil {
		chk.Panic("cannot resolve endpoint scaling:\n%v", err)
	}
	if verbose {
		io.Pf("\n%-12s%-10s  %s\n", "group", "system", "endpoint scaling")
		for _, name := range sim.MatDb.GroupNames() {
			m := sim.MatDb.Groups[name].Porous
			io.Pf("%-12s%-10v  %v\n", name, m.System, m.Eps)
		}
	}

	// runs
	for _, run := range sim.Runs {
		sw, err := sim.MatDb.Paths.Get(run.Path)
		if err != nil {
			chk.Panic("%v", err)
		}
		var drv porous.Driver
		drv.ShowR = verbose
		if verbose {
			io.Pfyel("\ngroup = %q  path = %q\n", run.Group, run.Path)
		}
		err = drv.Init(sim.MatDb.Groups[run.Group].Porous)
		if err != nil {
			chk.Panic("%v", err)
		}
		err = drv.Run(sw)
		if err != nil {
			chk.Panic("run with group %q failed:\n%v", run.Group, err)
		}
		log.Info().Str("group", run.Group).Str("path", run.Path).Int("stations", len(drv.Res)).Msg("run finished")
	}
}
