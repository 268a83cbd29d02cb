// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/xcfem/xc-sub001/fem"
	"github.com/xcfem/xc-sub001/inp"
	"github.com/xcfem/xc-sub001/out"
	"github.com/xcfem/xc-sub001/wall"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"go.uber.org/zap"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	showTables := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nStaged excavation of pile walls on nonlinear soil springs\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("  filename path ....... fnamepath   = %v\n", fnamepath)
		io.Pf("  show messages ....... verbose     = %v\n", verbose)
		io.Pf("  show tables ......... showTables  = %v\n\n", showTables)
	}

	// logger
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		chk.Panic("cannot initialise logger:\n%v", err)
	}
	defer logger.Sync()

	// input data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("ReadSim failed:\n%v", err)
	}

	// analysis
	dom := fem.NewDomain(&sim.Solver)
	analysis, err := wall.NewAnalysis(sim, dom, logger.Sugar())
	if err != nil {
		chk.Panic("NewAnalysis failed:\n%v", err)
	}
	if verbose {
		io.Pf("%v\n", analysis.Prof)
	}

	// run all stages
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// summary
	io.Pf("\n%6s%14s%8s%14s%8s%14s%8s\n", "stage", "max |ux|", "@ z", "max |M|", "@ z", "max |V|", "@ z")
	for _, tbl := range analysis.Tables {
		ux, zu := out.MaxAbs("ux", tbl)
		M, zM := out.MaxAbs("M", tbl)
		V, zV := out.MaxAbs("V", tbl)
		io.Pf("%6d%14.6e%8.2f%14.4f%8.2f%14.4f%8.2f\n", tbl.Stage, ux, zu, M, zM, V, zV)
	}
	if showTables {
		for _, tbl := range analysis.Tables {
			io.Pf("\n%v", tbl)
		}
	}
	if verbose {
		io.Pf("\n%v", dom.Sum)
	}
}
