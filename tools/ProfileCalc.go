// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

package main

import (
	"github.com/xcfem/xc-sub001/inp"
	"github.com/xcfem/xc-sub001/soil"
	"github.com/xcfem/xc-sub001/wall"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfile, _ := io.ArgToFilename(0, "simfile", ".sim", true)
	npts := io.ArgToInt(1, 11)
	io.Pf("\n  simulation filename .. simfile = %v\n", simfile)
	io.Pf("  number of points ..... npts    = %v\n\n", npts)

	// soil profile
	sim, err := inp.ReadSim(simfile)
	if err != nil {
		io.PfRed("cannot read sim file:\n%v\n", err)
		return
	}
	prof, err := wall.NewProfile(sim)
	if err != nil {
		io.PfRed("cannot build soil profile:\n%v\n", err)
		return
	}
	io.Pf("%v\n", prof)

	// pressures at rest
	io.Pf("%10s%14s%14s%14s%14s%14s\n", "z", "σvL", "σvR", "σhL", "σhR", "Δpw")
	for _, z := range utl.LinSpace(prof.GroundDepth(), prof.Bottom(), npts) {
		lay, err := prof.LayerAt(z)
		if err != nil {
			io.PfRed("%v\n", err)
			return
		}
		var σv, σh [2]float64
		for _, side := range []soil.Side{soil.Left, soil.Right} {
			σv[side], _ = prof.VerticalPressure(z, side)
			σh[side], _ = prof.HorizontalPressure(lay.K0, z, side)
		}
		io.Pf("%10.3f%14.4f%14.4f%14.4f%14.4f%14.4f\n", z, σv[soil.Left], σv[soil.Right], σh[soil.Left], σh[soil.Right], prof.NetHydrostaticPressure(z))
	}
}
