// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"math"
	"testing"

	"github.com/xcfem/xc-sub001/fem"
	"github.com/xcfem/xc-sub001/inp"
	"github.com/xcfem/xc-sub001/soil"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_analysis01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("analysis01. cantilever wall")

	// input
	sim, err := inp.ReadSim("../inp/data/wall01.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}

	// run
	dom := fem.NewDomain(&sim.Solver)
	ana, err := NewAnalysis(sim, dom, nil)
	if err != nil {
		tst.Errorf("NewAnalysis failed:\n%v", err)
		return
	}
	err = ana.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	io.Pf("%v", dom.Sum)

	// stages
	chk.Int(tst, "ntables", len(ana.Tables), 2)
	chk.Int(tst, "stage", ana.Tables[1].Stage, 0)
	chk.Int(tst, "nsolves", dom.Sum.Nsolves(), 1+2*6)
	chk.Int(tst, "nnodes", len(ana.Asm.Nodes), 21)
	chk.Int(tst, "failed", dom.Sum.Failed(), 0)
	io.Pforan("max nits = %d\n", dom.Sum.MaxNits())

	// records of every stage
	for _, tbl := range ana.Tables {
		chk.Int(tst, "nrecords", len(tbl.Records), 21)
		var sumR float64
		for _, r := range tbl.Records {
			sumR += r.Reaction + r.Water
		}
		chk.Float64(tst, "ΣR", 1e-2, sumR, 0)
	}

	// removed springs
	for _, r := range ana.Tables[1].Records {
		removed := r.Depth <= 3
		if removed != (r.Bounds[soil.Left].Kh == 0) {
			tst.Errorf("left spring at %g: removed=%v but Kh=%g", r.Depth, removed, r.Bounds[soil.Left].Kh)
		}
	}
	for _, s := range ana.Asm.Active(soil.Left) {
		if s.Node.Z <= 3 {
			tst.Errorf("left spring at %g is above the excavation level", s.Node.Z)
		}
	}
	chk.Int(tst, "nactive L", ana.Asm.NumActive(soil.Left), 14)
	chk.Int(tst, "nactive R", ana.Asm.NumActive(soil.Right), 20)
}

func Test_analysis02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("analysis02. water, surcharges and struts")

	sim, err := inp.ReadSim("../inp/data/wall02.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	eng := newfake()
	ana, err := NewAnalysis(sim, eng, nil)
	if err != nil {
		tst.Errorf("NewAnalysis failed:\n%v", err)
		return
	}

	// profile: water tables and excavation levels are breakpoints
	io.Pf("%v", ana.Prof)
	chk.Array(tst, "depths", 1e-15, ana.Prof.Depths, []float64{0, 2, 2.5, 3, 6, 12.5})
	chk.String(tst, ana.Prof.Layers[1].Name, "fill")
	chk.String(tst, ana.Prof.Layers[3].Name, "sand")
	chk.Float64(tst, "water L", 1e-15, ana.Prof.WaterTableDepth(soil.Left), 6)
	chk.Float64(tst, "water R", 1e-15, ana.Prof.WaterTableDepth(soil.Right), 2)

	// mesh: strut depth is a node
	chk.Int(tst, "nnodes", len(ana.Asm.Nodes), 25)
	if _, err = ana.Asm.NodeAt(1.5); err != nil {
		tst.Errorf("there must be a node at the strut:\n%v", err)
	}

	// net water force @ 8 m: γw・(8-6) - γw・(8-2)
	n, err := ana.Asm.NodeAt(8)
	if err != nil {
		tst.Errorf("NodeAt failed:\n%v", err)
		return
	}
	chk.Float64(tst, "area", 1e-14, n.Area, 0.6)
	chk.Float64(tst, "W", 1e-12, n.Water, -9.81*4*0.6)
	chk.Float64(tst, "load", 1e-12, eng.loads[n.Handle], n.Water)

	// run with fake engine
	err = ana.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Int(tst, "ntables", len(ana.Tables), 3)
	chk.Array(tst, "excavated", 1e-15, ana.Tables[2].Excavated[:], []float64{6, 0})
	m, _ := ana.Asm.NodeAt(1.5)
	chk.Int(tst, "nstruts", len(m.Struts), 1)

	// invalid layer
	sim.Layers[0].Prms = sim.Layers[0].Prms[:1]
	if _, err = NewAnalysis(sim, newfake(), nil); err == nil {
		tst.Errorf("layer without kh should have failed")
	}
}

func Test_analysis03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("analysis03. propped wall with water and surcharges")

	sim, err := inp.ReadSim("../inp/data/wall02.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	dom := fem.NewDomain(&sim.Solver)
	ana, err := NewAnalysis(sim, dom, nil)
	if err != nil {
		tst.Errorf("NewAnalysis failed:\n%v", err)
		return
	}
	err = ana.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	io.Pf("%v", dom.Sum)
	chk.Int(tst, "ntables", len(ana.Tables), 3)
	chk.Int(tst, "failed", dom.Sum.Failed(), 0)

	// horizontal equilibrium: springs, struts and water
	for _, tbl := range ana.Tables {
		chk.Int(tst, "nrecords", len(tbl.Records), 25)
		var sumR float64
		for _, r := range tbl.Records {
			sumR += r.Reaction + r.Water
		}
		io.Pforan("stage %d: ΣR = %g\n", tbl.Stage, sumR)
		chk.Float64(tst, "ΣR", 1e-2, sumR, 0)
	}

	// strut installed after stage 0 carries load after stage 1
	n, err := ana.Asm.NodeAt(1.5)
	if err != nil {
		tst.Errorf("NodeAt failed:\n%v", err)
		return
	}
	if len(n.Struts) != 1 {
		tst.Errorf("there must be one strut at 1.5 m")
		return
	}
	F := dom.SpringForce(n.Struts[0])
	io.Pforan("strut force = %g\n", F)
	if math.Abs(F) < 1e-3 {
		tst.Errorf("strut must carry load after the second excavation. F = %g", F)
	}
	r := ana.Tables[2].Records[n.Id]
	chk.Float64(tst, "z", 1e-15, r.Depth, 1.5)
	chk.Float64(tst, "TL", 1e-15, r.Thrust[soil.Left], 0)
	chk.Float64(tst, "R = TL - TR + F", 1e-8, r.Reaction, r.Thrust[soil.Left]-r.Thrust[soil.Right]+F)
}
