// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"math"
	"testing"

	"github.com/xcfem/xc-sub001/soil"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_mesh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh01. node depths")

	geo := Geometry{Top: 0, Toe: 10, ElSize: 1.5}
	zs := MeshDepths(geo, []float64{0, 3, 4, 10, 12}, []float64{1.2, 4 + 1e-9})
	io.Pforan("zs = %v\n", zs)
	chk.Array(tst, "zs", 1e-14, zs, []float64{0, 1.2, 2.1, 3, 4, 5.5, 7, 8.5, 10})

	// single element
	zs = MeshDepths(Geometry{Top: 1, Toe: 2, ElSize: 5}, nil, nil)
	chk.Array(tst, "zs", 1e-15, zs, []float64{1, 2})
}

func Test_assembly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembly01. nodes, beams and springs")

	// water on the left side at 2 m
	prof := twolayers(tst, 2, soil.FarDepth, []soil.Excavation{{Depth: 3, Side: soil.Left}})
	geo := unitwall()
	geo.Spacing = 2
	eng := newfake()
	asm, err := NewAssembly(geo, prof, eng, nil)
	if err != nil {
		tst.Errorf("NewAssembly failed:\n%v", err)
		return
	}

	// mesh
	chk.Int(tst, "nnodes", len(asm.Nodes), 11)
	chk.Int(tst, "nelems", len(asm.Elems), 10)
	chk.Ints(tst, "beam 3", eng.beams[3][:], []int{3, 4})
	chk.Float64(tst, "trib @ top", 1e-15, asm.Nodes[0].Trib, 0.5)
	chk.Float64(tst, "trib @ 5", 1e-15, asm.Nodes[5].Trib, 1)
	chk.Float64(tst, "area @ toe", 1e-15, asm.Nodes[10].Area, 1)
	chk.Float64(tst, "area @ 5", 1e-15, asm.Nodes[5].Area, 2)

	// springs: left and right at every node below the ground surface
	chk.Int(tst, "nsprings", len(eng.springs), 20)
	chk.Int(tst, "nactive L", asm.NumActive(soil.Left), 10)
	chk.Int(tst, "nactive R", asm.NumActive(soil.Right), 10)
	top := asm.Nodes[0]
	if !top.InSoil || top.Springs[soil.Left] != nil || top.Springs[soil.Right] != nil {
		tst.Errorf("node at the ground surface must be in the soil without springs")
	}
	for _, n := range asm.Nodes[1:] {
		for _, side := range soil.Sides {
			s := n.Springs[side]
			if s == nil {
				tst.Errorf("node %d has no %s spring", n.Id, side)
				return
			}
			chk.Float64(tst, "dir", 1e-15, eng.springs[s.Handle].dir, side.Dir())
			chk.Int(tst, "node", eng.springs[s.Handle].node, n.Handle)
		}
	}

	// bounds @ 5 m: σv(left) = 18・2 + 10・2 + 9 = 65 ; σv(right) = 18・4 + 19 = 91
	sL := eng.springs[asm.Nodes[5].Springs[soil.Left].Handle]
	sR := eng.springs[asm.Nodes[5].Springs[soil.Right].Handle]
	chk.Float64(tst, "EaL", 1e-12, sL.ea, 0.3*65*2)
	chk.Float64(tst, "E0L", 1e-12, sL.e0, 0.5*65*2)
	chk.Float64(tst, "EpL", 1e-12, sL.ep, 3.0*65*2)
	chk.Float64(tst, "KhL", 1e-12, sL.kh, 20000*2)
	chk.Float64(tst, "E0R", 1e-12, sR.e0, 0.5*91*2)
	chk.Float64(tst, "EaR", 1e-12, asm.Nodes[5].Springs[soil.Right].Env.Ea, 0.3*91*2)

	// water: net pressure = γw・(z - 2) below 2 m
	chk.Float64(tst, "W @ 5", 1e-12, asm.Nodes[5].Water, 10*3*2)
	chk.Float64(tst, "load @ 5", 1e-12, eng.loads[asm.Nodes[5].Handle], 60)
	chk.Float64(tst, "W @ 1", 1e-15, asm.Nodes[1].Water, 0)
	if _, ok := eng.loads[asm.Nodes[1].Handle]; ok {
		tst.Errorf("there should be no load above the water table")
	}

	// nothing excavated
	chk.Array(tst, "excavated", 1e-15, asm.Excavated[:], []float64{0, 0})
	nodes := asm.Between(0, 3)
	chk.Int(tst, "nodes in (0,3]", len(nodes), 3)
	chk.Float64(tst, "first", 1e-15, nodes[0].Z, 1)
	chk.Float64(tst, "last", 1e-15, nodes[2].Z, 3)
}

func Test_assembly02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembly02. wall above ground and deactivation")

	prof := leftcut(tst)
	geo := unitwall()
	geo.Top = -2
	eng := newfake()
	asm, err := NewAssembly(geo, prof, eng, []float64{-1.5})
	if err != nil {
		tst.Errorf("NewAssembly failed:\n%v", err)
		return
	}

	// nodes above and at the ground have no springs
	chk.Array(tst, "z", 1e-15, eng.z[:4], []float64{-2, -1.5, -0.75, 0})
	chk.Int(tst, "nnodes", len(asm.Nodes), 14)
	for i := 0; i < 4; i++ {
		if asm.Nodes[i].Springs[soil.Left] != nil || asm.Nodes[i].Springs[soil.Right] != nil {
			tst.Errorf("node %d at or above ground must have no springs", i)
		}
		if asm.Nodes[i].InSoil != (i == 3) {
			tst.Errorf("node %d: InSoil=%v is incorrect", i, asm.Nodes[i].InSoil)
		}
	}
	chk.Int(tst, "nsprings", len(eng.springs), 20)
	chk.Float64(tst, "area @ ground", 1e-15, asm.Nodes[3].Area, 0.875)
	chk.Float64(tst, "excavated", 1e-15, asm.Excavated[soil.Left], -2)

	// deactivation
	if asm.Deactivate(asm.Nodes[1], soil.Left) {
		tst.Errorf("there is no spring to deactivate above the ground")
	}
	n := asm.Nodes[5]
	if !asm.Deactivate(n, soil.Right) {
		tst.Errorf("deactivation failed")
	}
	if asm.Deactivate(n, soil.Right) {
		tst.Errorf("spring cannot be deactivated twice")
	}
	chk.Strings(tst, "calls", eng.calls, []string{io.Sf("deactivate %d", n.Springs[soil.Right].Handle)})
	chk.Int(tst, "nactive R", asm.NumActive(soil.Right), 9)
	chk.Int(tst, "nactive L", len(asm.Active(soil.Left)), 10)
	if !n.Springs[soil.Right].Inact {
		tst.Errorf("spring must be marked as inactive")
	}

	// struts
	err = asm.InstallStrut(-1.5, 1e4)
	if err != nil {
		tst.Errorf("InstallStrut failed:\n%v", err)
		return
	}
	s := eng.springs[len(eng.springs)-1]
	chk.Int(tst, "strut node", s.node, asm.Nodes[1].Handle)
	chk.Float64(tst, "strut E0", 1e-15, s.e0, 0)
	if !math.IsInf(s.ea, -1) || !math.IsInf(s.ep, 1) {
		tst.Errorf("strut must be unbounded")
	}
	if err = asm.InstallStrut(-1.2, 1e4); err == nil {
		tst.Errorf("strut without node should have failed")
	}
}

func Test_assembly03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembly03. invalid walls")

	prof := leftcut(tst)
	geo := unitwall()
	geo.Toe = 11
	if _, err := NewAssembly(geo, prof, newfake(), nil); err == nil {
		tst.Errorf("wall deeper than profile should have failed")
	}
	geo = unitwall()
	geo.ElSize = 0
	if _, err := NewAssembly(geo, prof, newfake(), nil); err == nil {
		tst.Errorf("zero element size should have failed")
	}
	geo = unitwall()
	geo.Toe = geo.Top
	if _, err := NewAssembly(geo, prof, newfake(), nil); err == nil {
		tst.Errorf("zero-length wall should have failed")
	}
}
