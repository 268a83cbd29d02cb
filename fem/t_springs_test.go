// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/xcfem/xc-sub001/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// twosided returns a rigid-like segment with two nodes and one pair of springs at each node
//  left springs: dir = +1; right springs: dir = -1
func twosided(tst *testing.T, ctrl *inp.SolverData) (dom *Domain, left, right []int) {
	dom = NewDomain(ctrl)
	n0 := dom.CreateNode(0)
	n1 := dom.CreateNode(1)
	if _, err := dom.CreateBeam(n0, n1, 1e4, 1); err != nil {
		tst.Fatalf("CreateBeam failed:\n%v", err)
	}
	for _, n := range []int{n0, n1} {
		l, err := dom.CreateSpring(n, +1, 20, 50, 300, 1000)
		if err != nil {
			tst.Fatalf("CreateSpring failed:\n%v", err)
		}
		r, _ := dom.CreateSpring(n, -1, 20, 50, 300, 1000)
		left = append(left, l)
		right = append(right, r)
	}
	return
}

func Test_spring01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spring01. elastic-perfectly-plastic springs")

	dom, left, right := twosided(tst, nil)

	// at rest
	code := dom.Solve()
	chk.Int(tst, "code", code, Converged)
	chk.Float64(tst, "ux", 1e-15, dom.Displacement(0), 0)
	chk.Float64(tst, "TL", 1e-15, dom.SpringForce(left[0]), 50)
	chk.Float64(tst, "R", 1e-15, dom.Reaction(0), 0)

	// load until the left springs reach the active bound
	dom.SetLoad(0, 80)
	dom.SetLoad(1, 80)
	code = dom.Solve()
	chk.Int(tst, "code", code, Converged)
	io.Pforan("nits = %d\n", dom.Sum.Nits(1))
	for i := 0; i < 2; i++ {
		chk.Float64(tst, "ux", 1e-7, dom.Displacement(i), 0.05)
		chk.Float64(tst, "TL", 1e-15, dom.SpringForce(left[i]), 20)
		chk.Float64(tst, "TR", 1e-4, dom.SpringForce(right[i]), 100)
		chk.Float64(tst, "R", 1e-4, dom.Reaction(i), -80)
	}
	chk.Float64(tst, "δp", 1e-7, dom.Springs[left[0]].Dp, -0.02)

	// unload: permanent displacement
	dom.SetLoad(0, 0)
	dom.SetLoad(1, 0)
	code = dom.Solve()
	chk.Int(tst, "code", code, Converged)
	for i := 0; i < 2; i++ {
		chk.Float64(tst, "ux", 1e-7, dom.Displacement(i), 0.01)
		chk.Float64(tst, "TL", 1e-4, dom.SpringForce(left[i]), 60)
		chk.Float64(tst, "TR", 1e-4, dom.SpringForce(right[i]), 60)
	}
	chk.Int(tst, "nsolves", dom.Sum.Nsolves(), 3)
	chk.Int(tst, "failed", dom.Sum.Failed(), 0)
}

func Test_spring02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spring02. deactivation and bounds")

	dom, left, right := twosided(tst, nil)

	// update bounds of right springs
	for _, s := range right {
		err := dom.UpdateSpringBounds(s, 40, 70, 400)
		if err != nil {
			tst.Errorf("UpdateSpringBounds failed:\n%v", err)
			return
		}
	}
	code := dom.Solve()
	chk.Int(tst, "code", code, Converged)
	chk.Float64(tst, "ux", 1e-7, dom.Displacement(0), -0.01)
	chk.Float64(tst, "TL", 1e-4, dom.SpringForce(left[0]), 60)
	chk.Float64(tst, "TR", 1e-4, dom.SpringForce(right[0]), 60)

	// invalid bounds
	if err := dom.UpdateSpringBounds(right[0], 80, 70, 400); err == nil {
		tst.Errorf("Ea > E0 should have failed")
	}

	// deactivated springs exert no force
	dom.Deactivate(left[1])
	chk.Float64(tst, "T", 1e-15, dom.SpringForce(left[1]), 0)
	if dom.Springs[left[1]].Active() {
		tst.Errorf("spring must be inactive")
	}
}

func Test_spring03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spring03. non-convergence and singular matrix")

	// no equilibrium: left springs cannot push less than Ea
	var ctrl inp.SolverData
	ctrl.SetDefault()
	ctrl.NmaxIt = 50
	ctrl.CteTg = true
	ctrl.PostProcess()
	dom, _, right := twosided(tst, &ctrl)
	for _, s := range right {
		dom.Deactivate(s)
	}
	code := dom.Solve()
	chk.Int(tst, "code", code, MaxIters)
	chk.Int(tst, "nits", dom.Sum.Nits(0), 50)

	// rotation is not restrained
	dom = NewDomain(nil)
	n := dom.CreateNode(0)
	dom.CreateSpring(n, 1, -10, 0, 10, 100)
	dom.SetLoad(n, 1)
	code = dom.Solve()
	chk.Int(tst, "code", code, Singular)
}
