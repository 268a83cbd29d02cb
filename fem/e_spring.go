// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// EarthSpring represents the soil on one side of a wall node: a lateral spring with an
// elastic-perfectly-plastic law, simply implemented with constant stiffness; i.e. no numerical
// integration is needed. The spring pushes the wall along Dir with the thrust T
//
//    δ = -Dir・ux                          (displacement into the soil)
//    T = clamp(E0 + Kh・(δ - δp), Ea, Ep)   (compression positive)
//
//       T
//    Ep ┤      ┌─────────
//       │     /
//    E0 ┤   /
//    Ea ┤─┘
//       └──────────────── δ
//
type EarthSpring struct {

	// basic data
	Eid  int     // element id
	Node *Node   // node of wall
	Dir  float64 // direction of thrust on wall: +1 or -1

	// parameters
	Ea float64 // lower bound of thrust (active)
	E0 float64 // thrust at zero displacement (at rest)
	Ep float64 // upper bound of thrust (passive)
	Kh float64 // stiffness

	// state
	Dp    float64 // committed plastic displacement δp
	Inact bool    // deactivated

	// problem variables
	Umap []int // assembly map (location array/element equations)
}

// NewEarthSpring returns a new spring acting on node n
func NewEarthSpring(eid int, n *Node, dir, ea, e0, ep, kh float64) (o *EarthSpring, err error) {
	if dir != 1 && dir != -1 {
		return nil, chk.Err("spring %d: direction must be +1 or -1. dir=%g is invalid", eid, dir)
	}
	if kh <= 0 {
		return nil, chk.Err("spring %d: stiffness must be positive. kh=%g is invalid", eid, kh)
	}
	o = &EarthSpring{Eid: eid, Node: n, Dir: dir, Kh: kh, Umap: []int{n.Eqs[0]}}
	err = o.SetBounds(ea, e0, ep)
	return
}

// Id returns the element Id
func (o *EarthSpring) Id() int { return o.Eid }

// Active tells whether the element takes part in the analysis
func (o *EarthSpring) Active() bool { return !o.Inact }

// SetBounds replaces the bounds of the thrust; the plastic displacement is kept
func (o *EarthSpring) SetBounds(ea, e0, ep float64) (err error) {
	if ea > e0 || e0 > ep || math.IsNaN(ea) || math.IsNaN(e0) || math.IsNaN(ep) {
		return chk.Err("spring %d: bounds must satisfy Ea ≤ E0 ≤ Ep. Ea=%g, E0=%g, Ep=%g", o.Eid, ea, e0, ep)
	}
	o.Ea, o.E0, o.Ep = ea, e0, ep
	return
}

// Thrust computes the force of the spring for the current displacements; zero if inactive
func (o *EarthSpring) Thrust(sol *Solution) (T float64) {
	if o.Inact {
		return 0
	}
	T, _ = o.calc_thrust(sol)
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *EarthSpring) AddToRhs(fb []float64, sol *Solution) (err error) {
	T, _ := o.calc_thrust(sol)
	fb[o.Umap[0]] += o.Dir * T
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *EarthSpring) AddToKb(Kb *mat.SymDense, sol *Solution, firstIt bool) (err error) {
	kt := o.Kh
	if !firstIt {
		if _, yielding := o.calc_thrust(sol); yielding {
			kt = 0
		}
	}
	I := o.Umap[0]
	Kb.SetSym(I, I, Kb.At(I, I)+kt)
	return
}

// CommitIvs updates the plastic displacement after convergence
func (o *EarthSpring) CommitIvs(sol *Solution) {
	if o.Inact {
		return
	}
	T, yielding := o.calc_thrust(sol)
	if yielding {
		δ := -o.Dir * sol.Y[o.Umap[0]]
		o.Dp = δ - (T-o.E0)/o.Kh
	}
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// calc_thrust computes the thrust and tells whether it reached one of its bounds
func (o *EarthSpring) calc_thrust(sol *Solution) (T float64, yielding bool) {
	δ := -o.Dir * sol.Y[o.Umap[0]]
	T = o.E0 + o.Kh*(δ-o.Dp)
	if T > o.Ep {
		return o.Ep, true
	}
	if T < o.Ea {
		return o.Ea, true
	}
	return T, false
}
