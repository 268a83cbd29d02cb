// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Beam represents a structural beam element (Euler-Bernoulli, linear elastic) aligned with the
// depth axis. Each node has a lateral displacement ux and a rotation rz = dux/dz
//
//          z=za  o  ── end 0 (s = 0)
//                │
//                │  E, I
//                │
//          z=zb  o  ── end 1 (s = 1)
//
type Beam struct {

	// basic data
	Eid int     // element id
	Na  *Node   // node at end 0
	Nb  *Node   // node at end 1
	L   float64 // length of beam

	// parameters and properties
	E   float64 // Young's modulus
	Izz float64 // Inertia zz

	// vectors and matrices
	K [][]float64 // [4][4] element K matrix

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// scratchpad
	ue []float64 // [4] element displacements
	fi []float64 // [4] internal forces
}

// NewBeam returns a new beam element connecting nodes a and b
func NewBeam(eid int, a, b *Node, E, Izz float64) (o *Beam, err error) {

	// check
	ϵp := 1e-9
	if E < ϵp || Izz < ϵp {
		return nil, chk.Err("beam %d: E and Izz parameters must be all positive. E=%g, Izz=%g", eid, E, Izz)
	}
	l := b.Z - a.Z
	if l < ϵp {
		return nil, chk.Err("beam %d: node %d (z=%g) must be above node %d (z=%g)", eid, a.Id, a.Z, b.Id, b.Z)
	}

	// basic data
	o = new(Beam)
	o.Eid, o.Na, o.Nb, o.L = eid, a, b, l
	o.E, o.Izz = E, Izz
	o.Umap = []int{a.Eqs[0], a.Eqs[1], b.Eqs[0], b.Eqs[1]}
	o.ue = make([]float64, 4)
	o.fi = make([]float64, 4)

	// K
	ll := l * l
	n := E * Izz / (ll * l)
	o.K = [][]float64{
		{12 * n, 6 * l * n, -12 * n, 6 * l * n},
		{6 * l * n, 4 * ll * n, -6 * l * n, 2 * ll * n},
		{-12 * n, -6 * l * n, 12 * n, -6 * l * n},
		{6 * l * n, 2 * ll * n, -6 * l * n, 4 * ll * n},
	}
	return
}

// Id returns the element Id
func (o *Beam) Id() int { return o.Eid }

// Active tells whether the element takes part in the analysis
func (o *Beam) Active() bool { return true }

// AddToRhs adds -R to global residual vector fb
func (o *Beam) AddToRhs(fb []float64, sol *Solution) (err error) {
	for i, I := range o.Umap {
		o.ue[i] = sol.Y[I]
	}
	for i := 0; i < 4; i++ {
		o.fi[i] = 0
		for j := 0; j < 4; j++ {
			o.fi[i] += o.K[i][j] * o.ue[j]
		}
	}
	for i, I := range o.Umap {
		fb[I] -= o.fi[i]
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *Beam) AddToKb(Kb *mat.SymDense, sol *Solution, firstIt bool) (err error) {
	add_to_sym(Kb, o.Umap, o.K)
	return
}

// CalcVandM calculate shear force and bending moment @ s
//  Input:
//   s -- natural coordinate   0 ≤ s ≤ 1
//  Output:
//   V -- shear force @ s (constant along the element)
//   M -- bending moment @ s
func (o *Beam) CalcVandM(sol *Solution, s float64) (V, M float64) {

	// displacements
	for i, I := range o.Umap {
		o.ue[i] = sol.Y[I]
	}

	// auxiliary variables
	r := s * o.L
	l := o.L
	ll := l * l
	lll := ll * l

	// shear force
	V = o.E * o.Izz * ((12.0*o.ue[0])/lll + (6.0*o.ue[1])/ll - (12.0*o.ue[2])/lll + (6.0*o.ue[3])/ll)

	// bending moment
	M = o.E * o.Izz * (o.ue[0]*((12.0*r)/lll-6.0/ll) + o.ue[1]*((6.0*r)/ll-4.0/l) + o.ue[2]*(6.0/ll-(12.0*r)/lll) + o.ue[3]*((6.0*r)/ll-2.0/l))
	return
}
