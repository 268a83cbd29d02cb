// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"bytes"
	"sort"

	"github.com/xcfem/xc-sub001/soil"

	"github.com/cpmech/gosl/io"
)

// Record holds the results at one node in the soil
type Record struct {
	Node     int              // node id
	Depth    float64          // depth
	Ux       float64          // lateral displacement
	Reaction float64          // resultant force of springs and struts
	M        float64          // bending moment
	V        float64          // shear force
	Dp       float64          // pressure difference: dV/dz
	Bounds   [2]soil.Envelope // current bounds on {left, right}; zero if there is no active spring
	Thrust   [2]float64       // current thrust of {left, right} springs
	Water    float64          // net hydrostatic force
	Area     float64          // tributary area
}

// Table holds the results of one stage ordered by depth
type Table struct {
	Stage     int        // stage; -1 => before excavation
	Excavated [2]float64 // excavation level on each side
	Records   []*Record  // records of nodes in the soil
}

// Extract reads the results of the current state of the wall
func Extract(asm *Assembly, stage int) (o *Table, err error) {

	// new table
	o = &Table{Stage: stage, Excavated: asm.Excavated}
	eng := asm.Eng
	nn := len(asm.Nodes)
	ne := len(asm.Elems)

	// internal forces: start of element i at node i; end of last element at last node
	M := make([]float64, nn)
	V := make([]float64, nn)
	for i, e := range asm.Elems {
		M[i] = eng.Moment(e, 0)
		V[i] = eng.Shear(e, 0)
	}
	M[nn-1] = eng.Moment(asm.Elems[ne-1], 1)
	V[nn-1] = eng.Shear(asm.Elems[ne-1], 1)

	// pressure difference @ midpoints of elements
	zm := make([]float64, ne)
	dp := make([]float64, ne)
	for k := 0; k < ne; k++ {
		za, zb := asm.Nodes[k].Z, asm.Nodes[k+1].Z
		zm[k] = (za + zb) / 2.0
		dp[k] = (V[k+1] - V[k]) / (zb - za)
	}

	// records
	for i, n := range asm.Nodes {
		if !n.InSoil {
			continue
		}
		r := &Record{
			Node:     n.Id,
			Depth:    n.Z,
			Ux:       eng.Displacement(n.Handle),
			Reaction: eng.Reaction(n.Handle),
			M:        M[i],
			V:        V[i],
			Dp:       interp(zm, dp, n.Z),
			Water:    n.Water,
			Area:     n.Area,
		}
		for _, side := range soil.Sides {
			s := n.Springs[side]
			if s == nil {
				continue
			}
			r.Thrust[side] = eng.SpringForce(s.Handle)
			if s.Inact {
				continue
			}
			r.Bounds[side], err = asm.Envelope(n, side)
			if err != nil {
				return nil, err
			}
		}
		o.Records = append(o.Records, r)
	}
	return
}

// Depths returns the depths of all records
func (o *Table) Depths() (z []float64) {
	z = make([]float64, len(o.Records))
	for i, r := range o.Records {
		z[i] = r.Depth
	}
	return
}

// String returns the table formatted as text
func (o *Table) String() string {
	var buf bytes.Buffer
	io.Ff(&buf, "stage %d: excavated to %g (left) and %g (right)\n", o.Stage, o.Excavated[soil.Left], o.Excavated[soil.Right])
	io.Ff(&buf, "%8s%14s%12s%12s%12s%12s%12s%12s%12s\n", "z", "ux", "R", "M", "V", "dp", "TL", "TR", "W")
	for _, r := range o.Records {
		io.Ff(&buf, "%8.3f%14.6e%12.4f%12.4f%12.4f%12.4f%12.4f%12.4f%12.4f\n", r.Depth, r.Ux, r.Reaction, r.M, r.V, r.Dp, r.Thrust[soil.Left], r.Thrust[soil.Right], r.Water)
	}
	return buf.String()
}

// interp computes y(x) by linear interpolation of the points (xs, ys) with xs increasing;
// extrapolates beyond the first and last points
func interp(xs, ys []float64, x float64) float64 {
	n := len(xs)
	switch n {
	case 0:
		return 0
	case 1:
		return ys[0]
	}
	i := min(max(sort.SearchFloat64s(xs, x), 1), n-1)
	return ys[i-1] + (ys[i]-ys[i-1])*(x-xs[i-1])/(xs[i]-xs[i-1])
}
