// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"bytes"
	"math"
	"slices"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Excavation holds one planned excavation level
type Excavation struct {
	Depth float64 // target depth of excavation
	Side  Side    // side being excavated
}

// Surcharge holds a vertical load applied on the ground surface of one side
type Surcharge struct {
	Side  Side    // loaded side
	Q     float64 // load intensity [kN/m²]
	Width float64 // width of strip load measured from the wall; 0 => uniform (infinite) load
}

// Profile holds the layered soil retained by the wall. Depths are positive downwards and
// measured from the top of the wall. The breakpoints split the ground into intervals with one
// layer each; water tables and excavation levels are themselves breakpoints (see InsertDepth)
//
//              wall top  (z = 0)
//        ──────┬────────────────── Depths[0]  ground
//     left     │  Layers[0]           right
//        ─ ─ ─ ┼ ─ ─ ─ ─ ─ ─ ─ ─ ─ Depths[1]  (e.g. water table)
//              │  Layers[1]
//        ──────┼────────────────── Depths[2]
//              ┆
//
type Profile struct {
	Depths []float64 // breakpoints; strictly increasing
	Layers []Layer   // one layer per interval; len(Layers) == len(Depths) - 1
	GamW   float64   // unit weight of water

	// water tables
	water [2]int         // index of water table in Depths; -1 => none
	hydro [2]HydroStatic // pore pressure on each side

	// excavations and loads
	excav   []int       // index of each excavation level in Depths
	exsides []Side      // side of each excavation
	surch   []Surcharge // surface loads
}

// NewProfile returns a new soil profile
//  depths      -- breakpoints [ndepths]; ndepths ≥ 2
//  layers      -- layers [ndepths-1]
//  gamW        -- unit weight of water
//  waterL      -- depth of water table on the left side; ≥ FarDepth => none
//  waterR      -- depth of water table on the right side; ≥ FarDepth => none
//  excavations -- planned excavation levels, one per stage
//  surcharges  -- surface loads
func NewProfile(depths []float64, layers []Layer, gamW, waterL, waterR float64, excavations []Excavation, surcharges []Surcharge) (o *Profile, err error) {

	// check breakpoints
	if len(depths) < 2 {
		return nil, chk.Err("profile: at least 2 depth breakpoints are required. %d is invalid", len(depths))
	}
	if len(layers) != len(depths)-1 {
		return nil, chk.Err("profile: number of layers (%d) must be equal to number of depths minus one (%d)", len(layers), len(depths)-1)
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] <= depths[i-1] {
			return nil, chk.Err("profile: depths must be strictly increasing. depths[%d]=%g ≤ depths[%d]=%g", i, depths[i], i-1, depths[i-1])
		}
	}
	if gamW <= 0 {
		return nil, chk.Err("profile: unit weight of water must be positive. gamW=%g is invalid", gamW)
	}

	// new profile
	o = new(Profile)
	o.Depths = slices.Clone(depths)
	o.Layers = slices.Clone(layers)
	o.GamW = gamW
	o.water = [2]int{-1, -1}

	// water tables
	for _, side := range Sides {
		level := waterL
		if side == Right {
			level = waterR
		}
		o.hydro[side].Init(FarDepth, gamW)
		if level >= FarDepth {
			continue
		}
		idx, e := o.InsertDepth(level)
		if e != nil {
			return nil, chk.Err("profile: cannot set water table on %s side:\n%v", side, e)
		}
		o.water[side] = idx
		o.hydro[side].Init(level, gamW)
	}

	// excavation levels
	last := [2]float64{math.Inf(-1), math.Inf(-1)}
	for k, ex := range excavations {
		if ex.Side != Left && ex.Side != Right {
			return nil, chk.Err("profile: side of excavation %d is invalid: %d", k, ex.Side)
		}
		if ex.Depth < last[ex.Side] {
			return nil, chk.Err("profile: excavation %d on %s side at %g is above the previous one at %g", k, ex.Side, ex.Depth, last[ex.Side])
		}
		last[ex.Side] = ex.Depth
		idx, e := o.InsertDepth(ex.Depth)
		if e != nil {
			return nil, chk.Err("profile: cannot set excavation %d:\n%v", k, e)
		}
		o.excav = append(o.excav, idx)
		o.exsides = append(o.exsides, ex.Side)
	}

	// surcharges
	for k, s := range surcharges {
		if s.Side != Left && s.Side != Right {
			return nil, chk.Err("profile: side of surcharge %d is invalid: %d", k, s.Side)
		}
		if s.Width < 0 {
			return nil, chk.Err("profile: width of surcharge %d cannot be negative. width=%g is invalid", k, s.Width)
		}
	}
	o.surch = slices.Clone(surcharges)
	return
}

// InsertDepth adds a breakpoint at depth x and returns its index. The interval containing x is
// split into two intervals with the same layer and the indices of water tables and excavations
// at or below the new breakpoint are shifted. Nothing changes if x is already a breakpoint
// (within a depth-scaled tolerance); its index is returned.
func (o *Profile) InsertDepth(x float64) (idx int, err error) {

	// existing breakpoint
	n := len(o.Depths)
	tol := 1e-7 * max(1, math.Abs(x))
	if x < o.Depths[0]-tol || x > o.Depths[n-1]+tol {
		return -1, chk.Err("profile: depth %g is outside the profile [%g, %g]", x, o.Depths[0], o.Depths[n-1])
	}
	idx = sort.SearchFloat64s(o.Depths, x)
	if idx < n && o.Depths[idx]-x <= tol {
		return
	}
	if idx > 0 && x-o.Depths[idx-1] <= tol {
		return idx - 1, nil
	}

	// split interval idx-1
	o.Depths = slices.Insert(o.Depths, idx, x)
	o.Layers = slices.Insert(o.Layers, idx, o.Layers[idx-1])

	// shift indices
	for i := range o.water {
		if o.water[i] >= idx {
			o.water[i]++
		}
	}
	for i := range o.excav {
		if o.excav[i] >= idx {
			o.excav[i]++
		}
	}
	return
}

// GroundDepth returns the depth of the ground surface (first breakpoint)
func (o Profile) GroundDepth() float64 {
	return o.Depths[0]
}

// Bottom returns the depth of the deepest breakpoint
func (o Profile) Bottom() float64 {
	return o.Depths[len(o.Depths)-1]
}

// NumExcavations returns the number of planned excavation stages
func (o Profile) NumExcavations() int {
	return len(o.excav)
}

// ExcavationDepth returns the target depth of stage k; FarDepth if k is not a planned stage
func (o Profile) ExcavationDepth(k int) float64 {
	if k < 0 || k >= len(o.excav) {
		return FarDepth
	}
	return o.Depths[o.excav[k]]
}

// ExcavationSide returns the side excavated in stage k
func (o Profile) ExcavationSide(k int) Side {
	if k < 0 || k >= len(o.exsides) {
		chk.Panic("profile: stage %d does not exist; there are %d stages", k, len(o.exsides))
	}
	return o.exsides[k]
}

// ExcavationIndex returns the index in Depths of the excavation level of stage k
func (o Profile) ExcavationIndex(k int) int {
	return o.excav[k]
}

// WaterTableDepth returns the depth of the water table on the given side; FarDepth if none
func (o Profile) WaterTableDepth(side Side) float64 {
	if o.water[side] < 0 {
		return FarDepth
	}
	return o.Depths[o.water[side]]
}

// WaterTableIndex returns the index in Depths of the water table on the given side; -1 if none
func (o Profile) WaterTableIndex(side Side) int {
	return o.water[side]
}

// LayerIndex returns the index of the layer at depth d. A breakpoint belongs to the layer below
// it; the deepest breakpoint belongs to the last layer
func (o Profile) LayerIndex(d float64) (idx int, err error) {
	n := len(o.Depths)
	tol := 1e-7 * max(1, math.Abs(d))
	if d > o.Depths[n-1]+tol {
		return -1, chk.Err("profile: depth %g is below the deepest layer (bottom at %g)", d, o.Depths[n-1])
	}
	j := sort.Search(n, func(i int) bool { return o.Depths[i] > d+tol })
	return min(max(j-1, 0), len(o.Layers)-1), nil
}

// LayerAt returns the layer at depth d
func (o Profile) LayerAt(d float64) (lay Layer, err error) {
	idx, err := o.LayerIndex(d)
	if err != nil {
		return
	}
	return o.Layers[idx], nil
}

// VerticalPressure computes the vertical effective stress at depth d on the given side by
// integrating the unit weights from the ground surface down to d. Below the water table the
// submerged unit weight is used. The surface surcharges of this side are included.
func (o Profile) VerticalPressure(d float64, side Side) (σv float64, err error) {
	n := len(o.Depths)
	if d > o.Depths[n-1]+1e-7*max(1, math.Abs(d)) {
		return 0, chk.Err("profile: cannot compute vertical pressure at %g below the deepest layer (bottom at %g)", d, o.Depths[n-1])
	}
	zw := o.hydro[side].Level()
	for i, lay := range o.Layers {
		top, bot := o.Depths[i], min(o.Depths[i+1], d)
		if bot <= top {
			break
		}
		dry := max(0, min(bot, zw)-top)
		wet := max(0, bot-max(top, zw))
		σv += lay.Gam*dry + lay.GamSub*wet
	}
	σv += o.surcharge(d, side)
	return
}

// NetHydrostaticPressure returns the water pressure on the left side minus the water pressure
// on the right side at depth d; positive pushes the wall to the right
func (o Profile) NetHydrostaticPressure(d float64) float64 {
	return o.hydro[Left].Calc(d) - o.hydro[Right].Calc(d)
}

// HorizontalPressure returns K times the vertical pressure minus the net hydrostatic pressure
func (o Profile) HorizontalPressure(K, d float64, side Side) (σh float64, err error) {
	σv, err := o.VerticalPressure(d, side)
	if err != nil {
		return
	}
	return σv*K - o.NetHydrostaticPressure(d), nil
}

// EffectiveOverburden returns the vertical pressure at depth d on the given side after the soil
// above depth h has been removed from that side. The surface loads of that side are removed
// with the soil, so only the weight of the soil between h and d remains. h ≤ GroundDepth means
// nothing was removed
func (o Profile) EffectiveOverburden(d, h float64, side Side) (σv float64, err error) {
	σv, err = o.VerticalPressure(d, side)
	if err != nil || h <= o.Depths[0] {
		return
	}
	removed, err := o.VerticalPressure(min(h, d), side)
	if err != nil {
		return
	}
	below := σv - o.surcharge(d, side)
	above := removed - o.surcharge(min(h, d), side)
	return max(0, below-above), nil
}

// surcharge computes the vertical stress at depth d due to the surface loads on the given side.
// Strip loads spread with depth according to the load-spreading ratio of each traversed layer
//
//    Δσv(z) = q・B / (B + 2・Σ spread_i・Δz_i)
//
func (o Profile) surcharge(d float64, side Side) (Δσ float64) {
	if d < o.Depths[0] {
		return 0
	}
	var spread float64
	for i, lay := range o.Layers {
		top, bot := o.Depths[i], min(o.Depths[i+1], d)
		if bot <= top {
			break
		}
		spread += lay.Spread * (bot - top)
	}
	for _, s := range o.surch {
		if s.Side != side {
			continue
		}
		if s.Width == 0 {
			Δσ += s.Q
			continue
		}
		Δσ += s.Q * s.Width / (s.Width + 2.0*spread)
	}
	return
}

// String returns a table with the profile
func (o Profile) String() string {
	var buf bytes.Buffer
	io.Ff(&buf, "%10s%10s%14s%8s%8s%8s%8s%8s%12s\n", "top", "bottom", "layer", "gam", "gamSub", "Ka", "K0", "Kp", "kh")
	for i, lay := range o.Layers {
		io.Ff(&buf, "%10.3f%10.3f%14s%8.2f%8.2f%8.3f%8.3f%8.3f%12g\n", o.Depths[i], o.Depths[i+1], lay.Name, lay.Gam, lay.GamSub, lay.Ka, lay.K0, lay.Kp, lay.Kh)
	}
	for _, side := range Sides {
		if o.water[side] >= 0 {
			io.Ff(&buf, "water table (%s) = %g\n", side, o.WaterTableDepth(side))
		}
	}
	for k := range o.excav {
		io.Ff(&buf, "excavation %d (%s) = %g\n", k, o.exsides[k], o.ExcavationDepth(k))
	}
	return buf.String()
}
