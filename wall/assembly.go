// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"math"
	"slices"
	"sort"

	"github.com/xcfem/xc-sub001/soil"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// MinArea is the smallest tributary area of a node with springs
const MinArea = 1e-12

// Geometry holds the geometry and section of the wall
type Geometry struct {
	Top     float64 // depth of top of wall
	Toe     float64 // depth of toe of wall
	ElSize  float64 // target length of beam elements
	Spacing float64 // out-of-plane spacing of piles
	E       float64 // Young's modulus
	I       float64 // second moment of area
}

// Spring holds one soil spring
type Spring struct {
	Handle int           // engine handle
	Node   *Node         // node holding this spring
	Side   soil.Side     // side of the retained soil
	Env    soil.Envelope // current bounds and stiffness
	Inact  bool          // deactivated by excavation
}

// Node holds one node of the wall
type Node struct {
	Id      int        // index in Assembly.Nodes
	Handle  int        // engine handle
	Z       float64    // depth
	Trib    float64    // tributary length
	Area    float64    // tributary area = Trib・Spacing
	Water   float64    // net hydrostatic force; positive => towards the right side
	InSoil  bool       // node is at or below the ground surface
	Springs [2]*Spring // {left, right} springs; nil => none
	Struts  []int      // engine handles of struts
}

// Assembly holds the nodes and beams of the wall, its soil springs and the current excavation
// level on each side
//
//        left          right
//         ─┐    0 ┌─   Nodes[0] = top
//    ⇉⇉⇉⇉ ─┤    ● ├─ ⇇⇇⇇⇇
//    ⇉⇉⇉⇉ ─┤    │ ├─ ⇇⇇⇇⇇   dir(left) = +1 ; dir(right) = -1
//    ⇉⇉⇉⇉ ─┤    ● ├─ ⇇⇇⇇⇇
//         ─┘    ┆ └─
//
type Assembly struct {
	Geo       Geometry      // geometry of wall
	Prof      *soil.Profile // retained soil
	Eng       Engine        // structural-analysis engine
	Nodes     []*Node       // nodes ordered by depth
	Elems     []int         // beam handles; Elems[i] connects Nodes[i] and Nodes[i+1]
	Excavated [2]float64    // current excavation level on each side

	// active springs: side => node id => spring
	active [2]map[int]*Spring
}

// NewAssembly builds the wall in the engine. The depths in fixed (e.g. struts) become nodes.
// Springs are created below the ground surface only, so that every spring can be reached by
// the excavation of its side
func NewAssembly(geo Geometry, prof *soil.Profile, eng Engine, fixed []float64) (o *Assembly, err error) {

	// check
	if geo.Toe <= geo.Top {
		return nil, chk.Err("wall: toe (%g) must be deeper than top (%g)", geo.Toe, geo.Top)
	}
	if geo.ElSize <= 0 || geo.Spacing <= 0 || geo.E <= 0 || geo.I <= 0 {
		return nil, chk.Err("wall: elsize, spacing, E and I must be all positive. elsize=%g, spacing=%g, E=%g, I=%g", geo.ElSize, geo.Spacing, geo.E, geo.I)
	}
	if geo.Toe > prof.Bottom()+tolerance(geo.Toe) {
		return nil, chk.Err("wall: toe (%g) is below the deepest layer (%g)", geo.Toe, prof.Bottom())
	}

	// new assembly
	o = &Assembly{Geo: geo, Prof: prof, Eng: eng}
	for _, side := range soil.Sides {
		o.active[side] = make(map[int]*Spring)
		o.Excavated[side] = min(geo.Top, prof.GroundDepth())
	}

	// nodes
	zs := MeshDepths(geo, prof.Depths, fixed)
	for i, z := range zs {
		n := &Node{Id: i, Handle: eng.CreateNode(z), Z: z}
		if i > 0 {
			n.Trib += (z - zs[i-1]) / 2.0
		}
		if i < len(zs)-1 {
			n.Trib += (zs[i+1] - z) / 2.0
		}
		n.Area = n.Trib * geo.Spacing
		o.Nodes = append(o.Nodes, n)
	}

	// beams
	for i := 1; i < len(o.Nodes); i++ {
		e, err := eng.CreateBeam(o.Nodes[i-1].Handle, o.Nodes[i].Handle, geo.E, geo.I)
		if err != nil {
			return nil, chk.Err("wall: cannot create beam %d:\n%v", i-1, err)
		}
		o.Elems = append(o.Elems, e)
	}

	// springs
	ground := prof.GroundDepth()
	for _, n := range o.Nodes {
		n.InSoil = n.Z >= ground-tolerance(ground) && n.Area > MinArea
		if !n.InSoil {
			continue
		}
		for _, side := range soil.Sides {
			level := max(ground, o.Excavated[side])
			if n.Z <= level+tolerance(level) {
				continue
			}
			env, err := o.Envelope(n, side)
			if err != nil {
				return nil, err
			}
			h, err := eng.CreateSpring(n.Handle, side.Dir(), env.Ea, env.E0, env.Ep, env.Kh)
			if err != nil {
				return nil, chk.Err("wall: cannot create %s spring at depth %g:\n%v", side, n.Z, err)
			}
			s := &Spring{Handle: h, Node: n, Side: side, Env: env}
			n.Springs[side] = s
			o.active[side][n.Id] = s
		}
	}

	// water
	for _, n := range o.Nodes {
		n.Water = prof.NetHydrostaticPressure(n.Z) * n.Area
		if n.Water != 0 {
			eng.SetLoad(n.Handle, n.Water)
		}
	}
	return
}

// MeshDepths returns the depths of the nodes of the wall. The top, the toe, the breakpoints
// inside the wall and the fixed depths are always nodes; the segments in between are divided
// into elements not longer than geo.ElSize
func MeshDepths(geo Geometry, breaks, fixed []float64) (zs []float64) {

	// points that must be nodes
	pts := []float64{geo.Top, geo.Toe}
	for _, z := range append(slices.Clone(breaks), fixed...) {
		if z > geo.Top && z < geo.Toe {
			pts = append(pts, z)
		}
	}
	sort.Float64s(pts)
	uniq := pts[:1]
	for _, z := range pts[1:] {
		if z-uniq[len(uniq)-1] > tolerance(z) {
			uniq = append(uniq, z)
		}
	}
	uniq[len(uniq)-1] = geo.Toe

	// subdivide segments
	zs = []float64{geo.Top}
	for i := 1; i < len(uniq); i++ {
		a, b := uniq[i-1], uniq[i]
		ndiv := max(1, int(math.Ceil((b-a)/geo.ElSize-1e-9)))
		seg := utl.LinSpace(a, b, ndiv+1)
		seg[ndiv] = b
		zs = append(zs, seg[1:]...)
	}
	return
}

// Envelope computes the current bounds of the spring of node n on the given side, accounting
// for the soil already excavated from that side
func (o *Assembly) Envelope(n *Node, side soil.Side) (env soil.Envelope, err error) {
	σv, err := o.Prof.EffectiveOverburden(n.Z, o.Excavated[side], side)
	if err != nil {
		return
	}
	lay, err := o.Prof.LayerAt(n.Z)
	if err != nil {
		return
	}
	return lay.Envelope(σv, n.Area), nil
}

// Rebound recomputes the bounds of all active springs on the given side
func (o *Assembly) Rebound(side soil.Side) (err error) {
	for _, s := range o.Active(side) {
		env, err := o.Envelope(s.Node, side)
		if err != nil {
			return err
		}
		err = o.Eng.UpdateSpringBounds(s.Handle, env.Ea, env.E0, env.Ep)
		if err != nil {
			return chk.Err("wall: cannot update %s spring at depth %g:\n%v", side, s.Node.Z, err)
		}
		s.Env.Ea, s.Env.E0, s.Env.Ep = env.Ea, env.E0, env.Ep
	}
	return
}

// Deactivate removes the spring of node n on the given side. It returns false if there is no
// active spring there
func (o *Assembly) Deactivate(n *Node, side soil.Side) bool {
	s, ok := o.active[side][n.Id]
	if !ok {
		return false
	}
	o.Eng.Deactivate(s.Handle)
	s.Inact = true
	delete(o.active[side], n.Id)
	return true
}

// Active returns the active springs on the given side ordered by depth
func (o *Assembly) Active(side soil.Side) (springs []*Spring) {
	for _, n := range o.Nodes {
		if s, ok := o.active[side][n.Id]; ok {
			springs = append(springs, s)
		}
	}
	return
}

// NumActive returns the number of active springs on the given side
func (o *Assembly) NumActive(side soil.Side) int {
	return len(o.active[side])
}

// Between returns the nodes with depth in (top, bot], ordered by depth
func (o *Assembly) Between(top, bot float64) (nodes []*Node) {
	for _, n := range o.Nodes {
		if n.Z > top+tolerance(top) && n.Z <= bot+tolerance(bot) {
			nodes = append(nodes, n)
		}
	}
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Z < nodes[j].Z })
	return
}

// NodeAt returns the node at depth z
func (o *Assembly) NodeAt(z float64) (*Node, error) {
	for _, n := range o.Nodes {
		if math.Abs(n.Z-z) <= tolerance(z) {
			return n, nil
		}
	}
	return nil, chk.Err("wall: there is no node at depth %g", z)
}

// InstallStrut adds a linear spring with stiffness k at depth z. It has no force at the
// current displacement of the wall
func (o *Assembly) InstallStrut(z, k float64) (err error) {
	n, err := o.NodeAt(z)
	if err != nil {
		return
	}
	h, err := o.Eng.CreateSpring(n.Handle, 1, math.Inf(-1), 0, math.Inf(1), k)
	if err != nil {
		return chk.Err("wall: cannot install strut at depth %g:\n%v", z, err)
	}
	n.Struts = append(n.Struts, h)
	return
}

// tolerance returns the tolerance to compare depths around x
func tolerance(x float64) float64 {
	return 1e-7 * max(1, math.Abs(x))
}
