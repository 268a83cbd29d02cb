// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/xcfem/xc-sub001/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Node holds a node of the wall and its equation numbers
type Node struct {
	Id      int            // node id
	Z       float64        // depth
	Eqs     [2]int         // equations of {ux, rz}
	Fx      float64        // prescribed lateral force
	Springs []*EarthSpring // springs connected to this node
}

// Solution holds the solution data @ nodes.
//
//          / ux0 \
//          | rz0 |
//    y  =  | ux1 |
//          | rz1 |
//          \ ... / (ny x 1)
//
type Solution struct {
	Y  []float64 // DOFs (solution variables)
	ΔY []float64 // total increment of last call to Solve (for nonlinear solver)
}

// Domain holds all Nodes and Elements in addition to the Solution at nodes. Handles returned
// by the Create methods are indices in Nodes, Beams or Springs
type Domain struct {

	// init: auxiliary variables
	Ctrl   *inp.SolverData // solver data
	Solver FEsolver        // nonlinear solver
	Sum    *Summary        // summary of solver runs

	// nodes and elements
	Nodes   []*Node        // all nodes
	Beams   []*Beam        // all beams
	Springs []*EarthSpring // all springs (including deactivated ones)
	Elems   []Elem         // beams and springs in order of creation

	// subsets of elements
	ElemIntvars []ElemIntvars // elements with internal vars

	// dimensions
	Ny int // total number of dofs

	// solution and linear solver
	Sol  *Solution     // solution state
	Kb   *mat.SymDense // Jacobian == dRdy
	Fb   []float64     // residual == -fb
	Wb   []float64     // workspace
	chol mat.Cholesky  // factorisation of Kb
}

// CreateNode adds a node at depth z and returns its handle
func (o *Domain) CreateNode(z float64) int {
	n := &Node{Id: len(o.Nodes), Z: z, Eqs: [2]int{o.Ny, o.Ny + 1}}
	o.Nodes = append(o.Nodes, n)
	o.Ny += 2
	return n.Id
}

// CreateBeam adds a beam connecting nodes a (top) and b (bottom) and returns its handle
func (o *Domain) CreateBeam(a, b int, E, Izz float64) (int, error) {
	eid := len(o.Elems)
	beam, err := NewBeam(eid, o.node(a), o.node(b), E, Izz)
	if err != nil {
		return -1, err
	}
	o.Beams = append(o.Beams, beam)
	o.Elems = append(o.Elems, beam)
	return len(o.Beams) - 1, nil
}

// CreateSpring adds an earth spring at node n pushing the wall along dir (+1 or -1) and
// returns its handle. An unbounded linear spring (e.g. a strut) has ea=-∞, e0=0 and ep=+∞.
// The new spring exerts e0 at the current displacement of the node
func (o *Domain) CreateSpring(n int, dir, ea, e0, ep, kh float64) (int, error) {
	o.alloc()
	eid := len(o.Elems)
	nod := o.node(n)
	spring, err := NewEarthSpring(eid, nod, dir, ea, e0, ep, kh)
	if err != nil {
		return -1, err
	}
	spring.Dp = -dir * o.Sol.Y[nod.Eqs[0]]
	nod.Springs = append(nod.Springs, spring)
	o.Springs = append(o.Springs, spring)
	o.Elems = append(o.Elems, spring)
	o.ElemIntvars = append(o.ElemIntvars, spring)
	return len(o.Springs) - 1, nil
}

// UpdateSpringBounds replaces the bounds of a spring
func (o *Domain) UpdateSpringBounds(s int, ea, e0, ep float64) error {
	return o.spring(s).SetBounds(ea, e0, ep)
}

// Deactivate removes a spring from the analysis. It cannot be activated again
func (o *Domain) Deactivate(s int) {
	o.spring(s).Inact = true
}

// SetLoad sets the prescribed lateral force at node n
func (o *Domain) SetLoad(n int, fx float64) {
	o.node(n).Fx = fx
}

// Solve finds the equilibrium state; it returns Converged, MaxIters or Singular
func (o *Domain) Solve() int {
	o.alloc()
	o.Sum.start()
	code := o.Solver.Run(o)
	o.Sum.finish(code)
	return code
}

// Displacement returns the lateral displacement of node n
func (o *Domain) Displacement(n int) float64 {
	o.alloc()
	return o.Sol.Y[o.node(n).Eqs[0]]
}

// Rotation returns the rotation of node n
func (o *Domain) Rotation(n int) float64 {
	o.alloc()
	return o.Sol.Y[o.node(n).Eqs[1]]
}

// Reaction returns the resultant lateral force of the springs acting on node n
func (o *Domain) Reaction(n int) (R float64) {
	o.alloc()
	for _, s := range o.node(n).Springs {
		R += s.Dir * s.Thrust(o.Sol)
	}
	return
}

// Moment returns the bending moment of beam e at end 0 (top) or 1 (bottom)
func (o *Domain) Moment(e, end int) float64 {
	o.alloc()
	_, M := o.beam(e).CalcVandM(o.Sol, float64(o.end(end)))
	return M
}

// Shear returns the shear force of beam e at end 0 (top) or 1 (bottom)
func (o *Domain) Shear(e, end int) float64 {
	o.alloc()
	V, _ := o.beam(e).CalcVandM(o.Sol, float64(o.end(end)))
	return V
}

// SpringForce returns the thrust of spring s; zero if deactivated
func (o *Domain) SpringForce(s int) float64 {
	o.alloc()
	return o.spring(s).Thrust(o.Sol)
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// alloc (re)allocates solution vectors and matrices after nodes have been added
func (o *Domain) alloc() {
	if len(o.Fb) == o.Ny {
		return
	}
	o.Sol.Y = resize(o.Sol.Y, o.Ny)
	o.Sol.ΔY = resize(o.Sol.ΔY, o.Ny)
	o.Fb = make([]float64, o.Ny)
	o.Wb = make([]float64, o.Ny)
	if o.Ny > 0 {
		o.Kb = mat.NewSymDense(o.Ny, nil)
	}
}

func (o *Domain) node(n int) *Node {
	if n < 0 || n >= len(o.Nodes) {
		chk.Panic("cannot find node %d; there are %d nodes", n, len(o.Nodes))
	}
	return o.Nodes[n]
}

func (o *Domain) beam(e int) *Beam {
	if e < 0 || e >= len(o.Beams) {
		chk.Panic("cannot find beam %d; there are %d beams", e, len(o.Beams))
	}
	return o.Beams[e]
}

func (o *Domain) spring(s int) *EarthSpring {
	if s < 0 || s >= len(o.Springs) {
		chk.Panic("cannot find spring %d; there are %d springs", s, len(o.Springs))
	}
	return o.Springs[s]
}

func (o *Domain) end(end int) int {
	if end != 0 && end != 1 {
		chk.Panic("end of element must be 0 or 1. %d is invalid", end)
	}
	return end
}

// resize returns v with length n keeping its first values
func resize(v []float64, n int) []float64 {
	if len(v) >= n {
		return v[:n]
	}
	return append(v, make([]float64, n-len(v))...)
}

// rms_err computes the root-mean-square of the scaled error: sqrt(Σ(u/(atol+rtol・|v|))²/n)
func rms_err(u []float64, atol, rtol float64, v []float64) (rms float64) {
	if len(u) == 0 {
		return
	}
	for i := range u {
		e := u[i] / (atol + rtol*math.Abs(v[i]))
		rms += e * e
	}
	return math.Sqrt(rms / float64(len(u)))
}
