// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wall implements the staged excavation of a pile wall supported by nonlinear soil
// springs: the assembly of nodes, beams and springs, the stage processor that removes soil and
// re-bounds the remaining springs, and the extraction of results after each stage
package wall

// Engine defines the structural-analysis engine used by the wall. Nodes, beams and springs are
// referred to by the handles returned by the Create methods
type Engine interface {
	CreateNode(z float64) int                                     // adds a node at depth z
	CreateBeam(a, b int, E, Izz float64) (int, error)             // adds a beam from node a (top) to node b (bottom)
	CreateSpring(n int, dir, ea, e0, ep, kh float64) (int, error) // adds a spring at node n pushing along dir
	UpdateSpringBounds(s int, ea, e0, ep float64) error           // replaces the bounds of spring s
	Deactivate(s int)                                             // removes spring s irreversibly
	SetLoad(n int, fx float64)                                    // sets the lateral load at node n
	Solve() int                                                   // finds equilibrium; 0 => converged
	Displacement(n int) float64                                   // lateral displacement of node n
	Reaction(n int) float64                                       // resultant spring force at node n
	Moment(e, end int) float64                                    // bending moment of beam e at end 0 or 1
	Shear(e, end int) float64                                     // shear force of beam e at end 0 or 1
	SpringForce(s int) float64                                    // thrust of spring s
}
