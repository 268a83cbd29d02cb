// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SolverLinearImplicit solves **linear** FEM problem: the initial stiffness is assembled and
// factorised and a single correction is computed. The result is exact only if no spring reaches
// its bounds
type SolverLinearImplicit struct {
}

// set factory of solvers
func init() {
	solverallocators["lin-imp"] = func() FEsolver {
		solver := new(SolverLinearImplicit)
		return solver
	}
}

// Run computes one correction with the initial stiffness
func (o *SolverLinearImplicit) Run(d *Domain) (code int) {

	// nothing to solve
	if d.Ny == 0 {
		return Converged
	}
	for i := range d.Sol.ΔY {
		d.Sol.ΔY[i] = 0
	}

	// assemble right-hand side vector (fb) with **negative** of residuals
	for i := range d.Fb {
		d.Fb[i] = 0
	}
	for _, e := range d.Elems {
		if e.Active() {
			e.AddToRhs(d.Fb, d.Sol)
		}
	}
	for _, n := range d.Nodes {
		d.Fb[n.Eqs[0]] += n.Fx
	}
	largFb := floats.Norm(d.Fb, math.Inf(1))
	d.Sum.resid(largFb)
	if largFb < d.Ctrl.FbMin {
		return Converged
	}

	// assemble and factorise Jacobian matrix
	d.Kb.Zero()
	for _, e := range d.Elems {
		if e.Active() {
			e.AddToKb(d.Kb, d.Sol, true)
		}
	}
	if ok := d.chol.Factorize(d.Kb); !ok {
		if d.Ctrl.ShowR {
			io.PfRed("stiffness matrix is singular\n")
		}
		return Singular
	}

	// solve for wb
	err := d.chol.SolveVecTo(mat.NewVecDense(d.Ny, d.Wb), mat.NewVecDense(d.Ny, d.Fb))
	if err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return Singular
		}
	}

	// update primary variables (y)
	for i := 0; i < d.Ny; i++ {
		d.Sol.Y[i] += d.Wb[i]  // y += δy
		d.Sol.ΔY[i] += d.Wb[i] // ΔY += δy
	}
	if d.Ctrl.ShowR {
		io.Pf("%23.15e%23.15e\n", largFb, floats.Norm(d.Wb, math.Inf(1)))
	}

	// update internal variables
	for _, e := range d.ElemIntvars {
		e.CommitIvs(d.Sol)
	}
	return Converged
}
