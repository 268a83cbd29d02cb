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

// SolverImplicit solves FEM problem using an implicit procedure (with Newthon-Raphson method)
type SolverImplicit struct {
}

// set factory
func init() {
	solverallocators["imp"] = func() FEsolver {
		solver := new(SolverImplicit)
		return solver
	}
}

// Run finds the equilibrium state starting from the last converged one
func (o *SolverImplicit) Run(d *Domain) (code int) {

	// nothing to solve
	if d.Ny == 0 {
		return Converged
	}

	// zero accumulated increments
	for i := range d.Sol.ΔY {
		d.Sol.ΔY[i] = 0
	}

	// vectors sharing memory with Fb and Wb
	fb := mat.NewVecDense(d.Ny, d.Fb)
	wb := mat.NewVecDense(d.Ny, d.Wb)

	// auxiliary variables
	ctrl := d.Ctrl
	var it int
	var largFb, largFb0, Lδu float64
	converged := false

	// message
	if ctrl.ShowR {
		io.Pf("\n%4s%23s%23s\n", "it", "largFb", "Lδu")
		defer func() {
			io.Pf("%4d%23.15e%23.15e\n", it, largFb, Lδu)
		}()
	}

	// iterations
	for it = 0; it < ctrl.NmaxIt; it++ {

		// assemble right-hand side vector (fb) with negative of residuals
		for i := range d.Fb {
			d.Fb[i] = 0
		}
		for _, e := range d.Elems {
			if e.Active() {
				e.AddToRhs(d.Fb, d.Sol)
			}
		}

		// point natural boundary conditions; e.g. concentrated loads
		for _, n := range d.Nodes {
			d.Fb[n.Eqs[0]] += n.Fx
		}

		// find largest absolute component of fb
		largFb = floats.Norm(d.Fb, math.Inf(1))
		d.Sum.resid(largFb)

		// check largFb value
		if it == 0 {
			largFb0 = largFb
		} else if largFb < ctrl.FbTol*largFb0 { // converged on fb
			converged = true
			break
		}
		if largFb < ctrl.FbMin { // converged with smallest value of fb
			converged = true
			break
		}

		// assemble Jacobian matrix
		do_asm_fact := (it == 0 || !ctrl.CteTg)
		if do_asm_fact {

			// assemble element matrices
			d.Kb.Zero()
			for _, e := range d.Elems {
				if e.Active() {
					e.AddToKb(d.Kb, d.Sol, it == 0)
				}
			}

			// perform factorisation
			if ok := d.chol.Factorize(d.Kb); !ok {
				if ctrl.ShowR {
					io.PfRed("stiffness matrix is singular\n")
				}
				return Singular
			}
		}

		// solve for wb := δyb
		err := d.chol.SolveVecTo(wb, fb)
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

		// compute RMS norm of δu and check convegence on δu
		Lδu = rms_err(d.Wb, ctrl.Atol, ctrl.Rtol, d.Sol.Y)

		// message
		if ctrl.ShowR {
			io.Pf("%4d%23.15e%23.15e\n", it, largFb, Lδu)
		}

		// stop if converged on δu
		if Lδu < ctrl.Itol {
			converged = true
			break
		}
	}

	// check if iterations diverged
	if !converged {
		if ctrl.ShowR {
			io.Pfyel("max number of iterations reached: it = %d\n", it)
		}
		return MaxIters
	}

	// update internal variables
	for _, e := range d.ElemIntvars {
		e.CommitIvs(d.Sol)
	}
	return Converged
}
