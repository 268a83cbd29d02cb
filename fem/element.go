// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "gonum.org/v1/gonum/mat"

// Elem defines what elements must calculate
type Elem interface {

	// information
	Id() int      // returns the element Id
	Active() bool // tells whether the element takes part in the analysis

	// called for each iteration
	AddToRhs(fb []float64, sol *Solution) (err error)                  // adds -R to global residual vector fb
	AddToKb(Kb *mat.SymDense, sol *Solution, firstIt bool) (err error) // adds element K to global Jacobian matrix Kb
}

// ElemIntvars defines elements with internal variables
type ElemIntvars interface {
	CommitIvs(sol *Solution) // updates internal variables after convergence
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// add_to_sym adds the element matrix K to the upper triangle of the global symmetric matrix Kb
func add_to_sym(Kb *mat.SymDense, umap []int, K [][]float64) {
	for i, I := range umap {
		for j, J := range umap {
			if J >= I {
				Kb.SetSym(I, J, Kb.At(I, J)+K[i][j])
			}
		}
	}
}
