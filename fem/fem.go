// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements a small finite element engine for walls modelled as beams on
// nonlinear springs: nodes along depth, Euler-Bernoulli beams, elastic-perfectly-plastic
// earth springs and an implicit (Newton-Raphson) solver
package fem

import (
	"github.com/xcfem/xc-sub001/inp"

	"github.com/cpmech/gosl/chk"
)

// convergence codes returned by Solve
const (
	Converged = 0 // equilibrium found
	MaxIters  = 1 // max number of iterations reached
	Singular  = 2 // global stiffness matrix is singular
)

// FEsolver implements the actual nonlinear solver
type FEsolver interface {
	Run(d *Domain) (code int)
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func() FEsolver)

// NewDomain returns a new empty domain
//  Input:
//   ctrl -- solver data; nil => default values
func NewDomain(ctrl *inp.SolverData) (o *Domain) {

	// solver data
	if ctrl == nil {
		ctrl = new(inp.SolverData)
		ctrl.SetDefault()
		ctrl.PostProcess()
	}

	// new domain
	o = new(Domain)
	o.Ctrl = ctrl
	o.Sol = new(Solution)
	o.Sum = new(Summary)

	// allocate solver
	if alloc, ok := solverallocators[ctrl.Type]; ok {
		o.Solver = alloc()
	} else {
		chk.Panic("cannot find solver type named %q", ctrl.Type)
	}
	return
}
