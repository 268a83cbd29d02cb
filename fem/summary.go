// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Summary records summary of solver runs
type Summary struct {
	Codes  []int       // [nsolves] convergence code of each call to Solve
	Resids [][]float64 // [nsolves][nit] largest absolute component of fb at each iteration
}

// Nsolves returns the number of calls to Solve
func (o *Summary) Nsolves() int {
	return len(o.Codes)
}

// Nits returns the number of iterations of solve number i
func (o *Summary) Nits(i int) int {
	return len(o.Resids[i])
}

// MaxNits returns the largest number of iterations among all solves
func (o *Summary) MaxNits() (nmax int) {
	for _, r := range o.Resids {
		nmax = max(nmax, len(r))
	}
	return
}

// Failed returns the number of solves that did not converge
func (o *Summary) Failed() (n int) {
	for _, c := range o.Codes {
		if c != Converged {
			n++
		}
	}
	return
}

// String returns a short report
func (o *Summary) String() string {
	var buf bytes.Buffer
	io.Ff(&buf, "number of solves = %d\n", o.Nsolves())
	io.Ff(&buf, "failed solves    = %d\n", o.Failed())
	io.Ff(&buf, "max iterations   = %d\n", o.MaxNits())
	return buf.String()
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o *Summary) start() {
	o.Resids = append(o.Resids, nil)
}

func (o *Summary) resid(largFb float64) {
	i := len(o.Resids) - 1
	o.Resids[i] = append(o.Resids[i], largFb)
}

func (o *Summary) finish(code int) {
	o.Codes = append(o.Codes, code)
}
