// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"testing"

	"github.com/xcfem/xc-sub001/fem"
	"github.com/xcfem/xc-sub001/soil"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// the reference engine
var _ Engine = (*fem.Domain)(nil)

// fakespring holds the data given to the fake engine
type fakespring struct {
	node           int
	dir            float64
	ea, e0, ep, kh float64
	inact          bool
}

// fake implements Engine. It records the calls that modify springs or solve the model
//  Moment returns the depth and Shear the squared depth of the requested end
type fake struct {
	z       []float64
	beams   [][2]int
	springs []*fakespring
	loads   map[int]float64
	calls   []string
	codes   []int // codes returned by the next calls to Solve; then 0
}

func newfake() *fake {
	return &fake{loads: make(map[int]float64)}
}

func (o *fake) CreateNode(z float64) int {
	o.z = append(o.z, z)
	return len(o.z) - 1
}

func (o *fake) CreateBeam(a, b int, E, Izz float64) (int, error) {
	o.beams = append(o.beams, [2]int{a, b})
	return len(o.beams) - 1, nil
}

func (o *fake) CreateSpring(n int, dir, ea, e0, ep, kh float64) (int, error) {
	o.springs = append(o.springs, &fakespring{node: n, dir: dir, ea: ea, e0: e0, ep: ep, kh: kh})
	return len(o.springs) - 1, nil
}

func (o *fake) UpdateSpringBounds(s int, ea, e0, ep float64) error {
	o.calls = append(o.calls, io.Sf("update %d", s))
	o.springs[s].ea, o.springs[s].e0, o.springs[s].ep = ea, e0, ep
	return nil
}

func (o *fake) Deactivate(s int) {
	o.calls = append(o.calls, io.Sf("deactivate %d", s))
	o.springs[s].inact = true
}

func (o *fake) SetLoad(n int, fx float64) {
	o.loads[n] = fx
}

func (o *fake) Solve() (code int) {
	o.calls = append(o.calls, "solve")
	if len(o.codes) > 0 {
		code, o.codes = o.codes[0], o.codes[1:]
	}
	return
}

func (o *fake) Displacement(n int) float64 { return -0.001 * o.z[n] }

func (o *fake) Reaction(n int) (R float64) {
	for _, s := range o.springs {
		if s.node == n && !s.inact {
			R += s.dir * s.e0
		}
	}
	return
}

func (o *fake) Moment(e, end int) float64 { return o.z[o.beams[e][end]] }

func (o *fake) Shear(e, end int) float64 {
	z := o.z[o.beams[e][end]]
	return z * z
}

func (o *fake) SpringForce(s int) float64 {
	if o.springs[s].inact {
		return 0
	}
	return o.springs[s].e0
}

// count returns the number of recorded calls starting with prefix
func (o *fake) count(prefix string) (n int) {
	for _, c := range o.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return
}

// twolayers returns the profile with sand (0 to 4 m) over clay (4 to 10 m)
//  sand: gam=18 gamSub=10 ; clay: gam=19 gamSub=9 ; Ka=0.3 K0=0.5 Kp=3 kh=20000 ; gamW=10
func twolayers(tst *testing.T, waterL, waterR float64, excavations []soil.Excavation) *soil.Profile {
	var layers []soil.Layer
	for _, g := range [][]float64{{18, 10}, {19, 9}} {
		lay, err := soil.NewLayer(io.Sf("gam%g", g[0]), []*dbf.P{
			&dbf.P{N: "gam", V: g[0]}, &dbf.P{N: "gamSub", V: g[1]},
			&dbf.P{N: "Ka", V: 0.3}, &dbf.P{N: "K0", V: 0.5}, &dbf.P{N: "Kp", V: 3.0},
			&dbf.P{N: "kh", V: 20000},
		}, 10)
		if err != nil {
			tst.Fatalf("NewLayer failed:\n%v", err)
		}
		layers = append(layers, lay)
	}
	prof, err := soil.NewProfile([]float64{0, 4, 10}, layers, 10, waterL, waterR, excavations, nil)
	if err != nil {
		tst.Fatalf("NewProfile failed:\n%v", err)
	}
	return prof
}

// leftcut returns the profile with one excavation to 3 m on the left side
func leftcut(tst *testing.T) *soil.Profile {
	return twolayers(tst, soil.FarDepth, soil.FarDepth, []soil.Excavation{{Depth: 3, Side: soil.Left}})
}

// unitwall returns a wall from 0 to 10 m with 1 m elements
func unitwall() Geometry {
	return Geometry{Top: 0, Toe: 10, ElSize: 1, Spacing: 1, E: 2.1e8, I: 1e-3}
}
