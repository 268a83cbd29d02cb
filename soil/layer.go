// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package soil implements the layered soil model retained by the wall: unit weights,
// earth-pressure coefficients, water tables and the overburden at any depth
package soil

import (
	"math"

	"github.com/xcfem/xc-sub001/ana"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Layer holds the properties of one soil layer. It is a value object: once created by NewLayer
// it is only copied, never modified.
type Layer struct {
	Name   string  // name of layer
	Gam    float64 // unit weight [kN/m³]
	GamSub float64 // submerged unit weight [kN/m³]
	Phi    float64 // effective friction angle [deg]
	Ka     float64 // coefficient of active earth pressure
	K0     float64 // coefficient of earth pressure at rest
	Kp     float64 // coefficient of passive earth pressure
	Kh     float64 // horizontal subgrade modulus [kN/m³]
	Spread float64 // load-spreading ratio: horizontal spread per unit depth
}

// NewLayer returns a new layer from its parameters
//  Parameters:
//   gam    -- unit weight (required)
//   gamSub -- submerged unit weight; default = gam - gamW
//   phi    -- friction angle in degrees; used to compute the missing coefficients
//   delta  -- wall friction angle in degrees (Coulomb coefficients); requires phi
//   Ka, K0, Kp -- earth-pressure coefficients
//   kh     -- horizontal subgrade modulus (required)
//   spread -- load-spreading ratio
func NewLayer(name string, prms dbf.Params, gamW float64) (o Layer, err error) {

	// parameters
	o.Name = name
	var hasKa, hasK0, hasKp, hasPhi, hasSub bool
	for _, p := range prms {
		switch p.N {
		case "gam":
			o.Gam = p.V
		case "gamSub":
			o.GamSub, hasSub = p.V, true
		case "phi":
			o.Phi, hasPhi = p.V, true
		case "Ka":
			o.Ka, hasKa = p.V, true
		case "K0":
			o.K0, hasK0 = p.V, true
		case "Kp":
			o.Kp, hasKp = p.V, true
		case "kh":
			o.Kh = p.V
		case "spread":
			o.Spread = p.V
		}
	}

	// submerged unit weight
	if !hasSub {
		o.GamSub = max(0, o.Gam-gamW)
	}

	// coefficients from friction angle
	if !(hasKa && hasK0 && hasKp) {
		if !hasPhi {
			err = chk.Err("layer %q: either Ka, K0 and Kp or phi must be given", name)
			return
		}
		var ep ana.EarthPressure
		err = ep.Init(prms)
		if err != nil {
			err = chk.Err("layer %q: cannot compute earth-pressure coefficients:\n%v", name, err)
			return
		}
		if !hasKa {
			o.Ka = ep.Ka()
		}
		if !hasK0 {
			o.K0 = ep.K0()
		}
		if !hasKp {
			o.Kp = ep.Kp()
		}
	}

	// check
	if o.Gam <= 0 {
		err = chk.Err("layer %q: unit weight must be positive. gam=%g is invalid", name, o.Gam)
		return
	}
	if o.GamSub < 0 || o.GamSub > o.Gam {
		err = chk.Err("layer %q: submerged unit weight must be in [0, gam]. gamSub=%g is invalid", name, o.GamSub)
		return
	}
	if o.Ka < 0 || o.Ka > o.K0 || o.K0 > o.Kp {
		err = chk.Err("layer %q: coefficients must satisfy 0 ≤ Ka ≤ K0 ≤ Kp. Ka=%g K0=%g Kp=%g", name, o.Ka, o.K0, o.Kp)
		return
	}
	if o.Kh <= 0 {
		err = chk.Err("layer %q: subgrade modulus must be positive. kh=%g is invalid", name, o.Kh)
		return
	}
	if o.Spread < 0 {
		err = chk.Err("layer %q: load-spreading ratio cannot be negative. spread=%g is invalid", name, o.Spread)
	}
	return
}

// Envelope holds the characteristic earth thrusts and the stiffness of one soil spring. The
// thrusts are compressive-positive forces [kN]: Ea ≤ E0 ≤ Ep.
type Envelope struct {
	Ea float64 // active thrust (lower bound)
	E0 float64 // at-rest thrust (zero displacement)
	Ep float64 // passive thrust (upper bound)
	Kh float64 // subgrade stiffness [kN/m]
}

// Envelope computes the earth thrusts on a tributary area subjected to the vertical effective
// stress σv
func (o Layer) Envelope(σv, area float64) Envelope {
	return Envelope{
		Ea: o.Ka * σv * area,
		E0: o.K0 * σv * area,
		Ep: o.Kp * σv * area,
		Kh: o.Kh * area,
	}
}

// Ordered tells whether |Ea| ≤ |E0| ≤ |Ep|
func (o Envelope) Ordered() bool {
	return math.Abs(o.Ea) <= math.Abs(o.E0) && math.Abs(o.E0) <= math.Abs(o.Ep)
}

// String prints the envelope
func (o Envelope) String() string {
	return io.Sf("Ea=%g E0=%g Ep=%g Kh=%g", o.Ea, o.E0, o.Ep, o.Kh)
}

// String prints a json formatted string with the layer's content
func (o Layer) String() string {
	return io.Sf("{ \"name\":%q, \"gam\":%g, \"gamSub\":%g, \"phi\":%g, \"Ka\":%g, \"K0\":%g, \"Kp\":%g, \"kh\":%g, \"spread\":%g }",
		o.Name, o.Gam, o.GamSub, o.Phi, o.Ka, o.K0, o.Kp, o.Kh, o.Spread)
}
