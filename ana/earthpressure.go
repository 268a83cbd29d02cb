// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// EarthPressure computes the coefficients of lateral earth pressure for a vertical wall
// retaining horizontal ground made of a purely frictional soil
//
//         |▷ ▷ ▷ ▷
//         |         σh = K・σv      Ka ≤ K0 ≤ Kp
//    wall |  φ, δ
//         |         Rankine (δ = 0):  Ka = tan²(45° - φ/2)   Kp = tan²(45° + φ/2)
//         |         Jaky:             K0 = 1 - sin φ
//
// With wall friction (δ > 0), Coulomb's solution is used for Ka and Kp:
//
//                       cos²φ                                   cos²φ
//    Ka = ─────────────────────────────────    Kp = ─────────────────────────────────
//         cos δ ( 1 + √(sin(φ+δ) sin φ / cos δ) )²    cos δ ( 1 - √(sin(φ+δ) sin φ / cos δ) )²
//
type EarthPressure struct {
	φ float64 // effective friction angle [rad]
	δ float64 // wall friction angle [rad]
}

// Init initialises this structure
//  Parameters: "phi" and "delta" in degrees
func (o *EarthPressure) Init(prms dbf.Params) (err error) {

	// default values
	o.φ = 30.0 * math.Pi / 180.0
	o.δ = 0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "phi":
			o.φ = p.V * math.Pi / 180.0
		case "delta":
			o.δ = p.V * math.Pi / 180.0
		}
	}

	// check
	if o.φ <= 0 || o.φ >= math.Pi/2.0 {
		return chk.Err("earth pressure: friction angle must be in (0, 90) degrees. phi=%g is invalid", o.φ*180.0/math.Pi)
	}
	if o.δ < 0 || o.δ >= o.φ {
		return chk.Err("earth pressure: wall friction must satisfy 0 ≤ δ < φ. delta=%g is invalid", o.δ*180.0/math.Pi)
	}
	return
}

// Ka returns the active coefficient
func (o EarthPressure) Ka() float64 {
	if o.δ == 0 {
		return RankineKa(o.φ)
	}
	c := math.Cos(o.φ)
	r := math.Sqrt(math.Sin(o.φ+o.δ) * math.Sin(o.φ) / math.Cos(o.δ))
	return c * c / (math.Cos(o.δ) * (1.0 + r) * (1.0 + r))
}

// K0 returns the at-rest coefficient (Jaky)
func (o EarthPressure) K0() float64 {
	return 1.0 - math.Sin(o.φ)
}

// Kp returns the passive coefficient
func (o EarthPressure) Kp() float64 {
	if o.δ == 0 {
		return RankineKp(o.φ)
	}
	c := math.Cos(o.φ)
	r := math.Sqrt(math.Sin(o.φ+o.δ) * math.Sin(o.φ) / math.Cos(o.δ))
	return c * c / (math.Cos(o.δ) * (1.0 - r) * (1.0 - r))
}

// RankineKa computes the active coefficient for φ given in radians
func RankineKa(φ float64) float64 {
	t := math.Tan(math.Pi/4.0 - φ/2.0)
	return t * t
}

// RankineKp computes the passive coefficient for φ given in radians
func RankineKp(φ float64) float64 {
	t := math.Tan(math.Pi/4.0 + φ/2.0)
	return t * t
}
