// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

// FarDepth is the depth of an undefined feature (no water table, no excavation); it lies below
// any real depth so comparisons treat it as never reached
const FarDepth = 1e30

// HydroStatic computes the pore-water pressure on one side of the wall. Water is incompressible
// and the pressure grows linearly below the water table
//
//    pl(z) = γw・max(0, z - zw)      z: depth (positive downwards)
//
type HydroStatic struct {
	zwater float64 // depth of water table; FarDepth => dry
	γw     float64 // unit weight of water
}

// Init initialises this structure
func (o *HydroStatic) Init(waterDepth, gamW float64) {
	o.zwater = waterDepth
	o.γw = gamW
}

// Dry tells whether there is no water table on this side
func (o HydroStatic) Dry() bool {
	return o.zwater >= FarDepth
}

// Level returns the depth of the water table (FarDepth if dry)
func (o HydroStatic) Level() float64 {
	return o.zwater
}

// Calc computes the water pressure at depth z
func (o HydroStatic) Calc(z float64) (pl float64) {
	if z <= o.zwater {
		return 0
	}
	return o.γw * (z - o.zwater)
}
