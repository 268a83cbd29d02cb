// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the post-processing of the results of staged excavations
package out

import (
	"github.com/xcfem/xc-sub001/soil"
	"github.com/xcfem/xc-sub001/wall"

	"github.com/cpmech/gosl/chk"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare depths
)

// Keys holds the keys of all results in a record
//  z   -- depth            ux  -- lateral displacement  R  -- reaction
//  M   -- bending moment   V   -- shear force           dp -- pressure difference
//  EaL, E0L, EpL, EaR, E0R, EpR -- bounds of left and right springs
//  TL, TR -- thrust of left and right springs
//  W   -- net water force  A   -- tributary area
var Keys = []string{"z", "ux", "R", "M", "V", "dp", "EaL", "E0L", "EpL", "EaR", "E0R", "EpR", "TL", "TR", "W", "A"}

// GetVal returns the value corresponding to key in a record
func GetVal(key string, r *wall.Record) float64 {
	switch key {
	case "z":
		return r.Depth
	case "ux":
		return r.Ux
	case "R":
		return r.Reaction
	case "M":
		return r.M
	case "V":
		return r.V
	case "dp":
		return r.Dp
	case "EaL":
		return r.Bounds[soil.Left].Ea
	case "E0L":
		return r.Bounds[soil.Left].E0
	case "EpL":
		return r.Bounds[soil.Left].Ep
	case "EaR":
		return r.Bounds[soil.Right].Ea
	case "E0R":
		return r.Bounds[soil.Right].E0
	case "EpR":
		return r.Bounds[soil.Right].Ep
	case "TL":
		return r.Thrust[soil.Left]
	case "TR":
		return r.Thrust[soil.Right]
	case "W":
		return r.Water
	case "A":
		return r.Area
	}
	chk.Panic("cannot find results with key %q", key)
	return 0
}
