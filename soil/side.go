// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import "github.com/cpmech/gosl/chk"

// Side identifies one side of the wall
type Side int

const (
	Left  Side = 0 // soil on the left of the wall (x < 0)
	Right Side = 1 // soil on the right of the wall (x > 0)
)

// Sides holds both sides in processing order
var Sides = []Side{Left, Right}

// ParseSide converts "left" or "right" into a Side
func ParseSide(name string) (Side, error) {
	switch name {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, chk.Err("side must be \"left\" or \"right\". %q is invalid", name)
}

// String returns "left" or "right"
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	return 1 - s
}

// Dir returns the direction (+1 or -1) along x of the thrust exerted by this side's soil on the wall
func (s Side) Dir() float64 {
	if s == Left {
		return 1
	}
	return -1
}
