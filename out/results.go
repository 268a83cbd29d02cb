// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/xcfem/xc-sub001/wall"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// GetRes gets results along the wall at one stage
func GetRes(key string, tbl *wall.Table) (res []float64) {
	res = make([]float64, len(tbl.Records))
	for i, r := range tbl.Records {
		res[i] = GetVal(key, r)
	}
	return
}

// GetSeries gets the results at depth z for all stages
func GetSeries(key string, z float64, tables []*wall.Table) (res []float64) {
	for _, tbl := range tables {
		r := find(tbl, z)
		if r == nil {
			chk.Panic("cannot find record at depth %g in stage %d", z, tbl.Stage)
		}
		res = append(res, GetVal(key, r))
	}
	return
}

// MaxAbs returns the result with the largest absolute value along the wall and its depth
func MaxAbs(key string, tbl *wall.Table) (val, z float64) {
	if len(tbl.Records) == 0 {
		return
	}
	res := GetRes(key, tbl)
	abs := make([]float64, len(res))
	for i, v := range res {
		abs[i] = math.Abs(v)
	}
	idx := floats.MaxIdx(abs)
	return res[idx], tbl.Records[idx].Depth
}

// Envelope returns the smallest and largest results at each depth among all stages
func Envelope(key string, tables []*wall.Table) (z, lo, hi []float64) {
	if len(tables) == 0 {
		return
	}
	z = tables[0].Depths()
	lo = make([]float64, len(z))
	hi = make([]float64, len(z))
	vals := make([]float64, len(tables))
	for i := range z {
		for k, tbl := range tables {
			if len(tbl.Records) != len(z) || math.Abs(tbl.Records[i].Depth-z[i]) > TolC {
				chk.Panic("records of stage %d do not match the records of stage %d", tbl.Stage, tables[0].Stage)
			}
			vals[k] = GetVal(key, tbl.Records[i])
		}
		lo[i] = floats.Min(vals)
		hi[i] = floats.Max(vals)
	}
	return
}

// Integrate integrates results along the wall with the trapezoidal rule
func Integrate(key string, tbl *wall.Table) float64 {
	if len(tbl.Records) < 2 {
		return 0
	}
	return integrate.Trapezoidal(tbl.Depths(), GetRes(key, tbl))
}

// find returns the record at depth z or nil
func find(tbl *wall.Table, z float64) *wall.Record {
	for _, r := range tbl.Records {
		if math.Abs(r.Depth-z) <= TolC {
			return r
		}
	}
	return nil
}
