// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"github.com/xcfem/xc-sub001/inp"
	"github.com/xcfem/xc-sub001/soil"

	"github.com/cpmech/gosl/chk"
	"go.uber.org/zap"
)

// Analysis runs all excavation stages of a simulation and keeps the results of each one
type Analysis struct {
	Sim    *inp.Simulation // input data
	Prof   *soil.Profile   // soil profile
	Asm    *Assembly       // wall
	Proc   *Processor      // stage processor
	Tables []*Table        // results: [1+nstages] stage -1 first

	log *zap.SugaredLogger
}

// NewAnalysis builds the soil profile and the wall of a simulation using the given engine.
// log may be nil
func NewAnalysis(sim *inp.Simulation, eng Engine, log *zap.SugaredLogger) (o *Analysis, err error) {

	// logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	o = &Analysis{Sim: sim, log: log}

	// profile
	o.Prof, err = NewProfile(sim)
	if err != nil {
		return nil, err
	}

	// struts
	var struts []Strut
	var fixed []float64
	for _, s := range sim.Struts {
		struts = append(struts, Strut{Depth: s.Depth, K: s.K, After: s.After})
		fixed = append(fixed, s.Depth)
	}

	// wall
	w := sim.Wall
	geo := Geometry{Top: w.Top, Toe: w.Toe, ElSize: w.ElSize, Spacing: w.Spacing, E: w.E, I: w.I}
	o.Asm, err = NewAssembly(geo, o.Prof, eng, fixed)
	if err != nil {
		return nil, err
	}
	o.Proc = NewProcessor(o.Asm, struts, log)
	log.Infow("wall assembled", "nodes", len(o.Asm.Nodes), "springsL", o.Asm.NumActive(soil.Left), "springsR", o.Asm.NumActive(soil.Right), "stages", o.Prof.NumExcavations())
	return
}

// NewProfile returns the soil profile of a simulation
func NewProfile(sim *inp.Simulation) (prof *soil.Profile, err error) {

	// layers
	layers := make([]soil.Layer, len(sim.Layers))
	for i, dat := range sim.Layers {
		if dat == nil {
			return nil, chk.Err("layer %d is not defined", i)
		}
		layers[i], err = soil.NewLayer(dat.Name, dat.Prms, sim.Data.GamW)
		if err != nil {
			return
		}
	}

	// water tables
	water := [2]float64{soil.FarDepth, soil.FarDepth}
	for _, side := range soil.Sides {
		if z, ok := sim.WaterTable(side.String()); ok {
			water[side] = z
		}
	}

	// excavations
	excavations := make([]soil.Excavation, len(sim.Excavations))
	for i, ex := range sim.Excavations {
		side, err := soil.ParseSide(ex.Side)
		if err != nil {
			return nil, chk.Err("excavation %d:\n%v", i, err)
		}
		excavations[i] = soil.Excavation{Depth: ex.Depth, Side: side}
	}

	// surcharges
	surcharges := make([]soil.Surcharge, len(sim.Surcharges))
	for i, s := range sim.Surcharges {
		side, err := soil.ParseSide(s.Side)
		if err != nil {
			return nil, chk.Err("surcharge %d:\n%v", i, err)
		}
		surcharges[i] = soil.Surcharge{Side: side, Q: s.Q, Width: s.Width}
	}
	return soil.NewProfile(sim.Depths, layers, sim.Data.GamW, water[soil.Left], water[soil.Right], excavations, surcharges)
}

// Run finds the initial equilibrium and runs all stages, extracting the results after each one
func (o *Analysis) Run() (err error) {
	if err = o.Proc.Start(); err != nil {
		return
	}
	if err = o.extract(); err != nil {
		return
	}
	for !o.Proc.Done() {
		if err = o.Proc.Next(); err != nil {
			return
		}
		if err = o.extract(); err != nil {
			return
		}
	}
	return
}

// extract appends the results of the current stage
func (o *Analysis) extract() (err error) {
	tbl, err := Extract(o.Asm, o.Proc.Stage)
	if err != nil {
		return
	}
	o.Tables = append(o.Tables, tbl)
	o.log.Debugw("results extracted", "stage", tbl.Stage, "records", len(tbl.Records))
	return
}
