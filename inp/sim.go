// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Data holds global data for simulations
type Data struct {
	Desc    string  `json:"desc"`    // description of simulation
	GamW    float64 `json:"gamw"`    // unit weight of water [kN/m³]
	Debug   bool    `json:"debug"`   // activate debugging
	Verbose bool    `json:"verbose"` // show messages
}

// WallData holds the geometry and section of the wall
type WallData struct {
	Top     float64 `json:"top"`     // depth of top of wall; usually 0
	Toe     float64 `json:"toe"`     // depth of toe of wall
	ElSize  float64 `json:"elsize"`  // target length of beam elements
	Spacing float64 `json:"spacing"` // out-of-plane spacing of piles (tributary width)
	E       float64 `json:"E"`       // Young's modulus [kPa]
	I       float64 `json:"I"`       // second moment of area per pile [m⁴]
}

// LayerData holds the data of one soil layer
type LayerData struct {
	Name string     `json:"name"` // name of layer; e.g. "sand"
	Prms dbf.Params `json:"prms"` // parameters: gam, gamSub, phi, delta, Ka, K0, Kp, kh, spread
}

// WaterData holds the water tables. A nil depth means no water table on that side
type WaterData struct {
	Left  *float64 `json:"left"`  // depth of water table on the left side
	Right *float64 `json:"right"` // depth of water table on the right side
}

// ExcavationData holds one excavation stage
type ExcavationData struct {
	Depth float64 `json:"depth"` // target depth
	Side  string  `json:"side"`  // "left" or "right"
}

// StrutData holds a strut (or anchor) acting on the wall
type StrutData struct {
	Depth float64 `json:"depth"` // depth of strut
	K     float64 `json:"k"`     // axial stiffness per strut [kN/m]
	After int     `json:"after"` // installed after this stage is completed; -1 => from the start
}

// SurchargeData holds a load on the ground surface
type SurchargeData struct {
	Side  string  `json:"side"`  // "left" or "right"
	Q     float64 `json:"q"`     // intensity [kPa]
	Width float64 `json:"width"` // width of strip load; 0 => uniform load
}

// SolverData holds FEM solver data
type SolverData struct {

	// nonlinear solver
	Type   string  `json:"type"`   // solver type: "imp" => implicit; "lin-imp" => linear implicit
	NmaxIt int     `json:"nmaxit"` // number of max iterations
	Atol   float64 `json:"atol"`   // absolute tolerance
	Rtol   float64 `json:"rtol"`   // relative tolerance
	FbTol  float64 `json:"fbtol"`  // tolerance for convergence on fb
	FbMin  float64 `json:"fbmin"`  // minimum value of fb
	CteTg  bool    `json:"ctetg"`  // use constant tangent (modified Newton) during iterations
	ShowR  bool    `json:"showr"`  // show residual

	// constants
	Eps float64 `json:"eps"` // smallest number satisfying 1.0 + ϵ > 1.0

	// derived
	Itol float64 // iterations tolerance
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data        Data             `json:"data"`        // stores global simulation data
	Wall        WallData         `json:"wall"`        // wall geometry and section
	Depths      []float64        `json:"depths"`      // depth breakpoints of soil profile
	Layers      []*LayerData     `json:"layers"`      // soil layers [len(depths)-1]
	Water       WaterData        `json:"water"`       // water tables
	Excavations []ExcavationData `json:"excavations"` // excavation stages
	Struts      []StrutData      `json:"struts"`      // struts and anchors
	Surcharges  []SurchargeData  `json:"surcharges"`  // surface loads
	Solver      SolverData       `json:"solver"`      // FEM solver data

	// derived
	Key string // simulation key; e.g. mysim01.sim => mysim01
	Dir string // directory of .sim file
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o, err = DecodeSim(b)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot load simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	o.Dir = os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))
	return
}

// DecodeSim decodes simulation data from JSON, sets default values and checks the data
func DecodeSim(b []byte) (o *Simulation, err error) {

	// set default values
	o = new(Simulation)
	o.Data.GamW = 10
	o.Wall.Spacing = 1
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation data:\n%v", err)
	}

	// set solver constants
	o.Solver.PostProcess()

	// fix struts
	for i := range o.Struts {
		if o.Struts[i].After < -1 {
			o.Struts[i].After = -1
		}
	}

	// check
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Validate checks the consistency of the simulation data
func (o *Simulation) Validate() (err error) {

	// profile
	if len(o.Depths) < 2 {
		return chk.Err("at least 2 depth breakpoints are required. %d is invalid", len(o.Depths))
	}
	if len(o.Layers) != len(o.Depths)-1 {
		return chk.Err("number of layers (%d) must be equal to number of depths minus one (%d)", len(o.Layers), len(o.Depths)-1)
	}
	for i, lay := range o.Layers {
		if lay == nil {
			return chk.Err("layer %d is not defined", i)
		}
	}
	if o.Data.GamW <= 0 {
		return chk.Err("unit weight of water must be positive. gamw=%g is invalid", o.Data.GamW)
	}

	// wall
	w := o.Wall
	if w.Toe <= w.Top {
		return chk.Err("toe of wall (%g) must be deeper than its top (%g)", w.Toe, w.Top)
	}
	if w.Toe > o.Depths[len(o.Depths)-1] {
		return chk.Err("toe of wall (%g) is below the deepest layer (%g)", w.Toe, o.Depths[len(o.Depths)-1])
	}
	if w.ElSize <= 0 || w.Spacing <= 0 || w.E <= 0 || w.I <= 0 {
		return chk.Err("elsize, spacing, E and I must be all positive. elsize=%g, spacing=%g, E=%g, I=%g", w.ElSize, w.Spacing, w.E, w.I)
	}

	// sides
	for i, ex := range o.Excavations {
		if !validSide(ex.Side) {
			return chk.Err("excavation %d: side must be \"left\" or \"right\". %q is invalid", i, ex.Side)
		}
	}
	for i, s := range o.Surcharges {
		if !validSide(s.Side) {
			return chk.Err("surcharge %d: side must be \"left\" or \"right\". %q is invalid", i, s.Side)
		}
	}

	// struts
	for i, s := range o.Struts {
		if s.K <= 0 {
			return chk.Err("strut %d: stiffness must be positive. k=%g is invalid", i, s.K)
		}
		if s.Depth < w.Top || s.Depth > w.Toe {
			return chk.Err("strut %d: depth %g is outside the wall [%g, %g]", i, s.Depth, w.Top, w.Toe)
		}
		if s.After >= len(o.Excavations) {
			return chk.Err("strut %d: stage %d does not exist; there are %d stages", i, s.After, len(o.Excavations))
		}
	}

	// solver
	if o.Solver.Type != "imp" && o.Solver.Type != "lin-imp" {
		return chk.Err("cannot find solver type named %q", o.Solver.Type)
	}
	if o.Solver.NmaxIt < 1 {
		return chk.Err("max number of iterations must be at least 1. nmaxit=%d is invalid", o.Solver.NmaxIt)
	}
	if o.Solver.Atol <= 0 || o.Solver.Rtol <= 0 {
		return chk.Err("tolerances must be positive. atol=%g and rtol=%g are invalid", o.Solver.Atol, o.Solver.Rtol)
	}
	return
}

// WaterTable returns the depth of the water table on a side ("left" or "right")
func (o *Simulation) WaterTable(side string) (depth float64, ok bool) {
	var p *float64
	if side == "left" {
		p = o.Water.Left
	} else {
		p = o.Water.Right
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// SetDefault set defaults values
func (o *SolverData) SetDefault() {

	// nonlinear solver
	o.Type = "imp"
	o.NmaxIt = 1000
	o.Atol = 1e-6
	o.Rtol = 1e-6
	o.FbTol = 1e-8
	o.FbMin = 1e-10
	o.CteTg = false

	// constants
	o.Eps = 1e-16
}

// PostProcess performs a post-processing of the just read json file
func (o *SolverData) PostProcess() {

	// iterations tolerance
	o.Itol = utl.Max(10.0*o.Eps/o.Rtol, utl.Min(0.01, math.Sqrt(o.Rtol)))
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func validSide(side string) bool {
	return side == "left" || side == "right"
}
