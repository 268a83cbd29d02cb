// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"github.com/xcfem/xc-sub001/soil"

	"github.com/cpmech/gosl/chk"
	"go.uber.org/zap"
)

// Strut holds a strut installed after an excavation stage
type Strut struct {
	Depth float64 // depth of strut
	K     float64 // stiffness
	After int     // stage after which the strut is installed; -1 => before the first excavation
}

// Processor drives the excavation stages. Stage -1 means nothing has been excavated; after
// all stages Stage == Prof.NumExcavations()-1. A failed solve is fatal: the processor keeps the
// error and returns it from every later call
type Processor struct {
	Asm    *Assembly   // wall
	Struts []Strut     // struts to be installed
	Stage  int         // last completed stage
	Killed [][]*Spring // [nstages][...] springs removed in each stage

	// internal
	log     *zap.SugaredLogger
	started bool
	err     error
}

// NewProcessor returns a new stage processor. log may be nil
func NewProcessor(asm *Assembly, struts []Strut, log *zap.SugaredLogger) *Processor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Processor{Asm: asm, Struts: struts, Stage: -1, log: log}
}

// Err returns the error that stopped the processor, if any
func (o *Processor) Err() error {
	return o.err
}

// Done tells whether all stages have been completed
func (o *Processor) Done() bool {
	return o.Stage >= o.Asm.Prof.NumExcavations()-1
}

// Start installs the struts acting from the beginning and finds the initial equilibrium. It is
// called by Advance if needed
func (o *Processor) Start() (err error) {
	if o.started {
		return o.err
	}
	o.started = true
	if err = o.install(-1); err != nil {
		return o.fail(err)
	}
	code := o.Asm.Eng.Solve()
	o.log.Debugw("initial equilibrium", "code", code)
	if code != 0 {
		return o.fail(chk.Err("initial stage: solver did not converge. code = %d", code))
	}
	return
}

// Next advances to the next stage on the side planned for it
func (o *Processor) Next() (err error) {
	if o.err != nil {
		return o.err
	}
	if o.Done() {
		return chk.Err("stage %d: all %d excavation stages have been completed", o.Stage+1, o.Asm.Prof.NumExcavations())
	}
	return o.Advance(o.Asm.Prof.ExcavationSide(o.Stage + 1))
}

// Advance excavates the given side down to the depth of the next stage. The nodes reached by
// the excavation are processed from top to bottom: the spring on this side is removed and the
// equilibrium found; then the bounds of all remaining springs on this side are recomputed and
// the equilibrium is found again
func (o *Processor) Advance(side soil.Side) (err error) {

	// check
	if o.err != nil {
		return o.err
	}
	if err = o.Start(); err != nil {
		return
	}
	prof := o.Asm.Prof
	stage := o.Stage + 1
	if stage >= prof.NumExcavations() {
		return chk.Err("stage %d: there are only %d excavation stages", stage, prof.NumExcavations())
	}
	if planned := prof.ExcavationSide(stage); planned != side {
		return chk.Err("stage %d: excavation is planned on the %s side. %s side is invalid", stage, planned, side)
	}

	// nodes reached by excavation
	target := prof.ExcavationDepth(stage)
	prev := o.Asm.Excavated[side]
	nodes := o.Asm.Between(prev, target)
	o.log.Infow("excavating", "stage", stage, "side", side.String(), "from", prev, "to", target, "nodes", len(nodes))

	// remove soil
	var killed []*Spring
	for _, n := range nodes {
		if o.Asm.Deactivate(n, side) {
			killed = append(killed, n.Springs[side])
			o.log.Debugw("spring removed", "stage", stage, "side", side.String(), "node", n.Id, "depth", n.Z)
			if err = o.solve(stage, "removing spring", n, side); err != nil {
				return
			}
		}
		o.Asm.Excavated[side] = max(o.Asm.Excavated[side], n.Z)
		if err = o.Asm.Rebound(side); err != nil {
			return o.fail(err)
		}
		if err = o.solve(stage, "updating bounds", n, side); err != nil {
			return
		}
	}

	// stage completed
	o.Asm.Excavated[side] = max(prev, target)
	o.Stage = stage
	o.Killed = append(o.Killed, killed)
	if err = o.install(stage); err != nil {
		return o.fail(err)
	}
	o.log.Infow("stage completed", "stage", stage, "side", side.String(), "removed", len(killed), "active", o.Asm.NumActive(side))
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////

// solve runs the engine after processing node n
func (o *Processor) solve(stage int, after string, n *Node, side soil.Side) error {
	code := o.Asm.Eng.Solve()
	o.log.Debugw("solve", "stage", stage, "after", after, "side", side.String(), "node", n.Id, "depth", n.Z, "code", code)
	if code != 0 {
		return o.fail(chk.Err("stage %d: solver did not converge after %s at depth %g on the %s side. code = %d", stage, after, n.Z, side, code))
	}
	return nil
}

// install installs the struts of a stage
func (o *Processor) install(stage int) (err error) {
	for _, s := range o.Struts {
		if s.After != stage {
			continue
		}
		if err = o.Asm.InstallStrut(s.Depth, s.K); err != nil {
			return
		}
		o.log.Infow("strut installed", "stage", stage, "depth", s.Depth, "k", s.K)
	}
	return
}

// fail records a fatal error
func (o *Processor) fail(err error) error {
	o.err = err
	o.log.Errorw("staged analysis stopped", "stage", o.Stage+1, "error", err)
	return err
}
