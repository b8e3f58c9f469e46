// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tm implements the Tsodyks-Markram model of short-term synaptic
plasticity, combining facilitation (the utilization variable U, which jumps
up on each presynaptic spike and decays back to 0) and depression (the
available resource fraction X, which is consumed by each release and
recovers back toward 1).

Each call to Step advances one synapse by a single forward Euler step of
size dt.  Step is a pure function: the caller owns the State and threads
the returned value into the next call.  Parameters are never validated:
non-positive time constants, or rates that are large relative to 1/dt,
produce divergent trajectories rather than errors.
*/
package tm

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when population inputs and states differ in size
var ErrShapeMismatch = errors.New("tm: input and state sizes do not match")

// Params are the Tsodyks-Markram synapse parameters, expressed as inverse
// time constants (1/seconds) so that they multiply directly into the
// Euler update.  Set once at configuration time and shared read-only
// across all steps of a run.
type Params struct {
	TauFInv float32 `def:"20" min:"0" desc:"inverse time constant (1/sec) for decay of the facilitation (utilization) variable U back to 0"`
	TauSInv float32 `def:"50" min:"0" desc:"inverse time constant (1/sec) for decay of the postsynaptic current driven by released resources"`
	TauDInv float32 `def:"1.3333" min:"0" desc:"inverse time constant (1/sec) for recovery of the available resource fraction X back to 1 (depression recovery)"`
	U       float32 `def:"0.15" min:"0" max:"1" desc:"baseline utilization increment applied on each spike, in proportion to 1 - U"`

	TauF float32 `view:"-" json:"-" xml:"-" inactive:"+" desc:"facilitation time constant in seconds = 1 / TauFInv"`
	TauS float32 `view:"-" json:"-" xml:"-" inactive:"+" desc:"current time constant in seconds = 1 / TauSInv"`
	TauD float32 `view:"-" json:"-" xml:"-" inactive:"+" desc:"depression time constant in seconds = 1 / TauDInv"`
}

func (tp *Params) Defaults() {
	tp.TauFInv = 1 / 0.05
	tp.TauSInv = 1 / 0.02
	tp.TauDInv = 1 / 0.75
	tp.U = 0.15
	tp.Update()
}

// Update must be called after any changes to parameters
func (tp *Params) Update() {
	tp.TauF = invTau(tp.TauFInv)
	tp.TauS = invTau(tp.TauSInv)
	tp.TauD = invTau(tp.TauDInv)
}

// SetDepressing sets a depression-dominated regime: strong utilization
// with fast facilitation decay and slow resource recovery.
func (tp *Params) SetDepressing() {
	tp.TauFInv = 1 / 0.05
	tp.TauDInv = 1 / 0.75
	tp.U = 0.45
	tp.Update()
}

// SetFacilitating sets a facilitation-dominated regime: weak utilization
// with slow facilitation decay and fast resource recovery.
func (tp *Params) SetFacilitating() {
	tp.TauFInv = 1 / 0.75
	tp.TauDInv = 1 / 0.05
	tp.U = 0.15
	tp.Update()
}

func invTau(inv float32) float32 {
	if inv == 0 {
		return 0
	}
	return 1 / inv
}

// Step advances one synapse by one forward Euler step of size dt, given
// presynaptic spike intensity z (typically 0 or 1, may be graded).
// Returns the resources released on this step, u_new * x * z, and the next state.
// Facilitation is applied before release, so the first spike from rest
// releases exactly U of the available resources.
func (tp *Params) Step(z float32, st State, dt float32) (float32, State) {
	uDecay := -tp.TauFInv * st.U
	u := st.U + dt*uDecay + tp.U*(1-st.U)*z
	xDecay := tp.TauDInv * (1 - st.X)
	rel := u * st.X * z
	x := st.X + dt*xDecay - rel
	return rel, State{X: x, U: u}
}

// StepPop advances a population of synapses elementwise, one spike input
// per synapse.  The given states are not modified: new slices are returned.
func (tp *Params) StepPop(z []float32, st []State, dt float32) ([]float32, []State, error) {
	if len(z) != len(st) {
		return nil, nil, fmt.Errorf("tm.StepPop: %d inputs vs %d states: %w", len(z), len(st), ErrShapeMismatch)
	}
	rel := make([]float32, len(z))
	nst := make([]State, len(st))
	for i := range z {
		rel[i], nst[i] = tp.Step(z[i], st[i], dt)
	}
	return rel, nst, nil
}

// PSC integrates the postsynaptic current driven by released resources,
// decaying with TauSInv: i + dt * (-TauSInv * i) + rel
func (tp *Params) PSC(i, rel, dt float32) float32 {
	return i + dt*(-tp.TauSInv*i) + rel
}

// String returns a one-line description of the parameters
func (tp *Params) String() string {
	return fmt.Sprintf("TauFInv: %g TauSInv: %g TauDInv: %g U: %g", tp.TauFInv, tp.TauSInv, tp.TauDInv, tp.U)
}
