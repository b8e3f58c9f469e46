// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif implements the leaky integrate-and-fire spiking neuron, with a
first-order synaptic current that relaxes toward the injected input, and a
membrane potential that leaks toward VLeak while integrating that current.
A spike is emitted when the membrane potential reaches threshold, after
which it is reset.

Step is a pure function of its inputs: the caller owns the neuron states and
passes them back in on the next call, using the Prior type to say whether
there is a prior state at all.
*/
package lif

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/emer/snn/surrogate"
)

// ErrShapeMismatch is returned when an explicit prior state does not have
// one entry per input
var ErrShapeMismatch = errors.New("lif: input and prior state sizes do not match")

// lif.Params are the leaky integrate-and-fire neuron parameters.
// Time constants are expressed as inverses (1/seconds).
type Params struct {
	TauSynInv float32           `def:"200" min:"0" desc:"inverse time constant (1/sec) of the synaptic current, which relaxes toward the injected input"`
	TauMemInv float32           `def:"100" min:"0" desc:"inverse time constant (1/sec) of the membrane potential"`
	VLeak     float32           `def:"0" desc:"leak (resting) potential that the membrane decays toward"`
	VTh       float32           `def:"1" desc:"firing threshold: a spike is emitted when the membrane potential is >= VTh"`
	VReset    float32           `def:"0" desc:"membrane potential after a spike"`
	Alpha     float32           `def:"100" min:"0" desc:"steepness of the surrogate gradient -- only used by gradient-based learning, never by the forward update"`
	Method    surrogate.Methods `def:"SuperSpike" desc:"shape of the surrogate gradient -- only used by gradient-based learning, never by the forward update"`

	TauSyn float32 `view:"-" json:"-" xml:"-" inactive:"+" desc:"synaptic time constant in seconds = 1 / TauSynInv"`
	TauMem float32 `view:"-" json:"-" xml:"-" inactive:"+" desc:"membrane time constant in seconds = 1 / TauMemInv"`
}

func (lp *Params) Defaults() {
	lp.TauSynInv = 1 / 5e-3
	lp.TauMemInv = 1 / 1e-2
	lp.VLeak = 0
	lp.VTh = 1
	lp.VReset = 0
	lp.Alpha = 100
	lp.Method = surrogate.SuperSpike
	lp.Update()
}

// Update must be called after any changes to parameters
func (lp *Params) Update() {
	lp.TauSyn = 0
	if lp.TauSynInv != 0 {
		lp.TauSyn = 1 / lp.TauSynInv
	}
	lp.TauMem = 0
	if lp.TauMemInv != 0 {
		lp.TauMem = 1 / lp.TauMemInv
	}
}

// StepNeuron advances one neuron by one forward Euler step of size dt,
// driven by the given input current.  The synaptic current is updated
// first and the membrane integrates the new current.
// Returns the spike (1 or 0) and the next state, reset if it spiked.
func (lp *Params) StepNeuron(input float32, st State, dt float32) (float32, State) {
	di := lp.TauSynInv * (input - st.I)
	i := st.I + dt*di
	dv := lp.TauMemInv * ((lp.VLeak - st.V) + i)
	v := st.V + dt*dv
	var z float32
	if v >= lp.VTh {
		z = 1
		v = lp.VReset
	}
	return z, State{V: v, I: i}
}

// Step advances a population of neurons elementwise, one input current per
// neuron.  A NoPrior prior is resolved to fresh zero states sized to the
// input before the update runs.  The prior states are never modified.
func (lp *Params) Step(input []float32, prior Prior, dt float32) ([]float32, []State, error) {
	sts, err := prior.Resolve(len(input))
	if err != nil {
		return nil, nil, err
	}
	z := make([]float32, len(input))
	nst := make([]State, len(input))
	for ni := range input {
		z[ni], nst[ni] = lp.StepNeuron(input[ni], sts[ni], dt)
	}
	return z, nst, nil
}

// PeriodSteps returns the analytic inter-spike interval, in steps of dt,
// for a constant input current once the synaptic current has settled at
// that input (i == current, so di == 0) and the membrane starts from
// VReset.  The membrane then follows
// v_n = Vinf + (VReset - Vinf) (1 - dt TauMemInv)^n with Vinf = VLeak + current,
// and the interval is the first n with v_n >= VTh.
// Returns false if the neuron never reaches threshold.
func (lp *Params) PeriodSteps(current, dt float32) (int, bool) {
	vinf := lp.VLeak + current
	if vinf <= lp.VTh {
		return 0, false
	}
	if lp.VReset >= lp.VTh {
		return 1, true
	}
	dec := 1 - dt*lp.TauMemInv
	if dec <= 0 {
		return 1, true
	}
	n := math32.Log((lp.VTh-vinf)/(lp.VReset-vinf)) / math32.Log(dec)
	return int(math32.Ceil(n)), true
}

// SurrogateGrad returns the surrogate derivative of the spike with respect
// to membrane potential v, using Method and Alpha.  Not used by Step.
func (lp *Params) SurrogateGrad(v float32) float32 {
	return surrogate.Grad(lp.Method, v-lp.VTh, lp.Alpha)
}

// String returns a one-line description of the parameters
func (lp *Params) String() string {
	return fmt.Sprintf("TauSynInv: %g TauMemInv: %g VLeak: %g VTh: %g VReset: %g Method: %v Alpha: %g",
		lp.TauSynInv, lp.TauMemInv, lp.VLeak, lp.VTh, lp.VReset, lp.Method, lp.Alpha)
}
