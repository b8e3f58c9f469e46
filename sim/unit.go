// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/emer/snn/lif"
	"github.com/emer/snn/tm"
)

// Unit is a population of identical dynamical elements that owns its own
// state between steps.  The Driver calls StepUnit once per step, in order.
type Unit interface {
	// N returns the number of elements in the population
	N() int

	// Vars returns the names of the per-element state variables, for recording
	Vars() []string

	// Init resets the population state to its initial condition
	Init()

	// StepUnit advances all elements by one step of size dt given one input
	// per element, returning one output per element.
	StepUnit(in []float32, dt float32) ([]float32, error)

	// VarValue returns the value of the named state variable for element idx.
	// Returns NaN for an unknown variable.
	VarValue(varNm string, idx int) float32
}

////////////////////////////////////////////////////////////////////
//  TMPop

// TMPop is a population of Tsodyks-Markram synapses, each driving its own
// postsynaptic current.  The output of each step is the released resources.
type TMPop struct {
	Params   *tm.Params `desc:"synapse parameters, shared by all synapses"`
	NThreads int        `desc:"number of goroutines to split each step across -- <= 1 is serial"`
	States   []tm.State `desc:"current state of each synapse"`
	PSC      []float32  `desc:"postsynaptic current of each synapse, driven by release and decaying with TauSInv"`
}

var TMPopVars = []string{"X", "U", "PSC"}

// NewTMPop returns a population of n synapses at rest
func NewTMPop(pars *tm.Params, n int) *TMPop {
	tp := &TMPop{Params: pars, NThreads: 1}
	tp.States = make([]tm.State, n)
	tp.PSC = make([]float32, n)
	tp.Init()
	return tp
}

func (tp *TMPop) N() int         { return len(tp.States) }
func (tp *TMPop) Vars() []string { return TMPopVars }

func (tp *TMPop) Init() {
	for i := range tp.States {
		tp.States[i].Init()
		tp.PSC[i] = 0
	}
}

func (tp *TMPop) StepUnit(in []float32, dt float32) ([]float32, error) {
	var rel []float32
	var nst []tm.State
	if tp.NThreads <= 1 {
		var err error
		rel, nst, err = tp.Params.StepPop(in, tp.States, dt)
		if err != nil {
			return nil, err
		}
	} else {
		if len(in) != len(tp.States) {
			return nil, fmt.Errorf("sim.TMPop: %d inputs vs %d synapses: %w", len(in), len(tp.States), tm.ErrShapeMismatch)
		}
		rel = make([]float32, len(in))
		nst = make([]tm.State, len(in))
		ParallelFor(len(in), tp.NThreads, func(st, ed int) {
			for i := st; i < ed; i++ {
				rel[i], nst[i] = tp.Params.Step(in[i], tp.States[i], dt)
			}
		})
	}
	tp.States = nst
	for i, r := range rel {
		tp.PSC[i] = tp.Params.PSC(tp.PSC[i], r, dt)
	}
	return rel, nil
}

func (tp *TMPop) VarValue(varNm string, idx int) float32 {
	if varNm == "PSC" {
		return tp.PSC[idx]
	}
	v, err := tp.States[idx].VarByName(varNm)
	if err != nil {
		return math32.NaN()
	}
	return v
}

////////////////////////////////////////////////////////////////////
//  LIFPop

// LIFPop is a population of LIF neurons.  It starts each run with no prior
// state, and threads the explicit states returned by each step into the next.
// The output of each step is the spike (1 or 0) of each neuron.
type LIFPop struct {
	Params   *lif.Params `desc:"neuron parameters, shared by all neurons"`
	NThreads int         `desc:"number of goroutines to split each step across -- <= 1 is serial"`
	Prior    lif.Prior   `desc:"state the next step starts from"`
	Nn       int         `desc:"number of neurons"`
}

// NewLIFPop returns a population of n neurons with no prior state
func NewLIFPop(pars *lif.Params, n int) *LIFPop {
	lp := &LIFPop{Params: pars, NThreads: 1, Nn: n}
	lp.Init()
	return lp
}

func (lp *LIFPop) N() int         { return lp.Nn }
func (lp *LIFPop) Vars() []string { return lif.NeuronVars }

func (lp *LIFPop) Init() {
	lp.Prior = lif.NoPrior()
}

func (lp *LIFPop) StepUnit(in []float32, dt float32) ([]float32, error) {
	if lp.NThreads <= 1 {
		z, nst, err := lp.Params.Step(in, lp.Prior, dt)
		if err != nil {
			return nil, err
		}
		lp.Prior = lif.Explicit(nst)
		return z, nil
	}
	sts, err := lp.Prior.Resolve(len(in))
	if err != nil {
		return nil, err
	}
	z := make([]float32, len(in))
	nst := make([]lif.State, len(in))
	ParallelFor(len(in), lp.NThreads, func(st, ed int) {
		for ni := st; ni < ed; ni++ {
			z[ni], nst[ni] = lp.Params.StepNeuron(in[ni], sts[ni], dt)
		}
	})
	lp.Prior = lif.Explicit(nst)
	return z, nil
}

// VarValue returns the state of neuron idx; all zero before the first step
func (lp *LIFPop) VarValue(varNm string, idx int) float32 {
	var st lif.State
	if !lp.Prior.IsNone() {
		st = lp.Prior.States()[idx]
	}
	v, err := st.VarByName(varNm)
	if err != nil {
		return math32.NaN()
	}
	return v
}
