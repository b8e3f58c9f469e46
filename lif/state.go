// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import "fmt"

// lif.State is the instantaneous dynamic state of one neuron
type State struct {
	V float32 `desc:"membrane potential"`
	I float32 `desc:"synaptic input current"`
}

var NeuronVars = []string{"V", "I"}

var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

func (st *State) VarNames() []string {
	return NeuronVars
}

// NeuronVarByName returns the index of the variable in the State, or error
func NeuronVarByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("lif.State VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
func (st *State) VarByIndex(idx int) float32 {
	switch idx {
	case 0:
		return st.V
	case 1:
		return st.I
	}
	return 0
}

// VarByName returns variable by name, or error
func (st *State) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return st.VarByIndex(i), nil
}

////////////////////////////////////////////////////////////////////
//  Prior

// Prior is the state a population step starts from: either None, in which
// case fresh zero states sized to the input are used, or an Explicit set of
// states that must match the input size.  The zero value is None.
type Prior struct {
	explicit bool
	sts      []State
}

// NoPrior returns a Prior with no state: the step starts from all zeros
func NoPrior() Prior {
	return Prior{}
}

// Explicit returns a Prior carrying the given states
func Explicit(sts []State) Prior {
	return Prior{explicit: true, sts: sts}
}

// IsNone returns true if there is no prior state
func (pr Prior) IsNone() bool {
	return !pr.explicit
}

// States returns the explicit states, nil for None
func (pr Prior) States() []State {
	return pr.sts
}

// Resolve returns the states to step from for n inputs: zero states for
// None, otherwise the explicit states, which must have length n.
func (pr Prior) Resolve(n int) ([]State, error) {
	if !pr.explicit {
		return make([]State, n), nil
	}
	if len(pr.sts) != n {
		return nil, fmt.Errorf("lif: %d inputs vs %d prior states: %w", n, len(pr.sts), ErrShapeMismatch)
	}
	return pr.sts, nil
}
