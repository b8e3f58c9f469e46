// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tm

import "fmt"

// tm.State is the instantaneous facilitation / depression state of one synapse
type State struct {
	X float32 `desc:"fraction of available synaptic resources -- recovers toward 1, depleted by release on each spike"`
	U float32 `desc:"utilization (facilitation) variable -- decays toward 0, incremented on each spike"`
}

var StateVars = []string{"X", "U"}

var StateVarsMap map[string]int

func init() {
	StateVarsMap = make(map[string]int, len(StateVars))
	for i, v := range StateVars {
		StateVarsMap[v] = i
	}
}

// Init sets the state to rest: all resources available, no facilitation
func (st *State) Init() {
	st.X = 1
	st.U = 0
}

// NewStates returns n synapse states initialized to rest
func NewStates(n int) []State {
	sts := make([]State, n)
	for i := range sts {
		sts[i].Init()
	}
	return sts
}

func (st *State) VarNames() []string {
	return StateVars
}

// StateVarByName returns the index of the variable in the State, or error
func StateVarByName(varNm string) (int, error) {
	i, ok := StateVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("tm.State VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in StateVars list)
func (st *State) VarByIndex(idx int) float32 {
	switch idx {
	case 0:
		return st.X
	case 1:
		return st.U
	}
	return 0
}

// VarByName returns variable by name, or error
func (st *State) VarByName(varNm string) (float32, error) {
	i, err := StateVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return st.VarByIndex(i), nil
}
