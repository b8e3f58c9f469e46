// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

// sim.Time contains the timing state and step size for running a simulation
type Time struct {

	// accumulated amount of time the simulation has been running,
	// in simulation-time (not real world time), in seconds.
	Time float32

	// cycle counter: number of integration steps taken since Reset.
	Cycle int

	// amount of time to increment per cycle, in seconds.  This is the
	// dt passed to every unit update.
	Dt float32 `def:"0.001"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Dt = 0.001
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Cycle = 0
	if tm.Dt == 0 {
		tm.Defaults()
	}
}

// CycleInc increments at the cycle level
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.Time = float32(tm.Cycle) * tm.Dt
}
