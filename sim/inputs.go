// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/emer/emergent/erand"

// Input fills in the input vector for one unit per element at the given
// cycle.  The vector is zeroed before each call.
type Input func(cyc int, in []float32)

// PulseTrain returns an Input that delivers a unit spike to every element
// on each cycle that is a multiple of period, starting at onset.
// Cycles before onset are always 0.
func PulseTrain(period, onset int) Input {
	return func(cyc int, in []float32) {
		if cyc < onset || cyc%period != 0 {
			return
		}
		for i := range in {
			in[i] = 1
		}
	}
}

// ConstCurrents returns an Input that injects the same value into each
// element on every cycle.  Elements beyond len(vals) get 0.
func ConstCurrents(vals []float32) Input {
	return func(cyc int, in []float32) {
		copy(in, vals)
	}
}

// PoissonTrain returns an Input where each element independently spikes
// with probability hz * dt on each cycle, starting at onset.
func PoissonTrain(hz, dt float32, onset int) Input {
	p := float64(hz * dt)
	return func(cyc int, in []float32) {
		if cyc < onset {
			return
		}
		for i := range in {
			if erand.BoolProb(p, -1) {
				in[i] = 1
			}
		}
	}
}
