// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/emer/snn/config"

// TMScenario returns a driver for a population of synapses driven by a
// regular pulse train, or by Poisson spike trains if cfg.TM.PoissonHz > 0.
func TMScenario(cfg *config.Config) (*Driver, *TMPop) {
	pop := NewTMPop(&cfg.TM.Params, cfg.TM.N)
	pop.NThreads = cfg.NThreads
	var in Input
	if cfg.TM.PoissonHz > 0 {
		in = PoissonTrain(cfg.TM.PoissonHz, cfg.Dt, cfg.TM.Onset)
	} else {
		in = PulseTrain(cfg.TM.Period, cfg.TM.Onset)
	}
	return NewDriver(pop, in, cfg.TM.Steps, cfg.Dt), pop
}

// LIFScenario returns a driver for a population of neurons each receiving
// its own constant current.
func LIFScenario(cfg *config.Config) (*Driver, *LIFPop) {
	cur := cfg.LIF.Inputs()
	pop := NewLIFPop(&cfg.LIF.Params, len(cur))
	pop.NThreads = cfg.NThreads
	return NewDriver(pop, ConstCurrents(cur), cfg.LIF.Steps, cfg.Dt), pop
}
