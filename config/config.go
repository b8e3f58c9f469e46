// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package config holds the run configuration for the snn simulations:
integration step, run lengths, population sizes and inputs, and the
synapse and neuron parameters.  Values come from Defaults, then an optional
YAML file, then environment variables, then a named parameter set.
*/
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/emer/snn/lif"
	"github.com/emer/snn/tm"
	"gopkg.in/yaml.v3"
)

// TMConfig configures a population of Tsodyks-Markram synapses driven by a spike train
type TMConfig struct {
	Params    tm.Params `yaml:"params" desc:"synapse parameters"`
	N         int       `yaml:"n" def:"1" min:"1" desc:"number of synapses"`
	Steps     int       `yaml:"steps" def:"1000" min:"1" desc:"number of time steps to run"`
	Period    int       `yaml:"period" def:"100" min:"1" desc:"a spike is delivered on every step that is a multiple of Period"`
	Onset     int       `yaml:"onset" def:"10" min:"0" desc:"no spikes are delivered before this step"`
	PoissonHz float32   `yaml:"poissonHz" def:"0" min:"0" desc:"if > 0, drive with independent Poisson spike trains at this rate instead of the regular pulse train"`
}

func (tc *TMConfig) Defaults() {
	tc.Params.Defaults()
	tc.Params.SetDepressing()
	tc.N = 1
	tc.Steps = 1000
	tc.Period = 100
	tc.Onset = 10
	tc.PoissonHz = 0
}

// LIFConfig configures a population of LIF neurons driven by constant currents
type LIFConfig struct {
	Params      lif.Params `yaml:"params" desc:"neuron parameters"`
	N           int        `yaml:"n" def:"10" min:"1" desc:"number of neurons"`
	Steps       int        `yaml:"steps" def:"100" min:"1" desc:"number of time steps to run"`
	CurrentStep float32    `yaml:"currentStep" def:"0.2" desc:"neuron i receives constant current i * CurrentStep, unless Currents is set"`
	Currents    []float32  `yaml:"currents" desc:"explicit constant current per neuron -- overrides N and CurrentStep"`
}

func (lc *LIFConfig) Defaults() {
	lc.Params.Defaults()
	lc.N = 10
	lc.Steps = 100
	lc.CurrentStep = 0.2
	lc.Currents = nil
}

// Inputs returns the constant current for each neuron
func (lc *LIFConfig) Inputs() []float32 {
	if len(lc.Currents) > 0 {
		return lc.Currents
	}
	in := make([]float32, lc.N)
	for ni := range in {
		in[ni] = lc.CurrentStep * float32(ni)
	}
	return in
}

// OutConfig has output file options
type OutConfig struct {
	CSV      string `yaml:"csv" desc:"if set, the recorded trajectory table is saved to this CSV file"`
	Snapshot string `yaml:"snapshot" desc:"if set, the recorded trajectory is saved to this msgpack snapshot file"`
}

// Config is the overall simulation configuration
type Config struct {
	Dt       float32   `yaml:"dt" def:"0.001" min:"0" desc:"integration time step in seconds"`
	NThreads int       `yaml:"threads" def:"1" min:"1" desc:"number of goroutines used to update a population within a step -- steps themselves are always sequential"`
	Seed     int64     `yaml:"seed" desc:"random seed for Poisson inputs -- 0 leaves the generator unseeded"`
	TM       TMConfig  `yaml:"tm"`
	LIF      LIFConfig `yaml:"lif"`
	Out      OutConfig `yaml:"out"`
}

// New returns a Config with default values
func New() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

func (cfg *Config) Defaults() {
	cfg.Dt = 0.001
	cfg.NThreads = 1
	cfg.Seed = 0
	cfg.TM.Defaults()
	cfg.LIF.Defaults()
	cfg.Out = OutConfig{}
}

// Update must be called after any changes to parameters
func (cfg *Config) Update() {
	cfg.TM.Params.Update()
	cfg.LIF.Params.Update()
}

// FromFile overlays the values in the given YAML file onto cfg
func (cfg *Config) FromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.Update()
	return nil
}

// FromEnv applies environment variable overrides:
//
//	SNN_DT       → Dt
//	SNN_THREADS  → NThreads
//	SNN_SEED     → Seed
func (cfg *Config) FromEnv() error {
	if v := os.Getenv("SNN_DT"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("SNN_DT: %w", err)
		}
		cfg.Dt = float32(f)
	}
	if v := os.Getenv("SNN_THREADS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SNN_THREADS: %w", err)
		}
		cfg.NThreads = n
	}
	if v := os.Getenv("SNN_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SNN_SEED: %w", err)
		}
		cfg.Seed = n
	}
	return nil
}

// Load returns the configuration from defaults, then the YAML file at
// path if not empty, then environment variables.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		if err := cfg.FromFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.FromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the driver-level options: step size, run lengths and
// population sizes.  Model parameters are not checked -- see Warnings.
func (cfg *Config) Validate() error {
	if !(cfg.Dt > 0) {
		return fmt.Errorf("dt must be > 0, got %g", cfg.Dt)
	}
	if cfg.NThreads < 1 {
		return fmt.Errorf("threads must be >= 1, got %d", cfg.NThreads)
	}
	if cfg.TM.N < 1 {
		return fmt.Errorf("tm.n must be >= 1, got %d", cfg.TM.N)
	}
	if cfg.TM.Steps < 1 {
		return fmt.Errorf("tm.steps must be >= 1, got %d", cfg.TM.Steps)
	}
	if cfg.TM.Period < 1 {
		return fmt.Errorf("tm.period must be >= 1, got %d", cfg.TM.Period)
	}
	if cfg.TM.PoissonHz < 0 {
		return fmt.Errorf("tm.poissonHz must be >= 0, got %g", cfg.TM.PoissonHz)
	}
	if len(cfg.LIF.Currents) == 0 && cfg.LIF.N < 1 {
		return fmt.Errorf("lif.n must be >= 1, got %d", cfg.LIF.N)
	}
	if cfg.LIF.Steps < 1 {
		return fmt.Errorf("lif.steps must be >= 1, got %d", cfg.LIF.Steps)
	}
	return nil
}

// Warnings returns descriptions of parameter combinations that are likely
// to give numerically unstable or implausible trajectories: non-positive
// time constants, or rates at or above 1/dt.  These are not errors: the
// models run with whatever values they are given.
func (cfg *Config) Warnings() []string {
	var ws []string
	chk := func(name string, inv float32) {
		switch {
		case inv <= 0:
			ws = append(ws, fmt.Sprintf("%s = %g is not positive", name, inv))
		case cfg.Dt*inv >= 1:
			ws = append(ws, fmt.Sprintf("%s = %g is >= 1/dt (%g): forward Euler overshoots", name, inv, 1/cfg.Dt))
		}
	}
	chk("tm.params.TauFInv", cfg.TM.Params.TauFInv)
	chk("tm.params.TauSInv", cfg.TM.Params.TauSInv)
	chk("tm.params.TauDInv", cfg.TM.Params.TauDInv)
	chk("lif.params.TauSynInv", cfg.LIF.Params.TauSynInv)
	chk("lif.params.TauMemInv", cfg.LIF.Params.TauMemInv)
	if cfg.TM.Params.U < 0 || cfg.TM.Params.U > 1 {
		ws = append(ws, fmt.Sprintf("tm.params.U = %g is outside [0,1]", cfg.TM.Params.U))
	}
	if cfg.LIF.Params.VReset >= cfg.LIF.Params.VTh {
		ws = append(ws, fmt.Sprintf("lif.params.VReset = %g is not below VTh = %g", cfg.LIF.Params.VReset, cfg.LIF.Params.VTh))
	}
	return ws
}
