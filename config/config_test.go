// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/snn/surrogate"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	tp := cfg.TM.Params
	if tp.TauFInv != 20 || tp.TauSInv != 50 || tp.TauDInv != 1/0.75 || tp.U != 0.45 {
		t.Errorf("tm defaults: %+v\n", tp)
	}
	lp := cfg.LIF.Params
	if lp.TauSynInv != 200 || lp.TauMemInv != 100 || lp.VLeak != 0 || lp.VTh != 1 || lp.VReset != 0 {
		t.Errorf("lif defaults: %+v\n", lp)
	}
	in := cfg.LIF.Inputs()
	if len(in) != 10 || in[0] != 0 || math32.Abs(in[9]-1.8) > 1e-6 {
		t.Errorf("lif inputs: %v\n", in)
	}
	if cfg.TM.Steps != 1000 || cfg.TM.Period != 100 || cfg.TM.Onset != 10 || cfg.LIF.Steps != 100 {
		t.Errorf("scenario defaults: %+v %+v\n", cfg.TM, cfg.LIF)
	}
	if ws := cfg.Warnings(); len(ws) != 0 {
		t.Errorf("unexpected warnings for defaults: %v\n", ws)
	}
}

func TestFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "snn.yaml")
	yml := `dt: 0.0005
threads: 4
tm:
  steps: 500
  params:
    u: 0.3
lif:
  currents: [0.5, 1.5]
  params:
    method: Tanh
out:
  csv: run.csv
`
	if err := os.WriteFile(fn, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(fn)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dt != 0.0005 || cfg.NThreads != 4 {
		t.Errorf("top-level overlay: dt: %v threads: %v\n", cfg.Dt, cfg.NThreads)
	}
	if cfg.TM.Steps != 500 || cfg.TM.Params.U != 0.3 {
		t.Errorf("tm overlay: %+v\n", cfg.TM)
	}
	if cfg.TM.Params.TauFInv != 20 || cfg.TM.Period != 100 {
		t.Errorf("values not in file should keep defaults: %+v\n", cfg.TM)
	}
	in := cfg.LIF.Inputs()
	if len(in) != 2 || in[0] != 0.5 || in[1] != 1.5 {
		t.Errorf("lif currents: %v\n", in)
	}
	if cfg.LIF.Params.Method != surrogate.Tanh {
		t.Errorf("lif method: %v\n", cfg.LIF.Params.Method)
	}
	if cfg.Out.CSV != "run.csv" {
		t.Errorf("out csv: %q\n", cfg.Out.CSV)
	}
}

func TestFromFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
	fn := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(fn, []byte("dt: [1, 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fn); err == nil {
		t.Errorf("expected error for malformed yaml")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SNN_DT", "0.002")
	t.Setenv("SNN_THREADS", "3")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dt != 0.002 || cfg.NThreads != 3 {
		t.Errorf("env overrides: dt: %v threads: %v\n", cfg.Dt, cfg.NThreads)
	}
	t.Setenv("SNN_THREADS", "many")
	if _, err := Load(""); err == nil {
		t.Errorf("expected error for non-numeric SNN_THREADS")
	}
}

func TestValidate(t *testing.T) {
	bad := []func(cfg *Config){
		func(cfg *Config) { cfg.Dt = 0 },
		func(cfg *Config) { cfg.Dt = -0.001 },
		func(cfg *Config) { cfg.NThreads = 0 },
		func(cfg *Config) { cfg.TM.N = 0 },
		func(cfg *Config) { cfg.TM.Steps = 0 },
		func(cfg *Config) { cfg.TM.Period = 0 },
		func(cfg *Config) { cfg.LIF.N = 0 },
		func(cfg *Config) { cfg.LIF.Steps = 0 },
	}
	for i, set := range bad {
		cfg := New()
		set(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected validation error\n", i)
		}
	}
}

func TestWarnings(t *testing.T) {
	cfg := New()
	cfg.TM.Params.TauDInv = -1
	cfg.LIF.Params.TauMemInv = 2000
	ws := cfg.Warnings()
	if len(ws) != 2 {
		t.Errorf("expected 2 warnings, got: %v\n", ws)
	}
	// warnings never block a run
	if err := cfg.Validate(); err != nil {
		t.Errorf("model parameters should not fail validation: %v\n", err)
	}
}

func TestApplyParamsUnknown(t *testing.T) {
	cfg := New()
	if err := ApplyParams(cfg, "NoSuchSet", false); err == nil {
		t.Errorf("expected error for unknown param set")
	}
}

func TestApplyParams(t *testing.T) {
	cfg := New()
	if err := ApplyParams(cfg, "Facilitating", false); err != nil {
		t.Fatal(err)
	}
	tp := cfg.TM.Params
	if tp.U != 0.15 || tp.TauDInv != 20 || math32.Abs(tp.TauFInv-1/0.75) > 1e-6 {
		t.Errorf("facilitating params: %+v\n", tp)
	}
	if math32.Abs(tp.TauD-0.05) > 1e-6 {
		t.Errorf("derived TauD not updated: %v\n", tp.TauD)
	}
	if err := ApplyParams(cfg, "FastMembrane", false); err != nil {
		t.Fatal(err)
	}
	if cfg.LIF.Params.TauMemInv != 200 || cfg.TM.Params.U != 0.15 {
		t.Errorf("fast membrane: %+v %+v\n", cfg.LIF.Params, cfg.TM.Params)
	}
}
