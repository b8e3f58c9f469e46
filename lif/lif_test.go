// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

const dt = float32(0.001)

func TestNoInputNoSpike(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	in := []float32{0, 0, 0}
	z, sts, err := lp.Step(in, NoPrior(), dt)
	if err != nil {
		t.Fatal(err)
	}
	for cyc := 0; cyc < 1000; cyc++ {
		for ni := range in {
			if z[ni] != 0 {
				t.Fatalf("spike without input at cyc: %d, idx: %d\n", cyc, ni)
			}
			if sts[ni].V >= lp.VTh {
				t.Fatalf("v reached threshold without input at cyc: %d, v: %v\n", cyc, sts[ni].V)
			}
		}
		z, sts, err = lp.Step(in, Explicit(sts), dt)
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestStepNeuronEuler(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	st := State{V: 0.4, I: 0.2}
	in := float32(0.9)
	cori := 0.2 + dt*200*(0.9-0.2)
	corv := 0.4 + dt*100*((0-0.4)+cori)
	z, nst := lp.StepNeuron(in, st, dt)
	if z != 0 {
		t.Errorf("unexpected spike\n")
	}
	if dif := math32.Abs(nst.I - cori); dif > difTol {
		t.Errorf("i err: i: %v, cor i: %v, dif: %v\n", nst.I, cori, dif)
	}
	if dif := math32.Abs(nst.V - corv); dif > difTol {
		t.Errorf("v err: v: %v, cor v: %v, dif: %v\n", nst.V, corv, dif)
	}
}

func TestSpikeReset(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	lp.VReset = -0.1
	st := State{V: 0.999, I: 5}
	z, nst := lp.StepNeuron(5, st, dt)
	if z != 1 {
		t.Fatalf("expected spike from v: %v\n", st.V)
	}
	if nst.V != lp.VReset {
		t.Errorf("v not reset after spike: %v\n", nst.V)
	}
	if nst.I != 5 {
		t.Errorf("synaptic current changed at its fixed point: %v\n", nst.I)
	}
}

func TestThresholdInclusive(t *testing.T) {
	// a membrane landing exactly on threshold spikes
	lp := Params{TauSynInv: 0, TauMemInv: 0, VTh: 0.5, VReset: 0}
	lp.Update()
	z, nst := lp.StepNeuron(0, State{V: 0.5}, dt)
	if z != 1 || nst.V != 0 {
		t.Errorf("v == VTh should spike and reset: z: %v, v: %v\n", z, nst.V)
	}
}

func TestNoPriorEqualsZeroPrior(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	in := []float32{0, 0.5, 1, 1.5, 20, -3}
	zn, sn, err := lp.Step(in, NoPrior(), dt)
	if err != nil {
		t.Fatal(err)
	}
	ze, se, err := lp.Step(in, Explicit(make([]State, len(in))), dt)
	if err != nil {
		t.Fatal(err)
	}
	for ni := range in {
		if zn[ni] != ze[ni] || sn[ni] != se[ni] {
			t.Errorf("None vs zero prior differ at idx: %d, none: %v %+v, zero: %v %+v\n", ni, zn[ni], sn[ni], ze[ni], se[ni])
		}
	}
}

func TestShapeMismatch(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	_, _, err := lp.Step([]float32{1, 2, 3}, Explicit(make([]State, 2)), dt)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got: %v\n", err)
	}
}

func TestPriorUnmodified(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	sts := []State{{V: 0.9, I: 3}, {V: 0.1, I: 0}}
	_, nst, err := lp.Step([]float32{3, 0}, Explicit(sts), dt)
	if err != nil {
		t.Fatal(err)
	}
	if sts[0].V != 0.9 || sts[0].I != 3 || sts[1].V != 0.1 {
		t.Errorf("Step modified prior states: %+v\n", sts)
	}
	if nst[0].V != lp.VReset {
		t.Errorf("expected spike reset for neuron 0, v: %v\n", nst[0].V)
	}
}

func TestConstCurrentPeriod(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	currents := []float32{1.5, 2, 3}
	sts := make([]State, len(currents))
	for ni, c := range currents {
		sts[ni] = State{V: lp.VReset, I: c}
	}
	spks := make([][]int, len(currents))
	var z []float32
	var err error
	for cyc := 0; cyc < 300; cyc++ {
		z, sts, err = lp.Step(currents, Explicit(sts), dt)
		if err != nil {
			t.Fatal(err)
		}
		for ni := range currents {
			if z[ni] > 0 {
				spks[ni] = append(spks[ni], cyc)
			}
		}
	}
	for ni, c := range currents {
		per, ok := lp.PeriodSteps(c, dt)
		if !ok {
			t.Fatalf("PeriodSteps says current %v never fires\n", c)
		}
		if len(spks[ni]) < 3 {
			t.Fatalf("too few spikes for current %v: %v\n", c, spks[ni])
		}
		if spks[ni][0] != per-1 {
			t.Errorf("first spike for current %v at cyc: %d, want: %d\n", c, spks[ni][0], per-1)
		}
		for si := 1; si < len(spks[ni]); si++ {
			isi := spks[ni][si] - spks[ni][si-1]
			if isi != per {
				t.Errorf("isi err: current: %v, spike: %d, isi: %d, analytic: %d\n", c, si, isi, per)
			}
		}
	}
	if per, _ := lp.PeriodSteps(1.5, dt); per != 11 {
		t.Errorf("PeriodSteps(1.5): %d, want 11\n", per)
	}
}

func TestPeriodNeverFires(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	for _, c := range []float32{0, 0.5, 1} {
		if _, ok := lp.PeriodSteps(c, dt); ok {
			t.Errorf("current %v at or below threshold should never fire\n", c)
		}
	}
}

func TestCurrentSweep(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	nn := 10
	in := make([]float32, nn)
	for ni := range in {
		in[ni] = 0.2 * float32(ni)
	}
	cnt := make([]int, nn)
	prior := NoPrior()
	for cyc := 0; cyc < 100; cyc++ {
		z, sts, err := lp.Step(in, prior, dt)
		if err != nil {
			t.Fatal(err)
		}
		for ni := range z {
			cnt[ni] += int(z[ni])
		}
		prior = Explicit(sts)
	}
	for ni := 0; ni <= 5; ni++ {
		if cnt[ni] != 0 {
			t.Errorf("neuron %d with current %v spiked %d times\n", ni, in[ni], cnt[ni])
		}
	}
	for ni := 1; ni < nn; ni++ {
		if cnt[ni] < cnt[ni-1] {
			t.Errorf("spike counts not monotonic in current: %v\n", cnt)
			break
		}
	}
	if !(cnt[9] > cnt[6] && cnt[6] > 0) {
		t.Errorf("expected higher current to spike more: %v\n", cnt)
	}
}

func TestParamsIndependent(t *testing.T) {
	a := Params{}
	a.Defaults()
	b := Params{}
	b.Defaults()
	if a != b {
		t.Errorf("same construction gave different params: %+v vs %+v\n", a, b)
	}
	b.VTh = 2
	if a.VTh != 1 {
		t.Errorf("changing one params changed the other\n")
	}
}

func TestSurrogateGrad(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	if g := lp.SurrogateGrad(lp.VTh); g != 1 {
		t.Errorf("SuperSpike grad at threshold: %v, want 1\n", g)
	}
	if !(lp.SurrogateGrad(0.5) < lp.SurrogateGrad(0.99)) {
		t.Errorf("grad should grow approaching threshold\n")
	}
}
