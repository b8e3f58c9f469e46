// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package surrogate provides the spike nonlinearity used by spiking neurons:
the hard Heaviside threshold for the forward pass, and a set of smooth
pseudo-derivatives (surrogate gradients) that stand in for the derivative
of the threshold when a gradient-based learning rule is layered on top.

The forward simulation never calls Grad: a spike is emitted exactly when
the membrane potential is at or above threshold.  Grad is kept here so that
any backward pass can be added without touching the neuron update itself.
*/
package surrogate

import (
	"fmt"

	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// Methods are the different shapes of surrogate gradient for the spike threshold
type Methods int32

//go:generate stringer -type=Methods

var KiT_Methods = kit.Enums.AddEnum(MethodsN, kit.NotBitFlag, nil)

func (ev Methods) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Methods) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The surrogate gradient shapes
const (
	// SuperSpike is the fast sigmoid derivative of Zenke & Ganguli (2018):
	// 1 / (alpha |x| + 1)^2
	SuperSpike Methods = iota

	// Tanh is the derivative of a tanh step, rescaled to peak at 1:
	// 1 - tanh^2(alpha x)
	Tanh

	// Tent is a triangular window of half-width 1/alpha: max(0, 1 - alpha |x|)
	Tent

	// Circ is the derivative of the circular step x / (2 sqrt(1 + x^2)),
	// evaluated at alpha x
	Circ

	// Logistic is the derivative of the logistic sigmoid with slope alpha
	Logistic

	MethodsN
)

// MarshalText encodes the method by name, for yaml and other text formats
func (ev Methods) MarshalText() ([]byte, error) {
	return []byte(ev.String()), nil
}

// UnmarshalText decodes a method name
func (ev *Methods) UnmarshalText(b []byte) error {
	return ev.FromString(string(b))
}

// FromString sets the method from its name
func (ev *Methods) FromString(s string) error {
	for i := SuperSpike; i < MethodsN; i++ {
		if i.String() == s {
			*ev = i
			return nil
		}
	}
	return fmt.Errorf("surrogate.Methods: %q is not a valid method", s)
}

// Heaviside is the forward spike nonlinearity: 1 for x >= 0, else 0
func Heaviside(x float32) float32 {
	if x >= 0 {
		return 1
	}
	return 0
}

// Grad returns the surrogate derivative of the threshold at x = v - thr,
// with steepness alpha.  All shapes peak at x = 0 and are symmetric.
func Grad(m Methods, x, alpha float32) float32 {
	ax := alpha * x
	switch m {
	case SuperSpike:
		d := mat32.Abs(ax) + 1
		return 1 / (d * d)
	case Tanh:
		th := 1 - 2/(mat32.Exp(2*ax)+1)
		return 1 - th*th
	case Tent:
		return mat32.Max(0, 1-mat32.Abs(ax))
	case Circ:
		d := 1 + ax*ax
		return 0.5 / (d * mat32.Sqrt(d))
	case Logistic:
		s := 1 / (1 + mat32.Exp(-ax))
		return alpha * s * (1 - s)
	}
	return 0
}
