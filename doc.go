// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package snn is the overall repository for simple spiking network mechanisms
implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* tm: the Tsodyks-Markram model of short-term synaptic plasticity, with
facilitation (utilization U) and depression (available resources X), and the
postsynaptic current driven by released resources.

* lif: the leaky integrate-and-fire neuron, with a synaptic current that relaxes
toward the input and a membrane potential that is reset on each spike.  Also
computes the analytic inter-spike interval for a constant current.

* surrogate: the spike nonlinearity and its surrogate gradients, kept apart from
the forward update so that gradient-based learning can be added later.

* sim: runs a population of synapses or neurons over a sequence of steps,
recording the trajectory into an etable.Table, with analysis of spike times
and saving as CSV or msgpack snapshots.

* config: run configuration from defaults, YAML files, environment variables
and named parameter sets.

* cmd/snnsim: the command line program.
*/
package snn
