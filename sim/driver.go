// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// Driver runs a Unit over a fixed number of steps, generating the input
// for each step and recording inputs, outputs and unit state into a table
// with one row per step.  Steps are strictly sequential: the state after
// step t is the state step t+1 starts from.
type Driver struct {
	Unit  Unit  `desc:"the population being simulated -- owns its state"`
	Input Input `desc:"generates the input vector for each step"`
	Steps int   `desc:"number of steps to run"`
	Time  Time  `desc:"timing state"`
}

// NewDriver returns a driver for the given unit and input
func NewDriver(un Unit, in Input, steps int, dt float32) *Driver {
	dr := &Driver{Unit: un, Input: in, Steps: steps}
	dr.Time.Dt = dt
	return dr
}

// ConfigTable configures the recording table: Cycle and Time scalar
// columns, then In, Out and each unit variable as a tensor column with one
// cell per element, and Steps rows.
func (dr *Driver) ConfigTable(dt *etable.Table) {
	n := dr.Unit.N()
	shp := []int{n}
	nms := []string{"Unit"}
	dt.SetMetaData("name", "Trajectory")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", "6")
	sch := etable.Schema{
		{"Cycle", etensor.INT64, nil, nil},
		{"Time", etensor.FLOAT32, nil, nil},
		{"In", etensor.FLOAT32, shp, nms},
		{"Out", etensor.FLOAT32, shp, nms},
	}
	for _, vn := range dr.Unit.Vars() {
		sch = append(sch, etable.Column{vn, etensor.FLOAT32, shp, nms})
	}
	dt.SetFromSchema(sch, dr.Steps)
}

// Run resets the time and unit state and runs all steps, returning the
// recorded trajectory.  Any error from the unit stops the run.
func (dr *Driver) Run() (*etable.Table, error) {
	dt := &etable.Table{}
	dr.ConfigTable(dt)
	dr.Time.Reset()
	dr.Unit.Init()
	in := make([]float32, dr.Unit.N())
	for cyc := 0; cyc < dr.Steps; cyc++ {
		for i := range in {
			in[i] = 0
		}
		if dr.Input != nil {
			dr.Input(cyc, in)
		}
		out, err := dr.Unit.StepUnit(in, dr.Time.Dt)
		if err != nil {
			return nil, fmt.Errorf("sim.Driver: step %d: %w", cyc, err)
		}
		dr.Time.CycleInc()
		dr.Record(dt, cyc, in, out)
	}
	return dt, nil
}

// Record writes the given step's input, output and current unit state into row
func (dr *Driver) Record(dt *etable.Table, row int, in, out []float32) {
	dt.SetCellFloat("Cycle", row, float64(row))
	dt.SetCellFloat("Time", row, float64(dr.Time.Time))
	for i := range in {
		dt.SetCellTensorFloat1D("In", row, i, float64(in[i]))
		dt.SetCellTensorFloat1D("Out", row, i, float64(out[i]))
	}
	for _, vn := range dr.Unit.Vars() {
		for i := range in {
			dt.SetCellTensorFloat1D(vn, row, i, float64(dr.Unit.VarValue(vn, i)))
		}
	}
}
