// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/emer/etable/etable"
	"github.com/emer/etable/minmax"
)

// NUnits returns the number of elements recorded per row in a trajectory table
func NUnits(dt *etable.Table) int {
	col := dt.ColByName("Out")
	if col == nil || dt.Rows == 0 {
		return 0
	}
	return col.Len() / dt.Rows
}

// SpikeTimes returns the steps at which element idx had a non-zero output
func SpikeTimes(dt *etable.Table, idx int) []int {
	var tms []int
	for row := 0; row < dt.Rows; row++ {
		if dt.CellTensorFloat1D("Out", row, idx) > 0 {
			tms = append(tms, row)
		}
	}
	return tms
}

// SpikeCounts returns the number of steps with non-zero output for each element
func SpikeCounts(dt *etable.Table) []int {
	n := NUnits(dt)
	cnt := make([]int, n)
	for row := 0; row < dt.Rows; row++ {
		for i := 0; i < n; i++ {
			if dt.CellTensorFloat1D("Out", row, i) > 0 {
				cnt[i]++
			}
		}
	}
	return cnt
}

// ISIs returns the intervals between successive spike times
func ISIs(tms []int) []int {
	if len(tms) < 2 {
		return nil
	}
	isi := make([]int, len(tms)-1)
	for i := 1; i < len(tms); i++ {
		isi[i-1] = tms[i] - tms[i-1]
	}
	return isi
}

// VarRange returns the min and max of the named column for element idx
// over all recorded steps
func VarRange(dt *etable.Table, varNm string, idx int) minmax.F32 {
	var mm minmax.F32
	mm.SetInfinity()
	for row := 0; row < dt.Rows; row++ {
		mm.FitValInRange(float32(dt.CellTensorFloat1D(varNm, row, idx)))
	}
	return mm
}
