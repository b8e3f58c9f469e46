// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/goki/gi/gi"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// SaveCSV saves a recorded trajectory as a comma-separated file with headers
func SaveCSV(dt *etable.Table, fname string) error {
	err := dt.SaveCSV(gi.FileName(fname), etable.Comma, etable.Headers)
	if err != nil {
		return fmt.Errorf("sim.SaveCSV: %w", err)
	}
	return nil
}

// Snapshot is a self-describing copy of a recorded trajectory, for saving
// and reloading outside of the table format.  Each column is stored
// row-major: value for step s, element i is at s*N + i.
type Snapshot struct {
	RunID  string               `msgpack:"run_id"`
	Kind   string               `msgpack:"kind"`
	Params string               `msgpack:"params"`
	Dt     float32              `msgpack:"dt"`
	Steps  int                  `msgpack:"steps"`
	N      int                  `msgpack:"n"`
	Cols   []string             `msgpack:"cols"`
	Vals   map[string][]float32 `msgpack:"vals"`
}

// NewSnapshot copies the tensor columns of a recorded trajectory into a
// new Snapshot with a fresh run id.
func NewSnapshot(kind string, pars fmt.Stringer, dt *etable.Table, tdt float32) *Snapshot {
	sn := &Snapshot{RunID: uuid.New().String(), Kind: kind, Dt: tdt, Steps: dt.Rows, N: NUnits(dt)}
	if pars != nil {
		sn.Params = pars.String()
	}
	sn.Vals = make(map[string][]float32)
	for ci, cn := range dt.ColNames {
		tsr, ok := dt.Cols[ci].(*etensor.Float32)
		if !ok || tsr.NumDims() < 2 {
			continue
		}
		sn.Cols = append(sn.Cols, cn)
		sn.Vals[cn] = append([]float32(nil), tsr.Values...)
	}
	return sn
}

// Value returns the value of column cn for step s and element i, false if no such column
func (sn *Snapshot) Value(cn string, s, i int) (float32, bool) {
	vals, ok := sn.Vals[cn]
	if !ok {
		return 0, false
	}
	return vals[s*sn.N+i], true
}

// EncodeSnapshot serializes a snapshot
func EncodeSnapshot(sn *Snapshot) ([]byte, error) {
	return msgpack.Marshal(sn)
}

// DecodeSnapshot deserializes a snapshot
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	sn := &Snapshot{}
	if err := msgpack.Unmarshal(data, sn); err != nil {
		return nil, fmt.Errorf("sim.DecodeSnapshot: %w", err)
	}
	return sn, nil
}

// SaveSnapshot writes the encoded snapshot to fname
func SaveSnapshot(sn *Snapshot, fname string) error {
	data, err := EncodeSnapshot(sn)
	if err != nil {
		return fmt.Errorf("sim.SaveSnapshot: %w", err)
	}
	return os.WriteFile(fname, data, 0644)
}

// LoadSnapshot reads a snapshot saved by SaveSnapshot
func LoadSnapshot(fname string) (*Snapshot, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("sim.LoadSnapshot: %w", err)
	}
	return DecodeSnapshot(data)
}

// SizeReport returns a string reporting the number of values held in each
// tensor column of a recorded trajectory, and the total memory footprint.
func SizeReport(dt *etable.Table) string {
	var b strings.Builder
	tot := 0
	for ci, cn := range dt.ColNames {
		nv := dt.Cols[ci].Len()
		mem := nv * int(unsafe.Sizeof(float32(0)))
		if dt.Cols[ci].DataType() == etensor.INT64 {
			mem = nv * int(unsafe.Sizeof(int64(0)))
		}
		tot += mem
		fmt.Fprintf(&b, "%14s:\t Vals: %d\t Mem: %v\n", cn, nv, (datasize.ByteSize)(mem).HumanReadable())
	}
	fmt.Fprintf(&b, "%14s:\t Rows: %d\t Mem: %v\n", "Total", dt.Rows, (datasize.ByteSize)(tot).HumanReadable())
	return b.String()
}
