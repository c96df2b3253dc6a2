// Copyright 2025 Ekjot Singh
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package colreader

import (
	"github.com/rapidminer/belt-sub000/belterr"
	"github.com/rapidminer/belt-sub000/column"
)

// MixedRowReader projects a row tuple across a heterogeneous set of
// columns by keeping parallel numeric and object batches, dispatching
// each column to whichever fill API its capabilities support (spec.md
// §4.7's "general mixed row reader").
type MixedRowReader struct {
	cursor
	columns    []column.Column
	routing    []bool // per-column routing, indexed in parallel with columns: true => numeric
	numBatch   [][]float64
	objBatch   [][]any
}

// NewMixedRowReader builds a reader over an arbitrary mix of columns,
// requiring only that each column be NumericReadable or ObjectReadable
// and that all columns share a common Size().
func NewMixedRowReader(columns []column.Column) (*MixedRowReader, error) {
	if len(columns) == 0 {
		return nil, belterr.BadArgument("colreader: at least one column required")
	}
	size := columns[0].Size()
	routing := make([]bool, len(columns)) // true => numeric
	for i, c := range columns {
		if c.Size() != size {
			return nil, belterr.BadArgument("colreader: column size mismatch")
		}
		switch {
		case c.Capabilities().Has(column.NumericReadable):
			routing[i] = true
		case c.Capabilities().Has(column.ObjectReadable):
			routing[i] = false
		default:
			return nil, belterr.Unsupported("colreader: column %s is neither NumericReadable nor ObjectReadable", c.Type().Kind)
		}
	}
	rows := BatchRows(16, len(columns))
	numBatch := make([][]float64, len(columns))
	objBatch := make([][]any, len(columns))
	for i, isNum := range routing {
		if isNum {
			numBatch[i] = make([]float64, rows)
		} else {
			objBatch[i] = make([]any, rows)
		}
	}
	return &MixedRowReader{
		cursor:   newCursor(size, rows),
		columns:  columns,
		routing:  routing,
		numBatch: numBatch,
		objBatch: objBatch,
	}, nil
}

// Move advances to the next row, refilling the prefetch batch if needed.
func (r *MixedRowReader) Move() (bool, error) {
	if !r.move() {
		return false, nil
	}
	if r.needsRefill() {
		if err := r.refill(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// SetPosition jumps the cursor without I/O, per spec.md §4.7.
func (r *MixedRowReader) SetPosition(p int) error {
	return r.setPosition(p)
}

func (r *MixedRowReader) refill() error {
	start, end := r.refillRange()
	length := end - start
	r.setBatch(start, length)
	for i, c := range r.columns {
		if r.routing[i] {
			if err := c.FillF64(r.numBatch[i][:length], start); err != nil {
				return err
			}
		} else {
			if err := c.FillObj(r.objBatch[i][:length], start); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsNumeric reports whether column index colIdx is routed through the
// numeric batch.
func (r *MixedRowReader) IsNumeric(colIdx int) bool { return r.routing[colIdx] }

// GetF64 returns column index colIdx's value at the current row. Valid
// only when IsNumeric(colIdx).
func (r *MixedRowReader) GetF64(colIdx int) float64 {
	return r.numBatch[colIdx][r.localOffset()]
}

// GetObj returns column index colIdx's value at the current row. Valid
// only when !IsNumeric(colIdx).
func (r *MixedRowReader) GetObj(colIdx int) any {
	return r.objBatch[colIdx][r.localOffset()]
}

// NumColumns returns the number of projected columns.
func (r *MixedRowReader) NumColumns() int { return len(r.columns) }
