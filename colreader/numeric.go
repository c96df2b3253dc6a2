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

// NumericRowReader projects a row tuple across columns that are all
// NumericReadable (spec.md §4.7).
type NumericRowReader struct {
	cursor
	columns []column.Column
	batch   [][]float64 // batch[col][row-in-batch]
}

// NewNumericRowReader builds a reader over columns, which must all carry
// the NumericReadable capability and share a common Size().
func NewNumericRowReader(columns []column.Column) (*NumericRowReader, error) {
	if len(columns) == 0 {
		return nil, belterr.BadArgument("colreader: at least one column required")
	}
	size := columns[0].Size()
	for _, c := range columns {
		if !c.Capabilities().Has(column.NumericReadable) {
			return nil, belterr.Unsupported("colreader: column %s is not NumericReadable", c.Type().Kind)
		}
		if c.Size() != size {
			return nil, belterr.BadArgument("colreader: column size mismatch")
		}
	}
	rows := BatchRows(8, len(columns))
	batch := make([][]float64, len(columns))
	for i := range batch {
		batch[i] = make([]float64, rows)
	}
	return &NumericRowReader{cursor: newCursor(size, rows), columns: columns, batch: batch}, nil
}

// Move advances to the next row, refilling the prefetch batch if needed.
// It returns false once the cursor has passed the last row.
func (r *NumericRowReader) Move() (bool, error) {
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
func (r *NumericRowReader) SetPosition(p int) error {
	return r.setPosition(p)
}

func (r *NumericRowReader) refill() error {
	start, end := r.refillRange()
	length := end - start
	r.setBatch(start, length)
	for i, c := range r.columns {
		if err := c.FillF64(r.batch[i][:length], start); err != nil {
			return err
		}
	}
	return nil
}

// Get returns column index colIdx's value at the current row.
func (r *NumericRowReader) Get(colIdx int) float64 {
	return r.batch[colIdx][r.localOffset()]
}

// NumColumns returns the number of projected columns.
func (r *NumericRowReader) NumColumns() int { return len(r.columns) }
