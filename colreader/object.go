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

// ObjectRowReader projects a row tuple across columns that are all
// ObjectReadable (spec.md §4.7). The reader is not parameterised by an
// element type and does not check one: values come back as `any`, and
// callers type-assert per column.
type ObjectRowReader struct {
	cursor
	columns []column.Column
	batch   [][]any
}

// NewObjectRowReader builds a reader over columns, which must all carry
// the ObjectReadable capability and share a common Size().
func NewObjectRowReader(columns []column.Column) (*ObjectRowReader, error) {
	if len(columns) == 0 {
		return nil, belterr.BadArgument("colreader: at least one column required")
	}
	size := columns[0].Size()
	for _, c := range columns {
		if !c.Capabilities().Has(column.ObjectReadable) {
			return nil, belterr.Unsupported("colreader: column %s is not ObjectReadable", c.Type().Kind)
		}
		if c.Size() != size {
			return nil, belterr.BadArgument("colreader: column size mismatch")
		}
	}
	rows := BatchRows(16, len(columns))
	batch := make([][]any, len(columns))
	for i := range batch {
		batch[i] = make([]any, rows)
	}
	return &ObjectRowReader{cursor: newCursor(size, rows), columns: columns, batch: batch}, nil
}

// Move advances to the next row, refilling the prefetch batch if needed.
func (r *ObjectRowReader) Move() (bool, error) {
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
func (r *ObjectRowReader) SetPosition(p int) error {
	return r.setPosition(p)
}

func (r *ObjectRowReader) refill() error {
	start, end := r.refillRange()
	length := end - start
	r.setBatch(start, length)
	for i, c := range r.columns {
		if err := c.FillObj(r.batch[i][:length], start); err != nil {
			return err
		}
	}
	return nil
}

// Get returns column index colIdx's value at the current row, or nil for
// MISSING.
func (r *ObjectRowReader) Get(colIdx int) any {
	return r.batch[colIdx][r.localOffset()]
}

// NumColumns returns the number of projected columns.
func (r *ObjectRowReader) NumColumns() int { return len(r.columns) }
