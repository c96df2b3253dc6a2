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

// CategoricalRowReader projects a row tuple across columns that are all
// Categorical (spec.md §4.7).
type CategoricalRowReader struct {
	cursor
	columns []column.Column
	batch   [][]int32
}

// NewCategoricalRowReader builds a reader over columns, which must all be
// Category() == column.Categorical and share a common Size().
func NewCategoricalRowReader(columns []column.Column) (*CategoricalRowReader, error) {
	if len(columns) == 0 {
		return nil, belterr.BadArgument("colreader: at least one column required")
	}
	size := columns[0].Size()
	for _, c := range columns {
		if c.Category() != column.Categorical {
			return nil, belterr.Unsupported("colreader: column %s is not Categorical", c.Type().Kind)
		}
		if c.Size() != size {
			return nil, belterr.BadArgument("colreader: column size mismatch")
		}
	}
	rows := BatchRows(4, len(columns))
	batch := make([][]int32, len(columns))
	for i := range batch {
		batch[i] = make([]int32, rows)
	}
	return &CategoricalRowReader{cursor: newCursor(size, rows), columns: columns, batch: batch}, nil
}

// Move advances to the next row, refilling the prefetch batch if needed.
func (r *CategoricalRowReader) Move() (bool, error) {
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
func (r *CategoricalRowReader) SetPosition(p int) error {
	return r.setPosition(p)
}

func (r *CategoricalRowReader) refill() error {
	start, end := r.refillRange()
	length := end - start
	r.setBatch(start, length)
	for i, c := range r.columns {
		if err := c.FillI32(r.batch[i][:length], start); err != nil {
			return err
		}
	}
	return nil
}

// Index returns column index colIdx's raw dictionary index at the current
// row; 0 is MISSING.
func (r *CategoricalRowReader) Index(colIdx int) int32 {
	return r.batch[colIdx][r.localOffset()]
}

// Object resolves column index colIdx's dictionary value at the current
// row through its Dictionaried column, or nil for MISSING.
func (r *CategoricalRowReader) Object(colIdx int) any {
	idx := r.Index(colIdx)
	dictionaried, ok := r.columns[colIdx].(column.Dictionaried)
	if !ok {
		return nil
	}
	objs := dictionaried.DictionaryObjects()
	if idx <= 0 || int(idx) >= len(objs) {
		return nil
	}
	return objs[idx]
}

// NumColumns returns the number of projected columns.
func (r *CategoricalRowReader) NumColumns() int { return len(r.columns) }
