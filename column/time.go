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

package column

import (
	"github.com/rapidminer/belt-sub000/belterr"
	"github.com/rapidminer/belt-sub000/rowindex"
)

// TimeOfDay is the object fill_obj produces for a Time column: nanoseconds
// elapsed since midnight, spec.md §3's "i64[size] nanos-of-day" encoding.
type TimeOfDay int64

// TimeColumn stores a dense i64[size] nanos-of-day physical encoding.
type TimeColumn struct {
	typ     Type
	nanos   []int64
	mapping rowindex.Vector
}

// NewTime builds a simple (unmapped) TimeColumn.
func NewTime(nanos []int64) *TimeColumn {
	return &TimeColumn{typ: NewType(TimeKind, false), nanos: nanos}
}

func (c *TimeColumn) Size() int {
	if c.mapping != nil {
		return len(c.mapping)
	}
	return len(c.nanos)
}

func (c *TimeColumn) Type() Type                  { return c.typ }
func (c *TimeColumn) Category() Category          { return c.typ.Category }
func (c *TimeColumn) Capabilities() CapabilitySet { return c.typ.Capabilities }

func (c *TimeColumn) physicalIndex(pos int) int {
	if c.mapping == nil {
		if pos < 0 || pos >= len(c.nanos) {
			return -1
		}
		return pos
	}
	if pos < 0 || pos >= len(c.mapping) {
		return -1
	}
	phys := c.mapping[pos]
	if phys < 0 || int(phys) >= len(c.nanos) {
		return -1
	}
	return int(phys)
}

func (c *TimeColumn) readAt(pos int) int64 {
	phys := c.physicalIndex(pos)
	if phys < 0 {
		return MissingI64
	}
	return c.nanos[phys]
}

func (c *TimeColumn) FillObj(dst []any, start int) error {
	for i := range dst {
		v := c.readAt(start + i)
		if v == MissingI64 {
			dst[i] = nil
		} else {
			dst[i] = TimeOfDay(v)
		}
	}
	return nil
}

func (c *TimeColumn) FillObjStrided(dst []any, start, offset, stride int) error {
	if err := checkStrided(len(dst), offset, stride); err != nil {
		return err
	}
	row := start
	for j := offset; j < len(dst); j += stride {
		v := c.readAt(row)
		if v == MissingI64 {
			dst[j] = nil
		} else {
			dst[j] = TimeOfDay(v)
		}
		row++
	}
	return nil
}

func (c *TimeColumn) FillF64(dst []float64, start int) error {
	return belterr.Unsupported("column: FillF64 requires NumericReadable, got %s", c.typ.Kind)
}
func (c *TimeColumn) FillF64Strided(dst []float64, start, offset, stride int) error {
	return belterr.Unsupported("column: FillF64 requires NumericReadable, got %s", c.typ.Kind)
}
func (c *TimeColumn) FillI32(dst []int32, start int) error {
	return belterr.Unsupported("column: FillI32 requires Categorical, got %s", c.typ.Kind)
}
func (c *TimeColumn) FillI32Strided(dst []int32, start, offset, stride int) error {
	return belterr.Unsupported("column: FillI32 requires Categorical, got %s", c.typ.Kind)
}

func (c *TimeColumn) Map(indices rowindex.Vector, preferView bool) Column {
	var merged rowindex.Vector
	if c.mapping != nil {
		merged = rowindex.Compose(indices, c.mapping)
	} else {
		merged = indices
	}
	if preferView || float64(len(indices)) > float64(len(c.nanos))*viewThreshold {
		return &TimeColumn{typ: c.typ, nanos: c.nanos, mapping: merged}
	}
	materialized := make([]int64, len(merged))
	rowindex.GatherI64(c.nanos, merged, materialized, MissingI64)
	return &TimeColumn{typ: c.typ, nanos: materialized}
}

func (c *TimeColumn) Sort(ascending bool) (rowindex.Vector, error) {
	if !c.typ.Capabilities.Has(Sortable) {
		return nil, belterr.Unsupported("column: Sort requires Sortable")
	}
	n := c.Size()
	return sortIndices(n, func(pos int) bool {
		return c.readAt(pos) == MissingI64
	}, func(a, b int) bool {
		return c.readAt(a) < c.readAt(b)
	}, ascending), nil
}
