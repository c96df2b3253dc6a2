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

// DateTimeValue is the object fill_obj produces for a DateTime column: a
// split epoch-seconds / nanos-of-second pair, spec.md §3's "i64[size]
// epoch-seconds (+ optional i32[size] nanos)" encoding.
type DateTimeValue struct {
	Seconds int64
	Nanos   int32
}

// DateTimeColumn stores epoch-seconds with an optional nanosecond
// refinement. A LowPrecisionDateTimeBuffer produces one with Nanos == nil.
type DateTimeColumn struct {
	typ     Type
	seconds []int64
	nanos   []int32 // nil if this column has only second precision
	mapping rowindex.Vector
}

// NewDateTime builds a simple (unmapped) DateTimeColumn. nanos may be nil.
func NewDateTime(seconds []int64, nanos []int32) *DateTimeColumn {
	return &DateTimeColumn{typ: NewType(DateTimeKind, false), seconds: seconds, nanos: nanos}
}

func (c *DateTimeColumn) Size() int {
	if c.mapping != nil {
		return len(c.mapping)
	}
	return len(c.seconds)
}

func (c *DateTimeColumn) Type() Type                  { return c.typ }
func (c *DateTimeColumn) Category() Category          { return c.typ.Category }
func (c *DateTimeColumn) Capabilities() CapabilitySet { return c.typ.Capabilities }

func (c *DateTimeColumn) physicalIndex(pos int) int {
	if c.mapping == nil {
		if pos < 0 || pos >= len(c.seconds) {
			return -1
		}
		return pos
	}
	if pos < 0 || pos >= len(c.mapping) {
		return -1
	}
	phys := c.mapping[pos]
	if phys < 0 || int(phys) >= len(c.seconds) {
		return -1
	}
	return int(phys)
}

func (c *DateTimeColumn) readAt(pos int) (DateTimeValue, bool) {
	phys := c.physicalIndex(pos)
	if phys < 0 || c.seconds[phys] == MissingI64 {
		return DateTimeValue{}, false
	}
	v := DateTimeValue{Seconds: c.seconds[phys]}
	if c.nanos != nil {
		v.Nanos = c.nanos[phys]
	}
	return v, true
}

func (c *DateTimeColumn) FillObj(dst []any, start int) error {
	for i := range dst {
		if v, ok := c.readAt(start + i); ok {
			dst[i] = v
		} else {
			dst[i] = nil
		}
	}
	return nil
}

func (c *DateTimeColumn) FillObjStrided(dst []any, start, offset, stride int) error {
	if err := checkStrided(len(dst), offset, stride); err != nil {
		return err
	}
	row := start
	for j := offset; j < len(dst); j += stride {
		if v, ok := c.readAt(row); ok {
			dst[j] = v
		} else {
			dst[j] = nil
		}
		row++
	}
	return nil
}

func (c *DateTimeColumn) FillF64(dst []float64, start int) error {
	return belterr.Unsupported("column: FillF64 requires NumericReadable, got %s", c.typ.Kind)
}
func (c *DateTimeColumn) FillF64Strided(dst []float64, start, offset, stride int) error {
	return belterr.Unsupported("column: FillF64 requires NumericReadable, got %s", c.typ.Kind)
}
func (c *DateTimeColumn) FillI32(dst []int32, start int) error {
	return belterr.Unsupported("column: FillI32 requires Categorical, got %s", c.typ.Kind)
}
func (c *DateTimeColumn) FillI32Strided(dst []int32, start, offset, stride int) error {
	return belterr.Unsupported("column: FillI32 requires Categorical, got %s", c.typ.Kind)
}

func (c *DateTimeColumn) Map(indices rowindex.Vector, preferView bool) Column {
	var merged rowindex.Vector
	if c.mapping != nil {
		merged = rowindex.Compose(indices, c.mapping)
	} else {
		merged = indices
	}
	if preferView || float64(len(indices)) > float64(len(c.seconds))*viewThreshold {
		return &DateTimeColumn{typ: c.typ, seconds: c.seconds, nanos: c.nanos, mapping: merged}
	}
	secs := make([]int64, len(merged))
	rowindex.GatherI64(c.seconds, merged, secs, MissingI64)
	var nanos []int32
	if c.nanos != nil {
		nanos = make([]int32, len(merged))
		for i, p := range merged {
			if p < 0 || int(p) >= len(c.nanos) {
				continue
			}
			nanos[i] = c.nanos[p]
		}
	}
	return &DateTimeColumn{typ: c.typ, seconds: secs, nanos: nanos}
}

func (c *DateTimeColumn) Sort(ascending bool) (rowindex.Vector, error) {
	if !c.typ.Capabilities.Has(Sortable) {
		return nil, belterr.Unsupported("column: Sort requires Sortable")
	}
	n := c.Size()
	physAt := func(pos int) int64 {
		phys := c.physicalIndex(pos)
		if phys < 0 {
			return MissingI64
		}
		return c.seconds[phys]
	}
	return sortIndices(n, func(pos int) bool {
		return physAt(pos) == MissingI64
	}, func(a, b int) bool {
		return physAt(a) < physAt(b)
	}, ascending), nil
}
