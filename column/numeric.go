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
	"math"

	"github.com/rapidminer/belt-sub000/belterr"
	"github.com/rapidminer/belt-sub000/rowindex"
)

// NumericColumn stores a dense f64[size] physical encoding, optionally
// composed with a row_mapping lazy view (spec.md §3's Real/Integer
// encoding).
type NumericColumn struct {
	typ     Type
	values  []float64
	mapping rowindex.Vector // nil => simple (unmapped)
}

// NewNumeric builds a simple (unmapped) NumericColumn over values. kind
// must be Real or Integer.
func NewNumeric(kind Kind, values []float64) *NumericColumn {
	return &NumericColumn{typ: NewType(kind, false), values: values}
}

func (c *NumericColumn) Size() int {
	if c.mapping != nil {
		return len(c.mapping)
	}
	return len(c.values)
}

func (c *NumericColumn) Type() Type                   { return c.typ }
func (c *NumericColumn) Category() Category           { return c.typ.Category }
func (c *NumericColumn) Capabilities() CapabilitySet  { return c.typ.Capabilities }

// physicalIndex resolves a logical position to a physical position, or
// -1 if it is out of range or (for a mapped column) itself MISSING.
func (c *NumericColumn) physicalIndex(pos int) int {
	if c.mapping == nil {
		if pos < 0 || pos >= len(c.values) {
			return -1
		}
		return pos
	}
	if pos < 0 || pos >= len(c.mapping) {
		return -1
	}
	phys := c.mapping[pos]
	if phys < 0 || int(phys) >= len(c.values) {
		return -1
	}
	return int(phys)
}

func (c *NumericColumn) readAt(pos int) float64 {
	phys := c.physicalIndex(pos)
	if phys < 0 {
		return MissingF64
	}
	return c.values[phys]
}

func (c *NumericColumn) FillF64(dst []float64, start int) error {
	for i := range dst {
		dst[i] = c.readAt(start + i)
	}
	return nil
}

func (c *NumericColumn) FillF64Strided(dst []float64, start, offset, stride int) error {
	if err := checkStrided(len(dst), offset, stride); err != nil {
		return err
	}
	row := start
	for j := offset; j < len(dst); j += stride {
		dst[j] = c.readAt(row)
		row++
	}
	return nil
}

func (c *NumericColumn) FillI32(dst []int32, start int) error {
	return belterr.Unsupported("column: FillI32 requires Categorical, got %s", c.typ.Kind)
}

func (c *NumericColumn) FillI32Strided(dst []int32, start, offset, stride int) error {
	return belterr.Unsupported("column: FillI32 requires Categorical, got %s", c.typ.Kind)
}

func (c *NumericColumn) FillObj(dst []any, start int) error {
	return belterr.Unsupported("column: FillObj requires ObjectReadable, got %s", c.typ.Kind)
}

func (c *NumericColumn) FillObjStrided(dst []any, start, offset, stride int) error {
	return belterr.Unsupported("column: FillObj requires ObjectReadable, got %s", c.typ.Kind)
}

// Map implements spec.md §4.2's composition/materialize decision.
func (c *NumericColumn) Map(indices rowindex.Vector, preferView bool) Column {
	var merged rowindex.Vector
	if c.mapping != nil {
		merged = rowindex.Compose(indices, c.mapping)
	} else {
		merged = indices
	}

	if preferView || float64(len(indices)) > float64(len(c.values))*viewThreshold {
		return &NumericColumn{typ: c.typ, values: c.values, mapping: merged}
	}

	materialized := make([]float64, len(merged))
	rowindex.GatherF64(c.values, merged, materialized, MissingF64)
	return &NumericColumn{typ: c.typ, values: materialized}
}

func (c *NumericColumn) Sort(ascending bool) (rowindex.Vector, error) {
	if !c.typ.Capabilities.Has(Sortable) {
		return nil, belterr.Unsupported("column: Sort requires Sortable")
	}
	n := c.Size()
	return sortIndices(n, func(pos int) bool {
		return math.IsNaN(c.readAt(pos))
	}, func(a, b int) bool {
		return c.readAt(a) < c.readAt(b)
	}, ascending), nil
}

// viewThreshold is VIEW_THRESHOLD from spec.md §4.2. It is a package
// variable rather than a constant so SetViewThreshold can adjust it. It is
// not read from config.ExecutorConfig automatically.
var viewThreshold = 0.1

// SetViewThreshold overrides VIEW_THRESHOLD for every subsequent Map call
// across all column kinds in this package. Exposed because spec.md §9
// flags the threshold as "should expose for tuning".
func SetViewThreshold(t float64) {
	viewThreshold = t
}
