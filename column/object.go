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

// ObjectColumn stores an Any[size] object arena (spec.md §3's Object
// encoding). A position is MISSING when it is out of range, MISSING in the
// mapping, or marked absent by present.
//
// present tracks which physical slots are missing for value types T where
// the zero value is indistinguishable from MISSING (an int column's 0 is
// valid data, not absence). present == nil means every physical slot is
// present; NewObject leaves it nil, NewObjectWithPresence takes it from
// the caller, and a materializing Map always allocates it.
type ObjectColumn[T any] struct {
	typ     Type
	values  []T
	present []bool
	mapping rowindex.Vector
}

// NewObject builds a simple (unmapped) ObjectColumn of element type T. All
// supplied values are considered present.
func NewObject[T any](values []T, customName string) *ObjectColumn[T] {
	typ := NewType(ObjectUser, false)
	if customName != "" {
		typ = typ.WithName(customName)
	}
	return &ObjectColumn[T]{typ: typ, values: values}
}

// NewObjectWithPresence builds a simple (unmapped) ObjectColumn where
// present[i] == false marks values[i] as MISSING regardless of its zero
// value — the shape an ObjectBuffer freezes into, since value types can't
// otherwise distinguish a real zero from absence.
func NewObjectWithPresence[T any](values []T, present []bool, customName string) *ObjectColumn[T] {
	typ := NewType(ObjectUser, false)
	if customName != "" {
		typ = typ.WithName(customName)
	}
	return &ObjectColumn[T]{typ: typ, values: values, present: present}
}

func (c *ObjectColumn[T]) Size() int {
	if c.mapping != nil {
		return len(c.mapping)
	}
	return len(c.values)
}

func (c *ObjectColumn[T]) Type() Type                  { return c.typ }
func (c *ObjectColumn[T]) Category() Category          { return c.typ.Category }
func (c *ObjectColumn[T]) Capabilities() CapabilitySet { return c.typ.Capabilities }

// physicalIndex resolves a logical position to a physical position, or -1
// if it is out of range, itself MISSING via the mapping, or the physical
// slot is marked absent by present.
func (c *ObjectColumn[T]) physicalIndex(pos int) int {
	var phys int
	if c.mapping == nil {
		if pos < 0 || pos >= len(c.values) {
			return -1
		}
		phys = pos
	} else {
		if pos < 0 || pos >= len(c.mapping) {
			return -1
		}
		p := c.mapping[pos]
		if p < 0 || int(p) >= len(c.values) {
			return -1
		}
		phys = int(p)
	}
	if c.present != nil && !c.present[phys] {
		return -1
	}
	return phys
}

func (c *ObjectColumn[T]) readAt(pos int) any {
	phys := c.physicalIndex(pos)
	if phys < 0 {
		return nil
	}
	return c.values[phys]
}

func (c *ObjectColumn[T]) FillObj(dst []any, start int) error {
	for i := range dst {
		dst[i] = c.readAt(start + i)
	}
	return nil
}

func (c *ObjectColumn[T]) FillObjStrided(dst []any, start, offset, stride int) error {
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

func (c *ObjectColumn[T]) FillF64(dst []float64, start int) error {
	return belterr.Unsupported("column: FillF64 requires NumericReadable, got %s", c.typ.Kind)
}
func (c *ObjectColumn[T]) FillF64Strided(dst []float64, start, offset, stride int) error {
	return belterr.Unsupported("column: FillF64 requires NumericReadable, got %s", c.typ.Kind)
}
func (c *ObjectColumn[T]) FillI32(dst []int32, start int) error {
	return belterr.Unsupported("column: FillI32 requires Categorical, got %s", c.typ.Kind)
}
func (c *ObjectColumn[T]) FillI32Strided(dst []int32, start, offset, stride int) error {
	return belterr.Unsupported("column: FillI32 requires Categorical, got %s", c.typ.Kind)
}

func (c *ObjectColumn[T]) Map(indices rowindex.Vector, preferView bool) Column {
	var merged rowindex.Vector
	if c.mapping != nil {
		merged = rowindex.Compose(indices, c.mapping)
	} else {
		merged = indices
	}
	if preferView || float64(len(indices)) > float64(len(c.values))*viewThreshold {
		return &ObjectColumn[T]{typ: c.typ, values: c.values, present: c.present, mapping: merged}
	}

	materialized := make([]T, len(merged))
	present := make([]bool, len(merged))
	for i, p := range merged {
		if p < 0 || int(p) >= len(c.values) {
			continue
		}
		if c.present != nil && !c.present[p] {
			continue
		}
		materialized[i] = c.values[p]
		present[i] = true
	}
	return &ObjectColumn[T]{typ: c.typ, values: materialized, present: present}
}

// Sort always fails with Unsupported: Object columns carry no declared
// comparator, matching spec.md §4.6's silence on ordering arbitrary
// objects.
func (c *ObjectColumn[T]) Sort(ascending bool) (rowindex.Vector, error) {
	return nil, belterr.Unsupported("column: Sort requires Sortable, Object columns are not sortable")
}
