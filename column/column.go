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

// MissingF64 is the sentinel NumericReadable columns write for a missing
// or out-of-range row.
var MissingF64 = math.NaN()

// MissingI32 is the sentinel Categorical columns write for a missing or
// out-of-range row: dictionary slot 0.
const MissingI32 int32 = 0

// MissingI64 is the sentinel DateTime/Time columns use for their physical
// int64 encoding.
const MissingI64 int64 = math.MinInt64

// Column is the read-only, immutable contract every column kind
// implements: spec.md §6's programmatic surface.
type Column interface {
	// Size is the logical row count.
	Size() int
	// Type is the column's static kind/category/capability description.
	Type() Type
	// Category is a shorthand for Type().Category.
	Category() Category
	// Capabilities is a shorthand for Type().Capabilities.
	Capabilities() CapabilitySet

	// FillF64 requires NumericReadable. It writes math.NaN() for any
	// logical index outside [0, Size()) or MISSING.
	FillF64(dst []float64, start int) error
	// FillF64Strided is the interleaved-read overload used by row
	// readers: writes to dst[offset], dst[offset+stride], ...,
	// reading logical rows start, start+1, ....
	FillF64Strided(dst []float64, start, offset, stride int) error

	// FillI32 requires Category() == Categorical. It writes 0 (the
	// MISSING sentinel) for any logical index outside [0, Size()).
	FillI32(dst []int32, start int) error
	FillI32Strided(dst []int32, start, offset, stride int) error

	// FillObj requires ObjectReadable. It writes nil for MISSING or
	// out-of-range rows.
	FillObj(dst []any, start int) error
	FillObjStrided(dst []any, start, offset, stride int) error

	// Map returns a new column whose logical order is
	// original[indices[i]], per spec.md §4.2.
	Map(indices rowindex.Vector, preferView bool) Column

	// Sort requires Sortable. It returns an index vector such that
	// gathering the column by it yields ascending (or descending) order
	// with nulls/NaN always last, per spec.md §4.6.
	Sort(ascending bool) (rowindex.Vector, error)
}

// Dictionaried is implemented by Categorical columns, exposing their
// backing dictionary as objects. Index 0 is always MISSING.
type Dictionaried interface {
	DictionaryObjects() []any
}

// Booleanish is implemented by Categorical columns whose Type has the
// Boolean capability. ToBoolean reports whether v equals the positive
// dictionary value — an equality-based match, per spec.md §9's explicit
// choice to mirror the source's ambiguity here rather than resolve it.
type Booleanish interface {
	ToBoolean(v any) (result bool, ok bool)
}

func checkStrided(l, offset, stride int) error {
	if stride <= 0 {
		return belterr.BadArgument("stride must be positive, got %d", stride)
	}
	if offset < 0 || offset >= l {
		if l == 0 {
			return nil
		}
		return belterr.BadArgument("offset %d out of [0,%d)", offset, l)
	}
	return nil
}
