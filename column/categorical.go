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
	"github.com/rapidminer/belt-sub000/bitpack"
	"github.com/rapidminer/belt-sub000/rowindex"
)

// CategoricalColumn stores packed category indices (spec.md §3's
// UInt2/UInt4/UInt8/UInt16/Int32 encodings) plus the resolving
// dictionary. dictValues[0] is always nil (the MISSING sentinel).
type CategoricalColumn struct {
	typ           Type
	store         *bitpack.Store
	dictValues    []any
	positiveIndex int32 // 0 => no positive boolean category declared
	less          func(a, b any) bool
	mapping       rowindex.Vector
}

// NewCategoricalParams collects the inputs a buffer supplies when
// freezing into a CategoricalColumn.
type NewCategoricalParams struct {
	Kind          Kind
	Store         *bitpack.Store
	DictValues    []any // slot 0 must be nil
	PositiveIndex int32 // 0 if none
	Less          func(a, b any) bool
	CustomName    string
}

// NewCategorical builds a simple (unmapped) CategoricalColumn.
func NewCategorical(p NewCategoricalParams) (*CategoricalColumn, error) {
	if len(p.DictValues) == 0 || p.DictValues[0] != nil {
		return nil, belterr.BadArgument("column: dictionary slot 0 must be the nil MISSING sentinel")
	}
	positiveBoolean := p.PositiveIndex > 0 && len(p.DictValues) <= 3
	if p.PositiveIndex > 0 && (int(p.PositiveIndex) >= len(p.DictValues)) {
		return nil, belterr.BadArgument("column: positive category index %d not in dictionary", p.PositiveIndex)
	}
	typ := NewType(p.Kind, positiveBoolean)
	if p.CustomName != "" {
		typ = typ.WithName(p.CustomName)
	}
	return &CategoricalColumn{
		typ:           typ,
		store:         p.Store,
		dictValues:    p.DictValues,
		positiveIndex: p.PositiveIndex,
		less:          p.Less,
	}, nil
}

func (c *CategoricalColumn) Size() int {
	if c.mapping != nil {
		return len(c.mapping)
	}
	return c.store.Len()
}

func (c *CategoricalColumn) Type() Type                  { return c.typ }
func (c *CategoricalColumn) Category() Category          { return c.typ.Category }
func (c *CategoricalColumn) Capabilities() CapabilitySet { return c.typ.Capabilities }

func (c *CategoricalColumn) physicalIndex(pos int) int {
	if c.mapping == nil {
		if pos < 0 || pos >= c.store.Len() {
			return -1
		}
		return pos
	}
	if pos < 0 || pos >= len(c.mapping) {
		return -1
	}
	phys := c.mapping[pos]
	if phys < 0 || int(phys) >= c.store.Len() {
		return -1
	}
	return int(phys)
}

func (c *CategoricalColumn) readIndex(pos int) int32 {
	phys := c.physicalIndex(pos)
	if phys < 0 {
		return MissingI32
	}
	return int32(c.store.Get(phys))
}

func (c *CategoricalColumn) FillI32(dst []int32, start int) error {
	for i := range dst {
		dst[i] = c.readIndex(start + i)
	}
	return nil
}

func (c *CategoricalColumn) FillI32Strided(dst []int32, start, offset, stride int) error {
	if err := checkStrided(len(dst), offset, stride); err != nil {
		return err
	}
	row := start
	for j := offset; j < len(dst); j += stride {
		dst[j] = c.readIndex(row)
		row++
	}
	return nil
}

func (c *CategoricalColumn) FillF64(dst []float64, start int) error {
	return belterr.Unsupported("column: FillF64 requires NumericReadable, got %s", c.typ.Kind)
}

func (c *CategoricalColumn) FillF64Strided(dst []float64, start, offset, stride int) error {
	return belterr.Unsupported("column: FillF64 requires NumericReadable, got %s", c.typ.Kind)
}

func (c *CategoricalColumn) decode(idx int32) any {
	if idx <= 0 || int(idx) >= len(c.dictValues) {
		return nil
	}
	return c.dictValues[idx]
}

func (c *CategoricalColumn) FillObj(dst []any, start int) error {
	for i := range dst {
		dst[i] = c.decode(c.readIndex(start + i))
	}
	return nil
}

func (c *CategoricalColumn) FillObjStrided(dst []any, start, offset, stride int) error {
	if err := checkStrided(len(dst), offset, stride); err != nil {
		return err
	}
	row := start
	for j := offset; j < len(dst); j += stride {
		dst[j] = c.decode(c.readIndex(row))
		row++
	}
	return nil
}

// DictionaryObjects implements Dictionaried.
func (c *CategoricalColumn) DictionaryObjects() []any {
	return c.dictValues
}

// ToBoolean implements Booleanish. It matches v against the positive
// dictionary value by equality, per spec.md §9's documented ambiguity.
func (c *CategoricalColumn) ToBoolean(v any) (bool, bool) {
	if !c.typ.Capabilities.Has(Boolean) {
		return false, false
	}
	positive := c.dictValues[c.positiveIndex]
	return v == positive, true
}

func (c *CategoricalColumn) Map(indices rowindex.Vector, preferView bool) Column {
	var merged rowindex.Vector
	if c.mapping != nil {
		merged = rowindex.Compose(indices, c.mapping)
	} else {
		merged = indices
	}

	if preferView || float64(len(indices)) > float64(c.store.Len())*viewThreshold {
		return &CategoricalColumn{
			typ: c.typ, store: c.store, dictValues: c.dictValues,
			positiveIndex: c.positiveIndex, less: c.less, mapping: merged,
		}
	}

	materialized := bitpack.NewStore(c.store.Format(), len(merged))
	for i, p := range merged {
		if p < 0 || int(p) >= c.store.Len() {
			materialized.Set(i, uint32(MissingI32))
			continue
		}
		materialized.Set(i, c.store.Get(int(p)))
	}
	return &CategoricalColumn{
		typ: c.typ, store: materialized, dictValues: c.dictValues,
		positiveIndex: c.positiveIndex, less: c.less,
	}
}

func (c *CategoricalColumn) Sort(ascending bool) (rowindex.Vector, error) {
	if !c.typ.Capabilities.Has(Sortable) {
		return nil, belterr.Unsupported("column: Sort requires Sortable")
	}
	if c.less == nil {
		return nil, belterr.Unsupported("column: Sort requires a dictionary comparator")
	}
	n := c.Size()
	return sortIndices(n, func(pos int) bool {
		return c.readIndex(pos) == MissingI32
	}, func(a, b int) bool {
		return c.less(c.decode(c.readIndex(a)), c.decode(c.readIndex(b)))
	}, ascending), nil
}
