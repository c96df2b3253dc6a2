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

package colbuffer

import (
	"github.com/rapidminer/belt-sub000/belterr"
	"github.com/rapidminer/belt-sub000/bitpack"
	"github.com/rapidminer/belt-sub000/column"
	"github.com/rapidminer/belt-sub000/dictionary"
)

// CategoricalBuffer is the write-once staging container for a Categorical
// column of element type T (spec.md §4.3). It starts in a caller-chosen
// width, or the narrowest that fits a declared value cap, and either
// promotes in place as the dictionary grows past the current width's
// addressable range, or — if built with NewFixedCategoricalBuffer — fails
// with an OutOfRange-kind error instead of widening.
type CategoricalBuffer[T comparable] struct {
	frozen
	kind       column.Kind
	store      *bitpack.Store
	dict       *dictionary.Dictionary[T]
	less       func(a, b T) bool
	fixedWidth bool
	customName string
	positive   T
	hasPositive bool
}

// NewCategoricalBuffer allocates a growable buffer: the backing store
// promotes (2→4→8→16→32 bit) automatically as the dictionary outgrows its
// current width. initialFormat is typically bitpack.UInt2 for a fresh
// dictionary, or a wider starting point when the caller already knows an
// approximate value cap.
func NewCategoricalBuffer[T comparable](kind column.Kind, length int, initialFormat bitpack.Format, less func(a, b T) bool) *CategoricalBuffer[T] {
	return &CategoricalBuffer[T]{
		kind:  kind,
		store: bitpack.NewStore(initialFormat, length),
		dict:  dictionary.New[T](),
		less:  less,
	}
}

// NewFixedCategoricalBuffer allocates a buffer whose width never widens:
// once the dictionary's addressable range would overflow format, Set fails
// with an OutOfRange-kind error (spec.md §4.3 option (b)).
func NewFixedCategoricalBuffer[T comparable](kind column.Kind, length int, format bitpack.Format, less func(a, b T) bool) *CategoricalBuffer[T] {
	b := NewCategoricalBuffer[T](kind, length, format, less)
	b.fixedWidth = true
	return b
}

// WithCustomName attaches a custom type name carried through to the frozen
// column's Type().
func (b *CategoricalBuffer[T]) WithCustomName(name string) *CategoricalBuffer[T] {
	b.customName = name
	return b
}

// WithPositiveCategory declares which dictionary value is "positive" for
// Boolean capability purposes (spec.md §3.1: Boolean requires dictionary
// size <= 3 including the MISSING slot, plus a declared positive index).
func (b *CategoricalBuffer[T]) WithPositiveCategory(value T) *CategoricalBuffer[T] {
	b.positive = value
	b.hasPositive = true
	return b
}

func (b *CategoricalBuffer[T]) Size() int { return b.store.Len() }

// Get returns the current object at i: nil if MISSING.
func (b *CategoricalBuffer[T]) Get(i int) any {
	idx := int32(b.store.Get(i))
	v, ok := b.dict.Value(idx)
	if !ok {
		return nil
	}
	return v
}

// Set resolves value in the dictionary (inserting it on first sight) and
// writes the resulting index at i. isNull == true writes the MISSING
// sentinel. If the dictionary outgrows the current width, the buffer
// either promotes in place or, for a fixed-width buffer, fails with an
// OutOfRange-kind error.
func (b *CategoricalBuffer[T]) Set(i int, value T, isNull bool) error {
	if err := b.checkWritable(); err != nil {
		return err
	}
	if i < 0 || i >= b.store.Len() {
		return belterr.OutOfRange("colbuffer: index %d out of [0,%d)", i, b.store.Len())
	}
	if isNull {
		b.store.Set(i, uint32(column.MissingI32))
		return nil
	}
	idx := b.dict.Insert(value)
	if uint32(idx) > b.store.Format().MaxValue() {
		if b.fixedWidth {
			return belterr.OutOfRange("colbuffer: dictionary index %d exceeds fixed width %s", idx, b.store.Format())
		}
		// MinFormatFor(idx) is guaranteed wider than the current format:
		// the current format's MaxValue is already < idx.
		b.store = b.store.WidenTo(bitpack.MinFormatFor(uint32(idx)))
	}
	b.store.Set(i, uint32(idx))
	return nil
}

// ToColumn freezes the buffer and returns the resulting column.
func (b *CategoricalBuffer[T]) ToColumn() (column.Column, error) {
	if err := b.freeze(); err != nil {
		return nil, err
	}
	all := b.dict.All()
	dictValues := make([]any, len(all))
	for i, v := range all {
		if i == 0 {
			continue
		}
		dictValues[i] = v
	}
	var positiveIdx int32
	if b.hasPositive {
		idx, ok := b.dict.Lookup(b.positive)
		if !ok {
			return nil, belterr.BadArgument("colbuffer: positive category value %v was never written", b.positive)
		}
		positiveIdx = idx
	}
	var lessAny func(a, b any) bool
	if b.less != nil {
		lessAny = func(x, y any) bool { return b.less(x.(T), y.(T)) }
	}
	return column.NewCategorical(column.NewCategoricalParams{
		Kind:          b.kind,
		Store:         b.store,
		DictValues:    dictValues,
		PositiveIndex: positiveIdx,
		Less:          lessAny,
		CustomName:    b.customName,
	})
}
