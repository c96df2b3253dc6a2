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

import "github.com/rapidminer/belt-sub000/column"

// FreeColumnBuffer is the append-style row writer: spec.md §3's "Buffers
// have a fixed logical length (except the append-style row writer, which
// grows)". Rows are appended in order; there is no random-access Set.
type FreeColumnBuffer[T any] struct {
	frozen
	values     []T
	present    []bool
	customName string
}

// NewFreeColumnBuffer allocates an empty, growable buffer with capacity
// hint sizeHint.
func NewFreeColumnBuffer[T any](sizeHint int, customName string) *FreeColumnBuffer[T] {
	return &FreeColumnBuffer[T]{
		values:     make([]T, 0, sizeHint),
		present:    make([]bool, 0, sizeHint),
		customName: customName,
	}
}

func (b *FreeColumnBuffer[T]) Size() int { return len(b.values) }

// Append adds value as the next row. isNull appends MISSING instead.
func (b *FreeColumnBuffer[T]) Append(value T, isNull bool) error {
	if err := b.checkWritable(); err != nil {
		return err
	}
	if isNull {
		var zero T
		b.values = append(b.values, zero)
		b.present = append(b.present, false)
		return nil
	}
	b.values = append(b.values, value)
	b.present = append(b.present, true)
	return nil
}

// Get returns the value at the given row, or nil if MISSING.
func (b *FreeColumnBuffer[T]) Get(i int) any {
	if !b.present[i] {
		return nil
	}
	return b.values[i]
}

// ToColumn freezes the buffer and returns the resulting column.
func (b *FreeColumnBuffer[T]) ToColumn() (column.Column, error) {
	if err := b.freeze(); err != nil {
		return nil, err
	}
	return column.NewObjectWithPresence(b.values, b.present, b.customName), nil
}
