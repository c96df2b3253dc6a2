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
	"github.com/rapidminer/belt-sub000/column"
)

// ObjectBuffer is a fixed-length staging container for arbitrary objects
// of type T. A slot that has never been Set (or was Set with isNull) is
// MISSING.
type ObjectBuffer[T any] struct {
	frozen
	values     []T
	present    []bool
	customName string
}

// NewObjectBuffer allocates a buffer of the given logical length, every
// slot initially MISSING.
func NewObjectBuffer[T any](length int, customName string) *ObjectBuffer[T] {
	return &ObjectBuffer[T]{
		values:     make([]T, length),
		present:    make([]bool, length),
		customName: customName,
	}
}

func (b *ObjectBuffer[T]) Size() int { return len(b.values) }

// Get returns the value at i, or nil if MISSING.
func (b *ObjectBuffer[T]) Get(i int) any {
	if !b.present[i] {
		return nil
	}
	return b.values[i]
}

// Set writes value at i. isNull clears the slot back to MISSING.
func (b *ObjectBuffer[T]) Set(i int, value T, isNull bool) error {
	if err := b.checkWritable(); err != nil {
		return err
	}
	if i < 0 || i >= len(b.values) {
		return belterr.OutOfRange("colbuffer: index %d out of [0,%d)", i, len(b.values))
	}
	if isNull {
		var zero T
		b.values[i] = zero
		b.present[i] = false
		return nil
	}
	b.values[i] = value
	b.present[i] = true
	return nil
}

// ToColumn freezes the buffer and returns the resulting column.
func (b *ObjectBuffer[T]) ToColumn() (column.Column, error) {
	if err := b.freeze(); err != nil {
		return nil, err
	}
	return column.NewObjectWithPresence(b.values, b.present, b.customName), nil
}
