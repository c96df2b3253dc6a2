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
	"math"

	"github.com/rapidminer/belt-sub000/belterr"
	"github.com/rapidminer/belt-sub000/column"
)

// FixedRealBuffer is a fixed-length, write-once staging container that
// freezes into a Real NumericColumn.
type FixedRealBuffer struct {
	frozen
	values []float64
}

// NewFixedRealBuffer allocates a buffer of the given logical length, every
// slot initialised to MISSING.
func NewFixedRealBuffer(length int) *FixedRealBuffer {
	b := &FixedRealBuffer{values: make([]float64, length)}
	for i := range b.values {
		b.values[i] = column.MissingF64
	}
	return b
}

func (b *FixedRealBuffer) Size() int { return len(b.values) }

// Get returns the current value at i, MISSING if never set.
func (b *FixedRealBuffer) Get(i int) float64 { return b.values[i] }

// Set writes value at i. Fails with a State-kind error if the buffer is
// already frozen.
func (b *FixedRealBuffer) Set(i int, value float64) error {
	if err := b.checkWritable(); err != nil {
		return err
	}
	if i < 0 || i >= len(b.values) {
		return belterr.OutOfRange("colbuffer: index %d out of [0,%d)", i, len(b.values))
	}
	b.values[i] = value
	return nil
}

// ToColumn freezes the buffer and returns the resulting column.
func (b *FixedRealBuffer) ToColumn() (column.Column, error) {
	if err := b.freeze(); err != nil {
		return nil, err
	}
	return column.NewNumeric(column.Real, b.values), nil
}

// FixedIntegerBuffer is the Integer-kind analogue of FixedRealBuffer. The
// underlying physical encoding is still f64 (spec.md §3 stores Integer
// densely as f64, same as Real, differing only in Type().Kind).
type FixedIntegerBuffer struct {
	frozen
	values []float64
}

// NewFixedIntegerBuffer allocates a buffer of the given logical length,
// every slot initialised to MISSING.
func NewFixedIntegerBuffer(length int) *FixedIntegerBuffer {
	b := &FixedIntegerBuffer{values: make([]float64, length)}
	for i := range b.values {
		b.values[i] = column.MissingF64
	}
	return b
}

func (b *FixedIntegerBuffer) Size() int { return len(b.values) }

func (b *FixedIntegerBuffer) Get(i int) float64 { return b.values[i] }

// Set writes value at i, rounded half-away-from-zero to the nearest
// integer (spec.md §8 scenario 2: 1.4 -> 1, 1.6 -> 2, 2.5 -> 3, -0.5 ->
// -1). MISSING (math.NaN()) passes through unchanged, since
// Copysign/Trunc both propagate NaN.
func (b *FixedIntegerBuffer) Set(i int, value float64) error {
	if err := b.checkWritable(); err != nil {
		return err
	}
	if i < 0 || i >= len(b.values) {
		return belterr.OutOfRange("colbuffer: index %d out of [0,%d)", i, len(b.values))
	}
	b.values[i] = math.Trunc(value + math.Copysign(0.5, value))
	return nil
}

func (b *FixedIntegerBuffer) ToColumn() (column.Column, error) {
	if err := b.freeze(); err != nil {
		return nil, err
	}
	return column.NewNumeric(column.Integer, b.values), nil
}
