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

// LowPrecisionDateTimeBuffer stores epoch-seconds only; the frozen column
// carries no nanosecond refinement.
type LowPrecisionDateTimeBuffer struct {
	frozen
	seconds []int64
}

// NewLowPrecisionDateTimeBuffer allocates a buffer of the given logical
// length, every slot initialised to MISSING.
func NewLowPrecisionDateTimeBuffer(length int) *LowPrecisionDateTimeBuffer {
	b := &LowPrecisionDateTimeBuffer{seconds: make([]int64, length)}
	for i := range b.seconds {
		b.seconds[i] = column.MissingI64
	}
	return b
}

func (b *LowPrecisionDateTimeBuffer) Size() int { return len(b.seconds) }

func (b *LowPrecisionDateTimeBuffer) Get(i int) int64 { return b.seconds[i] }

// Set writes epoch-seconds at i. column.MissingI64 marks MISSING.
func (b *LowPrecisionDateTimeBuffer) Set(i int, seconds int64) error {
	if err := b.checkWritable(); err != nil {
		return err
	}
	if i < 0 || i >= len(b.seconds) {
		return belterr.OutOfRange("colbuffer: index %d out of [0,%d)", i, len(b.seconds))
	}
	b.seconds[i] = seconds
	return nil
}

// ToColumn freezes the buffer and returns the resulting column.
func (b *LowPrecisionDateTimeBuffer) ToColumn() (column.Column, error) {
	if err := b.freeze(); err != nil {
		return nil, err
	}
	return column.NewDateTime(b.seconds, nil), nil
}

// HighPrecisionDateTimeBuffer stores epoch-seconds plus a nanosecond
// refinement.
type HighPrecisionDateTimeBuffer struct {
	frozen
	seconds []int64
	nanos   []int32
}

// NewHighPrecisionDateTimeBuffer allocates a buffer of the given logical
// length, every slot initialised to MISSING.
func NewHighPrecisionDateTimeBuffer(length int) *HighPrecisionDateTimeBuffer {
	b := &HighPrecisionDateTimeBuffer{
		seconds: make([]int64, length),
		nanos:   make([]int32, length),
	}
	for i := range b.seconds {
		b.seconds[i] = column.MissingI64
	}
	return b
}

func (b *HighPrecisionDateTimeBuffer) Size() int { return len(b.seconds) }

func (b *HighPrecisionDateTimeBuffer) Get(i int) (seconds int64, nanos int32) {
	return b.seconds[i], b.nanos[i]
}

// Set writes epoch-seconds and nanos-of-second at i. column.MissingI64
// marks MISSING (nanos is ignored in that case).
func (b *HighPrecisionDateTimeBuffer) Set(i int, seconds int64, nanos int32) error {
	if err := b.checkWritable(); err != nil {
		return err
	}
	if i < 0 || i >= len(b.seconds) {
		return belterr.OutOfRange("colbuffer: index %d out of [0,%d)", i, len(b.seconds))
	}
	b.seconds[i] = seconds
	if seconds == column.MissingI64 {
		b.nanos[i] = 0
	} else {
		b.nanos[i] = nanos
	}
	return nil
}

// ToColumn freezes the buffer and returns the resulting column.
func (b *HighPrecisionDateTimeBuffer) ToColumn() (column.Column, error) {
	if err := b.freeze(); err != nil {
		return nil, err
	}
	return column.NewDateTime(b.seconds, b.nanos), nil
}
