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

// TimeColumnBuffer is a fixed-length staging container for nanos-of-day
// Time values.
type TimeColumnBuffer struct {
	frozen
	nanos []int64
}

// NewTimeColumnBuffer allocates a buffer of the given logical length,
// every slot initialised to MISSING.
func NewTimeColumnBuffer(length int) *TimeColumnBuffer {
	b := &TimeColumnBuffer{nanos: make([]int64, length)}
	for i := range b.nanos {
		b.nanos[i] = column.MissingI64
	}
	return b
}

func (b *TimeColumnBuffer) Size() int { return len(b.nanos) }

func (b *TimeColumnBuffer) Get(i int) int64 { return b.nanos[i] }

// Set writes nanos-of-day at i. column.MissingI64 marks MISSING.
func (b *TimeColumnBuffer) Set(i int, nanosOfDay int64) error {
	if err := b.checkWritable(); err != nil {
		return err
	}
	if i < 0 || i >= len(b.nanos) {
		return belterr.OutOfRange("colbuffer: index %d out of [0,%d)", i, len(b.nanos))
	}
	b.nanos[i] = nanosOfDay
	return nil
}

// ToColumn freezes the buffer and returns the resulting column.
func (b *TimeColumnBuffer) ToColumn() (column.Column, error) {
	if err := b.freeze(); err != nil {
		return nil, err
	}
	return column.NewTime(b.nanos), nil
}
