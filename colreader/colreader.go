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

// Package colreader implements the Reader layer (spec.md §2 layer 5,
// §4.7): column-oriented and row-oriented cursors that batch-prefetch rows
// from a set of column.Column values via the interleaved fill API.
package colreader

import "github.com/rapidminer/belt-sub000/belterr"

const (
	// MinBufferRows is the floor on a reader's stack-sized prefetch batch,
	// regardless of element size or column count.
	MinBufferRows = 64
	// MaxBufferRows is the ceiling on a reader's stack-sized prefetch
	// batch.
	MaxBufferRows = 8192

	// targetBatchBytes approximates spec.md §4.7's "≈256 KB" stack budget
	// shared across every column's prefetch slice in a batch.
	targetBatchBytes = 256 * 1024
)

// BatchRows computes the stack-sized batch row count for a reader over
// numColumns columns whose elements are elementSize bytes wide, per
// spec.md §4.7: "≈256 KB / element size / column-count, clamped to
// [MIN_BUFFER_ROWS, MAX_BUFFER_ROWS]".
func BatchRows(elementSize, numColumns int) int {
	if elementSize <= 0 {
		elementSize = 8
	}
	if numColumns <= 0 {
		numColumns = 1
	}
	rows := targetBatchBytes / (elementSize * numColumns)
	if rows < MinBufferRows {
		rows = MinBufferRows
	}
	if rows > MaxBufferRows {
		rows = MaxBufferRows
	}
	return rows
}

// cursor is the shared move()/set_position(p) state machine every
// concrete reader embeds: position -1 means "before first"; batches are
// invalidated lazily, on the next move() that falls outside the current
// batch bounds.
type cursor struct {
	size        int
	position    int // -1 before first
	batchStart  int
	batchLen    int
	batchRows   int
}

func newCursor(size, batchRows int) cursor {
	return cursor{size: size, position: -1, batchStart: -1, batchRows: batchRows}
}

// move advances the cursor by one row, reporting false once past the last
// row. It does not itself refill; callers check needsRefill() afterward.
func (c *cursor) move() bool {
	if c.position+1 >= c.size {
		c.position = c.size
		return false
	}
	c.position++
	return true
}

// setPosition jumps the cursor without I/O, per spec.md §4.7.
func (c *cursor) setPosition(p int) error {
	if p < -1 || p > c.size {
		return belterr.OutOfRange("colreader: position %d out of [-1,%d]", p, c.size)
	}
	c.position = p
	return nil
}

// needsRefill reports whether the current position falls outside the
// cached batch range [batchStart, batchStart+batchLen).
func (c *cursor) needsRefill() bool {
	if c.position < 0 || c.position >= c.size {
		return false
	}
	return c.batchStart < 0 || c.position < c.batchStart || c.position >= c.batchStart+c.batchLen
}

// refillRange returns the [start, end) logical range the next prefetch
// should cover, rooted at the current position.
func (c *cursor) refillRange() (start, end int) {
	start = c.position
	end = start + c.batchRows
	if end > c.size {
		end = c.size
	}
	return start, end
}

func (c *cursor) setBatch(start, length int) {
	c.batchStart = start
	c.batchLen = length
}

// Position returns the cursor's current logical row, or -1 before first.
func (c *cursor) Position() int { return c.position }

// localOffset returns the offset of the current position within the
// cached batch. Callers must only call this when needsRefill() is false.
func (c *cursor) localOffset() int { return c.position - c.batchStart }
