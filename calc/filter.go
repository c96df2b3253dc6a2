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

package calc

import (
	"github.com/ngaut/sync2"
	"github.com/rapidminer/belt-sub000/column"
	"github.com/rapidminer/belt-sub000/rowindex"
)

// Predicate reports whether row should be kept by a Filter. Each entry is
// boxed as any: a float64 for a NumericReadable source (MISSING as
// math.NaN()), or whatever fill_obj produces otherwise — the same
// per-column routing colreader.MixedRowReader uses, since NumericReadable
// columns are not themselves ObjectReadable.
type Predicate func(row []any) bool

// FilterCalculator implements parallel.Calculator per spec.md §4.5: every
// batch tests its rows against a shared predicate into a batch-local
// section of a shared bool mask, and maintains a single atomic counter of
// rows kept so Result can preallocate the exact-size index vector before
// the final ascending-stable compaction pass.
type FilterCalculator struct {
	sources   []column.Column
	predicate Predicate
	mask      []bool
	found     *sync2.AtomicInt64
	size      int
}

// NewFilterCalculator builds a FilterCalculator testing predicate against
// row-aligned values from sources (any column kind, all the same Size).
func NewFilterCalculator(sources []column.Column, predicate Predicate) *FilterCalculator {
	size := 0
	if len(sources) > 0 {
		size = sources[0].Size()
	}
	return &FilterCalculator{sources: sources, predicate: predicate, size: size}
}

func (c *FilterCalculator) Init(numBatches int) error {
	c.mask = make([]bool, c.size)
	found := sync2.NewAtomicInt64(0)
	c.found = &found
	return nil
}

func (c *FilterCalculator) NumOperations() int { return c.size }

func (c *FilterCalculator) DoPart(from, to, batchIndex int) error {
	width := len(c.sources)
	cols := make([][]any, width)
	for i, s := range c.sources {
		buf := make([]any, to-from)
		if s.Capabilities().Has(column.NumericReadable) {
			nums := make([]float64, to-from)
			if err := s.FillF64(nums, from); err != nil {
				return err
			}
			for j, v := range nums {
				buf[j] = v
			}
		} else if err := s.FillObj(buf, from); err != nil {
			return err
		}
		cols[i] = buf
	}
	row := make([]any, width)
	kept := int64(0)
	for i := 0; i < to-from; i++ {
		for j := range cols {
			row[j] = cols[j][i]
		}
		if c.predicate(row) {
			c.mask[from+i] = true
			kept++
		}
	}
	if kept > 0 {
		c.found.Add(kept)
	}
	return nil
}

// Result returns the rowindex.Vector of kept logical positions, in
// ascending (stable) order: spec.md §4.5's required output shape, ready
// to feed directly into column.Map. The mask scan below runs in
// increasing logical-index order regardless of which batch set each bit,
// so the emitted vector is ascending by construction.
func (c *FilterCalculator) Result() (any, error) {
	out := make(rowindex.Vector, 0, c.found.Get())
	for i, keep := range c.mask {
		if keep {
			out = append(out, int32(i))
		}
	}
	return out, nil
}
