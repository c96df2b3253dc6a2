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
	"math"
	"sync"

	"github.com/rapidminer/belt-sub000/belterr"
	"github.com/rapidminer/belt-sub000/column"
)

// ReduceCalculator drives a Reducer over a NumericReadable source column,
// implementing parallel.Calculator. One PartialResult is allocated per
// batch; DoPart folds its range's values into that batch's partial result
// via Update, skipping MISSING (NaN) cells; Result merges every batch's
// partial left-to-right and finalises via Finish.
type ReduceCalculator struct {
	source   column.Column
	reducer  Reducer
	partials []PartialResult
	mu       sync.Mutex
}

// NewReduceCalculator builds a ReduceCalculator over source using reducer.
// source must be NumericReadable.
func NewReduceCalculator(source column.Column, reducer Reducer) (*ReduceCalculator, error) {
	if !source.Capabilities().Has(column.NumericReadable) {
		return nil, belterr.Unsupported("calc: Reduce requires NumericReadable, got %s", source.Type().Kind)
	}
	return &ReduceCalculator{source: source, reducer: reducer}, nil
}

func (c *ReduceCalculator) Init(numBatches int) error {
	c.partials = make([]PartialResult, numBatches)
	return nil
}

func (c *ReduceCalculator) NumOperations() int { return c.source.Size() }

func (c *ReduceCalculator) DoPart(from, to, batchIndex int) error {
	pr := c.reducer.Alloc()
	buf := make([]float64, to-from)
	if err := c.source.FillF64(buf, from); err != nil {
		return err
	}
	for _, v := range buf {
		if math.IsNaN(v) {
			continue
		}
		c.reducer.Update(pr, v)
	}
	c.mu.Lock()
	c.partials[batchIndex] = pr
	c.mu.Unlock()
	return nil
}

func (c *ReduceCalculator) Result() (any, error) {
	if len(c.partials) == 0 {
		return c.reducer.Finish(c.reducer.Alloc()), nil
	}
	acc := c.partials[0]
	for _, pr := range c.partials[1:] {
		c.reducer.Merge(acc, pr)
	}
	return c.reducer.Finish(acc), nil
}
