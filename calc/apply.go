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
	"github.com/rapidminer/belt-sub000/belterr"
	"github.com/rapidminer/belt-sub000/colbuffer"
	"github.com/rapidminer/belt-sub000/column"
)

// NumericFunc is a per-cell transform over a row of NumericReadable source
// values, producing one f64 destination value. Sources are read via
// fill_f64, so MISSING arrives as math.NaN(); the function is responsible
// for propagating or overriding that as appropriate (spec.md §4.4's Apply
// strategy).
type NumericFunc func(row []float64) float64

// NumericApplyCalculator implements parallel.Calculator, applying fn
// across numColumns aligned NumericReadable sources into a single
// destination buffer (Real or Integer, caller's choice), one row at a
// time. Each batch writes a disjoint index range of dst, so no batch-level
// synchronization is required beyond the executor's own join.
type NumericApplyCalculator struct {
	sources []column.Column
	fn      NumericFunc
	dstKind column.Kind
	dst     *colbuffer.FixedRealBuffer // used when dstKind == Real
	dstInt  *colbuffer.FixedIntegerBuffer
	size    int
}

// NewNumericApplyCalculator builds a calculator reading row-aligned values
// from sources (all NumericReadable, all the same Size) and writing fn's
// result into a freshly allocated buffer of dstKind (Real or Integer).
func NewNumericApplyCalculator(sources []column.Column, fn NumericFunc, dstKind column.Kind) (*NumericApplyCalculator, error) {
	if len(sources) == 0 {
		return nil, belterr.BadArgument("calc: Apply requires at least one source column")
	}
	size := sources[0].Size()
	for _, s := range sources {
		if !s.Capabilities().Has(column.NumericReadable) {
			return nil, belterr.Unsupported("calc: Apply requires NumericReadable, got %s", s.Type().Kind)
		}
		if s.Size() != size {
			return nil, belterr.BadArgument("calc: Apply sources must share a size, got %d and %d", size, s.Size())
		}
	}
	if dstKind != column.Real && dstKind != column.Integer {
		return nil, belterr.BadArgument("calc: NumericApplyCalculator dstKind must be Real or Integer")
	}
	c := &NumericApplyCalculator{sources: sources, fn: fn, dstKind: dstKind, size: size}
	if dstKind == column.Real {
		c.dst = colbuffer.NewFixedRealBuffer(size)
	} else {
		c.dstInt = colbuffer.NewFixedIntegerBuffer(size)
	}
	return c, nil
}

func (c *NumericApplyCalculator) Init(numBatches int) error { return nil }

func (c *NumericApplyCalculator) NumOperations() int { return c.size }

func (c *NumericApplyCalculator) DoPart(from, to, batchIndex int) error {
	width := len(c.sources)
	cols := make([][]float64, width)
	for i, s := range c.sources {
		buf := make([]float64, to-from)
		if err := s.FillF64(buf, from); err != nil {
			return err
		}
		cols[i] = buf
	}
	row := make([]float64, width)
	for i := 0; i < to-from; i++ {
		for j := range cols {
			row[j] = cols[j][i]
		}
		v := c.fn(row)
		if c.dstKind == column.Real {
			if err := c.dst.Set(from+i, v); err != nil {
				return err
			}
		} else {
			if err := c.dstInt.Set(from+i, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *NumericApplyCalculator) Result() (any, error) {
	if c.dstKind == column.Real {
		return c.dst.ToColumn()
	}
	return c.dstInt.ToColumn()
}

// ObjectFunc is a per-cell transform over a row of ObjectReadable source
// values, producing one destination value plus an explicit presence flag
// (the destination is Object-kind, whose generic zero value cannot stand
// in for MISSING, per column.ObjectColumn's presence-tracking design).
type ObjectFunc func(row []any) (value any, present bool)

// ObjectApplyCalculator implements parallel.Calculator, applying fn across
// numColumns aligned ObjectReadable sources into a single []any
// destination with an explicit presence mask, frozen via
// column.NewObjectWithPresence.
type ObjectApplyCalculator struct {
	sources    []column.Column
	fn         ObjectFunc
	customName string
	values     []any
	present    []bool
	size       int
}

// NewObjectApplyCalculator builds a calculator reading row-aligned values
// from sources (all ObjectReadable, all the same Size) and writing fn's
// result into a fresh Object column named customName.
func NewObjectApplyCalculator(sources []column.Column, fn ObjectFunc, customName string) (*ObjectApplyCalculator, error) {
	if len(sources) == 0 {
		return nil, belterr.BadArgument("calc: Apply requires at least one source column")
	}
	size := sources[0].Size()
	for _, s := range sources {
		if !s.Capabilities().Has(column.ObjectReadable) {
			return nil, belterr.Unsupported("calc: Apply requires ObjectReadable, got %s", s.Type().Kind)
		}
		if s.Size() != size {
			return nil, belterr.BadArgument("calc: Apply sources must share a size, got %d and %d", size, s.Size())
		}
	}
	return &ObjectApplyCalculator{sources: sources, fn: fn, customName: customName, size: size}, nil
}

func (c *ObjectApplyCalculator) Init(numBatches int) error {
	c.values = make([]any, c.size)
	c.present = make([]bool, c.size)
	return nil
}

func (c *ObjectApplyCalculator) NumOperations() int { return c.size }

func (c *ObjectApplyCalculator) DoPart(from, to, batchIndex int) error {
	width := len(c.sources)
	cols := make([][]any, width)
	for i, s := range c.sources {
		buf := make([]any, to-from)
		if err := s.FillObj(buf, from); err != nil {
			return err
		}
		cols[i] = buf
	}
	row := make([]any, width)
	for i := 0; i < to-from; i++ {
		for j := range cols {
			row[j] = cols[j][i]
		}
		v, ok := c.fn(row)
		c.values[from+i] = v
		c.present[from+i] = ok
	}
	return nil
}

func (c *ObjectApplyCalculator) Result() (any, error) {
	return column.NewObjectWithPresence(c.values, c.present, c.customName), nil
}
