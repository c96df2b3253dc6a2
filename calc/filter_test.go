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
	. "github.com/pingcap/check"
	"github.com/rapidminer/belt-sub000/bitpack"
	"github.com/rapidminer/belt-sub000/colbuffer"
	"github.com/rapidminer/belt-sub000/column"
	"github.com/rapidminer/belt-sub000/config"
	"github.com/rapidminer/belt-sub000/parallel"
	"github.com/rapidminer/belt-sub000/rowindex"
)

type testFilterSuite struct{}

var _ = Suite(&testFilterSuite{})

func (s *testFilterSuite) TestFilterKeepsAscendingOrder(c *C) {
	src := column.NewNumeric(column.Real, []float64{1, 2, 3, 4, 5, 6})
	calc := NewFilterCalculator([]column.Column{src}, func(row []any) bool {
		v := row[0].(float64)
		return int(v)%2 == 0
	})
	exec := parallel.NewExecutor(config.Default())
	ctx := parallel.NewContext(4)
	result, err := exec.Run(ctx, calc, parallel.SmallPerCell, nil)
	c.Assert(err, IsNil)
	kept := result.(rowindex.Vector)
	c.Assert(kept, DeepEquals, rowindex.Vector{1, 3, 5})
}

func (s *testFilterSuite) TestFilterAllExcluded(c *C) {
	src := column.NewNumeric(column.Real, []float64{1, 3, 5})
	calc := NewFilterCalculator([]column.Column{src}, func(row []any) bool {
		return row[0].(float64) > 100
	})
	exec := parallel.NewExecutor(config.Default())
	ctx := parallel.NewContext(4)
	result, err := exec.Run(ctx, calc, parallel.SmallPerCell, nil)
	c.Assert(err, IsNil)
	kept := result.(rowindex.Vector)
	c.Assert(len(kept), Equals, 0)
}

func (s *testFilterSuite) TestFilterThenMapMaterializesKeptRows(c *C) {
	src := column.NewNumeric(column.Real, []float64{10, 20, 30, 40})
	calc := NewFilterCalculator([]column.Column{src}, func(row []any) bool {
		return row[0].(float64) >= 20
	})
	exec := parallel.NewExecutor(config.Default())
	ctx := parallel.NewContext(4)
	result, err := exec.Run(ctx, calc, parallel.SmallPerCell, nil)
	c.Assert(err, IsNil)
	kept := result.(rowindex.Vector)
	filtered := src.Map(kept, false)
	buf := make([]float64, filtered.Size())
	c.Assert(filtered.FillF64(buf, 0), IsNil)
	c.Assert(buf, DeepEquals, []float64{20, 30, 40})
}

// TestFilterCategoricalIndexEquality reproduces spec.md §8 scenario 3
// verbatim: dictionary [MISSING,"red","green","blue"], predicate "index
// equals 2", over values red/green/blue/red/blue/green, expecting the
// kept index vector [1,5].
func (s *testFilterSuite) TestFilterCategoricalIndexEquality(c *C) {
	values := []string{"red", "green", "blue", "red", "blue", "green"}
	buf := colbuffer.NewCategoricalBuffer[string](column.Nominal, len(values), bitpack.UInt4, func(a, b string) bool { return a < b })
	for i, v := range values {
		c.Assert(buf.Set(i, v, false), IsNil)
	}
	src, err := buf.ToColumn()
	c.Assert(err, IsNil)

	dict := src.(column.Dictionaried).DictionaryObjects()
	c.Assert(dict, DeepEquals, []any{nil, "red", "green", "blue"})
	target := dict[2]

	calc := NewFilterCalculator([]column.Column{src}, func(row []any) bool {
		return row[0] == target
	})
	exec := parallel.NewExecutor(config.Default())
	ctx := parallel.NewContext(4)
	result, err := exec.Run(ctx, calc, parallel.SmallPerCell, nil)
	c.Assert(err, IsNil)
	kept := result.(rowindex.Vector)
	c.Assert(kept, DeepEquals, rowindex.Vector{1, 5})
}

func (s *testFilterSuite) TestFilterLargeParallel(c *C) {
	n := 1 << 17
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	src := column.NewNumeric(column.Real, values)
	calc := NewFilterCalculator([]column.Column{src}, func(row []any) bool {
		return int(row[0].(float64))%3 == 0
	})
	exec := parallel.NewExecutor(config.Default())
	ctx := parallel.NewContext(4)
	result, err := exec.Run(ctx, calc, parallel.SmallPerCell, nil)
	c.Assert(err, IsNil)
	kept := result.(rowindex.Vector)
	c.Assert(len(kept), Equals, (n+2)/3)
	for i := 1; i < len(kept); i++ {
		c.Assert(kept[i] > kept[i-1], Equals, true)
	}
}
