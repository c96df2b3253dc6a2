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
	"fmt"
	"math"

	. "github.com/pingcap/check"
	"github.com/rapidminer/belt-sub000/column"
	"github.com/rapidminer/belt-sub000/config"
	"github.com/rapidminer/belt-sub000/parallel"
)

type testApplySuite struct{}

var _ = Suite(&testApplySuite{})

func runApply(c *C, calc parallel.Calculator, workload parallel.Workload) any {
	exec := parallel.NewExecutor(config.Default())
	ctx := parallel.NewContext(4)
	result, err := exec.Run(ctx, calc, workload, nil)
	c.Assert(err, IsNil)
	return result
}

func (s *testApplySuite) TestNumericApplySingleSource(c *C) {
	src := column.NewNumeric(column.Real, []float64{1, 2, 3, 4, 5})
	calc, err := NewNumericApplyCalculator([]column.Column{src}, func(row []float64) float64 {
		return row[0] * 2
	}, column.Real)
	c.Assert(err, IsNil)
	result := runApply(c, calc, parallel.SmallPerCell)
	out := result.(column.Column)
	buf := make([]float64, 5)
	c.Assert(out.FillF64(buf, 0), IsNil)
	c.Assert(buf, DeepEquals, []float64{2, 4, 6, 8, 10})
}

func (s *testApplySuite) TestNumericApplyToIntegerRoundsHalfAwayFromZero(c *C) {
	src := column.NewNumeric(column.Real, []float64{1.4, 1.6, 2.5, -0.5})
	calc, err := NewNumericApplyCalculator([]column.Column{src}, func(row []float64) float64 {
		return row[0]
	}, column.Integer)
	c.Assert(err, IsNil)
	result := runApply(c, calc, parallel.SmallPerCell)
	out := result.(column.Column)
	c.Assert(out.Type().Kind, Equals, column.Integer)
	buf := make([]float64, 4)
	c.Assert(out.FillF64(buf, 0), IsNil)
	c.Assert(buf, DeepEquals, []float64{1, 2, 3, -1})
}

func (s *testApplySuite) TestNumericApplyTwoSources(c *C) {
	a := column.NewNumeric(column.Real, []float64{1, 2, 3})
	b := column.NewNumeric(column.Real, []float64{10, 20, 30})
	calc, err := NewNumericApplyCalculator([]column.Column{a, b}, func(row []float64) float64 {
		return row[0] + row[1]
	}, column.Real)
	c.Assert(err, IsNil)
	result := runApply(c, calc, parallel.SmallPerCell)
	out := result.(column.Column)
	buf := make([]float64, 3)
	c.Assert(out.FillF64(buf, 0), IsNil)
	c.Assert(buf, DeepEquals, []float64{11, 22, 33})
}

func (s *testApplySuite) TestNumericApplyPropagatesMissing(c *C) {
	src := column.NewNumeric(column.Real, []float64{1, math.NaN(), 3})
	calc, err := NewNumericApplyCalculator([]column.Column{src}, func(row []float64) float64 {
		return row[0] * 10
	}, column.Real)
	c.Assert(err, IsNil)
	result := runApply(c, calc, parallel.SmallPerCell)
	out := result.(column.Column)
	buf := make([]float64, 3)
	c.Assert(out.FillF64(buf, 0), IsNil)
	c.Assert(buf[0], Equals, 10.0)
	c.Assert(math.IsNaN(buf[1]), Equals, true)
	c.Assert(buf[2], Equals, 30.0)
}

func (s *testApplySuite) TestNumericApplyRejectsMismatchedSize(c *C) {
	a := column.NewNumeric(column.Real, []float64{1, 2})
	b := column.NewNumeric(column.Real, []float64{1, 2, 3})
	_, err := NewNumericApplyCalculator([]column.Column{a, b}, func(row []float64) float64 { return 0 }, column.Real)
	c.Assert(err, NotNil)
}

func (s *testApplySuite) TestObjectApplyFormatsToString(c *C) {
	src := column.NewObjectWithPresence([]int{1, 2, 0}, []bool{true, true, false}, "nums")
	calc, err := NewObjectApplyCalculator([]column.Column{src}, func(row []any) (any, bool) {
		v, ok := row[0].(int)
		if !ok {
			return nil, false
		}
		return fmt.Sprintf("v=%v", v), true
	}, "formatted")
	c.Assert(err, IsNil)
	result := runApply(c, calc, parallel.SmallPerCell)
	out := result.(column.Column)
	buf := make([]any, 3)
	c.Assert(out.FillObj(buf, 0), IsNil)
	c.Assert(buf[0], Equals, "v=1")
	c.Assert(buf[1], Equals, "v=2")
	c.Assert(buf[2], IsNil)
}
