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

package column

import (
	"math"
	"testing"

	. "github.com/pingcap/check"
	"github.com/rapidminer/belt-sub000/rowindex"
)

func Test(t *testing.T) { TestingT(t) }

type testNumericSuite struct{}

var _ = Suite(&testNumericSuite{})

func (s *testNumericSuite) TestFillF64RoundTrips(c *C) {
	col := NewNumeric(Real, []float64{1, 2, 3})
	dst := make([]float64, 3)
	c.Assert(col.FillF64(dst, 0), IsNil)
	c.Assert(dst, DeepEquals, []float64{1, 2, 3})
}

func (s *testNumericSuite) TestFillF64OutOfRangeIsNaN(c *C) {
	col := NewNumeric(Real, []float64{1, 2})
	dst := make([]float64, 1)
	c.Assert(col.FillF64(dst, 5), IsNil)
	c.Assert(math.IsNaN(dst[0]), Equals, true)
}

func (s *testNumericSuite) TestMapIdentity(c *C) {
	col := NewNumeric(Real, []float64{1, 2, 3})
	mapped := col.Map(rowindex.Identity(3), true)
	dst := make([]float64, 3)
	c.Assert(mapped.FillF64(dst, 0), IsNil)
	c.Assert(dst, DeepEquals, []float64{1, 2, 3})
}

func (s *testNumericSuite) TestMapComposesViews(c *C) {
	col := NewNumeric(Real, []float64{10, 20, 30, 40})
	view := col.Map(rowindex.Vector{3, 1}, true)
	reView := view.Map(rowindex.Vector{1, 0}, true)
	dst := make([]float64, 2)
	c.Assert(reView.FillF64(dst, 0), IsNil)
	c.Assert(dst, DeepEquals, []float64{20, 40})
}

func (s *testNumericSuite) TestMapMaterializeMatchesView(c *C) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = float64(10 * (i + 1))
	}
	col := NewNumeric(Real, values)
	idx := rowindex.Vector{2, 0, 3}
	view := col.Map(idx, true)
	materialized := col.Map(idx, false)
	dv := make([]float64, 3)
	dm := make([]float64, 3)
	c.Assert(view.FillF64(dv, 0), IsNil)
	c.Assert(materialized.FillF64(dm, 0), IsNil)
	c.Assert(dv, DeepEquals, dm)
}

func (s *testNumericSuite) TestMapOutOfRangeIsMissing(c *C) {
	col := NewNumeric(Real, []float64{1, 2})
	mapped := col.Map(rowindex.Vector{5, rowindex.Missing}, true)
	dst := make([]float64, 2)
	c.Assert(mapped.FillF64(dst, 0), IsNil)
	c.Assert(math.IsNaN(dst[0]), Equals, true)
	c.Assert(math.IsNaN(dst[1]), Equals, true)
}

func (s *testNumericSuite) TestSortNullsLast(c *C) {
	col := NewNumeric(Real, []float64{3, math.NaN(), 1, 2})
	idx, err := col.Sort(true)
	c.Assert(err, IsNil)
	dst := make([]float64, 4)
	mapped := col.Map(idx, true)
	c.Assert(mapped.FillF64(dst, 0), IsNil)
	c.Assert(dst[:3], DeepEquals, []float64{1, 2, 3})
	c.Assert(math.IsNaN(dst[3]), Equals, true)
}

func (s *testNumericSuite) TestSortDescending(c *C) {
	col := NewNumeric(Integer, []float64{1, 3, 2})
	idx, err := col.Sort(false)
	c.Assert(err, IsNil)
	dst := make([]float64, 3)
	mapped := col.Map(idx, true)
	c.Assert(mapped.FillF64(dst, 0), IsNil)
	c.Assert(dst, DeepEquals, []float64{3, 2, 1})
}

func (s *testNumericSuite) TestFillI32Unsupported(c *C) {
	col := NewNumeric(Real, []float64{1})
	err := col.FillI32(make([]int32, 1), 0)
	c.Assert(err, NotNil)
}
