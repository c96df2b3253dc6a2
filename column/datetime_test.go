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
	. "github.com/pingcap/check"
	"github.com/rapidminer/belt-sub000/rowindex"
)

type testDateTimeSuite struct{}

var _ = Suite(&testDateTimeSuite{})

func (s *testDateTimeSuite) TestFillObjWithNanos(c *C) {
	col := NewDateTime([]int64{100, 200, MissingI64}, []int32{1, 2, 0})
	dst := make([]any, 3)
	c.Assert(col.FillObj(dst, 0), IsNil)
	c.Assert(dst[0], Equals, DateTimeValue{Seconds: 100, Nanos: 1})
	c.Assert(dst[1], Equals, DateTimeValue{Seconds: 200, Nanos: 2})
	c.Assert(dst[2], IsNil)
}

func (s *testDateTimeSuite) TestFillObjSecondsOnly(c *C) {
	col := NewDateTime([]int64{5, 10}, nil)
	dst := make([]any, 2)
	c.Assert(col.FillObj(dst, 0), IsNil)
	c.Assert(dst[0], Equals, DateTimeValue{Seconds: 5})
	c.Assert(dst[1], Equals, DateTimeValue{Seconds: 10})
}

func (s *testDateTimeSuite) TestIsSortable(c *C) {
	col := NewDateTime([]int64{1}, nil)
	c.Assert(col.Type().Capabilities.Has(Sortable), Equals, true)
}

func (s *testDateTimeSuite) TestSortNullsLast(c *C) {
	col := NewDateTime([]int64{30, MissingI64, 10, 20}, nil)
	idx, err := col.Sort(true)
	c.Assert(err, IsNil)
	mapped := col.Map(idx, true)
	dst := make([]any, 4)
	c.Assert(mapped.FillObj(dst, 0), IsNil)
	c.Assert(dst[0], Equals, DateTimeValue{Seconds: 10})
	c.Assert(dst[1], Equals, DateTimeValue{Seconds: 20})
	c.Assert(dst[2], Equals, DateTimeValue{Seconds: 30})
	c.Assert(dst[3], IsNil)
}

func (s *testDateTimeSuite) TestMapViewAndMaterializeAgree(c *C) {
	seconds := make([]int64, 40)
	nanos := make([]int32, 40)
	for i := range seconds {
		seconds[i] = int64(100 * (i + 1))
		nanos[i] = int32(i + 1)
	}
	col := NewDateTime(seconds, nanos)
	idx := rowindex.Vector{2, rowindex.Missing, 0}
	view := col.Map(idx, true)
	materialized := col.Map(idx, false)
	dv := make([]any, 3)
	dm := make([]any, 3)
	c.Assert(view.FillObj(dv, 0), IsNil)
	c.Assert(materialized.FillObj(dm, 0), IsNil)
	c.Assert(dv, DeepEquals, dm)
}
