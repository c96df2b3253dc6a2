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

type testTimeSuite struct{}

var _ = Suite(&testTimeSuite{})

func (s *testTimeSuite) TestFillObjRoundTrips(c *C) {
	col := NewTime([]int64{1000, 2000, MissingI64})
	dst := make([]any, 3)
	c.Assert(col.FillObj(dst, 0), IsNil)
	c.Assert(dst[0], Equals, TimeOfDay(1000))
	c.Assert(dst[1], Equals, TimeOfDay(2000))
	c.Assert(dst[2], IsNil)
}

func (s *testTimeSuite) TestIsSortable(c *C) {
	col := NewTime([]int64{1})
	c.Assert(col.Type().Capabilities.Has(Sortable), Equals, true)
}

func (s *testTimeSuite) TestSortAscendingNullsLast(c *C) {
	col := NewTime([]int64{300, MissingI64, 100, 200})
	idx, err := col.Sort(true)
	c.Assert(err, IsNil)
	mapped := col.Map(idx, true)
	dst := make([]any, 4)
	c.Assert(mapped.FillObj(dst, 0), IsNil)
	c.Assert(dst[0], Equals, TimeOfDay(100))
	c.Assert(dst[1], Equals, TimeOfDay(200))
	c.Assert(dst[2], Equals, TimeOfDay(300))
	c.Assert(dst[3], IsNil)
}

func (s *testTimeSuite) TestSortDescending(c *C) {
	col := NewTime([]int64{100, 300, 200})
	idx, err := col.Sort(false)
	c.Assert(err, IsNil)
	mapped := col.Map(idx, true)
	dst := make([]any, 3)
	c.Assert(mapped.FillObj(dst, 0), IsNil)
	c.Assert(dst, DeepEquals, []any{TimeOfDay(300), TimeOfDay(200), TimeOfDay(100)})
}

func (s *testTimeSuite) TestMapViewAndMaterializeAgree(c *C) {
	nanos := make([]int64, 40)
	for i := range nanos {
		nanos[i] = int64(10 * (i + 1))
	}
	col := NewTime(nanos)
	idx := rowindex.Vector{2, rowindex.Missing, 0}
	view := col.Map(idx, true)
	materialized := col.Map(idx, false)
	dv := make([]any, 3)
	dm := make([]any, 3)
	c.Assert(view.FillObj(dv, 0), IsNil)
	c.Assert(materialized.FillObj(dm, 0), IsNil)
	c.Assert(dv, DeepEquals, dm)
}
