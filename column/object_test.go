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

type testObjectSuite struct{}

var _ = Suite(&testObjectSuite{})

func (s *testObjectSuite) TestFillObjRoundTrips(c *C) {
	col := NewObject([]string{"a", "b", "c"}, "")
	dst := make([]any, 3)
	c.Assert(col.FillObj(dst, 0), IsNil)
	c.Assert(dst, DeepEquals, []any{"a", "b", "c"})
}

func (s *testObjectSuite) TestFillObjOutOfRangeIsNil(c *C) {
	col := NewObject([]string{"a"}, "")
	dst := make([]any, 1)
	c.Assert(col.FillObj(dst, 5), IsNil)
	c.Assert(dst[0], IsNil)
}

func (s *testObjectSuite) TestCustomNameAppliesToType(c *C) {
	col := NewObject([]int{1, 2}, "Widget")
	c.Assert(col.Type().CustomName, Equals, "Widget")
}

func (s *testObjectSuite) TestMapViewAndMaterializeAgree(c *C) {
	values := make([]int, 40)
	for i := range values {
		values[i] = 10 * (i + 1)
	}
	col := NewObject(values, "")
	idx := rowindex.Vector{3, 1, rowindex.Missing}
	view := col.Map(idx, true)
	materialized := col.Map(idx, false)
	dv := make([]any, 3)
	dm := make([]any, 3)
	c.Assert(view.FillObj(dv, 0), IsNil)
	c.Assert(materialized.FillObj(dm, 0), IsNil)
	c.Assert(dv, DeepEquals, dm)
	c.Assert(dv, DeepEquals, []any{40, 20, nil})
}

func (s *testObjectSuite) TestSortIsUnsupported(c *C) {
	col := NewObject([]int{1, 2}, "")
	_, err := col.Sort(true)
	c.Assert(err, NotNil)
}

func (s *testObjectSuite) TestFillF64Unsupported(c *C) {
	col := NewObject([]int{1}, "")
	err := col.FillF64(make([]float64, 1), 0)
	c.Assert(err, NotNil)
}
