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
	"github.com/rapidminer/belt-sub000/bitpack"
	"github.com/rapidminer/belt-sub000/rowindex"
)

type testCategoricalSuite struct{}

var _ = Suite(&testCategoricalSuite{})

func redGreenBlue() *CategoricalColumn {
	store := bitpack.NewStore(bitpack.UInt2, 5)
	// nil, "red", "green", "red", "blue"
	store.Set(0, 1)
	store.Set(1, 2)
	store.Set(2, 1)
	store.Set(3, 3)
	dict := []any{nil, "red", "green", "blue"}
	col, _ := NewCategorical(NewCategoricalParams{
		Kind:       Nominal,
		Store:      store,
		DictValues: dict,
		Less: func(a, b any) bool {
			return a.(string) < b.(string)
		},
	})
	return col
}

func (s *testCategoricalSuite) TestRejectsNonNilSlotZero(c *C) {
	store := bitpack.NewStore(bitpack.UInt2, 1)
	_, err := NewCategorical(NewCategoricalParams{
		Kind: Nominal, Store: store, DictValues: []any{"x"},
	})
	c.Assert(err, NotNil)
}

func (s *testCategoricalSuite) TestFillObjDecodesThroughDictionary(c *C) {
	col := redGreenBlue()
	dst := make([]any, 5)
	c.Assert(col.FillObj(dst, 0), IsNil)
	c.Assert(dst, DeepEquals, []any{"red", "green", "red", "blue", nil})
}

func (s *testCategoricalSuite) TestMissingIndexIsDictionarySlotZero(c *C) {
	col := redGreenBlue()
	dst := make([]int32, 1)
	c.Assert(col.FillI32(dst, 4), IsNil)
	c.Assert(dst[0], Equals, MissingI32)
}

func (s *testCategoricalSuite) TestDictionaryObjectsExposesSlotZeroAsNil(c *C) {
	col := redGreenBlue()
	objs := col.DictionaryObjects()
	c.Assert(objs[0], IsNil)
}

func (s *testCategoricalSuite) TestBooleanToBoolean(c *C) {
	store := bitpack.NewStore(bitpack.UInt2, 2)
	store.Set(0, 1)
	store.Set(1, 2)
	col, err := NewCategorical(NewCategoricalParams{
		Kind: Nominal, Store: store,
		DictValues:    []any{nil, "true", "false"},
		PositiveIndex: 1,
		Less:          func(a, b any) bool { return a.(string) < b.(string) },
	})
	c.Assert(err, IsNil)
	c.Assert(col.Type().Capabilities.Has(Boolean), Equals, true)
	result, ok := col.ToBoolean("true")
	c.Assert(ok, Equals, true)
	c.Assert(result, Equals, true)
	result, ok = col.ToBoolean("false")
	c.Assert(ok, Equals, true)
	c.Assert(result, Equals, false)
}

func (s *testCategoricalSuite) TestSortOrdersByDictionaryComparatorNullsLast(c *C) {
	col := redGreenBlue()
	idx, err := col.Sort(true)
	c.Assert(err, IsNil)
	mapped := col.Map(idx, true)
	dst := make([]any, 5)
	c.Assert(mapped.FillObj(dst, 0), IsNil)
	c.Assert(dst, DeepEquals, []any{"blue", "green", "red", "red", nil})
}

func (s *testCategoricalSuite) TestMapWithoutPreferViewReadsMappedValues(c *C) {
	col := redGreenBlue()
	materialized := col.Map(rowindex.Vector{0, 1, 2}, false)
	dst := make([]any, 3)
	c.Assert(materialized.FillObj(dst, 0), IsNil)
	c.Assert(dst, DeepEquals, []any{"red", "green", "red"})
}
