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

package bitpack_test

import (
	"testing"

	. "github.com/pingcap/check"

	"github.com/rapidminer/belt-sub000/bitpack"
)

func Test(t *testing.T) { TestingT(t) }

var _ = Suite(&testBitpackSuite{})

type testBitpackSuite struct{}

func (s *testBitpackSuite) TestMinFormatFor(c *C) {
	c.Assert(bitpack.MinFormatFor(0), Equals, bitpack.UInt2)
	c.Assert(bitpack.MinFormatFor(3), Equals, bitpack.UInt2)
	c.Assert(bitpack.MinFormatFor(4), Equals, bitpack.UInt4)
	c.Assert(bitpack.MinFormatFor(15), Equals, bitpack.UInt4)
	c.Assert(bitpack.MinFormatFor(16), Equals, bitpack.UInt8)
	c.Assert(bitpack.MinFormatFor(255), Equals, bitpack.UInt8)
	c.Assert(bitpack.MinFormatFor(256), Equals, bitpack.UInt16)
	c.Assert(bitpack.MinFormatFor(65536), Equals, bitpack.Int32)
}

func (s *testBitpackSuite) TestPackedRoundTrip(c *C) {
	for _, f := range []bitpack.Format{bitpack.UInt2, bitpack.UInt4, bitpack.UInt8, bitpack.UInt16, bitpack.Int32} {
		store := bitpack.NewStore(f, 10)
		max := f.MaxValue()
		if max > 1000 {
			max = 1000
		}
		for i := 0; i < 10; i++ {
			store.Set(i, uint32(i)%(max+1))
		}
		for i := 0; i < 10; i++ {
			c.Assert(store.Get(i), Equals, uint32(i)%(max+1))
		}
	}
}

func (s *testBitpackSuite) TestWidenPreservesValues(c *C) {
	store := bitpack.NewStore(bitpack.UInt4, 20)
	for i := 0; i < 20; i++ {
		store.Set(i, uint32(i)%16)
	}
	wide := store.WidenTo(bitpack.UInt16)
	c.Assert(wide.Format(), Equals, bitpack.UInt16)
	for i := 0; i < 20; i++ {
		c.Assert(wide.Get(i), Equals, uint32(i)%16)
	}
}

func (s *testBitpackSuite) TestPromote(c *C) {
	c.Assert(bitpack.Promote(bitpack.UInt2), Equals, bitpack.UInt4)
	c.Assert(bitpack.Promote(bitpack.UInt4), Equals, bitpack.UInt8)
	c.Assert(bitpack.Promote(bitpack.UInt8), Equals, bitpack.UInt16)
	c.Assert(bitpack.Promote(bitpack.UInt16), Equals, bitpack.Int32)
	c.Assert(bitpack.Promote(bitpack.Int32), Equals, bitpack.Int32)
}
