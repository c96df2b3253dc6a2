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

package logutil_test

import (
	"testing"

	. "github.com/pingcap/check"

	"github.com/rapidminer/belt-sub000/internal/logutil"
)

func Test(t *testing.T) { TestingT(t) }

var _ = Suite(&testLogutilSuite{})

type testLogutilSuite struct{}

func (s *testLogutilSuite) TestLReturnsSingleton(c *C) {
	a := logutil.L()
	b := logutil.L()
	c.Assert(a, Equals, b)
}

func (s *testLogutilSuite) TestSetLevelAcceptsKnownLevels(c *C) {
	logutil.SetLevel("debug")
	logutil.SetLevel("bogus-level")
}
