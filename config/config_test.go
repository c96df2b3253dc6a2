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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/pingcap/check"

	"github.com/rapidminer/belt-sub000/config"
)

func Test(t *testing.T) { TestingT(t) }

var _ = Suite(&testConfigSuite{})

type testConfigSuite struct{}

func (s *testConfigSuite) TestDefaultNeverTouchesDisk(c *C) {
	cfg := config.Default()
	c.Assert(cfg.Parallelism() >= 1, IsTrue)
	c.Assert(cfg.ViewThreshold(), Equals, 0.1)
	min, max := cfg.BatchBounds()
	c.Assert(min < max, IsTrue)
}

func (s *testConfigSuite) TestLoadOverridesDefaults(c *C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "belt.toml")
	contents := "[executor]\nparallelism = 4\nview_threshold = 0.25\n"
	c.Assert(os.WriteFile(path, []byte(contents), 0o644), IsNil)

	cfg, err := config.Load(path)
	c.Assert(err, IsNil)
	c.Assert(cfg.Parallelism(), Equals, 4)
	c.Assert(cfg.ViewThreshold(), Equals, 0.25)
}

func (s *testConfigSuite) TestLoadMissingFile(c *C) {
	_, err := config.Load(filepath.Join(c.MkDir(), "missing.toml"))
	c.Assert(err, NotNil)
}
