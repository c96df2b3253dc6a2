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

// Package config holds the tunables the executor and mapping layers expose
// rather than hardcode, loaded from a TOML file the way operators already
// configure this kind of service.
package config

import (
	"math"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/shirou/gopsutil/cpu"
)

// ExecutorConfig collects the tunables named throughout the spec: the
// view-vs-materialize threshold, executor parallelism, and per-workload
// batch sizing.
type ExecutorConfig struct {
	Executor executorSection `toml:"executor"`
}

type executorSection struct {
	Parallelism                int     `toml:"parallelism"`
	ViewThreshold               float64 `toml:"view_threshold"`
	MinBatch                    int     `toml:"min_batch"`
	MaxBatch                    int     `toml:"max_batch"`
	SequentialThresholdTrivial  int     `toml:"sequential_threshold_trivial"`
	SequentialThresholdSmall    int     `toml:"sequential_threshold_small"`
	SequentialThresholdMedium   int     `toml:"sequential_threshold_medium"`
	SequentialThresholdLarge    int     `toml:"sequential_threshold_large"`
	SequentialThresholdHuge     int     `toml:"sequential_threshold_huge"`
	TargetCellsSmall            int     `toml:"target_cells_small"`
	TargetCellsMedium           int     `toml:"target_cells_medium"`
	TargetCellsLarge            int     `toml:"target_cells_large"`
	TargetCellsHuge             int     `toml:"target_cells_huge"`
}

// Default returns the built-in tuning, never touching the filesystem.
// Parallelism 0 means "autodetect logical CPU count" and is resolved
// eagerly here so downstream code never has to special-case it.
func Default() *ExecutorConfig {
	cfg := &ExecutorConfig{Executor: executorSection{
		Parallelism:                detectParallelism(),
		ViewThreshold:              0.1,
		MinBatch:                   1024,
		MaxBatch:                   1 << 20,
		SequentialThresholdTrivial: math.MaxInt32, // always sequential
		SequentialThresholdSmall:   1 << 16,
		SequentialThresholdMedium:  1 << 14,
		SequentialThresholdLarge:   1 << 12,
		SequentialThresholdHuge:    1,
		TargetCellsSmall:           1 << 16,
		TargetCellsMedium:          1 << 14,
		TargetCellsLarge:           1 << 12,
		TargetCellsHuge:            1 << 10,
	}}
	return cfg
}

// Load reads an ExecutorConfig from a TOML file at path, filling any
// fields the file omits from Default().
func Load(path string) (*ExecutorConfig, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Annotatef(err, "belt: decode config %q", path)
	}
	if cfg.Executor.Parallelism <= 0 {
		cfg.Executor.Parallelism = detectParallelism()
	}
	return cfg, nil
}

// Parallelism returns the configured worker-pool width.
func (c *ExecutorConfig) Parallelism() int { return c.Executor.Parallelism }

// ViewThreshold returns the VIEW_THRESHOLD fraction from spec.md §4.2.
func (c *ExecutorConfig) ViewThreshold() float64 { return c.Executor.ViewThreshold }

// BatchBounds returns the [MIN_BATCH, MAX_BATCH] clamp range.
func (c *ExecutorConfig) BatchBounds() (min, max int) {
	return c.Executor.MinBatch, c.Executor.MaxBatch
}

// SequentialThresholdTrivial returns the TrivialPerCell sequential
// threshold. The planner runs sequentially when num_operations <= this
// value, so the default math.MaxInt32 means "always sequential" (spec.md
// §4.4).
func (c *ExecutorConfig) SequentialThresholdTrivial() int { return c.Executor.SequentialThresholdTrivial }

// SequentialThresholdSmall returns the SmallPerCell sequential threshold.
func (c *ExecutorConfig) SequentialThresholdSmall() int { return c.Executor.SequentialThresholdSmall }

// SequentialThresholdMedium returns the MediumPerCell sequential threshold.
func (c *ExecutorConfig) SequentialThresholdMedium() int { return c.Executor.SequentialThresholdMedium }

// SequentialThresholdLarge returns the LargePerCell sequential threshold.
func (c *ExecutorConfig) SequentialThresholdLarge() int { return c.Executor.SequentialThresholdLarge }

// SequentialThresholdHuge returns the Huge sequential threshold.
func (c *ExecutorConfig) SequentialThresholdHuge() int { return c.Executor.SequentialThresholdHuge }

// TargetCellsSmall returns the SmallPerCell target batch cell count.
func (c *ExecutorConfig) TargetCellsSmall() int { return c.Executor.TargetCellsSmall }

// TargetCellsMedium returns the MediumPerCell target batch cell count.
func (c *ExecutorConfig) TargetCellsMedium() int { return c.Executor.TargetCellsMedium }

// TargetCellsLarge returns the LargePerCell target batch cell count.
func (c *ExecutorConfig) TargetCellsLarge() int { return c.Executor.TargetCellsLarge }

// TargetCellsHuge returns the Huge target batch cell count.
func (c *ExecutorConfig) TargetCellsHuge() int { return c.Executor.TargetCellsHuge }

func detectParallelism() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
