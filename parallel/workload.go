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

package parallel

import "github.com/rapidminer/belt-sub000/config"

// Workload labels the expected per-cell cost of a Calculator's do_part,
// driving the Planner's sequential-threshold and target-batch-size
// decisions (spec.md §4.4).
type Workload int

const (
	// TrivialPerCell work (e.g. a cast) always runs sequentially.
	TrivialPerCell Workload = iota
	SmallPerCell
	MediumPerCell
	LargePerCell
	// Huge per-cell cost runs in parallel above a single operation, with
	// the smallest target batch size (TargetCellsHuge, still clamped to
	// MIN_BATCH).
	Huge
)

func (w Workload) String() string {
	switch w {
	case TrivialPerCell:
		return "TrivialPerCell"
	case SmallPerCell:
		return "SmallPerCell"
	case MediumPerCell:
		return "MediumPerCell"
	case LargePerCell:
		return "LargePerCell"
	case Huge:
		return "Huge"
	default:
		return "Unknown"
	}
}

// sequentialThreshold returns SEQUENTIAL_THRESHOLD for w: num_operations()
// at or below this value always runs on the caller's thread.
func (w Workload) sequentialThreshold(cfg *config.ExecutorConfig) int {
	switch w {
	case TrivialPerCell:
		return cfg.SequentialThresholdTrivial()
	case SmallPerCell:
		return cfg.SequentialThresholdSmall()
	case MediumPerCell:
		return cfg.SequentialThresholdMedium()
	case LargePerCell:
		return cfg.SequentialThresholdLarge()
	default: // Huge
		return cfg.SequentialThresholdHuge()
	}
}

// targetCells returns the target per-batch cell count for w. TrivialPerCell
// never reaches this (it is always sequential, per sequentialThreshold
// returning math.MaxInt32), so it shares Small's target as a harmless
// default.
func (w Workload) targetCells(cfg *config.ExecutorConfig) int {
	switch w {
	case MediumPerCell:
		return cfg.TargetCellsMedium()
	case LargePerCell:
		return cfg.TargetCellsLarge()
	case Huge:
		return cfg.TargetCellsHuge()
	default: // TrivialPerCell, SmallPerCell
		return cfg.TargetCellsSmall()
	}
}
