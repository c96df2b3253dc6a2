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

// batchPlan is the Planner's decision: either run the whole range
// sequentially (sequential == true) or split it into batches of size
// batchSize each.
type batchPlan struct {
	sequential bool
	batchSize  int
}

// plan implements spec.md §4.4's Planner steps 1-2: decide whether
// num_operations() warrants splitting at all, and if so, pick a batch
// size clamped to [MIN_BATCH, MAX_BATCH] and rounded to the calculator's
// alignment hint, if any.
func plan(numOperations int, workload Workload, hint int, cfg *config.ExecutorConfig) batchPlan {
	if numOperations <= workload.sequentialThreshold(cfg) {
		return batchPlan{sequential: true}
	}

	target := workload.targetCells(cfg)
	if target <= 0 {
		target = 1
	}
	minBatch, maxBatch := cfg.BatchBounds()

	size := target
	if hint > 1 {
		size = ((size + hint - 1) / hint) * hint
	}
	if size < minBatch {
		size = minBatch
	}
	if size > maxBatch {
		size = maxBatch
	}
	if size > numOperations {
		size = numOperations
	}
	if size < 1 {
		size = 1
	}
	return batchPlan{batchSize: size}
}

// numBatches returns K = ceil(N/B) for a non-sequential plan.
func (p batchPlan) numBatches(numOperations int) int {
	if p.sequential {
		return 1
	}
	return (numOperations + p.batchSize - 1) / p.batchSize
}
