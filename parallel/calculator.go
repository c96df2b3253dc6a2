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

// Calculator is the strategy every Executor.Run call drives (spec.md
// §4.4). DoPart must be safe to call concurrently across disjoint,
// non-overlapping [from,to) ranges; Init and Result run once each, on the
// submitting goroutine.
type Calculator interface {
	// Init allocates shared output ahead of the first DoPart call, given
	// the number of batches the Planner decided on.
	Init(numBatches int) error
	// NumOperations is the total unit count, usually the column size.
	NumOperations() int
	// DoPart performs the pure per-range work for [from,to), writing only
	// into the slice of shared output owned by batchIndex.
	DoPart(from, to, batchIndex int) error
	// Result finalises and returns the calculator's output.
	Result() (any, error)
}

// AlignmentHint is implemented by a Calculator that needs batch boundaries
// rounded to a multiple (e.g. a SIMD-friendly width, or a fixed row group
// size). The Planner rounds batch size up to the nearest multiple of Hint
// before clamping to [MIN_BATCH, MAX_BATCH].
type AlignmentHint interface {
	Hint() int
}
