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

// Package calc implements the Calculator strategies the executor drives
// (spec.md §4.4): per-cell Apply transforms from a source column into a
// fresh buffer, and Reduce aggregations with an Alloc/Update/Merge
// partial-result protocol grounded on the aggregate-function contract
// (allocate a partial result, update it per row, merge partials from
// concurrent batches, then finalise).
package calc

// PartialResult is an opaque per-batch accumulator a Reducer owns. Reduce
// allocates one per batch via Reducer.Alloc, folds rows into it with
// Reducer.Update, and ReduceCalculator.Result deterministically left-folds
// batch results together via Reducer.Merge before Reducer.Finish produces
// the final value.
type PartialResult any

// Reducer is the strategy behind a Reduce calculator: Alloc/Update/Merge
// mirrors the Alloc/Update/Merge partial-result protocol used throughout
// aggregate computation, generalised here to arbitrary f64 reductions over
// a column (spec.md §4.4's associative-but-not-commutative combiner
// precondition applies to Merge).
type Reducer interface {
	// Alloc returns a fresh, identity-valued partial result for one batch.
	Alloc() PartialResult
	// Update folds v into pr. isNull inputs are skipped by the caller
	// before Update is invoked, matching fill_f64's NaN-for-missing
	// contract upstream.
	Update(pr PartialResult, v float64)
	// Merge combines src into dst, left-fold order (spec.md §5).
	Merge(dst, src PartialResult)
	// Finish converts the final merged partial result into the reported
	// value.
	Finish(pr PartialResult) float64
}
