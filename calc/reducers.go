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

package calc

import "github.com/montanaflynn/stats"

// sumState is the shared partial-result shape for Sum and Mean: total plus
// a seen count, mirroring the aggfuncs bit-function pattern of a single
// mutable accumulator struct allocated per batch.
type sumState struct {
	total float64
	count int64
}

// SumReducer sums every non-MISSING cell.
type SumReducer struct{}

func (SumReducer) Alloc() PartialResult { return &sumState{} }
func (SumReducer) Update(pr PartialResult, v float64) {
	s := pr.(*sumState)
	s.total += v
	s.count++
}
func (SumReducer) Merge(dst, src PartialResult) {
	d, s := dst.(*sumState), src.(*sumState)
	d.total += s.total
	d.count += s.count
}
func (SumReducer) Finish(pr PartialResult) float64 { return pr.(*sumState).total }

// MeanReducer averages every non-MISSING cell.
type MeanReducer struct{}

func (MeanReducer) Alloc() PartialResult { return &sumState{} }
func (MeanReducer) Update(pr PartialResult, v float64) {
	s := pr.(*sumState)
	s.total += v
	s.count++
}
func (MeanReducer) Merge(dst, src PartialResult) {
	d, s := dst.(*sumState), src.(*sumState)
	d.total += s.total
	d.count += s.count
}
func (MeanReducer) Finish(pr PartialResult) float64 {
	s := pr.(*sumState)
	if s.count == 0 {
		return 0
	}
	return s.total / float64(s.count)
}

// bitState is the shared partial-result shape for the bitwise reducers,
// grounded on executor/aggfuncs/func_bitfuncs.go's baseBitAggFunc: a
// single uint64 accumulator, reset to an operation-specific identity.
type bitState struct {
	value uint64
}

// BitAndReducer bitwise-ANDs the uint64 truncation of every non-MISSING
// cell, identity ^uint64(0), mirroring bitAndUint64.
type BitAndReducer struct{}

func (BitAndReducer) Alloc() PartialResult { return &bitState{value: ^uint64(0)} }
func (BitAndReducer) Update(pr PartialResult, v float64) {
	pr.(*bitState).value &= uint64(int64(v))
}
func (BitAndReducer) Merge(dst, src PartialResult) {
	dst.(*bitState).value &= src.(*bitState).value
}
func (BitAndReducer) Finish(pr PartialResult) float64 { return float64(pr.(*bitState).value) }

// BitOrReducer bitwise-ORs the uint64 truncation of every non-MISSING
// cell, mirroring bitOrUint64.
type BitOrReducer struct{}

func (BitOrReducer) Alloc() PartialResult { return &bitState{} }
func (BitOrReducer) Update(pr PartialResult, v float64) {
	pr.(*bitState).value |= uint64(int64(v))
}
func (BitOrReducer) Merge(dst, src PartialResult) {
	dst.(*bitState).value |= src.(*bitState).value
}
func (BitOrReducer) Finish(pr PartialResult) float64 { return float64(pr.(*bitState).value) }

// BitXorReducer bitwise-XORs the uint64 truncation of every non-MISSING
// cell, mirroring bitXorUint64.
type BitXorReducer struct{}

func (BitXorReducer) Alloc() PartialResult { return &bitState{} }
func (BitXorReducer) Update(pr PartialResult, v float64) {
	pr.(*bitState).value ^= uint64(int64(v))
}
func (BitXorReducer) Merge(dst, src PartialResult) {
	dst.(*bitState).value ^= src.(*bitState).value
}
func (BitXorReducer) Finish(pr PartialResult) float64 { return float64(pr.(*bitState).value) }

// sampleState collects every non-MISSING cell verbatim; variance and
// standard deviation aren't associatively mergeable from (sum, sumSq)
// alone without losing numerical stability across wildly different batch
// scales, so these reducers merge by concatenation and compute via
// montanaflynn/stats at Finish, trading memory for accuracy. Acceptable
// given ReduceCalculator's typical cardinality (a single column).
type sampleState struct {
	values stats.Float64Data
}

// VarianceReducer computes the population variance of every non-MISSING
// cell.
type VarianceReducer struct{}

func (VarianceReducer) Alloc() PartialResult { return &sampleState{} }
func (VarianceReducer) Update(pr PartialResult, v float64) {
	s := pr.(*sampleState)
	s.values = append(s.values, v)
}
func (VarianceReducer) Merge(dst, src PartialResult) {
	d, s := dst.(*sampleState), src.(*sampleState)
	d.values = append(d.values, s.values...)
}
func (VarianceReducer) Finish(pr PartialResult) float64 {
	s := pr.(*sampleState)
	v, err := stats.PopulationVariance(s.values)
	if err != nil {
		return 0
	}
	return v
}

// StdDevReducer computes the population standard deviation of every
// non-MISSING cell.
type StdDevReducer struct{}

func (StdDevReducer) Alloc() PartialResult { return &sampleState{} }
func (StdDevReducer) Update(pr PartialResult, v float64) {
	s := pr.(*sampleState)
	s.values = append(s.values, v)
}
func (StdDevReducer) Merge(dst, src PartialResult) {
	d, s := dst.(*sampleState), src.(*sampleState)
	d.values = append(d.values, s.values...)
}
func (StdDevReducer) Finish(pr PartialResult) float64 {
	s := pr.(*sampleState)
	v, err := stats.StandardDeviation(s.values)
	if err != nil {
		return 0
	}
	return v
}
