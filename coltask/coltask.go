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

// Package coltask implements a fail-sticky fluent builder over a single
// column's pending operations, generalizing
// distsql/request_builder.go's "check err, chain, or short-circuit"
// pattern from a kv.Request to a column.Column. Each call to a
// ColumnTask's builder methods queues a step; nothing runs until Run,
// which stamps the execution with a uuid for log correlation and then
// applies every queued step in order, passing each the *parallel.Context
// given to Run.
package coltask

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rapidminer/belt-sub000/belterr"
	"github.com/rapidminer/belt-sub000/column"
	"github.com/rapidminer/belt-sub000/internal/logutil"
	"github.com/rapidminer/belt-sub000/parallel"
	"github.com/rapidminer/belt-sub000/rowindex"
)

// step is one queued operation against the task's running column.
type step func(col column.Column, ctx *parallel.Context) (column.Column, error)

// ColumnTask is a deferred, chainable sequence of operations over a single
// column. Builder methods queue a step and return the same *ColumnTask,
// mirroring RequestBuilder's "if builder.err != nil { return builder }"
// idiom. Builder methods do not validate anything, so err stays nil and
// Err reports nil; failures surface in Run, which stops at the first
// failing step and returns its error without running the rest.
type ColumnTask struct {
	source column.Column
	steps  []step
	err    error
}

// NewColumnTask begins a task over source.
func NewColumnTask(source column.Column) *ColumnTask {
	return &ColumnTask{source: source}
}

// Map queues a Map(indices, preferView) step.
func (t *ColumnTask) Map(indices rowindex.Vector, preferView bool) *ColumnTask {
	if t.err != nil {
		return t
	}
	t.steps = append(t.steps, func(col column.Column, ctx *parallel.Context) (column.Column, error) {
		return col.Map(indices, preferView), nil
	})
	return t
}

// Sort queues a Sort(ascending)-then-Map step: the column is reordered
// into ascending or descending order per its own Sort, then mapped through
// the resulting index vector with preferView false (which, under the view
// threshold rule, yields a view for a full-length index vector).
func (t *ColumnTask) Sort(ascending bool) *ColumnTask {
	if t.err != nil {
		return t
	}
	t.steps = append(t.steps, func(col column.Column, ctx *parallel.Context) (column.Column, error) {
		if !col.Capabilities().Has(column.Sortable) {
			return nil, belterr.Unsupported("coltask: Sort requires Sortable, got %s", col.Type().Kind)
		}
		idx, err := col.Sort(ascending)
		if err != nil {
			return nil, err
		}
		return col.Map(idx, false), nil
	})
	return t
}

// Filter queues a step replacing the running column with an externally
// computed kept-row index vector, e.g. produced by
// calc.FilterCalculator.Result. Unlike Map/Sort, the predicate evaluation
// itself is expected to have already run through the executor; Filter
// here only applies its outcome.
func (t *ColumnTask) Filter(kept rowindex.Vector) *ColumnTask {
	return t.Map(kept, false)
}

// Err returns the first error encountered while queuing steps, if any.
func (t *ColumnTask) Err() error { return t.err }

// Run applies every queued step in order against ctx, returning the final
// column. Each run is stamped with a fresh uuid for log correlation; the
// id is included in every logutil line this task emits, win or fail.
func (t *ColumnTask) Run(ctx *parallel.Context) (column.Column, error) {
	if t.err != nil {
		return nil, t.err
	}
	runID := uuid.New().String()
	log := logutil.L().With(zap.String("coltask_run_id", runID))
	col := t.source
	for i, s := range t.steps {
		next, err := s(col, ctx)
		if err != nil {
			log.Error("coltask: step failed", zap.Int("step", i), zap.Error(err))
			return nil, err
		}
		col = next
	}
	log.Debug("coltask: run complete", zap.Int("steps", len(t.steps)))
	return col, nil
}
