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

import (
	"sync"

	"github.com/ngaut/sync2"
	"github.com/rapidminer/belt-sub000/belterr"
	"github.com/rapidminer/belt-sub000/config"
)

// Executor runs Calculators against a shared Context and tuning
// ExecutorConfig, implementing the Planner and join loop of spec.md §4.4.
type Executor struct {
	cfg *config.ExecutorConfig
}

// NewExecutor builds an Executor reading batch-sizing tunables from cfg.
func NewExecutor(cfg *config.ExecutorConfig) *Executor {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Executor{cfg: cfg}
}

// Run drives calc to completion against ctx, per spec.md §4.4-§4.8.
// progress, if non-nil, receives monotonically non-decreasing fractions in
// [0,1]; the executor may coalesce updates.
func (e *Executor) Run(ctx *Context, calc Calculator, workload Workload, progress func(float64)) (any, error) {
	if ctx.State() != Active {
		return nil, belterr.State("parallel: cannot run on a %s context; build a fresh one", ctx.State())
	}

	n := calc.NumOperations()
	hint := 1
	if a, ok := calc.(AlignmentHint); ok && a.Hint() > 1 {
		hint = a.Hint()
	}
	p := plan(n, workload, hint, e.cfg)
	numBatches := p.numBatches(n)

	if err := calc.Init(numBatches); err != nil {
		return nil, err
	}

	if p.sequential {
		if n > 0 {
			if err := calc.DoPart(0, n, 0); err != nil {
				return nil, err
			}
		}
		batchesTotal.WithLabelValues(workload.String()).Inc()
		if progress != nil {
			progress(1)
		}
		progressRatio.Set(1)
		ctx.complete()
		return calc.Result()
	}

	sem := make(chan struct{}, ctx.Parallelism())
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	completed := sync2.NewAtomicInt64(0)
	var progressMu sync.Mutex
	lastRatio := 0.0

	recordErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil || belterr.IsAborted(err) {
			firstErr = err
		}
	}

	aborted := false
	for batchIndex := 0; batchIndex < numBatches; batchIndex++ {
		if !ctx.IsActive() {
			aborted = true
			break
		}
		from := batchIndex * p.batchSize
		to := from + p.batchSize
		if to > n {
			to = n
		}

		sem <- struct{}{}
		wg.Add(1)
		activeWorkers.Inc()
		go func(from, to, idx int) {
			defer func() {
				<-sem
				activeWorkers.Dec()
				wg.Done()
			}()
			if err := calc.DoPart(from, to, idx); err != nil {
				recordErr(err)
				return
			}
			done := completed.Add(1)
			batchesTotal.WithLabelValues(workload.String()).Inc()
			ratio := float64(done) / float64(numBatches)
			progressMu.Lock()
			if ratio > lastRatio {
				lastRatio = ratio
				progressRatio.Set(ratio)
				if progress != nil {
					progress(ratio)
				}
			}
			progressMu.Unlock()
		}(from, to, batchIndex)
	}
	wg.Wait()

	if aborted || !ctx.IsActive() {
		return nil, belterr.Aborted("parallel: execution context cancelled mid-run")
	}
	if firstErr != nil {
		return nil, firstErr
	}

	ctx.complete()
	return calc.Result()
}
