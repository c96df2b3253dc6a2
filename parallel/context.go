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

// Package parallel implements the batch executor (spec.md §2 layer 6,
// §4.4, §4.8): the Calculator contract, Workload-driven batch planning,
// and the cooperative-cancellation execution context every Run call
// shares.
package parallel

import "sync/atomic"

// State is the execution context's lifecycle state, spec.md §4.8.
type State int32

const (
	// Active is the initial state: jobs may be submitted and run.
	Active State = iota
	// Cancelled means the context's cancellation flag has flipped;
	// calculators must stop submitting further batches and any
	// in-flight Run call fails with an Aborted-kind error.
	Cancelled
	// Completed means the last job returned and the context will not be
	// reused.
	Completed
)

func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case Cancelled:
		return "Cancelled"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Context carries the worker pool width and the cooperative cancellation
// flag shared by every Run call submitted against it.
type Context struct {
	parallelism int
	state       int32 // atomic State
}

// NewContext builds an Active context with the given worker pool width.
// parallelism <= 0 is clamped to 1 (sequential).
func NewContext(parallelism int) *Context {
	if parallelism <= 0 {
		parallelism = 1
	}
	return &Context{parallelism: parallelism, state: int32(Active)}
}

// Parallelism returns the context's worker pool width P.
func (c *Context) Parallelism() int { return c.parallelism }

// State returns the context's current lifecycle state.
func (c *Context) State() State { return State(atomic.LoadInt32(&c.state)) }

// IsActive reports whether the context is still Active, spec.md §4.4's
// `is_active()`.
func (c *Context) IsActive() bool { return c.State() == Active }

// Cancel flips an Active context to Cancelled. It is a no-op if the
// context is already Cancelled or Completed.
func (c *Context) Cancel() {
	atomic.CompareAndSwapInt32(&c.state, int32(Active), int32(Cancelled))
}

// complete flips an Active context to Completed on successful completion
// of a Run call. It does not override Cancelled.
func (c *Context) complete() {
	atomic.CompareAndSwapInt32(&c.state, int32(Active), int32(Completed))
}
