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

// Package belterr defines the error kinds used throughout the belt column
// engine. It does not introduce a type hierarchy per failure site; every
// failure is a belterr.Error tagged with one of a small, closed set of
// Kinds, wrapped with github.com/pingcap/errors so the originating stack is
// preserved across the buffer -> column -> executor boundary.
package belterr

import (
	"fmt"

	"github.com/pingcap/errors"
)

// Kind classifies a failure the way a caller is expected to react to it.
type Kind int

const (
	// BadArgument covers null-where-forbidden, empty required collections,
	// mismatched lengths, invalid labels, and similar caller mistakes.
	BadArgument Kind = iota
	// OutOfRange covers an index outside [0, size) where the API requires
	// validity, such as a row reader position.
	OutOfRange
	// Unsupported covers an operation that requires a capability the
	// column lacks.
	Unsupported
	// TypeMismatch covers a requested element type that is not a
	// supertype of the column's element type.
	TypeMismatch
	// State covers writes on a frozen buffer, double-freezes, and
	// re-initialisation of an executor.
	State
	// Aborted covers an operation that observed an inactive context
	// mid-flight. Aborted preempts all other pending errors of the same
	// operation.
	Aborted
)

func (k Kind) String() string {
	switch k {
	case BadArgument:
		return "BadArgument"
	case OutOfRange:
		return "OutOfRange"
	case Unsupported:
		return "Unsupported"
	case TypeMismatch:
		return "TypeMismatch"
	case State:
		return "State"
	case Aborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every belt API boundary.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("belt: %s: %s: %s", e.kind, e.msg, e.cause)
	}
	return fmt.Sprintf("belt: %s: %s", e.kind, e.msg)
}

// Cause implements the errors.causer interface expected by
// github.com/pingcap/errors, so errors.Cause(err) unwraps to the original
// failure where one was annotated.
func (e *Error) Cause() error {
	return e.cause
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind {
	return e.kind
}

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// BadArgument builds a BadArgument-kind error.
func BadArgument(format string, args ...interface{}) error {
	return errors.Trace(newf(BadArgument, format, args...))
}

// OutOfRange builds an OutOfRange-kind error.
func OutOfRange(format string, args ...interface{}) error {
	return errors.Trace(newf(OutOfRange, format, args...))
}

// Unsupported builds an Unsupported-kind error.
func Unsupported(format string, args ...interface{}) error {
	return errors.Trace(newf(Unsupported, format, args...))
}

// TypeMismatch builds a TypeMismatch-kind error.
func TypeMismatch(format string, args ...interface{}) error {
	return errors.Trace(newf(TypeMismatch, format, args...))
}

// State builds a State-kind error.
func State(format string, args ...interface{}) error {
	return errors.Trace(newf(State, format, args...))
}

// Aborted builds an Aborted-kind error. Aborted preempts any other pending
// error of the same operation; callers that combine errors from concurrent
// batches must check for Aborted first.
func Aborted(format string, args ...interface{}) error {
	return errors.Trace(newf(Aborted, format, args...))
}

// Wrap annotates cause with a Kind and a message, adding a stack via
// errors.Trace.
func Wrap(kind Kind, cause error, format string, args ...interface{}) error {
	if cause == nil {
		return nil
	}
	wrapped := &Error{kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
	return errors.Trace(wrapped)
}

// KindOf recovers the Kind of err, walking through github.com/pingcap/errors
// annotation layers one Cause() step at a time. It returns (kind, true) if
// err or any of its causes is a *Error, else (BadArgument, false).
func KindOf(err error) (Kind, bool) {
	for err != nil {
		if be, ok := err.(*Error); ok {
			return be.kind, true
		}
		c, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		err = c.Cause()
	}
	return BadArgument, false
}

// IsAborted reports whether err is, or wraps, an Aborted-kind error.
func IsAborted(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Aborted
}
