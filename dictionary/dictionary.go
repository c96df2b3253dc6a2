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

// Package dictionary implements the ordered, append-only value dictionary
// backing Categorical columns (spec.md §3, "Dictionary"). Index 0 is
// always the MISSING sentinel slot and is never returned for a real
// value. Insertion is append-order, O(1) amortised via a hash-bucketed
// lookup: string-typed dictionaries hash with murmur3 (the common case —
// most Categorical(user) columns carry string labels), everything else
// hashes its fmt.Sprint form with farm, the same two-tier approach the
// engine's sibling packages use for fast, collision-checked key lookup.
package dictionary

import (
	"fmt"

	"github.com/dgryski/go-farm"
	"github.com/spaolacci/murmur3"
)

type entry[T comparable] struct {
	value T
	idx   int32
}

// Dictionary is an ordered, append-only list of unique non-null values of
// type T, with slot 0 reserved for MISSING.
type Dictionary[T comparable] struct {
	values    []T
	buckets   map[uint64][]entry[T]
	useMurmur bool
}

// New allocates an empty dictionary with only the reserved MISSING slot.
func New[T comparable]() *Dictionary[T] {
	var zero T
	_, isString := any(zero).(string)
	return &Dictionary[T]{
		values:    []T{zero},
		buckets:   make(map[uint64][]entry[T]),
		useMurmur: isString,
	}
}

func (d *Dictionary[T]) hash(v T) uint64 {
	data := []byte(fmt.Sprint(v))
	if d.useMurmur {
		return uint64(murmur3.Sum32(data))
	}
	return farm.Hash64(data)
}

// Insert resolves v to its index, appending it (insertion-order) on first
// sight. Returned indices are always >= 1; index 0 is reserved for
// MISSING and is never produced by Insert.
func (d *Dictionary[T]) Insert(v T) int32 {
	h := d.hash(v)
	for _, e := range d.buckets[h] {
		if e.value == v {
			return e.idx
		}
	}
	idx := int32(len(d.values))
	d.values = append(d.values, v)
	d.buckets[h] = append(d.buckets[h], entry[T]{value: v, idx: idx})
	return idx
}

// Lookup resolves v to its index without inserting it.
func (d *Dictionary[T]) Lookup(v T) (int32, bool) {
	h := d.hash(v)
	for _, e := range d.buckets[h] {
		if e.value == v {
			return e.idx, true
		}
	}
	return 0, false
}

// Value returns the value stored at idx. idx 0, negative, or out-of-range
// indices all report ok=false — the MISSING / out-of-range case spec.md
// §4.1 requires callers to turn into a null object read.
func (d *Dictionary[T]) Value(idx int32) (v T, ok bool) {
	if idx <= 0 || int(idx) >= len(d.values) {
		return v, false
	}
	return d.values[idx], true
}

// Len returns the dictionary's size including the reserved MISSING slot,
// i.e. 1 + number of distinct real values.
func (d *Dictionary[T]) Len() int {
	return len(d.values)
}

// All returns the full backing slice, slot 0 included, in insertion
// order. Callers must not mutate the returned slice.
func (d *Dictionary[T]) All() []T {
	return d.values
}

// MaxIndex returns the largest index currently addressable, i.e. Len()-1.
// Used by categorical buffers to decide whether the current storage
// format still has room (spec.md §4.3 format promotion).
func (d *Dictionary[T]) MaxIndex() uint32 {
	return uint32(len(d.values) - 1)
}
