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

// Package colbuffer implements the Buffer layer (spec.md §2 layer 4):
// mutable, write-once staging containers that freeze into a column.Column.
// Every concrete buffer carries a frozen bit; once to_column() is called,
// further writes fail with a belterr.State error.
package colbuffer

import "github.com/rapidminer/belt-sub000/belterr"

// frozen is embedded by every concrete buffer to implement the
// write-once-then-freeze lifecycle shared across all buffer kinds.
type frozen struct {
	done bool
}

func (f *frozen) checkWritable() error {
	if f.done {
		return belterr.State("colbuffer: write on a frozen buffer")
	}
	return nil
}

func (f *frozen) freeze() error {
	if f.done {
		return belterr.State("colbuffer: buffer already frozen")
	}
	f.done = true
	return nil
}

// IsFrozen reports whether to_column() has already been called.
func (f *frozen) IsFrozen() bool { return f.done }
