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

// Package column implements the Column hierarchy: the abstract uniform
// typed-fill contract (spec.md §4.1), the lazy row-mapping view layer
// (spec.md §4.2), and the concrete numeric/categorical/object/date-time/
// time encodings (spec.md §3). Every concrete type carries an optional
// row_mapping field rather than existing as a separate "mapped" subclass,
// per spec.md §9's sum-type guidance.
package column

// Kind is the tagged element kind of a column, spec.md §3's "type".
type Kind int

const (
	Real Kind = iota
	Integer
	Nominal
	CategoricalUser
	DateTimeKind
	TimeKind
	ObjectUser
)

func (k Kind) String() string {
	switch k {
	case Real:
		return "Real"
	case Integer:
		return "Integer"
	case Nominal:
		return "Nominal"
	case CategoricalUser:
		return "Categorical"
	case DateTimeKind:
		return "DateTime"
	case TimeKind:
		return "Time"
	case ObjectUser:
		return "Object"
	default:
		return "Unknown"
	}
}

// Category groups Kinds into the three families the fill contract and
// capability derivation care about.
type Category int

const (
	Numeric Category = iota
	Categorical
	Object
)

func (c Category) String() string {
	switch c {
	case Numeric:
		return "Numeric"
	case Categorical:
		return "Categorical"
	case Object:
		return "Object"
	default:
		return "Unknown"
	}
}

// CategoryOf derives the Category for a Kind. Real and Integer are
// Numeric; Nominal and user-defined Categorical are Categorical;
// DateTime, Time, and user-defined Object are Object — they are read via
// fill_obj, never fill_f64, even though DateTime/Time carry a natural
// ordering (see Sortable below).
func CategoryOf(k Kind) Category {
	switch k {
	case Real, Integer:
		return Numeric
	case Nominal, CategoricalUser:
		return Categorical
	default:
		return Object
	}
}

// Capability is a declarative tag controlling which fill/sort/boolean APIs
// are legal on a column, spec.md §3 and glossary.
type Capability uint8

const (
	NumericReadable Capability = 1 << iota
	ObjectReadable
	Sortable
	Boolean
)

// CapabilitySet is a bitset of Capability values.
type CapabilitySet uint8

// Has reports whether every bit in want is present in s.
func (s CapabilitySet) Has(want Capability) bool {
	return CapabilitySet(want)&s == CapabilitySet(want)
}

// capabilitiesFor derives the base capability set for a Kind, before the
// Boolean bit (which additionally depends on dictionary shape) is
// considered.
func capabilitiesFor(k Kind) CapabilitySet {
	switch CategoryOf(k) {
	case Numeric:
		return CapabilitySet(NumericReadable | Sortable)
	case Categorical:
		return CapabilitySet(ObjectReadable | Sortable)
	default: // Object, DateTime, Time
		if k == DateTimeKind || k == TimeKind {
			// DateTime/Time values carry a total order over their
			// physical int64 encoding even though they are read via
			// fill_obj; spec.md's Non-goals do not exclude sorting
			// them, and the original system's callers expect to be
			// able to order a time series.
			return CapabilitySet(ObjectReadable | Sortable)
		}
		return CapabilitySet(ObjectReadable)
	}
}

// Type is a column's full static description: spec.md §3's "type"
// (Kind), "category", and "capability set", plus an optional name for
// user-defined Categorical/Object kinds.
type Type struct {
	Kind         Kind
	Category     Category
	Capabilities CapabilitySet
	CustomName   string
}

// NewType builds a Type for k, deriving Category and the base
// Capabilities. positiveBoolean, when true, additionally sets the
// Boolean capability; callers (NewCategorical) are responsible for
// only passing true when the dictionary actually has <= 3 entries and a
// positive index was declared, per spec.md §3's invariant.
func NewType(k Kind, positiveBoolean bool) Type {
	caps := capabilitiesFor(k)
	if positiveBoolean {
		caps |= CapabilitySet(Boolean)
	}
	return Type{Kind: k, Category: CategoryOf(k), Capabilities: caps}
}

// WithName attaches a user-facing name for Categorical(user)/Object(user)
// kinds and returns the updated Type.
func (t Type) WithName(name string) Type {
	t.CustomName = name
	return t
}
