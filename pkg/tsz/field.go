// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import (
	"sort"
	"strings"
)

// FieldMap is an ordered, immutable mapping from field name to
// FieldValue. Keys are unique and kept in lexicographic order; that
// order is the canonical key used for hashing and equality throughout
// the metric store.
type FieldMap struct {
	names  []string
	values []FieldValue
}

// EmptyFieldMap is the FieldMap with no entries, used by schemas with
// zero fields (e.g. the default entity, or a metric with no metric
// fields).
var EmptyFieldMap = FieldMap{}

// Len returns the number of entries.
func (m FieldMap) Len() int { return len(m.names) }

// Name returns the name of the i-th entry in canonical (sorted)
// order.
func (m FieldMap) Name(i int) string { return m.names[i] }

// Value returns the value of the i-th entry in canonical order.
func (m FieldMap) Value(i int) FieldValue { return m.values[i] }

// Get looks up a value by name.
func (m FieldMap) Get(name string) (FieldValue, bool) {
	i := sort.SearchStrings(m.names, name)
	if i < len(m.names) && m.names[i] == name {
		return m.values[i], true
	}
	return FieldValue{}, false
}

// CanonicalKey renders the ordered (name, value) sequence as a single
// string suitable as a map key or as input to a stable hash function.
// Because FieldMap entries are already kept in sorted order, two
// FieldMaps with the same entries always produce the same key
// regardless of construction order.
func (m FieldMap) CanonicalKey() string {
	if len(m.names) == 0 {
		return ""
	}
	var b strings.Builder
	for i, name := range m.names {
		if i > 0 {
			b.WriteByte(0x1f) // unit separator, won't appear in names/values
		}
		b.WriteString(name)
		b.WriteByte(0x1e) // record separator between name and value
		b.WriteByte(byte(m.values[i].kind))
		b.WriteByte(0x1e)
		b.WriteString(m.values[i].Format())
	}
	return b.String()
}

// Equal reports whether m and other have the same (name, value)
// sequence.
func (m FieldMap) Equal(other FieldMap) bool {
	if len(m.names) != len(other.names) {
		return false
	}
	for i := range m.names {
		if m.names[i] != other.names[i] || !m.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return true
}

// Schema is a runtime description of a field tuple: the ordered names
// plus the permutation that sorts them lexicographically. Field names
// are plain runtime strings checked once at construction time, so
// MakeFieldMap can build canonically-ordered FieldMaps on the hot
// path without re-validating or re-sorting per call.
type Schema struct {
	names []string
	perm  []int // perm[y] = x means names[x] is the y-th smallest name
}

// NewSchema constructs a Schema from field names, validating that
// there are no duplicates. The permutation that would sort names is
// precomputed once here, so MakeFieldMap never needs to sort.
func NewSchema(names ...string) (*Schema, error) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return nil, newError(KindDuplicateFieldName, "duplicate field name %q", n)
		}
		seen[n] = struct{}{}
	}

	own := make([]string, len(names))
	copy(own, names)

	order := make([]int, len(own))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return own[order[a]] < own[order[b]] })

	return &Schema{names: own, perm: order}, nil
}

// MustNewSchema is like NewSchema but panics on error; intended for
// package-level metric declarations where a duplicate name is a
// startup-time programmer error.
func MustNewSchema(names ...string) *Schema {
	s, err := NewSchema(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the field names in declaration order (not sorted).
func (s *Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Arity returns the number of fields in the schema.
func (s *Schema) Arity() int { return len(s.names) }

// MakeFieldMap builds a canonically-ordered FieldMap from values
// given in declaration order, using the precomputed sort permutation
// computed once in NewSchema so no sorting happens per call.
func (s *Schema) MakeFieldMap(values ...FieldValue) (FieldMap, error) {
	if len(values) != len(s.names) {
		return FieldMap{}, newError(KindSchemaArityMismatch, "schema has %d fields, got %d values", len(s.names), len(values))
	}
	if len(s.names) == 0 {
		return EmptyFieldMap, nil
	}
	names := make([]string, len(s.names))
	vals := make([]FieldValue, len(s.names))
	for dst, srcIdx := range s.perm {
		names[dst] = s.names[srcIdx]
		vals[dst] = values[srcIdx]
	}
	return FieldMap{names: names, values: vals}, nil
}

// MustMakeFieldMap is like MakeFieldMap but panics on error.
func (s *Schema) MustMakeFieldMap(values ...FieldValue) FieldMap {
	m, err := s.MakeFieldMap(values...)
	if err != nil {
		panic(err)
	}
	return m
}
