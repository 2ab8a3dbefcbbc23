// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import "sync"

// Entity is a named, immutable set of label values identifying a data
// source (e.g. a host, a job, a process). Two entities are equal iff
// their (name, value) sequences are equal -- which, since FieldMap
// keeps entries canonically sorted, reduces to FieldMap.Equal.
type Entity struct {
	labels FieldMap
}

// NewEntity wraps an already-built FieldMap of label values as an
// Entity.
func NewEntity(labels FieldMap) *Entity {
	return &Entity{labels: labels}
}

// Labels returns the entity's label FieldMap.
func (e *Entity) Labels() FieldMap { return e.labels }

// CanonicalKey returns the canonical string key of the entity's
// labels, see FieldMap.CanonicalKey.
func (e *Entity) CanonicalKey() string { return e.labels.CanonicalKey() }

// Equal reports whether e and other carry the same label values.
func (e *Entity) Equal(other *Entity) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	return e.labels.Equal(other.labels)
}

var (
	defaultEntityOnce sync.Once
	defaultEntityVal  *Entity
)

// DefaultEntity returns the process-wide default entity. Metrics
// constructed without an explicit entity reference attach to it. It
// is an ordinary Entity with zero labels, fixed once at first use, so
// the store never needs a distinct "no entity" code path.
func DefaultEntity() *Entity {
	defaultEntityOnce.Do(func() {
		defaultEntityVal = &Entity{labels: EmptyFieldMap}
	})
	return defaultEntityVal
}
