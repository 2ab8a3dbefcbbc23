// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package store

import "github.com/ClusterCockpit/cc-metrics/pkg/tsz"

// CellReader is the read-only accessor into a Store: it accepts the
// same (entity, metric, fields) key tuple application code writes
// through and returns the stored value, for use by tests and by
// operators inspecting a running process without going through the
// typed facades.
type CellReader struct {
	store *Store
}

// NewCellReader returns a CellReader over s.
func NewCellReader(s *Store) CellReader {
	return CellReader{store: s}
}

// Read returns the value stored at (entity, metric, fields) and
// whether a cell exists there. An absent cell is a normal outcome --
// not every key that was ever written is still live -- not an error.
func (r CellReader) Read(entity *tsz.Entity, metric string, fields tsz.FieldMap) (tsz.Value, bool) {
	entityKey := entityKeyOf(entity)
	fieldsKey := fields.CanonicalKey()
	sh := r.store.shardFor(entityKey, metric, fieldsKey)

	sh.mu.Lock()
	defer sh.mu.Unlock()
	c := sh.lookupCell(entityKey, metric, fieldsKey)
	if c == nil {
		return tsz.Value{}, false
	}
	return c.value, true
}
