// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

// StringMetric is a string point-in-time value keyed by a
// metric-field schema, for free-form text state (version strings,
// current phase names, and similar).
type StringMetric struct {
	metricBase
}

// NewStringMetric returns a StringMetric bound to the process default
// entity.
func NewStringMetric(store StoreBackend, name string, fieldSchema *Schema, opts ...Options) *StringMetric {
	return &StringMetric{metricBase: newMetricBase(store, name, fieldSchema, firstOptions(opts))}
}

// NewStringMetricForEntity returns a StringMetric bound to a fixed,
// explicit entity.
func NewStringMetricForEntity(store StoreBackend, entity *Entity, name string, fieldSchema *Schema, opts ...Options) *StringMetric {
	return &StringMetric{metricBase: newMetricBaseForEntity(store, entity, name, fieldSchema, firstOptions(opts))}
}

// NewStringMetricWithEntityLabels returns a StringMetric whose entity
// is derived, per call, from the leading values passed to Set/Delete.
func NewStringMetricWithEntityLabels(store StoreBackend, name string, entityLabelSchema, fieldSchema *Schema, opts ...Options) *StringMetric {
	return &StringMetric{metricBase: newMetricBaseWithEntityLabels(store, name, entityLabelSchema, fieldSchema, firstOptions(opts))}
}

// Set overwrites the selected cell with value.
func (m *StringMetric) Set(value string, values ...FieldValue) {
	entity, fields := m.resolve(values)
	m.store.SetString(entity, m.name, fields, value)
}

// Delete removes the single cell selected by values.
func (m *StringMetric) Delete(values ...FieldValue) {
	entity, fields := m.resolve(values)
	m.store.DeleteValue(entity, m.name, fields)
}

// Clear removes every cell this StringMetric ever wrote.
func (m *StringMetric) Clear() { m.clear() }
