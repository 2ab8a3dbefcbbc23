// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

// EventMetric accumulates samples into a Distribution cell per
// (entity, fields) key. The Bucketer new Distribution cells are
// created with comes from Options, defaulting to DefaultBucketer().
type EventMetric struct {
	metricBase
}

// NewEventMetric returns an EventMetric bound to the process default
// entity.
func NewEventMetric(store StoreBackend, name string, fieldSchema *Schema, opts ...Options) *EventMetric {
	return &EventMetric{metricBase: newMetricBase(store, name, fieldSchema, firstOptions(opts))}
}

// NewEventMetricForEntity returns an EventMetric bound to a fixed,
// explicit entity.
func NewEventMetricForEntity(store StoreBackend, entity *Entity, name string, fieldSchema *Schema, opts ...Options) *EventMetric {
	return &EventMetric{metricBase: newMetricBaseForEntity(store, entity, name, fieldSchema, firstOptions(opts))}
}

// NewEventMetricWithEntityLabels returns an EventMetric whose entity
// is derived, per call, from the leading values passed to Record/
// RecordMany/Delete.
func NewEventMetricWithEntityLabels(store StoreBackend, name string, entityLabelSchema, fieldSchema *Schema, opts ...Options) *EventMetric {
	return &EventMetric{metricBase: newMetricBaseWithEntityLabels(store, name, entityLabelSchema, fieldSchema, firstOptions(opts))}
}

// Record adds one occurrence of sample to the selected Distribution.
func (m *EventMetric) Record(sample float64, values ...FieldValue) {
	m.RecordMany(sample, 1, values...)
}

// RecordMany adds times occurrences of sample to the selected
// Distribution, applying the provisional-means recurrence times times
// without a Go-level loop -- see Distribution.RecordMany.
func (m *EventMetric) RecordMany(sample float64, times uint64, values ...FieldValue) {
	entity, fields := m.resolve(values)
	m.store.AddToDistribution(entity, m.name, fields, sample, times, m.options.bucketer())
}

// Delete removes the single Distribution cell selected by values.
func (m *EventMetric) Delete(values ...FieldValue) {
	entity, fields := m.resolve(values)
	m.store.DeleteValue(entity, m.name, fields)
}

// Clear removes every cell this EventMetric ever wrote.
func (m *EventMetric) Clear() { m.clear() }
