// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

// Counter is a monotone (by convention, not enforcement) int64
// accumulator keyed by a metric-field schema. Field values for each
// call are supplied positionally, in schema order.
type Counter struct {
	metricBase
}

// NewCounter returns a Counter bound to the process default entity.
func NewCounter(store StoreBackend, name string, fieldSchema *Schema, opts ...Options) *Counter {
	return &Counter{metricBase: newMetricBase(store, name, fieldSchema, firstOptions(opts))}
}

// NewCounterForEntity returns a Counter bound to a fixed, explicit
// entity.
func NewCounterForEntity(store StoreBackend, entity *Entity, name string, fieldSchema *Schema, opts ...Options) *Counter {
	return &Counter{metricBase: newMetricBaseForEntity(store, entity, name, fieldSchema, firstOptions(opts))}
}

// NewCounterWithEntityLabels returns a Counter whose entity is derived,
// per call, from the leading values passed to Increment/IncrementBy/
// Delete against entityLabelSchema; the remaining values are matched
// against fieldSchema.
func NewCounterWithEntityLabels(store StoreBackend, name string, entityLabelSchema, fieldSchema *Schema, opts ...Options) *Counter {
	return &Counter{metricBase: newMetricBaseWithEntityLabels(store, name, entityLabelSchema, fieldSchema, firstOptions(opts))}
}

// Increment adds 1 to the cell selected by values.
func (c *Counter) Increment(values ...FieldValue) {
	c.IncrementBy(1, values...)
}

// IncrementBy adds delta to the cell selected by values. A negative
// delta is accepted; Counter does not enforce monotonicity, that is
// left to the caller's convention.
func (c *Counter) IncrementBy(delta int64, values ...FieldValue) {
	entity, fields := c.resolve(values)
	c.store.AddToInt(entity, c.name, fields, delta)
}

// Delete removes the single cell selected by values.
func (c *Counter) Delete(values ...FieldValue) {
	entity, fields := c.resolve(values)
	c.store.DeleteValue(entity, c.name, fields)
}

// Clear removes every cell this Counter ever wrote -- across all
// entities if it carries an entity-label schema, or across its one
// bound entity otherwise.
func (c *Counter) Clear() { c.clear() }

func firstOptions(opts []Options) Options {
	if len(opts) == 0 {
		return DefaultOptions()
	}
	return opts[0]
}
