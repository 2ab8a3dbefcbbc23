// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

// Gauge is a point-in-time value keyed by a metric-field schema,
// settable as either an int64 or a float64. The cell's variant is
// fixed by whichever Set method first creates it; subsequent calls
// with the other variant hit the store's type-mismatch path.
type Gauge struct {
	metricBase
}

// NewGauge returns a Gauge bound to the process default entity.
func NewGauge(store StoreBackend, name string, fieldSchema *Schema, opts ...Options) *Gauge {
	return &Gauge{metricBase: newMetricBase(store, name, fieldSchema, firstOptions(opts))}
}

// NewGaugeForEntity returns a Gauge bound to a fixed, explicit entity.
func NewGaugeForEntity(store StoreBackend, entity *Entity, name string, fieldSchema *Schema, opts ...Options) *Gauge {
	return &Gauge{metricBase: newMetricBaseForEntity(store, entity, name, fieldSchema, firstOptions(opts))}
}

// NewGaugeWithEntityLabels returns a Gauge whose entity is derived,
// per call, from the leading values passed to Set/Delete.
func NewGaugeWithEntityLabels(store StoreBackend, name string, entityLabelSchema, fieldSchema *Schema, opts ...Options) *Gauge {
	return &Gauge{metricBase: newMetricBaseWithEntityLabels(store, name, entityLabelSchema, fieldSchema, firstOptions(opts))}
}

// Set overwrites the cell selected by values with value as a
// float64; the values select entity labels and/or metric fields per
// the Gauge's binding shape.
func (g *Gauge) Set(value float64, values ...FieldValue) {
	entity, fields := g.resolve(values)
	g.store.SetFloat(entity, g.name, fields, value)
}

// SetInt64 overwrites the cell selected by values with value as an
// int64, the same way Set does for float64.
func (g *Gauge) SetInt64(value int64, values ...FieldValue) {
	entity, fields := g.resolve(values)
	g.store.SetInt(entity, g.name, fields, value)
}

// Delete removes the single cell selected by values.
func (g *Gauge) Delete(values ...FieldValue) {
	entity, fields := g.resolve(values)
	g.store.DeleteValue(entity, g.name, fields)
}

// Clear removes every cell this Gauge ever wrote.
func (g *Gauge) Clear() { g.clear() }
