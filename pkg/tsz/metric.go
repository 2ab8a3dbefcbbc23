// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

// StoreBackend is the subset of package store's *store.Store API the
// metric facades need. It is declared here, rather than imported,
// because package store itself depends on package tsz for its key
// types (Entity, FieldMap, Value, Bucketer) -- accepting this
// interface instead of importing store keeps that dependency
// one-directional. A *store.Store satisfies this interface
// structurally with no glue code required.
type StoreBackend interface {
	AddToInt(entity *Entity, metric string, fields FieldMap, delta int64)
	AddToFloat(entity *Entity, metric string, fields FieldMap, delta float64)
	SetInt(entity *Entity, metric string, fields FieldMap, value int64)
	SetFloat(entity *Entity, metric string, fields FieldMap, value float64)
	SetBool(entity *Entity, metric string, fields FieldMap, value bool)
	SetString(entity *Entity, metric string, fields FieldMap, value string)
	AddToDistribution(entity *Entity, metric string, fields FieldMap, sample float64, times uint64, bucketer *Bucketer)
	DeleteValue(entity *Entity, metric string, fields FieldMap) bool
	DeleteMetricForEntity(entity *Entity, metric string)
	DeleteMetric(metric string)
}

// metricBase is embedded by every typed facade (Counter, Gauge,
// EventMetric, StringMetric). It converts user-visible calls into a
// (entity, fields) pair and forwards to the store.
//
// Two binding shapes are supported:
//
//   - A fixed entity (explicit, or the process default): callers pass
//     only metric-field values; entityLabelSchema is nil.
//   - An entity-label schema carried by the metric template: callers
//     pass entity-label values first, then metric-field values, in one
//     call; entity is nil.
type metricBase struct {
	store             StoreBackend
	name              string
	entity            *Entity
	entityLabelSchema *Schema
	fieldSchema       *Schema
	options           Options
}

func newMetricBase(store StoreBackend, name string, fieldSchema *Schema, opts Options) metricBase {
	return metricBase{
		store:       store,
		name:        name,
		entity:      DefaultEntity(),
		fieldSchema: fieldSchema,
		options:     opts,
	}
}

func newMetricBaseForEntity(store StoreBackend, entity *Entity, name string, fieldSchema *Schema, opts Options) metricBase {
	return metricBase{
		store:       store,
		name:        name,
		entity:      entity,
		fieldSchema: fieldSchema,
		options:     opts,
	}
}

func newMetricBaseWithEntityLabels(store StoreBackend, name string, entityLabelSchema, fieldSchema *Schema, opts Options) metricBase {
	return metricBase{
		store:             store,
		name:              name,
		entityLabelSchema: entityLabelSchema,
		fieldSchema:       fieldSchema,
		options:           opts,
	}
}

// Name returns the metric's declared name.
func (b *metricBase) Name() string { return b.name }

// Options returns the metric's Options.
func (b *metricBase) Options() Options { return b.options }

// resolve splits values into (entity, metric-field values) according
// to the binding shape and builds the corresponding FieldMaps. A
// mismatch against the declared schema arity (duplicate names are
// already caught at schema construction) is treated as a programmer
// bug: resolve panics rather than silently dropping the call.
func (b *metricBase) resolve(values []FieldValue) (*Entity, FieldMap) {
	if b.entityLabelSchema != nil {
		n := b.entityLabelSchema.Arity()
		if len(values) < n {
			panic(newError(KindSchemaArityMismatch, "metric %q: expected at least %d entity label values, got %d", b.name, n, len(values)))
		}
		labelMap, err := b.entityLabelSchema.MakeFieldMap(values[:n]...)
		if err != nil {
			panic(err)
		}
		fieldMap, err := b.fieldSchema.MakeFieldMap(values[n:]...)
		if err != nil {
			panic(err)
		}
		return NewEntity(labelMap), fieldMap
	}
	fieldMap, err := b.fieldSchema.MakeFieldMap(values...)
	if err != nil {
		panic(err)
	}
	return b.entity, fieldMap
}

// clear implements the two Clear() semantics a facade can have: a
// metric carrying its own entity-label schema clears itself across
// every entity, while a metric bound to one (explicit or default)
// entity only clears its cells under that entity.
func (b *metricBase) clear() {
	if b.entityLabelSchema != nil {
		b.store.DeleteMetric(b.name)
		return
	}
	b.store.DeleteMetricForEntity(b.entity, b.name)
}
