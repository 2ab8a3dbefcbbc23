// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package store

import "github.com/ClusterCockpit/cc-metrics/pkg/tsz"

// typeMismatch reports (and, by default, aborts via s.fatalf) a
// programmer error: a cell bound to one Value variant was addressed
// with an operation for a different variant. This is fatal rather
// than a returned error -- metric updates are fire-and-forget side
// effects with no caller positioned to handle an error return.
func (s *Store) typeMismatch(metric string, got, want tsz.ValueKind) {
	s.fatalf("[tsz]> type mismatch on metric %q: cell is %s, operation expects %s", metric, got, want)
}

// AddToInt adds delta to the int64 cell at (entity, metric, fields),
// creating the cell initialized to 0 if absent.
func (s *Store) AddToInt(entity *tsz.Entity, metric string, fields tsz.FieldMap, delta int64) {
	entityKey := entityKeyOf(entity)
	fieldsKey := fields.CanonicalKey()
	sh := s.shardFor(entityKey, metric, fieldsKey)

	sh.mu.Lock()
	defer sh.mu.Unlock()
	c, _ := sh.lookupOrCreateCell(resolveEntity(entity), entityKey, metric, fields, fieldsKey, tsz.NewIntValue(0))
	if c.value.Kind() != tsz.KindInt64 {
		s.typeMismatch(metric, c.value.Kind(), tsz.KindInt64)
		return
	}
	c.value = tsz.NewIntValue(c.value.Int64() + delta)
}

// AddToFloat adds delta to the float64 cell at (entity, metric,
// fields), creating the cell initialized to 0 if absent.
func (s *Store) AddToFloat(entity *tsz.Entity, metric string, fields tsz.FieldMap, delta float64) {
	entityKey := entityKeyOf(entity)
	fieldsKey := fields.CanonicalKey()
	sh := s.shardFor(entityKey, metric, fieldsKey)

	sh.mu.Lock()
	defer sh.mu.Unlock()
	c, _ := sh.lookupOrCreateCell(resolveEntity(entity), entityKey, metric, fields, fieldsKey, tsz.NewFloat64CellValue(0))
	if c.value.Kind() != tsz.KindFloat64 {
		s.typeMismatch(metric, c.value.Kind(), tsz.KindFloat64)
		return
	}
	c.value = tsz.NewFloat64CellValue(c.value.Float64() + delta)
}

// SetInt overwrites the int64 cell at (entity, metric, fields).
func (s *Store) SetInt(entity *tsz.Entity, metric string, fields tsz.FieldMap, value int64) {
	s.set(entity, metric, fields, tsz.NewIntValue(value), tsz.KindInt64)
}

// SetFloat overwrites the float64 cell at (entity, metric, fields).
func (s *Store) SetFloat(entity *tsz.Entity, metric string, fields tsz.FieldMap, value float64) {
	s.set(entity, metric, fields, tsz.NewFloat64CellValue(value), tsz.KindFloat64)
}

// SetBool overwrites the bool cell at (entity, metric, fields).
func (s *Store) SetBool(entity *tsz.Entity, metric string, fields tsz.FieldMap, value bool) {
	s.set(entity, metric, fields, tsz.NewBoolValue(value), tsz.KindBool)
}

// SetString overwrites the string cell at (entity, metric, fields).
func (s *Store) SetString(entity *tsz.Entity, metric string, fields tsz.FieldMap, value string) {
	s.set(entity, metric, fields, tsz.NewStringCellValue(value), tsz.KindString)
}

func (s *Store) set(entity *tsz.Entity, metric string, fields tsz.FieldMap, value tsz.Value, kind tsz.ValueKind) {
	entityKey := entityKeyOf(entity)
	fieldsKey := fields.CanonicalKey()
	sh := s.shardFor(entityKey, metric, fieldsKey)

	sh.mu.Lock()
	defer sh.mu.Unlock()
	c, _ := sh.lookupOrCreateCell(resolveEntity(entity), entityKey, metric, fields, fieldsKey, value)
	if c.value.Kind() != kind {
		s.typeMismatch(metric, c.value.Kind(), kind)
		return
	}
	c.value = value
}

// AddToDistribution records sample, times times, into the
// Distribution cell at (entity, metric, fields), creating it with
// bucketer if absent.
func (s *Store) AddToDistribution(entity *tsz.Entity, metric string, fields tsz.FieldMap, sample float64, times uint64, bucketer *tsz.Bucketer) {
	entityKey := entityKeyOf(entity)
	fieldsKey := fields.CanonicalKey()
	sh := s.shardFor(entityKey, metric, fieldsKey)

	sh.mu.Lock()
	defer sh.mu.Unlock()
	zero := tsz.NewDistributionValue(tsz.NewDistribution(bucketer))
	c, _ := sh.lookupOrCreateCell(resolveEntity(entity), entityKey, metric, fields, fieldsKey, zero)
	if c.value.Kind() != tsz.KindDistribution {
		s.typeMismatch(metric, c.value.Kind(), tsz.KindDistribution)
		return
	}
	c.value.Distribution().RecordMany(sample, times)
}

// DeleteValue removes the cell at (entity, metric, fields), pruning
// now-empty parent maps. Returns true iff a cell existed.
func (s *Store) DeleteValue(entity *tsz.Entity, metric string, fields tsz.FieldMap) bool {
	entityKey := entityKeyOf(entity)
	fieldsKey := fields.CanonicalKey()
	sh := s.shardFor(entityKey, metric, fieldsKey)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	ee, ok := sh.entities[entityKey]
	if !ok {
		return false
	}
	me, ok := ee.metrics[metric]
	if !ok {
		return false
	}
	if _, ok := me.cells[fieldsKey]; !ok {
		return false
	}
	delete(me.cells, fieldsKey)
	if len(me.cells) == 0 {
		delete(ee.metrics, metric)
	}
	if len(ee.metrics) == 0 {
		delete(sh.entities, entityKey)
	}
	return true
}

// DeleteMetricForEntity removes every cell of metric under entity.
func (s *Store) DeleteMetricForEntity(entity *tsz.Entity, metric string) {
	entityKey := entityKeyOf(entity)
	for _, sh := range s.shards {
		sh.mu.Lock()
		if ee, ok := sh.entities[entityKey]; ok {
			delete(ee.metrics, metric)
			if len(ee.metrics) == 0 {
				delete(sh.entities, entityKey)
			}
		}
		sh.mu.Unlock()
	}
}

// DeleteMetric removes metric across every entity in the store.
func (s *Store) DeleteMetric(metric string) {
	for _, sh := range s.shards {
		sh.mu.Lock()
		for key, ee := range sh.entities {
			delete(ee.metrics, metric)
			if len(ee.metrics) == 0 {
				delete(sh.entities, key)
			}
		}
		sh.mu.Unlock()
	}
}

// DeleteEntity removes every metric recorded under entity.
func (s *Store) DeleteEntity(entity *tsz.Entity) {
	entityKey := entityKeyOf(entity)
	for _, sh := range s.shards {
		sh.mu.Lock()
		delete(sh.entities, entityKey)
		sh.mu.Unlock()
	}
}

func resolveEntity(e *tsz.Entity) *tsz.Entity {
	if e == nil {
		return tsz.DefaultEntity()
	}
	return e
}
