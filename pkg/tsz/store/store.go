// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package store

import (
	"sync"

	cclog "github.com/ClusterCockpit/cc-lib/v2/ccLogger"
	"github.com/ClusterCockpit/cc-metrics/pkg/tsz"
)

// DefaultNumShards is used by New when no shard count is given via
// NewWithShards. 32 keeps per-shard contention low without spreading
// lock overhead across more shards than typical workloads need.
const DefaultNumShards = 32

// shard owns one partition of the store: a single lock guarding the
// full entity -> metric -> fields -> cell chain. Taking a separate
// lock per level would open a window where an entity's metric map is
// deleted between one goroutine's lookup and its mutation; keeping the
// critical section flat avoids that race entirely.
type shard struct {
	mu       sync.Mutex
	entities map[string]*entityEntry
}

func newShard() *shard {
	return &shard{entities: make(map[string]*entityEntry)}
}

// Store is the process-wide, sharded metric value store. Application
// code should not normally use Store directly; it is reached through
// the typed facades in package tsz (Counter, Gauge, EventMetric,
// StringMetric).
type Store struct {
	shards []*shard
	mask   uint64

	// fatalf is called on a detected type mismatch on the write path --
	// a programmer error, not a recoverable condition. It defaults to
	// cclog.Fatalf (log-then-abort), but can be overridden for tests
	// and for embedding environments that must not abort the process.
	fatalf func(format string, args ...interface{})
}

// New returns a Store with DefaultNumShards shards.
func New() *Store {
	return NewWithShards(DefaultNumShards)
}

// NewWithShards returns a Store with numShards shards. numShards is
// rounded up to the next power of two so shard selection can use a
// cheap bitmask instead of a modulo.
func NewWithShards(numShards int) *Store {
	n := nextPowerOfTwo(numShards)
	shards := make([]*shard, n)
	for i := range shards {
		shards[i] = newShard()
	}
	cclog.Debugf("[tsz]> store initialized with %d shards", n)
	return &Store{
		shards: shards,
		mask:   uint64(n - 1),
		fatalf: cclog.Fatalf,
	}
}

// SetFatalHandler overrides the function called on a detected
// programmer error (type mismatch on the write path). Intended for
// tests, and for embedders that must not call os.Exit.
func (s *Store) SetFatalHandler(f func(format string, args ...interface{})) {
	s.fatalf = f
}

func nextPowerOfTwo(n int) int {
	if n < 1 {
		n = 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// NumShards returns the number of shards the store was created with.
func (s *Store) NumShards() int { return len(s.shards) }

func (s *Store) shardFor(entityKey, metric, fieldsKey string) *shard {
	return s.shards[shardIndex(entityKey, metric, fieldsKey, s.mask)]
}

// lookupOrCreateCell navigates (creating as needed) the
// entity->metric->fields chain and returns the cell, creating it with
// zeroValue if absent. The whole operation runs under the shard's
// lock so the chain is never observed half-built by another
// goroutine.
func (sh *shard) lookupOrCreateCell(entity *tsz.Entity, entityKey, metric string, fields tsz.FieldMap, fieldsKey string, zeroValue tsz.Value) (*cell, bool) {
	ee, ok := sh.entities[entityKey]
	if !ok {
		ee = &entityEntry{entity: entity, metrics: make(map[string]*metricEntry)}
		sh.entities[entityKey] = ee
	}
	me, ok := ee.metrics[metric]
	if !ok {
		me = &metricEntry{cells: make(map[string]*cell)}
		ee.metrics[metric] = me
	}
	c, existed := me.cells[fieldsKey]
	if !existed {
		c = &cell{fields: fields, value: zeroValue}
		me.cells[fieldsKey] = c
	}
	return c, existed
}

// lookupCell navigates the chain without creating anything, returning
// nil if any level is absent.
func (sh *shard) lookupCell(entityKey, metric, fieldsKey string) *cell {
	ee, ok := sh.entities[entityKey]
	if !ok {
		return nil
	}
	me, ok := ee.metrics[metric]
	if !ok {
		return nil
	}
	return me.cells[fieldsKey]
}
