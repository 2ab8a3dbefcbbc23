// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package store

import "github.com/ClusterCockpit/cc-metrics/pkg/tsz"

// Record is one line of a Snapshot: a single cell's full key and
// value at the moment its shard was read.
type Record struct {
	Entity *tsz.Entity
	Metric string
	Fields tsz.FieldMap
	Value  tsz.Value
}

// Snapshot returns every live cell in the store. It is per-shard
// consistent but not globally atomic: a value written to a shard
// after that shard's snapshot was taken but before the global
// Snapshot call returns will simply not appear, and a write to a
// not-yet-visited shard may or may not be observed depending on
// timing. This is documented, intended behavior, not a bug -- taking
// one lock across all shards to get a fully atomic snapshot would
// stall every writer in the store for the duration of the walk.
func (s *Store) Snapshot() []Record {
	var out []Record
	for _, sh := range s.shards {
		out = append(out, sh.snapshot()...)
	}
	return out
}

func (sh *shard) snapshot() []Record {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	var out []Record
	for _, ee := range sh.entities {
		for metric, me := range ee.metrics {
			for _, c := range me.cells {
				v := c.value
				if v.Kind() == tsz.KindDistribution {
					v = tsz.NewDistributionValue(v.Distribution().Clone())
				}
				out = append(out, Record{
					Entity: ee.entity,
					Metric: metric,
					Fields: c.fields,
					Value:  v,
				})
			}
		}
	}
	return out
}

// Walk is like Snapshot but streams records to fn one shard at a time
// instead of building one large slice. Each shard is locked only long
// enough to copy its cells out; fn always runs after that shard's
// lock has been released, so it is safe for fn to do I/O without
// blocking writers on other shards for the duration.
func (s *Store) Walk(fn func(Record)) {
	for _, sh := range s.shards {
		for _, r := range sh.snapshot() {
			fn(r)
		}
	}
}
