// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package store implements the metric value store: a sharded,
// concurrent map keyed by (entity, metric name, metric field values)
// that accumulates values under contention and produces per-shard
// consistent snapshots for the exposition adapter.
//
// Each shard holds one lock over its full navigate-and-mutate chain
// (entity -> metric -> fields -> cell), so no A-B-A window opens
// between looking a node up and mutating it. Shards are selected by
// hashing the composite (entity, metric, fields) key, which spreads
// unrelated keys across shards flatly rather than by any hierarchical
// structure among them.
package store
