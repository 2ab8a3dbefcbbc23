// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package store

import (
	"github.com/ClusterCockpit/cc-metrics/pkg/tsz"
	"github.com/cespare/xxhash/v2"
)

// shardIndex hashes the composite (entity, metric, fields) key and
// returns which shard owns it. xxhash gives a fast, stable,
// well-distributed hash without the allocation overhead of the
// standard library's hash/fnv or crypto hashes.
func shardIndex(entityKey, metric, fieldsKey string, mask uint64) uint64 {
	composite := entityKey + "\x00" + metric + "\x00" + fieldsKey
	return xxhash.Sum64String(composite) & mask
}

func entityKeyOf(e *tsz.Entity) string {
	if e == nil {
		e = tsz.DefaultEntity()
	}
	return e.CanonicalKey()
}
