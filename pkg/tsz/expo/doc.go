// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package expo implements the exposition adapter: the one read path
// through a tsz store, serializing a snapshot to a line-oriented text
// format. It never holds a shard lock across the I/O it performs, by
// construction -- it only ever reads through store.Store.Walk/
// Snapshot, which already release each shard's lock before handing
// records back.
package expo
