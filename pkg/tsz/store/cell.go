// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package store

import "github.com/ClusterCockpit/cc-metrics/pkg/tsz"

// cell is the atomic unit of storage: one (entity, metric, field
// tuple) combination. It holds exactly one tsz.Value variant for its
// lifetime; that invariant is enforced by every write operation in
// ops.go before the value is ever touched.
type cell struct {
	fields tsz.FieldMap
	value  tsz.Value
}

// metricEntry holds every cell recorded for one metric name under one
// entity, keyed by the canonical string of the metric field values.
type metricEntry struct {
	cells map[string]*cell
}

// entityEntry holds every metric recorded under one entity, keyed by
// metric name.
type entityEntry struct {
	entity  *tsz.Entity
	metrics map[string]*metricEntry
}
