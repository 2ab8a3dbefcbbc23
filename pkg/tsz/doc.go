// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tsz implements the core of a time-series metrics runtime:
// strongly-typed named metrics (Counter, Gauge, EventMetric,
// StringMetric), the Distribution/Bucketer histogram aggregation, and
// the Entity/FieldMap key model that identifies a cell in the metric
// value store (package store).
//
// Application code declares a metric once (typically in a package
// init or as a package-level variable) and then calls its typed
// methods to record samples. Concurrent recording is safe; reading a
// consistent snapshot for scraping is done through package expo.
package tsz
