// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import "time"

// LatencyRecorder times a scope and records the elapsed duration into
// an EventMetric when the scope ends. Go has no destructors, so the
// caller must end the scope explicitly, typically with:
//
//	lr := metric.NewLatencyRecorder(values...)
//	defer lr.Stop()
//
// Stop (and its value-returning sibling Record) is idempotent: only
// the first call records and stops the clock, so the defer/early-return
// combination above is safe even when a function has more than one
// return path.
type LatencyRecorder struct {
	metric *EventMetric
	values []FieldValue
	start  time.Time
	fired  bool
	sample float64
}

// NewLatencyRecorder starts a LatencyRecorder against m, capturing the
// current time from the process clock (or the installed test clock).
// values select the cell the elapsed duration will be recorded into,
// exactly as they would for m.Record.
func (m *EventMetric) NewLatencyRecorder(values ...FieldValue) *LatencyRecorder {
	return &LatencyRecorder{
		metric: m,
		values: append([]FieldValue(nil), values...),
		start:  currentClock().Now(),
	}
}

// Stop records the elapsed time since the recorder was created, in
// the metric's configured TimeUnit, and disarms the recorder. It is
// safe to call more than once; only the first call has an effect.
func (r *LatencyRecorder) Stop() {
	r.Record()
}

// Record returns the elapsed duration, converted to the metric's
// configured TimeUnit, recording it into the underlying EventMetric on
// its first call. Later calls return the same already-computed value
// without recording again.
func (r *LatencyRecorder) Record() float64 {
	if r.fired {
		return r.sample
	}
	r.fired = true
	elapsed := currentClock().Now().Sub(r.start)
	unit := r.metric.options.TimeUnit
	r.sample = float64(elapsed) / unit.divisor()
	r.metric.Record(r.sample, r.values...)
	return r.sample
}
