// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal in-package StoreBackend used to exercise
// the facades without depending on package store (which itself
// imports package tsz, so an internal _test.go file here cannot use
// it without creating an import cycle).
type fakeBackend struct {
	distSamples []float64
	distTimes   []uint64

	intDeltas     []int64
	floatDeltas   []float64
	intSets       []int64
	floatSets     []float64
	boolSets      []bool
	stringSets    []string
	deletedValues int
	deletedForEnt []string
	deletedMetric []string
}

func (f *fakeBackend) AddToInt(_ *Entity, _ string, _ FieldMap, delta int64) {
	f.intDeltas = append(f.intDeltas, delta)
}
func (f *fakeBackend) AddToFloat(_ *Entity, _ string, _ FieldMap, delta float64) {
	f.floatDeltas = append(f.floatDeltas, delta)
}
func (f *fakeBackend) SetInt(_ *Entity, _ string, _ FieldMap, value int64) {
	f.intSets = append(f.intSets, value)
}
func (f *fakeBackend) SetFloat(_ *Entity, _ string, _ FieldMap, value float64) {
	f.floatSets = append(f.floatSets, value)
}
func (f *fakeBackend) SetBool(_ *Entity, _ string, _ FieldMap, value bool) {
	f.boolSets = append(f.boolSets, value)
}
func (f *fakeBackend) SetString(_ *Entity, _ string, _ FieldMap, value string) {
	f.stringSets = append(f.stringSets, value)
}
func (f *fakeBackend) DeleteValue(*Entity, string, FieldMap) bool {
	f.deletedValues++
	return true
}
func (f *fakeBackend) DeleteMetricForEntity(_ *Entity, metric string) {
	f.deletedForEnt = append(f.deletedForEnt, metric)
}
func (f *fakeBackend) DeleteMetric(metric string) {
	f.deletedMetric = append(f.deletedMetric, metric)
}
func (f *fakeBackend) AddToDistribution(_ *Entity, _ string, _ FieldMap, sample float64, times uint64, _ *Bucketer) {
	f.distSamples = append(f.distSamples, sample)
	f.distTimes = append(f.distTimes, times)
}

func TestLatencyRecorderRecordsElapsedInConfiguredUnit(t *testing.T) {
	backend := &fakeBackend{}
	fields := MustNewSchema()
	metric := NewEventMetric(backend, "request_latency", fields, Options{TimeUnit: Second})

	mc := NewManualClock(time.Unix(123, 0))
	restore := SetClockForTesting(mc)
	defer restore.Restore()

	lr := metric.NewLatencyRecorder()
	mc.Advance(456 * time.Second)
	lr.Stop()

	require.Len(t, backend.distSamples, 1)
	assert.InDelta(t, 456.0, backend.distSamples[0], 1e-9)
	assert.Equal(t, uint64(1), backend.distTimes[0])
}

func TestLatencyRecorderStopIsIdempotent(t *testing.T) {
	backend := &fakeBackend{}
	fields := MustNewSchema()
	metric := NewEventMetric(backend, "request_latency", fields)

	mc := NewManualClock(time.Unix(0, 0))
	restore := SetClockForTesting(mc)
	defer restore.Restore()

	lr := metric.NewLatencyRecorder()
	mc.Advance(10 * time.Millisecond)
	first := lr.Record()
	mc.Advance(time.Hour)
	second := lr.Record()

	assert.Equal(t, first, second)
	assert.Len(t, backend.distSamples, 1, "a second Record call must not record again")
}
