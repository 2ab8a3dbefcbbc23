// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterIncrementAndIncrementBy(t *testing.T) {
	backend := &fakeBackend{}
	fields := MustNewSchema("kind")
	c := NewCounter(backend, "requests_total", fields)

	c.Increment(StringValue("get"))
	c.IncrementBy(5, StringValue("get"))

	assert.Equal(t, []int64{1, 5}, backend.intDeltas)
}

func TestCounterClearWithoutEntityLabelSchemaScopesToOneEntity(t *testing.T) {
	backend := &fakeBackend{}
	fields := MustNewSchema()
	c := NewCounter(backend, "requests_total", fields)
	c.Clear()

	assert.Equal(t, []string{"requests_total"}, backend.deletedForEnt)
	assert.Empty(t, backend.deletedMetric)
}

func TestCounterWithEntityLabelsClearsAcrossEntities(t *testing.T) {
	backend := &fakeBackend{}
	entityLabels := MustNewSchema("host")
	fields := MustNewSchema("kind")
	c := NewCounterWithEntityLabels(backend, "requests_total", entityLabels, fields)

	c.Increment(StringValue("node01"), StringValue("get"))
	c.Clear()

	assert.Equal(t, []int64{1}, backend.intDeltas)
	assert.Equal(t, []string{"requests_total"}, backend.deletedMetric)
	assert.Empty(t, backend.deletedForEnt)
}

func TestGaugeSet(t *testing.T) {
	backend := &fakeBackend{}
	fields := MustNewSchema("device")
	g := NewGauge(backend, "temperature_celsius", fields)

	g.Set(42.5, StringValue("cpu0"))
	assert.Equal(t, []float64{42.5}, backend.floatSets)
}

func TestGaugeSetInt64(t *testing.T) {
	backend := &fakeBackend{}
	fields := MustNewSchema("device")
	g := NewGauge(backend, "queue_depth", fields)

	g.SetInt64(7, StringValue("cpu0"))
	assert.Equal(t, []int64{7}, backend.intSets)
}

func TestStringMetricSet(t *testing.T) {
	backend := &fakeBackend{}
	fields := MustNewSchema()
	sm := NewStringMetric(backend, "build_version", fields)

	sm.Set("v1.2.3")
	assert.Equal(t, []string{"v1.2.3"}, backend.stringSets)
}

func TestMetricForExplicitEntityUsesThatEntity(t *testing.T) {
	backend := &fakeBackend{}
	entitySchema := MustNewSchema("host")
	entity := NewEntity(entitySchema.MustMakeFieldMap(StringValue("node01")))

	fields := MustNewSchema("kind")
	c := NewCounterForEntity(backend, entity, "requests_total", fields)
	c.Increment(StringValue("get"))

	assert.Equal(t, []int64{1}, backend.intDeltas)
}

func TestResolvePanicsOnArityMismatch(t *testing.T) {
	backend := &fakeBackend{}
	fields := MustNewSchema("kind")
	c := NewCounter(backend, "requests_total", fields)

	assert.Panics(t, func() {
		c.Increment()
	})
}
