// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expo

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/ClusterCockpit/cc-metrics/pkg/tsz"
	"github.com/ClusterCockpit/cc-metrics/pkg/tsz/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextFormatsEachVariant(t *testing.T) {
	s := store.New()
	hostSchema := tsz.MustNewSchema("host")
	entity := tsz.NewEntity(hostSchema.MustMakeFieldMap(tsz.StringValue("node01")))
	fieldSchema := tsz.MustNewSchema("kind")
	fields := fieldSchema.MustMakeFieldMap(tsz.StringValue("get"))

	s.SetInt(entity, "requests_total", fields, 42)
	s.SetFloat(entity, "temperature_celsius", tsz.EmptyFieldMap, 36.6)
	s.SetString(entity, "build_version", tsz.EmptyFieldMap, "v1.2.3")
	s.AddToDistribution(entity, "request_latency", tsz.EmptyFieldMap, 1, 1, tsz.FixedWidth(1, 5))

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "requests_total entity={host=\"node01\"} fields={kind=\"get\"} value=42")
	assert.Contains(t, out, "temperature_celsius entity={host=\"node01\"} fields={} value=36.6")
	assert.Contains(t, out, `build_version entity={host="node01"} fields={} value="v1.2.3"`)
	assert.Contains(t, out, "request_latency entity={host=\"node01\"} fields={} value=dist{count=1")
}

func TestHandlerServesSnapshot(t *testing.T) {
	s := store.New()
	s.SetInt(nil, "m", tsz.EmptyFieldMap, 7)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	Handler(s).ServeHTTP(rr, req)

	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "m entity={} fields={} value=7")
}
