// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStoreConfigMinimal(t *testing.T) {
	cfg := ParseStoreConfig([]byte(`{"num-shards": 16}`))
	assert.Equal(t, 16, cfg.NumShards)
	assert.Nil(t, cfg.DefaultBucketer)
}

func TestParseStoreConfigWithBucketer(t *testing.T) {
	cfg := ParseStoreConfig([]byte(`{
		"num-shards": 64,
		"default-bucketer": {"kind": "fixed-width", "width": 1.0, "num-finite-buckets": 20}
	}`))
	require.NotNil(t, cfg.DefaultBucketer)
	b := cfg.DefaultBucketer.Bucketer()
	assert.Equal(t, 20, b.NumFiniteBuckets())
}

func TestBucketerSpecDefaultsToDefaultBucketer(t *testing.T) {
	spec := BucketerSpec{Kind: "unknown"}
	assert.Same(t, DefaultBucketer(), spec.Bucketer())
}

func TestBucketerSpecPowersOf(t *testing.T) {
	spec := BucketerSpec{Kind: "powers-of", Base: 2}
	b := spec.Bucketer()
	assert.Same(t, PowersOf(2), b)
}
