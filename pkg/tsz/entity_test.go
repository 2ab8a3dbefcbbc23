// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEntityIsStableAndHasNoLabels(t *testing.T) {
	e1 := DefaultEntity()
	e2 := DefaultEntity()
	assert.Same(t, e1, e2)
	assert.Equal(t, 0, e1.Labels().Len())
}

func TestEntityEqual(t *testing.T) {
	schema := MustNewSchema("host")
	a := NewEntity(schema.MustMakeFieldMap(StringValue("node01")))
	b := NewEntity(schema.MustMakeFieldMap(StringValue("node01")))
	c := NewEntity(schema.MustMakeFieldMap(StringValue("node02")))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestEntityCanonicalKeyMatchesLabels(t *testing.T) {
	schema := MustNewSchema("host")
	labels := schema.MustMakeFieldMap(StringValue("node01"))
	e := NewEntity(labels)
	assert.Equal(t, labels.CanonicalKey(), e.CanonicalKey())
}
