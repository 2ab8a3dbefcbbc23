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

func TestNewSchemaRejectsDuplicateNames(t *testing.T) {
	_, err := NewSchema("host", "job", "host")
	require.Error(t, err)
	var tszErr *Error
	require.ErrorAs(t, err, &tszErr)
	assert.Equal(t, KindDuplicateFieldName, tszErr.Kind)
}

func TestMakeFieldMapRejectsArityMismatch(t *testing.T) {
	s := MustNewSchema("host", "job")
	_, err := s.MakeFieldMap(StringValue("node01"))
	require.Error(t, err)
	var tszErr *Error
	require.ErrorAs(t, err, &tszErr)
	assert.Equal(t, KindSchemaArityMismatch, tszErr.Kind)
}

func TestMakeFieldMapCanonicalOrderIsIndependentOfDeclarationOrder(t *testing.T) {
	s1 := MustNewSchema("job", "host")
	m1 := s1.MustMakeFieldMap(StringValue("J1"), StringValue("node01"))

	s2 := MustNewSchema("host", "job")
	m2 := s2.MustMakeFieldMap(StringValue("node01"), StringValue("J1"))

	assert.True(t, m1.Equal(m2))
	assert.Equal(t, m1.CanonicalKey(), m2.CanonicalKey())

	v, ok := m1.Get("host")
	require.True(t, ok)
	assert.Equal(t, "node01", v.String())
}

func TestFieldMapGetMissingName(t *testing.T) {
	s := MustNewSchema("host")
	m := s.MustMakeFieldMap(StringValue("node01"))
	_, ok := m.Get("job")
	assert.False(t, ok)
}

func TestEmptyFieldMapCanonicalKey(t *testing.T) {
	assert.Equal(t, "", EmptyFieldMap.CanonicalKey())
}

func TestFieldMapCanonicalKeyDistinguishesKindAndValue(t *testing.T) {
	s := MustNewSchema("x")
	intMap := s.MustMakeFieldMap(Int64Value(1))
	floatMap := s.MustMakeFieldMap(Float64Value(1))
	assert.NotEqual(t, intMap.CanonicalKey(), floatMap.CanonicalKey())
}
