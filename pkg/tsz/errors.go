// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import "fmt"

// Kind classifies the error conditions the tsz core can raise. Most
// write-path violations are programmer bugs and are fatal rather than
// returned (see package store), but schema construction errors and
// Distribution merge errors are ordinary recoverable errors.
type Kind int

const (
	// KindTypeMismatch: a cell bound to one value variant was written
	// with a value of a different variant.
	KindTypeMismatch Kind = iota
	// KindBucketerMismatch: Distribution.Add of distributions with
	// different bucketers.
	KindBucketerMismatch
	// KindDuplicateFieldName: a dynamic field schema was constructed
	// with two fields sharing a name.
	KindDuplicateFieldName
	// KindSchemaArityMismatch: a caller passed the wrong number of
	// field values for a schema.
	KindSchemaArityMismatch
)

func (k Kind) String() string {
	switch k {
	case KindTypeMismatch:
		return "type mismatch"
	case KindBucketerMismatch:
		return "bucketer mismatch"
	case KindDuplicateFieldName:
		return "duplicate field name"
	case KindSchemaArityMismatch:
		return "schema arity mismatch"
	default:
		return "unknown tsz error"
	}
}

// Error is the error type returned by the tsz core for schema and
// Distribution merge errors. No Error is built for a type mismatch:
// package store reports that through its fatal handler with a
// formatted message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("tsz: %s: %s", e.Kind, e.Message)
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
