// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package expo

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	cclog "github.com/ClusterCockpit/cc-lib/v2/ccLogger"
	"github.com/ClusterCockpit/cc-metrics/pkg/tsz"
	"github.com/ClusterCockpit/cc-metrics/pkg/tsz/store"
)

// WriteText walks s and writes one self-describing line per cell to
// w, in the format:
//
//	metric_name entity={k1=v1,k2=v2} fields={f1=v1,f2=v2} value=<formatted>
//
// Entity/field label syntax is shared: comma-joined `name=value` pairs
// in canonical (sorted) order. Value formatting is per-variant: a bare
// integer or float literal, a quoted string, or, for a Distribution, a
// bucket-and-moment block.
//
// A malformed cell never aborts the walk: it is logged and skipped
// instead, so one bad cell can't take down the whole exposition
// response.
func WriteText(w io.Writer, s *store.Store) error {
	bw := bufio.NewWriter(w)
	var walkErr error
	s.Walk(func(r store.Record) {
		if walkErr != nil {
			return
		}
		if err := writeRecord(bw, r); err != nil {
			walkErr = err
		}
	})
	if walkErr != nil {
		return walkErr
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, r store.Record) error {
	var b strings.Builder
	b.WriteString(r.Metric)
	b.WriteString(" entity={")
	writeFieldMap(&b, r.Entity.Labels())
	b.WriteString("} fields={")
	writeFieldMap(&b, r.Fields)
	b.WriteString("} value=")
	if err := writeValue(&b, r.Value); err != nil {
		cclog.Warnf("[tsz/expo]> skipping cell %q: %s", r.Metric, err)
		return nil
	}
	b.WriteByte('\n')
	_, err := w.WriteString(b.String())
	return err
}

func writeFieldMap(b *strings.Builder, m tsz.FieldMap) {
	for i := 0; i < m.Len(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(m.Name(i))
		b.WriteByte('=')
		b.WriteString(m.Value(i).Format())
	}
}

func writeValue(b *strings.Builder, v tsz.Value) error {
	switch v.Kind() {
	case tsz.KindInt64:
		fmt.Fprintf(b, "%d", v.Int64())
	case tsz.KindFloat64:
		fmt.Fprintf(b, "%g", v.Float64())
	case tsz.KindBool:
		fmt.Fprintf(b, "%t", v.Bool())
	case tsz.KindString:
		fmt.Fprintf(b, "%q", v.String())
	case tsz.KindDistribution:
		writeDistribution(b, v.Distribution())
	default:
		return fmt.Errorf("unrecognized value kind %d", v.Kind())
	}
	return nil
}

func writeDistribution(b *strings.Builder, d *tsz.Distribution) {
	fmt.Fprintf(b, "dist{count=%d sum=%g mean=%g ssd=%g underflow=%d overflow=%d buckets=[",
		d.Count(), d.Sum(), d.Mean(), d.SumOfSquaredDeviations(), d.Underflow(), d.Overflow())
	for i := 0; i < d.NumFiniteBuckets(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, "%d", d.Bucket(i))
	}
	b.WriteString("]}")
}
