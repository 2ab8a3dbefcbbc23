// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

// TimeUnit selects how a LatencyRecorder converts an elapsed duration
// into the float64 it records.
type TimeUnit int

const (
	Nanosecond TimeUnit = iota
	Microsecond
	Millisecond
	Second
)

func (u TimeUnit) String() string {
	switch u {
	case Nanosecond:
		return "ns"
	case Microsecond:
		return "us"
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	default:
		return "?"
	}
}

// divisor is the number of nanoseconds in one of u, used to convert a
// time.Duration into the chosen unit's float64 representation.
func (u TimeUnit) divisor() float64 {
	switch u {
	case Nanosecond:
		return 1
	case Microsecond:
		return 1e3
	case Second:
		return 1e9
	case Millisecond:
		fallthrough
	default:
		return 1e6
	}
}

// Options configures a metric's optional behavior.
type Options struct {
	// TimeUnit is consulted by LatencyRecorder to convert elapsed
	// durations. Unused by non-EventMetric facades. Defaults to
	// Millisecond when left at its zero value only if explicitly
	// requested via DefaultOptions(); a bare Options{} has TimeUnit ==
	// Nanosecond (iota zero) like any Go zero value, so metrics that
	// care about the default should use DefaultOptions().
	TimeUnit TimeUnit
	// Bucketer overrides the Bucketer an EventMetric's Distributions
	// are created with. Nil means DefaultBucketer().
	Bucketer *Bucketer
}

// DefaultOptions returns the Options a metric gets when none are
// given explicitly: millisecond time unit, default bucketer.
func DefaultOptions() Options {
	return Options{TimeUnit: Millisecond}
}

func (o Options) bucketer() *Bucketer {
	if o.Bucketer != nil {
		return o.Bucketer
	}
	return DefaultBucketer()
}
