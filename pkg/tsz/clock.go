// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock abstracts the passage of time so LatencyRecorder can be
// tested without sleeping. The real implementation wraps time.Now;
// tests install a ManualClock via SetClockForTesting.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var (
	defaultClock Clock = realClock{}

	// clockOverridden lets currentClock check for an override with an
	// atomic load instead of taking clockMu on every call, so reading
	// the clock on the hot path costs nothing when no override is
	// installed.
	clockOverridden atomic.Bool
	clockMu         sync.Mutex
	overrideClock   Clock
)

// currentClock returns the active Clock: the override if one is
// installed, otherwise the real clock. The overridden flag is read
// without taking clockMu, so the common (non-test) case never
// contends on a lock.
func currentClock() Clock {
	if clockOverridden.Load() {
		clockMu.Lock()
		c := overrideClock
		clockMu.Unlock()
		return c
	}
	return defaultClock
}

// ClockOverride is an RAII-style guard returned by SetClockForTesting.
// Restore() must be called (typically via defer) to revert to the
// real clock.
type ClockOverride struct {
	restored atomic.Bool
}

// Restore reverts the clock override installed by SetClockForTesting.
// Safe to call more than once; only the first call has an effect.
func (g *ClockOverride) Restore() {
	if g.restored.CompareAndSwap(false, true) {
		clockMu.Lock()
		overrideClock = nil
		clockMu.Unlock()
		clockOverridden.Store(false)
	}
}

// SetClockForTesting installs c as the process-wide clock used by
// LatencyRecorder and returns a guard to revert it. Intended for
// tests only.
func SetClockForTesting(c Clock) *ClockOverride {
	clockMu.Lock()
	overrideClock = c
	clockMu.Unlock()
	clockOverridden.Store(true)
	return &ClockOverride{}
}

// ManualClock is a Clock whose Now() is advanced explicitly by test
// code, used to make latency measurements deterministic in tests.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a ManualClock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
