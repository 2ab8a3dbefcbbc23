// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClockAdvance(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)
	assert.Equal(t, start, c.Now())

	c.Advance(5 * time.Second)
	assert.Equal(t, start.Add(5*time.Second), c.Now())
}

func TestSetClockForTestingOverridesAndRestores(t *testing.T) {
	mc := NewManualClock(time.Unix(0, 0))
	restore := SetClockForTesting(mc)

	assert.Equal(t, mc.Now(), currentClock().Now())

	restore.Restore()
	assert.NotEqual(t, mc, currentClock())

	// Restore is idempotent.
	restore.Restore()
}
