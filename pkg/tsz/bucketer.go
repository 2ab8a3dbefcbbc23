// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import (
	"fmt"
	"math"
	"sync"
)

// MaxNumFiniteBuckets is the clamp applied to num_finite_buckets by
// every Bucketer constructor.
const MaxNumFiniteBuckets = 5000

// Bucketer defines the bucket geometry of a Distribution. Bucketers
// are canonical: two Bucketers constructed with the same four
// parameters are the same *Bucketer, so equality is pointer equality.
//
// The exclusive upper bound of bucket i (0-indexed) is:
//
//	width*(i+1) + (growthFactor != 0 ? scaleFactor*growthFactor^i : 0)
type Bucketer struct {
	width            float64
	growthFactor     float64
	scaleFactor      float64
	numFiniteBuckets uint32
}

// Width returns the fixed per-bucket width.
func (b *Bucketer) Width() float64 { return b.width }

// GrowthFactor returns the exponential growth factor.
func (b *Bucketer) GrowthFactor() float64 { return b.growthFactor }

// ScaleFactor returns the exponential scale factor.
func (b *Bucketer) ScaleFactor() float64 { return b.scaleFactor }

// NumFiniteBuckets returns the number of finite buckets (excluding
// the implicit underflow/overflow buckets).
func (b *Bucketer) NumFiniteBuckets() int { return int(b.numFiniteBuckets) }

// LowerBound returns the inclusive lower bound of bucket i. The caller
// must ensure 0 <= i <= NumFiniteBuckets(); this is not checked.
func (b *Bucketer) LowerBound(i int) float64 {
	result := b.width * float64(i)
	if b.growthFactor != 0 {
		result += b.scaleFactor * math.Pow(b.growthFactor, float64(i-1))
	}
	return result
}

// UpperBound returns the exclusive upper bound of bucket i, i.e.
// LowerBound(i+1).
func (b *Bucketer) UpperBound(i int) float64 { return b.LowerBound(i + 1) }

// GetBucketFor performs a binary search over the bucket boundaries and
// returns the index of the bucket sample falls in. A negative result
// means the underflow bucket; a result >= NumFiniteBuckets() means the
// overflow bucket.
func (b *Bucketer) GetBucketFor(sample float64) int {
	i, j := 0, int(b.numFiniteBuckets)+1
	for j > i {
		k := i + (j-i)>>1
		l := b.LowerBound(k)
		switch {
		case sample < l:
			j = k
		case sample > l:
			i = k + 1
		default:
			return k
		}
	}
	return i - 1
}

func (b *Bucketer) String() string {
	return fmt.Sprintf("(%g, %g, %g, %d)", b.width, b.growthFactor, b.scaleFactor, b.numFiniteBuckets)
}

type bucketerKey struct {
	width            float64
	growthFactor     float64
	scaleFactor      float64
	numFiniteBuckets uint32
}

var (
	bucketerMu     sync.RWMutex
	bucketerByKey  = map[bucketerKey]*Bucketer{}
	defaultBuckets *Bucketer
	noneBuckets    *Bucketer
	bucketerOnce   sync.Once
)

// canonicalBucketer returns the single interned Bucketer for the given
// parameters, clamping numFiniteBuckets to MaxNumFiniteBuckets.
//
// The original C++ source interns Bucketers in a lock-free hash set;
// the idiomatic Go analog used here is a RWMutex-guarded map with the
// same "RLock, miss, upgrade to Lock, re-check" discipline
// internal/memorystore/level.go uses for its own lazy-create nodes.
func canonicalBucketer(width, growthFactor, scaleFactor float64, numFiniteBuckets uint32) *Bucketer {
	if numFiniteBuckets > MaxNumFiniteBuckets {
		numFiniteBuckets = MaxNumFiniteBuckets
	}
	key := bucketerKey{width, growthFactor, scaleFactor, numFiniteBuckets}

	bucketerMu.RLock()
	if b, ok := bucketerByKey[key]; ok {
		bucketerMu.RUnlock()
		return b
	}
	bucketerMu.RUnlock()

	bucketerMu.Lock()
	defer bucketerMu.Unlock()
	if b, ok := bucketerByKey[key]; ok {
		return b
	}
	b := &Bucketer{
		width:            width,
		growthFactor:     growthFactor,
		scaleFactor:      scaleFactor,
		numFiniteBuckets: numFiniteBuckets,
	}
	bucketerByKey[key] = b
	return b
}

// FixedWidth returns the canonical Bucketer with n buckets of constant
// width.
func FixedWidth(width float64, n uint32) *Bucketer {
	return canonicalBucketer(width, 0, 1, n)
}

// ScaledPowersOf returns the canonical Bucketer whose buckets grow as
// scale*base^i, up to approximately max.
func ScaledPowersOf(base, scale, max float64) *Bucketer {
	n := math.Max(1.0, 1+math.Ceil((math.Log(max)-math.Log(scale))/math.Log(base)))
	return canonicalBucketer(0, base, scale, uint32(math.Round(n)))
}

// PowersOf returns the canonical Bucketer whose buckets grow as
// base^i.
func PowersOf(base float64) *Bucketer {
	return ScaledPowersOf(base, 1.0, math.MaxUint32)
}

// Custom returns the canonical Bucketer for the given raw parameters.
func Custom(width, growthFactor, scaleFactor float64, numFiniteBuckets uint32) *Bucketer {
	return canonicalBucketer(width, growthFactor, scaleFactor, numFiniteBuckets)
}

// DefaultBucketer returns the canonical Bucketer used when a metric
// does not specify one: powers of 4.
func DefaultBucketer() *Bucketer {
	bucketerOnce.Do(func() {
		defaultBuckets = PowersOf(4)
		noneBuckets = Custom(0, 0, 0, 0)
	})
	return defaultBuckets
}

// NoneBucketer returns the canonical empty Bucketer: no finite
// buckets, only the implicit underflow/overflow counters.
func NoneBucketer() *Bucketer {
	bucketerOnce.Do(func() {
		defaultBuckets = PowersOf(4)
		noneBuckets = Custom(0, 0, 0, 0)
	})
	return noneBuckets
}
