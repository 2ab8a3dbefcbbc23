// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-metrics.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsz

import "math"

// Distribution is a histogram plus running moments (count, sum, mean,
// sum of squared deviations). It is not safe for concurrent use by
// itself; the metric value store serializes accesses to a cell's
// Distribution under the owning shard's lock.
type Distribution struct {
	bucketer  *Bucketer
	buckets   []uint64
	underflow uint64
	overflow  uint64
	count     uint64
	sum       float64
	mean      float64
	ssd       float64
}

// NewDistribution returns an empty Distribution bound to bucketer.
func NewDistribution(bucketer *Bucketer) *Distribution {
	if bucketer == nil {
		bucketer = DefaultBucketer()
	}
	return &Distribution{
		bucketer: bucketer,
		buckets:  make([]uint64, bucketer.NumFiniteBuckets()),
	}
}

// NewDefaultDistribution returns an empty Distribution using the
// canonical default Bucketer (powers of 4).
func NewDefaultDistribution() *Distribution {
	return NewDistribution(DefaultBucketer())
}

// Bucketer returns the Bucketer this Distribution was constructed
// with.
func (d *Distribution) Bucketer() *Bucketer { return d.bucketer }

// NumFiniteBuckets is a shortcut for Bucketer().NumFiniteBuckets().
func (d *Distribution) NumFiniteBuckets() int { return len(d.buckets) }

// Bucket returns the count of the i-th finite bucket.
func (d *Distribution) Bucket(i int) uint64 { return d.buckets[i] }

// Underflow returns the number of samples below the first bucket.
func (d *Distribution) Underflow() uint64 { return d.underflow }

// Overflow returns the number of samples at or above the last bucket.
func (d *Distribution) Overflow() uint64 { return d.overflow }

// Count returns the total number of recorded samples, including
// underflow and overflow.
func (d *Distribution) Count() uint64 { return d.count }

// Sum returns the sum of all recorded samples.
func (d *Distribution) Sum() float64 { return d.sum }

// Mean returns the running mean of all recorded samples.
func (d *Distribution) Mean() float64 { return d.mean }

// SumOfSquaredDeviations returns the running sum of squared
// deviations from the mean, maintained via the method of provisional
// means for numerical stability.
func (d *Distribution) SumOfSquaredDeviations() float64 { return d.ssd }

// Variance returns SumOfSquaredDeviations() / Count(). Returns 0 if
// Count() == 0.
func (d *Distribution) Variance() float64 {
	if d.count == 0 {
		return 0
	}
	return d.ssd / float64(d.count)
}

// StdDev returns the square root of Variance().
func (d *Distribution) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Empty reports whether Count() == 0.
func (d *Distribution) Empty() bool { return d.count == 0 }

// Record records a single occurrence of sample.
func (d *Distribution) Record(sample float64) { d.RecordMany(sample, 1) }

// RecordMany records sample as having occurred times times, updating
// the running moments via the provisional-means recurrence:
//
//	dev      = sample - mean
//	newMean  = mean + times*dev/count'
//	ssd     += times*dev*(sample - newMean)
//	mean     = newMean
func (d *Distribution) RecordMany(sample float64, times uint64) {
	if times == 0 {
		return
	}
	i := d.bucketer.GetBucketFor(sample)
	switch {
	case i < 0:
		d.underflow += times
	case i >= len(d.buckets):
		d.overflow += times
	default:
		d.buckets[i] += times
	}
	d.count += times
	d.sum += sample * float64(times)
	dev := sample - d.mean
	newMean := d.mean + float64(times)*dev/float64(d.count)
	d.ssd += float64(times) * dev * (sample - newMean)
	d.mean = newMean
}

// Add merges other into d. Both Distributions must share the same
// (canonical) Bucketer, otherwise a KindBucketerMismatch error is
// returned and d is left unmodified.
func (d *Distribution) Add(other *Distribution) error {
	if other.bucketer != d.bucketer {
		return newError(KindBucketerMismatch, "distributions use different bucketers (%s vs %s)", d.bucketer, other.bucketer)
	}
	for i := range d.buckets {
		d.buckets[i] += other.buckets[i]
	}
	d.underflow += other.underflow
	d.overflow += other.overflow

	oldCount := d.count
	d.count += other.count
	d.sum += other.sum

	oldMean := d.mean
	if d.count > 0 {
		d.mean = d.sum / float64(d.count)
	} else {
		d.mean = 0
	}
	d.ssd += other.ssd + float64(oldCount)*square(d.mean-oldMean) + float64(other.count)*square(d.mean-other.mean)
	return nil
}

func square(x float64) float64 { return x * x }

// Clear resets d to the empty state, keeping its Bucketer.
func (d *Distribution) Clear() {
	for i := range d.buckets {
		d.buckets[i] = 0
	}
	d.underflow = 0
	d.overflow = 0
	d.count = 0
	d.sum = 0
	d.mean = 0
	d.ssd = 0
}

// Clone returns a deep copy of d.
func (d *Distribution) Clone() *Distribution {
	buckets := make([]uint64, len(d.buckets))
	copy(buckets, d.buckets)
	return &Distribution{
		bucketer:  d.bucketer,
		buckets:   buckets,
		underflow: d.underflow,
		overflow:  d.overflow,
		count:     d.count,
		sum:       d.sum,
		mean:      d.mean,
		ssd:       d.ssd,
	}
}
