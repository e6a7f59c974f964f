// Log-scale confirmation-age accumulator shared by every run in a batch.

package sim

import "math"

// Bucketing constants. The age axis spans NegativeOrders decades below
// one second and PositiveOrders decades above it, at BucketsPerOrder
// buckets per decade.
const (
	NegativeOrders  = 1
	PositiveOrders  = 10
	BucketsPerOrder = 1000
	NumBuckets      = BucketsPerOrder * (PositiveOrders + NegativeOrders)
)

// Histogram accumulates confirmation ages across an entire batch of runs.
// It is the only cross-run state: the simulator passes one instance by
// pointer into every run and never resets it. Not safe for concurrent
// use; parallel callers accumulate into per-run instances and Merge.
type Histogram struct {
	Buckets  [NumBuckets]int64
	Smallest int   // lowest populated index; NumBuckets until first observation
	Largest  int   // highest populated index; -1 until first observation
	Total    int64 // observations recorded
	Clamped  int64 // observations whose raw index fell outside [0, NumBuckets)
}

// NewHistogram returns an empty histogram with inverted extents, so the
// reporter's Smallest..Largest walk visits nothing until an observation
// lands.
func NewHistogram() *Histogram {
	return &Histogram{Smallest: NumBuckets, Largest: -1}
}

// BucketFor maps a confirmation age in seconds to its raw bucket index,
// which may fall outside [0, NumBuckets) for extreme ages. Non-positive
// ages (a transaction cleared the instant it arrived) map to bucket 0,
// keeping log10 out of undefined territory.
func BucketFor(age float64) int {
	if age <= 0 {
		return 0
	}
	return int(math.Ceil(BucketsPerOrder*math.Log10(age))) + NegativeOrders*BucketsPerOrder
}

// RepresentativeAge returns the age in seconds a bucket index stands for
// in the report, the inverse of the BucketFor transform.
func RepresentativeAge(bucket int) float64 {
	return math.Pow(10.0, float64(bucket-NegativeOrders*BucketsPerOrder)/BucketsPerOrder)
}

// Observe records one confirmation age and returns the bucket it landed
// in. Out-of-range indices are clamped to the nearest valid bucket and
// counted in Clamped so tests can tell misattribution from real data.
func (h *Histogram) Observe(age float64) int {
	b := BucketFor(age)
	if b < 0 {
		b = 0
		h.Clamped++
	} else if b >= NumBuckets {
		b = NumBuckets - 1
		h.Clamped++
	}
	h.Buckets[b]++
	if b < h.Smallest {
		h.Smallest = b
	}
	if b > h.Largest {
		h.Largest = b
	}
	h.Total++
	return b
}

// Merge folds other into h: per-bucket counts and totals are summed,
// extents widened. This is the combine step for callers that ran each
// run against its own histogram in parallel.
func (h *Histogram) Merge(other *Histogram) {
	for i, c := range other.Buckets {
		h.Buckets[i] += c
	}
	if other.Smallest < h.Smallest {
		h.Smallest = other.Smallest
	}
	if other.Largest > h.Largest {
		h.Largest = other.Largest
	}
	h.Total += other.Total
	h.Clamped += other.Clamped
}
