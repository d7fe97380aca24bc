package filter

import (
	"fmt"
	"math"
)

// Interval is a closed numeric interval [low, high], or [low, +inf) when unbounded.
type Interval struct {
	low       float64
	high      float64
	unbounded bool
}

// Between creates the closed interval [low, high].
func Between(low, high float64) Interval {
	return Interval{low: low, high: high}
}

// From creates the half-open interval [low, +inf).
func From(low float64) Interval {
	return Interval{low: low, unbounded: true}
}

// Low returns the inclusive lower bound.
func (i Interval) Low() float64 { return i.low }

// High returns the inclusive upper bound. ok is false for [low, +inf).
func (i Interval) High() (float64, bool) {
	if i.unbounded {
		return 0, false
	}
	return i.high, true
}

// Contains reports whether v lies inside the interval.
func (i Interval) Contains(v float64) bool {
	if math.IsNaN(v) || v < i.low {
		return false
	}
	return i.unbounded || v <= i.high
}

// Bucket names an interval, e.g. "4-6" -> [4, 6].
type Bucket struct {
	Label    string
	Interval Interval
}

// Buckets is an immutable lookup table from bucket label to interval.
type Buckets struct {
	labels    []string
	intervals map[string]Interval
}

// NewBuckets validates and creates a bucket table.
// Labels must be non-empty and unique; bounds must be finite numbers with low <= high.
func NewBuckets(buckets ...Bucket) (Buckets, error) {
	labels := make([]string, 0, len(buckets))
	intervals := make(map[string]Interval, len(buckets))
	for _, b := range buckets {
		if b.Label == "" {
			return Buckets{}, fmt.Errorf("bucket label is required")
		}
		if _, dup := intervals[b.Label]; dup {
			return Buckets{}, fmt.Errorf("duplicate bucket label %q", b.Label)
		}
		iv := b.Interval
		if math.IsNaN(iv.low) || math.IsInf(iv.low, 0) {
			return Buckets{}, fmt.Errorf("bucket %q: lower bound must be finite", b.Label)
		}
		if !iv.unbounded {
			if math.IsNaN(iv.high) || math.IsInf(iv.high, 0) {
				return Buckets{}, fmt.Errorf("bucket %q: upper bound must be finite", b.Label)
			}
			if iv.high < iv.low {
				return Buckets{}, fmt.Errorf("bucket %q: upper bound below lower bound", b.Label)
			}
		}
		labels = append(labels, b.Label)
		intervals[b.Label] = iv
	}
	return Buckets{labels: labels, intervals: intervals}, nil
}

// MustBuckets is NewBuckets that panics on error. Intended for package-level tables.
func MustBuckets(buckets ...Bucket) Buckets {
	b, err := NewBuckets(buckets...)
	if err != nil {
		panic(err)
	}
	return b
}

// Lookup returns the interval for a label.
func (b Buckets) Lookup(label string) (Interval, bool) {
	iv, ok := b.intervals[label]
	return iv, ok
}

// Labels returns the labels in declaration order.
func (b Buckets) Labels() []string { return append([]string(nil), b.labels...) }

// Len returns the number of buckets.
func (b Buckets) Len() int { return len(b.labels) }
