// Package facet holds distinct-value sets used to populate filter option lists.
package facet

import (
	"encoding/json"
	"sort"
)

// Set is a set of distinct field values that remembers first-occurrence order
// and how many times each value was seen. The zero value is an empty set.
type Set struct {
	order  []string
	counts map[string]int
}

// NewSet builds a set from values, counting repeats.
func NewSet(values ...string) Set {
	var s Set
	for _, v := range values {
		s.add(v)
	}
	return s
}

// Builder accumulates values into a Set.
type Builder struct {
	set Set
}

// Add records one occurrence of v.
func (b *Builder) Add(v string) { b.set.add(v) }

// Set returns the accumulated set. The builder must not be used afterwards.
func (b *Builder) Set() Set { return b.set }

func (s *Set) add(v string) {
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	if _, seen := s.counts[v]; !seen {
		s.order = append(s.order, v)
	}
	s.counts[v]++
}

// Len returns the number of distinct values.
func (s Set) Len() int { return len(s.order) }

// Contains reports whether v occurs in the set.
func (s Set) Contains(v string) bool {
	_, ok := s.counts[v]
	return ok
}

// Count returns how many times v was seen (0 when absent).
func (s Set) Count(v string) int { return s.counts[v] }

// Values returns the distinct values in first-occurrence order.
func (s Set) Values() []string {
	return append([]string{}, s.order...)
}

// Sorted returns the distinct values in ordinal (byte-wise) order.
func (s Set) Sorted() []string {
	out := s.Values()
	sort.Strings(out)
	return out
}

// Counts returns a copy of the per-value occurrence counts.
func (s Set) Counts() map[string]int {
	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the set as a list in first-occurrence order.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}
