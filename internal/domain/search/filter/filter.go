package filter

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Criteria maps stage names to raw filter values, as they arrive from a search box,
// dropdown or query string. A missing or empty value leaves the stage unset.
type Criteria map[string]string

// Get returns the raw value for a stage name ("" when unset).
func (c Criteria) Get(name string) string { return c[name] }

// With returns a copy of c with name set to value.
func (c Criteria) With(name, value string) Criteria {
	out := make(Criteria, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	out[name] = value
	return out
}

// Without returns a copy of c with name cleared.
func (c Criteria) Without(name string) Criteria {
	out := make(Criteria, len(c))
	for k, v := range c {
		if k != name {
			out[k] = v
		}
	}
	return out
}

// Names returns the names carrying a non-empty value, sorted.
func (c Criteria) Names() []string {
	names := make([]string, 0, len(c))
	for k, v := range c {
		if v != "" {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// IsEmpty reports whether no stage carries a value.
func (c Criteria) IsEmpty() bool {
	for _, v := range c {
		if v != "" {
			return false
		}
	}
	return true
}

// Kind is the predicate family of a stage.
type Kind string

// Stage kinds, listed in evaluation order.
const (
	// Substring is a case-insensitive containment test OR-combined across fields.
	Substring  Kind = "search"
	Membership Kind = "member"
	Equality   Kind = "equal"
	Threshold  Kind = "at_least"
	// Range maps a bucket label to a numeric interval.
	Range Kind = "bucket"
)

var kindRank = map[Kind]int{
	Substring:  0,
	Membership: 1,
	Equality:   2,
	Threshold:  3,
	Range:      4,
}

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	_, ok := kindRank[k]
	return ok
}

// Rank returns the evaluation position of the kind.
func (k Kind) Rank() int {
	if r, ok := kindRank[k]; ok {
		return r
	}
	return len(kindRank)
}

// Stage declares one predicate of a pipeline: which criterion it reads and which fields it tests.
type Stage struct {
	name    string
	kind    Kind
	fields  []string
	buckets Buckets
}

// Search declares a substring stage over one or more text or list fields.
func Search(name string, fields ...string) Stage {
	return Stage{name: name, kind: Substring, fields: append([]string(nil), fields...)}
}

// Member declares an exact-membership stage over a list field.
func Member(name, field string) Stage {
	return Stage{name: name, kind: Membership, fields: []string{field}}
}

// Equal declares an exact-equality stage over a text field.
func Equal(name, field string) Stage {
	return Stage{name: name, kind: Equality, fields: []string{field}}
}

// AtLeast declares a threshold stage over a number field.
func AtLeast(name, field string) Stage {
	return Stage{name: name, kind: Threshold, fields: []string{field}}
}

// InBucket declares a range stage over a number field using a bucket table.
func InBucket(name, field string, b Buckets) Stage {
	return Stage{name: name, kind: Range, fields: []string{field}, buckets: b}
}

// Name returns the criterion name the stage reads.
func (s Stage) Name() string { return s.name }

// Kind returns the predicate family.
func (s Stage) Kind() Kind { return s.kind }

// Fields returns the field names the stage tests.
func (s Stage) Fields() []string { return append([]string(nil), s.fields...) }

// Buckets returns the bucket table (empty for non-range stages).
func (s Stage) Buckets() Buckets { return s.buckets }

// Validate checks the stage definition on its own, without a schema.
func (s Stage) Validate() error {
	if s.name == "" {
		return fmt.Errorf("stage name is required")
	}
	if !s.kind.IsValid() {
		return fmt.Errorf("invalid stage kind %q for %q", s.kind, s.name)
	}
	if len(s.fields) == 0 {
		return fmt.Errorf("stage %q needs at least one field", s.name)
	}
	for _, f := range s.fields {
		if f == "" {
			return fmt.Errorf("stage %q has an empty field name", s.name)
		}
	}
	if s.kind == Range && s.buckets.Len() == 0 {
		return fmt.Errorf("bucket stage %q needs at least one bucket", s.name)
	}
	return nil
}

// ParseThreshold parses a threshold criterion. ok is false for empty,
// unparsable or NaN input, in which case the stage is skipped.
func ParseThreshold(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// NormalizeQuery trims and lowercases a substring query. ok is false when nothing is left.
func NormalizeQuery(raw string) (string, bool) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", false
	}
	return strings.ToLower(q), true
}
