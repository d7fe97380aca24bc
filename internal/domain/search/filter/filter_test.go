package filter

import (
	"math"
	"strings"
	"testing"
)

// --- Criteria tests ---

func TestCriteria_WithWithoutDoNotMutate(t *testing.T) {
	c := Criteria{"skill": "React"}

	c2 := c.With("rating", "4.5")
	if _, ok := c["rating"]; ok {
		t.Error("With mutated the receiver")
	}
	if c2.Get("rating") != "4.5" || c2.Get("skill") != "React" {
		t.Errorf("With() = %v", c2)
	}

	c3 := c2.Without("skill")
	if c2.Get("skill") != "React" {
		t.Error("Without mutated the receiver")
	}
	if c3.Get("skill") != "" {
		t.Errorf("Without() = %v", c3)
	}
}

func TestCriteria_IsEmptyAndNames(t *testing.T) {
	if !(Criteria{}).IsEmpty() {
		t.Error("empty map should be empty")
	}
	if !(Criteria{"search": "", "skill": ""}).IsEmpty() {
		t.Error("all-empty values should be empty")
	}
	c := Criteria{"skill": "Go", "search": "", "rating": "4"}
	if c.IsEmpty() {
		t.Error("expected non-empty criteria")
	}
	names := c.Names()
	if len(names) != 2 || names[0] != "rating" || names[1] != "skill" {
		t.Errorf("Names() = %v, want [rating skill]", names)
	}
}

// --- Stage tests ---

func TestKind_Rank(t *testing.T) {
	order := []Kind{Substring, Membership, Equality, Threshold, Range}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("%s should rank before %s", order[i-1], order[i])
		}
	}
	if Kind("fuzzy").IsValid() {
		t.Error("unknown kind should be invalid")
	}
	if Kind("fuzzy").Rank() <= Range.Rank() {
		t.Error("unknown kind should rank last")
	}
}

func TestStage_Validate(t *testing.T) {
	buckets := MustBuckets(Bucket{Label: "1-3", Interval: Between(1, 3)})
	tests := []struct {
		name   string
		stage  Stage
		errSub string
	}{
		{"search ok", Search("search", "name", "skills"), ""},
		{"member ok", Member("skill", "skills"), ""},
		{"bucket ok", InBucket("experience", "experience", buckets), ""},
		{"no name", Equal("", "duration"), "name is required"},
		{"no fields", Search("search"), "at least one field"},
		{"empty field", Search("search", "name", ""), "empty field"},
		{"no buckets", InBucket("experience", "experience", Buckets{}), "at least one bucket"},
		{"bad kind", Stage{name: "x", kind: "fuzzy", fields: []string{"a"}}, "invalid stage kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stage.Validate()
			if tt.errSub == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("error = %q, want substring %q", err, tt.errSub)
			}
		})
	}
}

func TestStage_FieldsIsACopy(t *testing.T) {
	s := Search("search", "title", "description")
	f := s.Fields()
	f[0] = "mutated"
	if s.Fields()[0] != "title" {
		t.Error("Fields() exposed internal slice")
	}
}

func TestParseThreshold(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"4.5", 4.5, true},
		{" 4.0 ", 4, true},
		{"4.85", 4.85, true},
		{"", 0, false},
		{"   ", 0, false},
		{"high", 0, false},
		{"NaN", 0, false},
		{"4.5 stars", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParseThreshold(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("ParseThreshold(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNormalizeQuery(t *testing.T) {
	if q, ok := NormalizeQuery("  ReAct "); !ok || q != "react" {
		t.Errorf("NormalizeQuery = (%q, %v)", q, ok)
	}
	if _, ok := NormalizeQuery(" \t "); ok {
		t.Error("whitespace-only query should be unset")
	}
}

// --- Bucket tests ---

func TestInterval_Contains(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		v    float64
		want bool
	}{
		{"closed low edge", Between(4, 6), 4, true},
		{"closed high edge", Between(4, 6), 6, true},
		{"closed below", Between(4, 6), 3, false},
		{"closed above", Between(4, 6), 7, false},
		{"open low edge", From(7), 7, true},
		{"open far", From(7), 40, true},
		{"open below", From(7), 6, false},
		{"nan", From(0), math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.Contains(tt.v); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestInterval_High(t *testing.T) {
	if h, ok := Between(1, 3).High(); !ok || h != 3 {
		t.Errorf("High() = (%v, %v)", h, ok)
	}
	if _, ok := From(7).High(); ok {
		t.Error("unbounded interval should have no upper bound")
	}
}

func TestNewBuckets(t *testing.T) {
	b, err := NewBuckets(
		Bucket{Label: "1-3", Interval: Between(1, 3)},
		Bucket{Label: "7+", Interval: From(7)},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d", b.Len())
	}
	if labels := b.Labels(); labels[0] != "1-3" || labels[1] != "7+" {
		t.Errorf("Labels() = %v", labels)
	}
	if _, ok := b.Lookup("4-6"); ok {
		t.Error("unexpected bucket 4-6")
	}
	if iv, ok := b.Lookup("7+"); !ok || iv.Low() != 7 {
		t.Errorf("Lookup(7+) = (%v, %v)", iv, ok)
	}
}

func TestNewBuckets_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		buckets []Bucket
		errSub  string
	}{
		{"empty label", []Bucket{{Label: "", Interval: From(1)}}, "label is required"},
		{"duplicate", []Bucket{{Label: "a", Interval: From(1)}, {Label: "a", Interval: From(2)}}, "duplicate"},
		{"inverted", []Bucket{{Label: "a", Interval: Between(5, 1)}}, "below lower"},
		{"nan low", []Bucket{{Label: "a", Interval: From(math.NaN())}}, "finite"},
		{"inf high", []Bucket{{Label: "a", Interval: Between(1, math.Inf(1))}}, "finite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuckets(tt.buckets...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("error = %q, want substring %q", err, tt.errSub)
			}
		})
	}
}
