package search

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/record/field"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
)

// --- Fixtures ---

type mentor struct {
	Name       string
	Skills     []string
	Rating     float64
	Experience string
}

type project struct {
	Title       string
	Description string
	Skills      []string
	Duration    string
	Difficulty  string
}

var experienceBuckets = filter.MustBuckets(
	filter.Bucket{Label: "1-3", Interval: filter.Between(1, 3)},
	filter.Bucket{Label: "4-6", Interval: filter.Between(4, 6)},
	filter.Bucket{Label: "7+", Interval: filter.From(7)},
)

func mentorEngine(t *testing.T) *Engine[mentor] {
	t.Helper()
	schema, err := field.NewSchema(
		field.TextOf("name", func(m mentor) string { return m.Name }),
		field.ListOf("skills", func(m mentor) []string { return m.Skills }),
		field.NumberOf("rating", func(m mentor) float64 { return m.Rating }),
		field.NewLeadingInt("experience", func(m mentor) (string, bool) { return m.Experience, m.Experience != "" }),
	)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	e, err := NewEngine(schema,
		filter.InBucket("experience", "experience", experienceBuckets),
		filter.AtLeast("rating", "rating"),
		filter.Member("skill", "skills"),
		filter.Search("search", "name", "skills"),
	)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e
}

func projectEngine(t *testing.T) *Engine[project] {
	t.Helper()
	schema := field.MustSchema(
		field.TextOf("title", func(p project) string { return p.Title }),
		field.TextOf("description", func(p project) string { return p.Description }),
		field.ListOf("skills", func(p project) []string { return p.Skills }),
		field.TextOf("duration", func(p project) string { return p.Duration }),
		field.TextOf("difficulty", func(p project) string { return p.Difficulty }),
	)
	return MustEngine(schema,
		filter.Search("search", "title", "description"),
		filter.Member("skill", "skills"),
		filter.Equal("duration", "duration"),
		filter.Equal("difficulty", "difficulty"),
	)
}

func sampleMentors() []mentor {
	return []mentor{
		{Name: "Sarah Johnson", Skills: []string{"React", "AWS"}, Rating: 4.9, Experience: "8 years"},
		{Name: "Michael Chen", Skills: []string{"Python"}, Rating: 4.8, Experience: "6 years"},
	}
}

func names(ms []mentor) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}
	return out
}

// --- Construction ---

func TestNewEngine_StageOrder(t *testing.T) {
	e := mentorEngine(t)
	var got []string
	for _, st := range e.Stages() {
		got = append(got, st.Name())
	}
	want := []string{"search", "skill", "rating", "experience"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stage order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewEngine_Invalid(t *testing.T) {
	schema := field.MustSchema(
		field.TextOf("name", func(m mentor) string { return m.Name }),
		field.ListOf("skills", func(m mentor) []string { return m.Skills }),
		field.NumberOf("rating", func(m mentor) float64 { return m.Rating }),
	)
	tests := []struct {
		name    string
		stages  []filter.Stage
		wantErr error
	}{
		{"unknown field", []filter.Stage{filter.Member("skill", "tags")}, domain.ErrUnknownField},
		{"member on text", []filter.Stage{filter.Member("skill", "name")}, domain.ErrInvalidSchema},
		{"equal on list", []filter.Stage{filter.Equal("skill", "skills")}, domain.ErrInvalidSchema},
		{"threshold on text", []filter.Stage{filter.AtLeast("rating", "name")}, domain.ErrInvalidSchema},
		{"search on number", []filter.Stage{filter.Search("search", "rating")}, domain.ErrInvalidSchema},
		{"duplicate stage", []filter.Stage{
			filter.Member("skill", "skills"), filter.Search("skill", "name"),
		}, domain.ErrInvalidSchema},
		{"invalid stage", []filter.Stage{filter.Search("search")}, domain.ErrInvalidSchema},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(schema, tt.stages...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// --- Scenarios ---

func TestApply_SkillMembership(t *testing.T) {
	got := mentorEngine(t).Apply(sampleMentors(), filter.Criteria{"skill": "React"})
	if diff := cmp.Diff([]string{"Sarah Johnson"}, names(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_RatingThreshold(t *testing.T) {
	got := mentorEngine(t).Apply(sampleMentors(), filter.Criteria{"rating": "4.85"})
	if diff := cmp.Diff([]string{"Sarah Johnson"}, names(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_ExperienceBucket(t *testing.T) {
	e := mentorEngine(t)
	tests := []struct {
		bucket string
		want   []string
	}{
		{"7+", []string{"Sarah Johnson"}},
		{"4-6", []string{"Michael Chen"}},
		{"1-3", []string{}},
		{"10-20", []string{"Sarah Johnson", "Michael Chen"}},
	}
	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			got := e.Apply(sampleMentors(), filter.Criteria{"experience": tt.bucket})
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_SearchIsCaseInsensitiveOverSkills(t *testing.T) {
	got := mentorEngine(t).Apply(sampleMentors(), filter.Criteria{"search": "react"})
	if diff := cmp.Diff([]string{"Sarah Johnson"}, names(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got = mentorEngine(t).Apply(sampleMentors(), filter.Criteria{"search": "  CHEN "})
	if diff := cmp.Diff([]string{"Michael Chen"}, names(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_ProjectDifficulty(t *testing.T) {
	projects := []project{
		{Title: "Weather App", Description: "Realtime weather", Skills: []string{"React"},
			Duration: "1-2 weeks", Difficulty: "Easy"},
		{Title: "ML Classifier", Skills: []string{"Python"}, Duration: "1-2 months", Difficulty: "Hard"},
	}
	got := projectEngine(t).Apply(projects, filter.Criteria{"difficulty": "Easy"})
	if len(got) != 1 || got[0].Title != "Weather App" {
		t.Errorf("Apply() = %v, want [Weather App]", got)
	}

	got = projectEngine(t).Apply(projects, filter.Criteria{"difficulty": "easy"})
	if len(got) != 0 {
		t.Errorf("equality must be case-sensitive, got %v", got)
	}

	got = projectEngine(t).Apply(projects, filter.Criteria{"search": "WEATHER"})
	if len(got) != 1 || got[0].Title != "Weather App" {
		t.Errorf("search over description = %v", got)
	}
}

func TestApply_EmptyCollection(t *testing.T) {
	e := mentorEngine(t)
	got := e.Apply(nil, filter.Criteria{})
	if got == nil || len(got) != 0 {
		t.Errorf("Apply(nil) = %#v, want empty non-nil slice", got)
	}
	if s := e.Facets(nil, "skills"); s.Len() != 0 {
		t.Errorf("Facets(nil) = %v, want empty", s.Values())
	}
}

// --- Fail-open / fail-closed ---

func TestApply_MalformedCriteriaFailOpen(t *testing.T) {
	e := mentorEngine(t)
	all := sampleMentors()
	for _, c := range []filter.Criteria{
		{"rating": "five"},
		{"rating": "NaN"},
		{"experience": "ancient"},
		{"search": "   "},
		{"skill": ""},
		{"unknown": "x"},
	} {
		got := e.Apply(all, c)
		if diff := cmp.Diff(names(all), names(got)); diff != "" {
			t.Errorf("criteria %v should pass everything (-want +got):\n%s", c, diff)
		}
	}
}

func TestApply_MissingFieldsFailClosed(t *testing.T) {
	e := mentorEngine(t)
	records := []mentor{
		{Name: "No Skills", Rating: 4.9, Experience: "8 years"},
		{Name: "Vague", Skills: []string{"Go"}, Rating: 4.9, Experience: "many years"},
		{Name: "Empty", Skills: []string{"Go"}, Rating: 4.9},
	}

	if got := e.Apply(records, filter.Criteria{"skill": "Go"}); len(got) != 2 {
		t.Errorf("skill: got %v", names(got))
	}
	got := e.Apply(records, filter.Criteria{"experience": "7+"})
	if diff := cmp.Diff([]string{"No Skills"}, names(got)); diff != "" {
		t.Errorf("experience mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	records := sampleMentors()
	before := names(records)
	out := mentorEngine(t).Apply(records, filter.Criteria{})
	out[0].Name = "changed"
	if diff := cmp.Diff(before, names(records)); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

// --- Properties ---

func propertyMentors() []mentor {
	return []mentor{
		{Name: "Sarah Johnson", Skills: []string{"React", "Node.js", "AWS"}, Rating: 4.9, Experience: "8 years"},
		{Name: "Michael Chen", Skills: []string{"Python", "SQL"}, Rating: 4.8, Experience: "6 years"},
		{Name: "Emma Rodriguez", Skills: []string{"Figma"}, Rating: 4.7, Experience: "5 years"},
		{Name: "David Kim", Skills: []string{"Docker", "AWS"}, Rating: 4.6, Experience: "7 years"},
		{Name: "Lisa Wang", Skills: []string{"React Native", "Firebase"}, Rating: 4.9, Experience: "4 years"},
	}
}

var propertyCriteria = []filter.Criteria{
	{},
	{"search": "a"},
	{"search": "react"},
	{"skill": "AWS"},
	{"rating": "4.8"},
	{"experience": "4-6"},
	{"search": "a", "rating": "4.7"},
	{"skill": "AWS", "experience": "7+"},
	{"search": "react", "skill": "React", "rating": "4.5", "experience": "7+"},
}

func isSubsequence(sub, full []mentor) bool {
	i := 0
	for _, m := range full {
		if i < len(sub) && sub[i].Name == m.Name {
			i++
		}
	}
	return i == len(sub)
}

func TestProperty_IdentityOnEmptyCriteria(t *testing.T) {
	all := propertyMentors()
	got := mentorEngine(t).Apply(all, filter.Criteria{"search": "", "skill": "", "rating": "", "experience": ""})
	if diff := cmp.Diff(names(all), names(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestProperty_SubsequenceAndDeterminism(t *testing.T) {
	e := mentorEngine(t)
	all := propertyMentors()
	for _, c := range propertyCriteria {
		got := e.Apply(all, c)
		if !isSubsequence(got, all) {
			t.Errorf("criteria %v: %v is not a subsequence", c, names(got))
		}
		again := e.Apply(all, c)
		if diff := cmp.Diff(names(got), names(again)); diff != "" {
			t.Errorf("criteria %v: non-deterministic (-first +second):\n%s", c, diff)
		}
	}
}

func TestProperty_ComposingNarrowsLikeUnion(t *testing.T) {
	e := mentorEngine(t)
	all := propertyMentors()
	for _, c1 := range propertyCriteria {
		for _, c2 := range propertyCriteria {
			union := filter.Criteria{}
			for k, v := range c1 {
				union[k] = v
			}
			conflict := false
			for k, v := range c2 {
				if prev, ok := union[k]; ok && prev != v {
					conflict = true
				}
				union[k] = v
			}
			if conflict {
				continue
			}
			composed := e.Apply(e.Apply(all, c1), c2)
			direct := e.Apply(all, union)
			if diff := cmp.Diff(names(direct), names(composed)); diff != "" {
				t.Errorf("c1=%v c2=%v (-direct +composed):\n%s", c1, c2, diff)
			}
		}
	}
}

func TestProperty_ClearingWeakens(t *testing.T) {
	e := mentorEngine(t)
	all := propertyMentors()
	for _, c := range propertyCriteria {
		narrow := e.Apply(all, c)
		for name := range c {
			wide := e.Apply(all, c.Without(name))
			if !isSubsequence(narrow, wide) {
				t.Errorf("clearing %q from %v: %v not within %v", name, c, names(narrow), names(wide))
			}
		}
	}
}

// --- Facets ---

func TestFacets(t *testing.T) {
	e := mentorEngine(t)
	all := propertyMentors()

	skills := e.Facets(all, "skills")
	want := []string{"AWS", "Docker", "Figma", "Firebase", "Node.js", "Python", "React", "React Native", "SQL"}
	if diff := cmp.Diff(want, skills.Sorted()); diff != "" {
		t.Errorf("sorted skills mismatch (-want +got):\n%s", diff)
	}
	if skills.Values()[0] != "React" {
		t.Errorf("first-occurrence order lost: %v", skills.Values())
	}
	if skills.Count("AWS") != 2 {
		t.Errorf("Count(AWS) = %d, want 2", skills.Count("AWS"))
	}
	for _, v := range skills.Values() {
		found := false
		for _, m := range all {
			for _, s := range m.Skills {
				if s == v {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("facet value %q occurs on no record", v)
		}
	}

	if got := e.Facets(all, "rating").Sorted(); len(got) != 4 {
		t.Errorf("rating facets = %v, want 4 distinct", got)
	}
	if got := e.Facets(all, "nonexistent"); got.Len() != 0 {
		t.Errorf("unknown field facets = %v, want empty", got.Values())
	}
}

func TestUnknownAndActive(t *testing.T) {
	e := mentorEngine(t)
	c := filter.Criteria{"skill": "Go", "rating": "lots", "color": "blue", "search": ""}
	if diff := cmp.Diff([]string{"color"}, e.Unknown(c)); diff != "" {
		t.Errorf("Unknown mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(filter.Criteria{"skill": "Go"}, e.Active(c)); diff != "" {
		t.Errorf("Active mismatch (-want +got):\n%s", diff)
	}
}
