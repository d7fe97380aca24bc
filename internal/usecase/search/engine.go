package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/record/field"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/facet"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
)

// Engine derives filtered views and facets from a record collection.
// It holds only its validated configuration, so a single Engine can be shared
// across goroutines.
//
// Stages run in kind order: substring search, exact membership, exact equality,
// threshold, range. Stages of the same kind keep their declaration order.
type Engine[R any] struct {
	schema field.Schema[R]
	stages []compiledStage[R]
	byName map[string]int
}

type compiledStage[R any] struct {
	def    filter.Stage
	fields []field.Field[R]
}

// NewEngine validates stages against the schema and creates an Engine.
func NewEngine[R any](schema field.Schema[R], stages ...filter.Stage) (*Engine[R], error) {
	compiled := make([]compiledStage[R], 0, len(stages))
	seen := make(map[string]bool, len(stages))
	for _, st := range stages {
		if err := st.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSchema, err)
		}
		if seen[st.Name()] {
			return nil, fmt.Errorf("%w: duplicate stage %q", domain.ErrInvalidSchema, st.Name())
		}
		seen[st.Name()] = true

		fields, err := resolveFields(schema, st)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledStage[R]{def: st, fields: fields})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].def.Kind().Rank() < compiled[j].def.Kind().Rank()
	})

	byName := make(map[string]int, len(compiled))
	for i, c := range compiled {
		byName[c.def.Name()] = i
	}
	return &Engine[R]{schema: schema, stages: compiled, byName: byName}, nil
}

// MustEngine is NewEngine that panics on error. Intended for package-level configuration tables.
func MustEngine[R any](schema field.Schema[R], stages ...filter.Stage) *Engine[R] {
	e, err := NewEngine(schema, stages...)
	if err != nil {
		panic(err)
	}
	return e
}

// resolveFields checks that every field the stage names exists and has a type
// the stage kind can test.
func resolveFields[R any](schema field.Schema[R], st filter.Stage) ([]field.Field[R], error) {
	names := st.Fields()
	out := make([]field.Field[R], 0, len(names))
	for _, name := range names {
		f, ok := schema.Field(name)
		if !ok {
			return nil, fmt.Errorf("%w: stage %q references %q", domain.ErrUnknownField, st.Name(), name)
		}
		if !kindAccepts(st.Kind(), f.FieldType()) {
			return nil, fmt.Errorf("%w: %s stage %q cannot test %s field %q",
				domain.ErrInvalidSchema, st.Kind(), st.Name(), f.FieldType(), name)
		}
		out = append(out, f)
	}
	return out, nil
}

func kindAccepts(k filter.Kind, t field.Type) bool {
	switch k {
	case filter.Substring:
		return t == field.Text || t == field.List
	case filter.Membership:
		return t == field.List
	case filter.Equality:
		return t == field.Text
	case filter.Threshold, filter.Range:
		return t == field.Number
	default:
		return false
	}
}

// Stages returns the stage definitions in evaluation order.
func (e *Engine[R]) Stages() []filter.Stage {
	out := make([]filter.Stage, len(e.stages))
	for i, c := range e.stages {
		out[i] = c.def
	}
	return out
}

// Schema returns the record schema the engine was built against.
func (e *Engine[R]) Schema() field.Schema[R] { return e.schema }

// Unknown returns the non-empty criteria names that match no stage, sorted.
func (e *Engine[R]) Unknown(c filter.Criteria) []string {
	var out []string
	for _, name := range c.Names() {
		if _, ok := e.byName[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// Active returns the subset of c that will constrain Apply: values for known stages
// that are neither unset nor malformed. Two criteria with equal Active sets always
// produce the same result.
func (e *Engine[R]) Active(c filter.Criteria) filter.Criteria {
	out := make(filter.Criteria)
	for _, st := range e.stages {
		raw := c.Get(st.def.Name())
		if _, ok := st.predicate(raw); ok {
			out[st.def.Name()] = raw
		}
	}
	return out
}

// Apply returns the records that satisfy every active criterion, in input order.
// It never mutates records and always returns a fresh slice.
func (e *Engine[R]) Apply(records []R, c filter.Criteria) []R {
	preds := make([]func(R) bool, 0, len(e.stages))
	for _, st := range e.stages {
		if p, ok := st.predicate(c.Get(st.def.Name())); ok {
			preds = append(preds, p)
		}
	}

	out := make([]R, 0, len(records))
	for _, r := range records {
		if matchesAll(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAll[R any](r R, preds []func(R) bool) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// Facets returns the distinct values of the named field across records.
// List fields are flattened. An unknown field yields an empty set.
func (e *Engine[R]) Facets(records []R, fieldName string) facet.Set {
	f, ok := e.schema.Field(fieldName)
	if !ok {
		return facet.Set{}
	}
	var b facet.Builder
	for _, r := range records {
		for _, v := range f.Values(r) {
			b.Add(v)
		}
	}
	return b.Set()
}

// predicate compiles the stage for a raw criterion value.
// ok is false when the stage does not constrain: the value is unset, or it is
// malformed for a kind that fails open (threshold, range).
func (s compiledStage[R]) predicate(raw string) (func(R) bool, bool) {
	switch s.def.Kind() {
	case filter.Substring:
		q, ok := filter.NormalizeQuery(raw)
		if !ok {
			return nil, false
		}
		return func(r R) bool { return s.containsQuery(r, q) }, true

	case filter.Membership:
		if raw == "" {
			return nil, false
		}
		f := s.fields[0]
		return func(r R) bool {
			list, ok := f.List(r)
			if !ok {
				return false
			}
			for _, v := range list {
				if v == raw {
					return true
				}
			}
			return false
		}, true

	case filter.Equality:
		if raw == "" {
			return nil, false
		}
		f := s.fields[0]
		return func(r R) bool {
			v, ok := f.Text(r)
			return ok && v == raw
		}, true

	case filter.Threshold:
		threshold, ok := filter.ParseThreshold(raw)
		if !ok {
			return nil, false
		}
		f := s.fields[0]
		return func(r R) bool {
			v, ok := f.Number(r)
			return ok && v >= threshold
		}, true

	case filter.Range:
		iv, ok := s.def.Buckets().Lookup(raw)
		if !ok {
			return nil, false
		}
		f := s.fields[0]
		return func(r R) bool {
			v, ok := f.Number(r)
			return ok && iv.Contains(v)
		}, true
	}
	return nil, false
}

func (s compiledStage[R]) containsQuery(r R, q string) bool {
	for _, f := range s.fields {
		for _, v := range f.Values(r) {
			if strings.Contains(strings.ToLower(v), q) {
				return true
			}
		}
	}
	return false
}
