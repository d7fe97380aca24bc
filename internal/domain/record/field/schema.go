package field

import "fmt"

// Schema is an ordered set of uniquely named fields over records of type R.
type Schema[R any] struct {
	fields []Field[R]
	byName map[string]int
}

// NewSchema validates and creates a Schema.
// Names must be non-empty, at most MaxNameLength long and unique; every field needs an accessor.
func NewSchema[R any](fields ...Field[R]) (Schema[R], error) {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		if err := f.validate(); err != nil {
			return Schema[R]{}, err
		}
		if _, dup := byName[f.name]; dup {
			return Schema[R]{}, fmt.Errorf("duplicate field %q", f.name)
		}
		byName[f.name] = i
	}
	out := make([]Field[R], len(fields))
	copy(out, fields)
	return Schema[R]{fields: out, byName: byName}, nil
}

// MustSchema is NewSchema that panics on error. Intended for package-level schema tables.
func MustSchema[R any](fields ...Field[R]) Schema[R] {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Field looks up a field by name.
func (s Schema[R]) Field(name string) (Field[R], bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field[R]{}, false
	}
	return s.fields[i], true
}

// Fields returns the fields in declaration order.
func (s Schema[R]) Fields() []Field[R] {
	out := make([]Field[R], len(s.fields))
	copy(out, s.fields)
	return out
}

// Len returns the number of fields.
func (s Schema[R]) Len() int { return len(s.fields) }
