package mentorhub

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/record/field"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
)

const tagKey = "mentorhub"

// SearchFilter is the filter name of the free-text stage every index gets
// when it declares at least one text or list field.
const SearchFilter = "search"

// Tag field types.
const (
	TagText       = "text"
	TagList       = "list"
	TagNumber     = "number"
	TagLeadingInt = "leading_int"
)

// FieldInfo describes one indexed field of a typed index.
type FieldInfo struct {
	Name string
	Type string
}

// schemaMeta holds parsed struct tag metadata, cached per Index.
type schemaMeta[T any] struct {
	typ      reflect.Type
	infos    []FieldInfo
	schema   field.Schema[T]
	stages   []filter.Stage
	byName   map[string]string // field name → tag type
	searched []string
}

// parseSchema reflects on T and builds the field schema and filter stages.
func parseSchema[T any]() (*schemaMeta[T], error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("mentorhub: type %s is not a struct", t)
	}

	meta := &schemaMeta[T]{typ: t, byName: make(map[string]string)}
	var fields []field.Field[T]
	for i := range t.NumField() {
		sf := t.Field(i)
		tag := sf.Tag.Get(tagKey)
		if tag == "" || tag == "-" {
			continue
		}
		f, err := meta.applyTag(i, sf, tag)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("mentorhub: no `%s` tags in %s", tagKey, t)
	}

	schema, err := field.NewSchema(fields...)
	if err != nil {
		return nil, fmt.Errorf("mentorhub: %w: %w", domain.ErrInvalidSchema, err)
	}
	meta.schema = schema
	meta.stages = meta.buildStages()
	return meta, nil
}

// applyTag validates a single struct field tag and returns its accessor.
func (m *schemaMeta[T]) applyTag(idx int, sf reflect.StructField, tag string) (field.Field[T], error) {
	name, typ, _ := strings.Cut(tag, ",")
	if name == "" {
		name = strings.ToLower(sf.Name)
	}
	if !sf.IsExported() {
		return field.Field[T]{}, fmt.Errorf("mentorhub: field %s is unexported", sf.Name)
	}
	if name == SearchFilter {
		return field.Field[T]{}, fmt.Errorf("mentorhub: field name %q is reserved (field %s)", name, sf.Name)
	}
	if _, dup := m.byName[name]; dup {
		return field.Field[T]{}, fmt.Errorf("mentorhub: duplicate field name %q on field %s", name, sf.Name)
	}

	var f field.Field[T]
	switch typ {
	case TagText:
		if sf.Type.Kind() != reflect.String {
			return f, kindError(sf, typ)
		}
		f = field.TextOf(name, func(r T) string { return structField(r, idx).String() })
		m.searched = append(m.searched, name)
	case TagList:
		if sf.Type.Kind() != reflect.Slice || sf.Type.Elem().Kind() != reflect.String {
			return f, kindError(sf, typ)
		}
		f = field.ListOf(name, func(r T) []string { return toStrings(structField(r, idx)) })
		m.searched = append(m.searched, name)
	case TagNumber:
		if !isNumeric(sf.Type.Kind()) {
			return f, kindError(sf, typ)
		}
		f = field.NumberOf(name, func(r T) float64 { return toFloat64(structField(r, idx)) })
	case TagLeadingInt:
		if sf.Type.Kind() != reflect.String {
			return f, kindError(sf, typ)
		}
		f = field.NewLeadingInt(name, func(r T) (string, bool) { return structField(r, idx).String(), true })
	default:
		return f, fmt.Errorf("mentorhub: unknown field type %q on field %s", typ, sf.Name)
	}

	m.byName[name] = typ
	m.infos = append(m.infos, FieldInfo{Name: name, Type: typ})
	return f, nil
}

// buildStages declares one stage per field, named after it, plus the search stage.
func (m *schemaMeta[T]) buildStages() []filter.Stage {
	stages := make([]filter.Stage, 0, len(m.infos)+1)
	if len(m.searched) > 0 {
		stages = append(stages, filter.Search(SearchFilter, m.searched...))
	}
	for _, fi := range m.infos {
		switch fi.Type {
		case TagText:
			stages = append(stages, filter.Equal(fi.Name, fi.Name))
		case TagList:
			stages = append(stages, filter.Member(fi.Name, fi.Name))
		case TagNumber, TagLeadingInt:
			stages = append(stages, filter.AtLeast(fi.Name, fi.Name))
		}
	}
	return stages
}

func kindError(sf reflect.StructField, typ string) error {
	return fmt.Errorf("mentorhub: field %s of type %s cannot be tagged %s", sf.Name, sf.Type, typ)
}

func structField[T any](r T, idx int) reflect.Value {
	return reflect.ValueOf(r).Field(idx)
}

func toStrings(v reflect.Value) []string {
	if v.IsNil() {
		return nil
	}
	out := make([]string, v.Len())
	for i := range out {
		out[i] = v.Index(i).String()
	}
	return out
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func toFloat64(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return 0
	}
}
