package mentorhub

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/mentorhub/internal/domain"
)

// Query is a fluent builder for Index filters.
// The first invalid call is remembered and returned by Do.
type Query[T any] struct {
	idx      *Index[T]
	criteria Filters
	limit    int
	err      error
}

// Search keeps items whose text or list fields contain text, case-insensitively.
func (q *Query[T]) Search(text string) *Query[T] {
	q.criteria[SearchFilter] = text
	return q
}

// Where keeps items whose text field equals value or whose list field contains it.
func (q *Query[T]) Where(fieldName, value string) *Query[T] {
	typ, err := q.fieldType(fieldName)
	if err != nil {
		return q.fail(err)
	}
	if typ != TagText && typ != TagList {
		return q.fail(fmt.Errorf("%w: %s field %q needs AtLeast", domain.ErrInvalidCriteria, typ, fieldName))
	}
	q.criteria[fieldName] = value
	return q
}

// AtLeast keeps items whose number field is at least minimum.
func (q *Query[T]) AtLeast(fieldName string, minimum float64) *Query[T] {
	typ, err := q.fieldType(fieldName)
	if err != nil {
		return q.fail(err)
	}
	if typ != TagNumber && typ != TagLeadingInt {
		return q.fail(fmt.Errorf("%w: %s field %q needs Where", domain.ErrInvalidCriteria, typ, fieldName))
	}
	q.criteria[fieldName] = strconv.FormatFloat(minimum, 'f', -1, 64)
	return q
}

// Limit caps the number of returned items. Zero or less means no limit.
func (q *Query[T]) Limit(n int) *Query[T] {
	q.limit = n
	return q
}

// Filters returns a copy of the accumulated criteria.
func (q *Query[T]) Filters() Filters {
	out := make(Filters, len(q.criteria))
	for k, v := range q.criteria {
		out[k] = v
	}
	return out
}

// Do runs the query.
func (q *Query[T]) Do(ctx context.Context) ([]T, error) {
	if q.err != nil {
		return nil, q.err
	}
	items, err := q.idx.Filter(ctx, q.criteria)
	if err != nil {
		return nil, err
	}
	if q.limit > 0 && len(items) > q.limit {
		items = items[:q.limit]
	}
	return items, nil
}

func (q *Query[T]) fieldType(name string) (string, error) {
	typ, ok := q.idx.meta.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownField, name)
	}
	return typ, nil
}

func (q *Query[T]) fail(err error) *Query[T] {
	if q.err == nil {
		q.err = err
	}
	return q
}
