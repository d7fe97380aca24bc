package mentorhub

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/repository/record"
	"github.com/kailas-cloud/mentorhub/internal/usecase/search"
)

// Index is a generic, schema-first filter index backed by a Client's store.
// Schema and filter stages are inferred from T's struct tags at construction time.
// Items are stored as JSON, so T must round-trip through encoding/json.
type Index[T any] struct {
	name string
	meta *schemaMeta[T]
	memo *search.Memo[T]
	repo *record.Repo[T]
	obs  *observer
}

// NewIndex creates a typed index handle for the given name.
// T must be a struct with mentorhub tags. Schema is parsed once and cached.
// A nil client yields an index that can only build queries.
func NewIndex[T any](client *Client, name string) (*Index[T], error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("mentorhub: index name is required")
	}
	meta, err := parseSchema[T]()
	if err != nil {
		return nil, fmt.Errorf("new index %q: %w", name, err)
	}
	engine, err := search.NewEngine(meta.schema, meta.stages...)
	if err != nil {
		return nil, fmt.Errorf("new index %q: %w", name, err)
	}

	idx := &Index[T]{name: name, meta: meta}
	capacity := search.DefaultMemoCapacity
	if client != nil {
		idx.repo = record.New[T](client.store, indexKey(name))
		idx.obs = client.obs
		capacity = client.memoCapacity
	}
	idx.memo = search.NewMemo(engine, capacity, idx.obs.memoLookups("index:"+name))
	return idx, nil
}

func indexKey(name string) string {
	return domain.KeyPrefix + "index:" + name
}

// Name returns the index name.
func (idx *Index[T]) Name() string { return idx.name }

// Fields returns the indexed fields in declaration order.
func (idx *Index[T]) Fields() []FieldInfo {
	return append([]FieldInfo(nil), idx.meta.infos...)
}

// Replace stores items as the whole content of the index.
func (idx *Index[T]) Replace(ctx context.Context, items []T) (err error) {
	start := time.Now()
	defer func() { idx.obs.observe("index.replace", start, err) }()

	if err = idx.requireStore(); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	if err = idx.repo.Replace(ctx, items); err != nil {
		return fmt.Errorf("replace %q: %w", idx.name, err)
	}
	return nil
}

// Add appends items to the index.
func (idx *Index[T]) Add(ctx context.Context, items ...T) (err error) {
	start := time.Now()
	defer func() { idx.obs.observe("index.add", start, err) }()

	if err = idx.requireStore(); err != nil {
		return err
	}
	err = idx.repo.Update(ctx, func(existing []T) ([]T, error) {
		return append(existing, items...), nil
	})
	if err != nil {
		return fmt.Errorf("add to %q: %w", idx.name, err)
	}
	return nil
}

// All returns every item in stored order.
func (idx *Index[T]) All(ctx context.Context) ([]T, error) {
	if err := idx.requireStore(); err != nil {
		return nil, err
	}
	items, err := idx.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", idx.name, err)
	}
	return items, nil
}

// Count returns the number of items in the index.
func (idx *Index[T]) Count(ctx context.Context) (int, error) {
	items, err := idx.All(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Facets returns the distinct values of a field across all items, sorted.
func (idx *Index[T]) Facets(ctx context.Context, fieldName string) ([]string, error) {
	if _, ok := idx.meta.byName[fieldName]; !ok {
		return nil, fmt.Errorf("facets of %q: %w: %s", idx.name, domain.ErrUnknownField, fieldName)
	}
	items, err := idx.All(ctx)
	if err != nil {
		return nil, err
	}
	return idx.memo.Engine().Facets(items, fieldName).Sorted(), nil
}

// Filter applies raw criteria keyed by field name or SearchFilter.
func (idx *Index[T]) Filter(ctx context.Context, f Filters) (_ []T, err error) {
	start := time.Now()
	defer func() { idx.obs.observe("index.filter", start, err) }()

	if unknown := idx.memo.Engine().Unknown(f); len(unknown) > 0 {
		return nil, fmt.Errorf("filter %q: %w: unknown filter %s",
			idx.name, domain.ErrInvalidCriteria, strings.Join(unknown, ", "))
	}
	items, err := idx.All(ctx)
	if err != nil {
		return nil, err
	}
	return idx.memo.Apply(items, f), nil
}

// Query starts a fluent query over the index.
func (idx *Index[T]) Query() *Query[T] {
	return &Query[T]{idx: idx, criteria: make(Filters)}
}

func (idx *Index[T]) requireStore() error {
	if idx.repo == nil {
		return fmt.Errorf("mentorhub: index %q has no client", idx.name)
	}
	return nil
}
