// Package record stores ordered record collections as JSON documents.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/kailas-cloud/mentorhub/internal/db"
	"github.com/kailas-cloud/mentorhub/internal/domain"
)

// store is the consumer interface for record collections (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Repo keeps one collection under a single key. Reads decode a fresh snapshot,
// so callers may hand the result to the filter engine without copying.
type Repo[R any] struct {
	store store
	key   string
	mu    sync.Mutex
}

// New creates a repository for the collection stored at key.
func New[R any](s store, key string) *Repo[R] {
	return &Repo[R]{store: s, key: key}
}

// Key returns the storage key of the collection.
func (r *Repo[R]) Key() string { return r.key }

// All returns every record in stored order. A missing collection is empty.
func (r *Repo[R]) All(ctx context.Context) ([]R, error) {
	return r.load(ctx)
}

// Find returns the first record matching fn.
func (r *Repo[R]) Find(ctx context.Context, fn func(R) bool) (R, error) {
	var zero R
	records, err := r.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, rec := range records {
		if fn(rec) {
			return rec, nil
		}
	}
	return zero, domain.ErrNotFound
}

// Exists reports whether the collection has been written.
func (r *Repo[R]) Exists(ctx context.Context) (bool, error) {
	ok, err := r.store.Exists(ctx, r.key)
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", r.key, err)
	}
	return ok, nil
}

// Replace overwrites the whole collection.
func (r *Repo[R]) Replace(ctx context.Context, records []R) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, records)
}

// Update runs a read-modify-write cycle. Writers within the process are serialized;
// fn's error aborts the write and is returned unchanged.
func (r *Repo[R]) Update(ctx context.Context, fn func([]R) ([]R, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return r.save(ctx, updated)
}

func (r *Repo[R]) load(ctx context.Context) ([]R, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return []R{}, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.key, err)
	}

	records := []R{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.key, err)
	}
	if records == nil {
		records = []R{}
	}
	return records, nil
}

func (r *Repo[R]) save(ctx context.Context, records []R) error {
	if records == nil {
		records = []R{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("set %s: %w", r.key, err)
	}
	return nil
}
