package search

import (
	"maps"
	"sync"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
)

// DefaultMemoCapacity is the number of cached results kept when no capacity is given.
const DefaultMemoCapacity = 256

// Memo caches Engine.Apply results keyed by a structural hash of the records and
// the active criteria. Only exported fields of R take part in the hash, so R's
// exported fields must fully determine a record.
//
// A cache miss, a hash failure or a full cache all fall back to Engine.Apply;
// results never depend on what is cached.
type Memo[R any] struct {
	engine   *Engine[R]
	capacity int
	lookups  *prometheus.CounterVec

	mu      sync.Mutex
	entries map[uint64]memoEntry[R]
}

type memoEntry[R any] struct {
	criteria filter.Criteria
	size     int
	result   []R
}

type memoKey[R any] struct {
	Records  []R
	Criteria map[string]string
}

// NewMemo creates a memoizing wrapper around an engine.
// lookups is a counter vec with label "result" ("hit"/"miss"/"bypass"), passed explicitly; it may be nil.
func NewMemo[R any](engine *Engine[R], capacity int, lookups *prometheus.CounterVec) *Memo[R] {
	if capacity <= 0 {
		capacity = DefaultMemoCapacity
	}
	return &Memo[R]{
		engine:   engine,
		capacity: capacity,
		lookups:  lookups,
		entries:  make(map[uint64]memoEntry[R]),
	}
}

// Engine returns the wrapped engine.
func (m *Memo[R]) Engine() *Engine[R] { return m.engine }

// Apply returns the same result as Engine.Apply, reusing a cached derivation when
// records and active criteria are structurally unchanged.
func (m *Memo[R]) Apply(records []R, c filter.Criteria) []R {
	active := m.engine.Active(c)

	key, err := hashstructure.Hash(memoKey[R]{Records: records, Criteria: active}, hashstructure.FormatV2, nil)
	if err != nil {
		m.inc("bypass")
		return m.engine.Apply(records, c)
	}

	m.mu.Lock()
	entry, ok := m.entries[key]
	m.mu.Unlock()
	if ok && entry.size == len(records) && maps.Equal(entry.criteria, active) {
		m.inc("hit")
		return append(make([]R, 0, len(entry.result)), entry.result...)
	}

	m.inc("miss")
	result := m.engine.Apply(records, c)

	m.mu.Lock()
	if len(m.entries) >= m.capacity {
		clear(m.entries)
	}
	m.entries[key] = memoEntry[R]{
		criteria: active,
		size:     len(records),
		result:   append(make([]R, 0, len(result)), result...),
	}
	m.mu.Unlock()

	return result
}

// Len returns the number of cached results.
func (m *Memo[R]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memo[R]) inc(result string) {
	if m.lookups != nil {
		m.lookups.WithLabelValues(result).Inc()
	}
}
