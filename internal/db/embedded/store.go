// Package embedded implements db.Store on BadgerDB, in memory or on local disk.
package embedded

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/kailas-cloud/mentorhub/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

const (
	kvPrefix   = 'k'
	hashPrefix = 'h'
	sep        = 0x00
)

// Config holds parameters for an embedded store.
type Config struct {
	// Path is the data directory. Empty means in-memory.
	Path           string
	SyncWrites     bool
	GCInterval     time.Duration
	GCDiscardRatio float64
	Logger         *zap.Logger
}

// Store implements db.Store over a BadgerDB instance.
type Store struct {
	db     *badger.DB
	stopGC chan struct{}
	gcDone chan struct{}
	once   sync.Once
}

// NewStore opens a BadgerDB instance.
func NewStore(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.Path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true).WithMemTableSize(16 << 20)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create data directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path).WithSyncWrites(cfg.SyncWrites)
	}
	opts = opts.WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&zapLogger{s: cfg.Logger.Named("badger").Sugar()})
	} else {
		opts = opts.WithLogger(nil)
	}

	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	s := &Store{db: bdb}
	if cfg.Path != "" && cfg.GCInterval > 0 {
		ratio := cfg.GCDiscardRatio
		if ratio <= 0 || ratio >= 1 {
			ratio = 0.5
		}
		s.stopGC = make(chan struct{})
		s.gcDone = make(chan struct{})
		go s.runGC(cfg.GCInterval, ratio, cfg.Logger)
	}
	return s, nil
}

// NewInMemory opens an in-memory store.
func NewInMemory() (*Store, error) {
	return NewStore(Config{})
}

// Ping reports whether the database is open.
func (s *Store) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return &db.Error{Op: db.OpPing, Err: db.ErrClosed}
	}
	return nil
}

// WaitForReady returns immediately: an opened embedded store is ready.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

// Close stops value log GC and closes the database.
func (s *Store) Close() {
	s.once.Do(func() {
		if s.stopGC != nil {
			close(s.stopGC)
			<-s.gcDone
		}
		_ = s.db.Close()
	})
}

// Get retrieves a value by key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(kvKey(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	return out, nil
}

// Set stores a value at the given key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(kvKey(key), bytes.Clone(value))
	})
	if err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	return nil
}

// Del deletes a key, whether it holds a value or a hash.
func (s *Store) Del(_ context.Context, key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(kvKey(key)); err != nil {
			return err
		}
		for _, k := range hashKeys(txn, key) {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &db.Error{Op: db.OpDel, Err: err}
	}
	return nil
}

// Exists checks if a key holds a value or a non-empty hash.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(kvKey(key))
		switch {
		case err == nil:
			found = true
			return nil
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		found = len(hashKeys(txn, key)) > 0
		return nil
	})
	if err != nil {
		return false, &db.Error{Op: db.OpExists, Err: err}
	}
	return found, nil
}

// HSet sets hash fields.
func (s *Store) HSet(_ context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		for f, v := range fields {
			if err := txn.Set(hashFieldKey(key, f), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &db.Error{Op: db.OpHSet, Err: err}
	}
	return nil
}

// HGetAll returns all fields of a hash. A missing key yields an empty map.
func (s *Store) HGetAll(_ context.Context, key string) (map[string]string, error) {
	out := make(map[string]string)
	prefix := hashPrefixKey(key)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: true, PrefetchSize: 100})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			out[string(item.Key()[len(prefix):])] = string(v)
		}
		return nil
	})
	if err != nil {
		return nil, &db.Error{Op: db.OpHGetAll, Err: err}
	}
	return out, nil
}

// HDel removes specific fields from a hash.
func (s *Store) HDel(_ context.Context, key string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, f := range fields {
			if err := txn.Delete(hashFieldKey(key, f)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &db.Error{Op: db.OpHDel, Err: err}
	}
	return nil
}

func (s *Store) runGC(interval time.Duration, ratio float64, logger *zap.Logger) {
	defer close(s.gcDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopGC:
			return
		case <-ticker.C:
			err := s.db.RunValueLogGC(ratio)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) && logger != nil {
				logger.Warn("badger value log gc failed", zap.Error(err))
			}
		}
	}
}

func kvKey(key string) []byte {
	b := make([]byte, 0, len(key)+2)
	b = append(b, kvPrefix, sep)
	return append(b, key...)
}

func hashPrefixKey(key string) []byte {
	b := make([]byte, 0, len(key)+3)
	b = append(b, hashPrefix, sep)
	b = append(b, key...)
	return append(b, sep)
}

func hashFieldKey(key, field string) []byte {
	return append(hashPrefixKey(key), field...)
}

// hashKeys lists the stored keys of every field of a hash.
func hashKeys(txn *badger.Txn, key string) [][]byte {
	prefix := hashPrefixKey(key)
	it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
	defer it.Close()

	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys
}
