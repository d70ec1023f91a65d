// ABOUTME: BadgerDB-backed keyed blob store
// ABOUTME: Thread-safe wrapper exposing raw Get/Set/Delete for snapshot blobs
package store

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v3"
)

// Store wraps a Badger database holding a handful of whole-snapshot JSON
// blobs. Every write replaces a blob in full; there are no deltas.
type Store struct {
	db *badger.DB
	mu sync.RWMutex
}

// Open opens (or creates) the store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(nil) // Badger's own logging is noise for a CLI tool

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral store, used by tests and dry runs.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Get retrieves a blob by key. Returns badger.ErrKeyNotFound for missing keys.
func (s *Store) Get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		result, err = item.ValueCopy(nil)
		return err
	})
	return result, err
}

// Set stores a blob, overwriting any previous value.
func (s *Store) Set(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// IsNotFound reports whether err is the missing-key sentinel.
func IsNotFound(err error) bool {
	return err == badger.ErrKeyNotFound
}
