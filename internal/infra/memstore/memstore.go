// Package memstore is an in-memory KeyValueStore for tests and ephemeral runs.
package memstore

import (
	"sort"
	"sync"
)

// Store is a map guarded by a mutex. The zero value is not usable; call New.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	writes int

	// FailWrites makes Set return this error when non-nil.
	FailWrites error
	// FailReads makes Get return this error when non-nil.
	FailReads error
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the value for key.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailReads != nil {
		return "", false, s.FailReads
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set replaces the value for key.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.values[key] = value
	s.writes++
	return nil
}

// Delete removes key.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Keys lists stored keys in order.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Writes returns how many successful Set calls were made.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Ping always succeeds.
func (s *Store) Ping() error { return nil }

// Close does nothing.
func (s *Store) Close() error { return nil }
