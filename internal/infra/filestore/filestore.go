// Package filestore keeps key-value pairs in a single JSON object file.
// Every Set rewrites the whole file through a temp file and rename, so a
// crash leaves either the old or the new contents.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileName is the file created inside the data directory.
const FileName = "storage.json"

// CorruptSuffix is appended to a storage file that could not be parsed
// when it is moved aside.
const CorruptSuffix = ".corrupt"

// Store is a file-backed KeyValueStore.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report a corrupt file.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open loads dir/storage.json, creating dir if needed. A missing or empty
// file is an empty store. A file that does not parse is logged, renamed to
// storage.json.corrupt and replaced by an empty store. Only an unreadable
// file is an error.
func Open(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		path:   filepath.Join(dir, FileName),
		values: make(map[string]string),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		s.values = make(map[string]string)
		s.moveAside(err)
		return s, nil
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *Store) moveAside(parseErr error) {
	aside := s.path + CorruptSuffix
	if err := os.Rename(s.path, aside); err != nil {
		s.logger.Printf("[filestore] failed to parse %s: %v (starting empty; move aside failed: %v)", s.path, parseErr, err)
		return
	}
	s.logger.Printf("[filestore] failed to parse %s: %v (moved to %s, starting empty)", s.path, parseErr, aside)
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Get returns the value for key.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key and flushes the file.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flushLocked(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Delete removes key and flushes the file.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flushLocked()
}

// Keys lists stored keys in order.
func (s *Store) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Ping checks that the directory is still writable.
func (s *Store) Ping() error {
	f, err := os.CreateTemp(filepath.Dir(s.path), ".ping-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// Close does nothing; every Set is already on disk.
func (s *Store) Close() error { return nil }

func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), FileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
