package tasklist

import (
	"github.com/google/uuid"

	"github.com/tasklist-app/tasklist/internal/domain"
)

// StorageKey is the key the task list lives under. It matches the key the
// browser component used, so exported values can be imported unchanged.
const StorageKey = "todos"

// keyedStore binds a KeyValueStore to one key.
type keyedStore struct {
	kv  domain.KeyValueStore
	key string
}

// KeyedStore adapts kv to a TaskStore reading and writing key.
// An empty key means StorageKey.
func KeyedStore(kv domain.KeyValueStore, key string) domain.TaskStore {
	if key == "" {
		key = StorageKey
	}
	return &keyedStore{kv: kv, key: key}
}

func (s *keyedStore) Read() (string, bool, error) { return s.kv.Get(s.key) }

func (s *keyedStore) Write(value string) error { return s.kv.Set(s.key, value) }

// UUIDGenerator issues random (v4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }
