package domain

import "time"

// ─── Boundaries ─────────────────────────────────────────────────────────────
// Infrastructure implements these; the widget depends only on them.

// KeyValueStore is a persistent string store addressed by key.
// Get reports ok=false when the key is absent.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// StorageBackend is a KeyValueStore the daemon owns: it can be listed,
// health-checked and closed.
type StorageBackend interface {
	KeyValueStore
	Delete(key string) error
	Keys() ([]string, error)
	Ping() error
	Close() error
}

// TaskStore is the single-slot capability the widget persists through.
// Write replaces any prior value.
type TaskStore interface {
	Read() (value string, ok bool, err error)
	Write(value string) error
}

// Clock supplies the creation time of new tasks.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces unique task ids.
type IDGenerator interface {
	NewID() string
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
