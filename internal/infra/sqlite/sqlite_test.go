package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tasklist-app/tasklist/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ─── Database Lifecycle ─────────────────────────────────────────────────────

func TestOpen_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(dir, "state.db")); os.IsNotExist(err) {
		t.Error("state.db should exist")
	}
	if db.Path() != filepath.Join(dir, "state.db") {
		t.Errorf("Path() = %q", db.Path())
	}
}

func TestOpen_Ping(t *testing.T) {
	db := newTestDB(t)
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("first Open() error: %v", err)
	}
	if err := db.Set("todos", "[]"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	db.Close()

	db, err = Open(dir)
	if err != nil {
		t.Fatalf("second Open() error: %v", err)
	}
	defer db.Close()

	v, ok, err := db.Get("todos")
	if err != nil || !ok || v != "[]" {
		t.Errorf("Get() after reopen = (%q, %v, %v)", v, ok, err)
	}
}

// ─── Key-Value ──────────────────────────────────────────────────────────────

func TestGet_Absent(t *testing.T) {
	db := newTestDB(t)

	v, ok, err := db.Get("todos")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get() = (%q, %v), want absent", v, ok)
	}
}

func TestSet_Overwrites(t *testing.T) {
	db := newTestDB(t)

	if err := db.Set("todos", `[{"id":"a"}]`); err != nil {
		t.Fatalf("first Set() error: %v", err)
	}
	if err := db.Set("todos", `[]`); err != nil {
		t.Fatalf("second Set() error: %v", err)
	}

	v, ok, err := db.Get("todos")
	if err != nil || !ok {
		t.Fatalf("Get() = (ok=%v, err=%v)", ok, err)
	}
	if v != "[]" {
		t.Errorf("value = %q, want []", v)
	}
}

func TestDeleteAndKeys(t *testing.T) {
	db := newTestDB(t)
	db.Set("b", "2")
	db.Set("a", "1")

	keys, err := db.Keys()
	if err != nil {
		t.Fatalf("Keys() error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}

	if err := db.Delete("a"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := db.Delete("missing"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
	if _, ok, _ := db.Get("a"); ok {
		t.Error("a should be gone")
	}
}

func TestClosed(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	db.Close()

	if err := db.Set("k", "v"); !errors.Is(err, domain.ErrStoreClosed) {
		t.Errorf("Set() after Close error = %v, want ErrStoreClosed", err)
	}
}

func TestLargeValue(t *testing.T) {
	db := newTestDB(t)
	big := make([]byte, 1<<20)
	for i := range big {
		big[i] = 'x'
	}
	if err := db.Set("todos", string(big)); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	v, _, _ := db.Get("todos")
	if len(v) != len(big) {
		t.Errorf("len = %d, want %d", len(v), len(big))
	}
}
