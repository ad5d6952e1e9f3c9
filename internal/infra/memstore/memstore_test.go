package memstore

import (
	"errors"
	"testing"
)

func TestStore_GetSet(t *testing.T) {
	s := New()

	if _, ok, err := s.Get("todos"); ok || err != nil {
		t.Fatalf("Get() on empty store = (ok=%v, err=%v), want absent", ok, err)
	}
	if err := s.Set("todos", "[]"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	v, ok, err := s.Get("todos")
	if err != nil || !ok || v != "[]" {
		t.Errorf("Get() = (%q, %v, %v), want ([], true, nil)", v, ok, err)
	}
	if s.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", s.Writes())
	}
}

func TestStore_Failures(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	s.FailWrites = boom
	if err := s.Set("k", "v"); !errors.Is(err, boom) {
		t.Errorf("Set() error = %v, want boom", err)
	}
	s.FailReads = boom
	if _, _, err := s.Get("k"); !errors.Is(err, boom) {
		t.Errorf("Get() error = %v, want boom", err)
	}
}

func TestStore_Keys(t *testing.T) {
	s := New()
	s.Set("b", "2")
	s.Set("a", "1")
	s.Delete("b")

	keys, _ := s.Keys()
	if len(keys) != 1 || keys[0] != "a" {
		t.Errorf("Keys() = %v, want [a]", keys)
	}
}
