// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package settings

import (
	"slices"
	"sync"

	"github.com/gogpu/headless/internal/logging"
)

// Store is a typed key/value store. Entries are created on first write and
// never removed. A Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Value
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]Value)}
}

// Set stores v under key. It returns a *KindMismatchError if key already
// holds a value of another kind, and ErrUndefinedKind for a nil value.
func (s *Store) Set(key string, v Value) error {
	if v == nil {
		return ErrUndefinedKind
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(key, v)
}

func (s *Store) setLocked(key string, v Value) error {
	if old, ok := s.entries[key]; ok && old.Kind() != v.Kind() {
		return &KindMismatchError{Key: key, Have: old.Kind(), Want: v.Kind()}
	}
	s.entries[key] = v
	return nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// KindOf returns the kind established for key, or KindUndefined.
func (s *Store) KindOf(key string) Kind {
	v, _ := s.Get(key)
	return kindOf(v)
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// freeze panics on kind mismatch.
func (s *Store) freeze(key string, v Value) {
	if err := s.Set(key, v); err != nil {
		logging.Logger().Error("settings: freeze rejected", "key", key, "err", err)
		panic(err)
	}
}

// thaw returns the value of key as T, def if key is absent, and panics if
// key holds another kind. It never creates an entry.
func thaw[T Value](s *Store, key string, def T) T {
	v, ok := s.Get(key)
	if !ok {
		return def
	}
	t, ok := v.(T)
	if !ok {
		err := &KindMismatchError{Key: key, Have: v.Kind(), Want: def.Kind()}
		logging.Logger().Error("settings: thaw rejected", "key", key, "err", err)
		panic(err)
	}
	return t
}

// FreezeInt stores an integer under key.
func (s *Store) FreezeInt(value int64, key string) {
	s.freeze(key, Int(value))
}

// FreezeFloat stores a float under key.
func (s *Store) FreezeFloat(value float64, key string) {
	s.freeze(key, Float(value))
}

// FreezeString stores a string under key.
func (s *Store) FreezeString(value string, key string) {
	s.freeze(key, String(value))
}

// ThawInt returns the integer stored under key, or def if there is none.
func (s *Store) ThawInt(def int64, key string) int64 {
	return int64(thaw(s, key, Int(def)))
}

// ThawFloat returns the float stored under key, or def if there is none.
func (s *Store) ThawFloat(def float64, key string) float64 {
	return float64(thaw(s, key, Float(def)))
}

// ThawString returns the string stored under key, or def if there is none.
func (s *Store) ThawString(def string, key string) string {
	return string(thaw(s, key, String(def)))
}
