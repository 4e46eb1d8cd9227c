// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/headless/internal/logging"
)

// savedEntry is one persisted triple.
type savedEntry struct {
	Key   string `yaml:"key"`
	Type  string `yaml:"type"`
	Value any    `yaml:"value"`
}

// loadedEntry defers decoding of the value until its type is known.
type loadedEntry struct {
	Key   string    `yaml:"key"`
	Type  string    `yaml:"type"`
	Value yaml.Node `yaml:"value"`
}

// Save writes every entry to w as a YAML list of key/type/value triples,
// sorted by key.
func (s *Store) Save(w io.Writer) error {
	s.mu.RLock()
	doc := make([]savedEntry, 0, len(s.entries))
	for key, v := range s.entries {
		e := savedEntry{Key: key, Type: v.Kind().String()}
		switch v := v.(type) {
		case Int:
			e.Value = int64(v)
		case Float:
			e.Value = float64(v)
		case String:
			e.Value = string(v)
		}
		doc = append(doc, e)
	}
	s.mu.RUnlock()
	slices.SortFunc(doc, func(a, b savedEntry) int {
		return strings.Compare(a.Key, b.Key)
	})

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	return enc.Close()
}

// Load reads triples written by Save and stores them. The document is
// validated completely before any entry is applied; a malformed document
// or a kind conflict with existing entries leaves the store unchanged.
func (s *Store) Load(r io.Reader) error {
	var doc []loadedEntry
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	values := make(map[string]Value, len(doc))
	keys := make([]string, 0, len(doc))
	for i := range doc {
		e := &doc[i]
		if e.Key == "" {
			return fmt.Errorf("%w: entry %d has no key", ErrMalformed, i)
		}
		v, err := decodeValue(e)
		if err != nil {
			return fmt.Errorf("%w: key %q: %w", ErrMalformed, e.Key, err)
		}
		if prev, ok := values[e.Key]; ok {
			if prev.Kind() != v.Kind() {
				return &KindMismatchError{Key: e.Key, Have: prev.Kind(), Want: v.Kind()}
			}
		} else {
			keys = append(keys, e.Key)
		}
		values[e.Key] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		if old, ok := s.entries[key]; ok && old.Kind() != values[key].Kind() {
			return &KindMismatchError{Key: key, Have: old.Kind(), Want: values[key].Kind()}
		}
	}
	for _, key := range keys {
		s.entries[key] = values[key]
	}
	logging.Logger().Debug("settings: loaded", "entries", len(keys))
	return nil
}

func decodeValue(e *loadedEntry) (Value, error) {
	kind, err := ParseKind(e.Type)
	if err != nil {
		return nil, err
	}
	if e.Value.Kind != yaml.ScalarNode {
		return nil, errors.New("value is not a scalar")
	}
	switch kind {
	case KindInt:
		var n int64
		if err := e.Value.Decode(&n); err != nil {
			return nil, err
		}
		return Int(n), nil
	case KindFloat:
		var f float64
		if err := e.Value.Decode(&f); err != nil {
			return nil, err
		}
		return Float(f), nil
	default:
		return String(e.Value.Value), nil
	}
}

// SaveFile writes the store to path, replacing any existing file.
func (s *Store) SaveFile(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.Save(f)
}

// LoadFile reads a file written by SaveFile. A missing file is not an
// error and leaves the store unchanged.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	defer f.Close()
	return s.Load(f)
}
