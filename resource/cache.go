// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"fmt"
	"io/fs"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/headless/internal/logging"
)

// Cache maps resource names to their contents. Each name is read from
// storage at most once; concurrent first loads of one name share a single
// read. A Cache is safe for concurrent use.
type Cache struct {
	fsys    fs.FS
	metrics *cacheMetrics
	stats   Statistics

	mu      sync.Mutex
	entries map[string][]byte
	fonts   map[string]*FontInfo

	group singleflight.Group
}

// New creates a cache. Without WithDir or WithFS resources are read
// relative to the working directory.
func New(opts ...Option) (*Cache, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.fsys == nil {
		o.fsys = os.DirFS(".")
	}

	c := &Cache{
		fsys:    o.fsys,
		entries: make(map[string][]byte),
		fonts:   make(map[string]*FontInfo),
	}
	if o.registerer != nil {
		m, err := newCacheMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("resource: register metrics: %w", err)
		}
		c.metrics = m
	}
	return c, nil
}

// Load returns the contents of the named resource, reading storage only on
// the first call for name. A missing resource returns a *LoadError that
// wraps fs.ErrNotExist. Failed reads are not cached.
//
// Every call for the same resource returns the same cached slice; it must
// not be modified.
func (c *Cache) Load(name string) ([]byte, error) {
	key, err := canonicalName(name)
	if err != nil {
		return nil, &LoadError{Name: name, Op: "open", Err: err}
	}

	if b, ok := c.lookup(key); ok {
		c.hit()
		return b, nil
	}

	leader := false
	v, err, _ := c.group.Do(key, func() (any, error) {
		leader = true
		// A previous flight may have finished between lookup and Do.
		if b, ok := c.lookup(key); ok {
			c.hit()
			return b, nil
		}
		b, err := fs.ReadFile(c.fsys, key)
		if err != nil {
			c.stats.errors.Add(1)
			c.metrics.recordError()
			logging.Logger().Warn("resource: load failed", "name", key, "err", err)
			return nil, &LoadError{Name: key, Op: "read", Err: err}
		}

		c.mu.Lock()
		c.entries[key] = b
		c.mu.Unlock()

		c.stats.misses.Add(1)
		c.stats.bytes.Add(int64(len(b)))
		c.metrics.recordMiss(len(b))
		logging.Logger().Debug("resource: loaded", "name", key, "size", len(b))
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	if !leader {
		c.hit()
	}
	return v.([]byte), nil
}

// MustLoad is like Load but panics if the resource cannot be read.
// It is intended for resources shipped with the application.
func (c *Cache) MustLoad(name string) []byte {
	b, err := c.Load(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Contains reports whether name has already been loaded.
func (c *Cache) Contains(name string) bool {
	key, err := canonicalName(name)
	if err != nil {
		return false
	}
	_, ok := c.lookup(key)
	return ok
}

// Len returns the number of cached resources.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the cache statistics.
func (c *Cache) Stats() *Statistics {
	return &c.stats
}

func (c *Cache) lookup(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	return b, ok
}

func (c *Cache) hit() {
	c.stats.hits.Add(1)
	c.metrics.recordHit()
}
