// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import "sync/atomic"

// Statistics tracks cache activity. All methods are safe for concurrent use.
type Statistics struct {
	hits   atomic.Int64
	misses atomic.Int64
	errors atomic.Int64
	bytes  atomic.Int64
}

// Hits returns the number of loads served from memory.
func (s *Statistics) Hits() int64 { return s.hits.Load() }

// Misses returns the number of loads that read storage.
func (s *Statistics) Misses() int64 { return s.misses.Load() }

// Errors returns the number of failed storage reads.
func (s *Statistics) Errors() int64 { return s.errors.Load() }

// Bytes returns the total size of cached buffers.
func (s *Statistics) Bytes() int64 { return s.bytes.Load() }

// HitRatio returns hits / (hits + misses), or 0 before any load.
func (s *Statistics) HitRatio() float64 {
	h, m := s.Hits(), s.Misses()
	if h+m == 0 {
		return 0
	}
	return float64(h) / float64(h+m)
}
