// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"sync"
)

// Surface is the rasterization target of a render pass.
//
// A surface wraps a pixmap allocated by the pipeline; everything the canvas
// outputs lands in Pixmap(). The pipeline closes the surface on every exit
// path of a pass. Surfaces are NOT thread-safe.
type Surface interface {
	// Pixmap returns the pixel buffer the surface draws into.
	Pixmap() *Pixmap

	// Close releases all resources associated with the surface.
	// After Close, the surface must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// SurfaceFactory creates a surface over a freshly allocated pixmap.
// Implementations should validate the pixmap and return descriptive errors.
type SurfaceFactory func(pm *Pixmap) (Surface, error)

// errSurfaceClosed is returned by ImageSurface after Close.
var errSurfaceClosed = errors.New("render: surface closed")

// ImageSurface is a CPU-backed surface drawing straight into a pixmap.
type ImageSurface struct {
	mu     sync.Mutex
	pixmap *Pixmap
}

// NewImageSurface wraps pm as a surface. The pixmap is used directly
// without copying.
func NewImageSurface(pm *Pixmap) (Surface, error) {
	if pm == nil {
		return nil, errors.New("render: nil pixmap")
	}
	if pm.Stride() != pm.Format().Stride(pm.Width()) {
		return nil, errors.New("render: pixmap stride does not match surface alignment")
	}
	return &ImageSurface{pixmap: pm}, nil
}

// Pixmap returns the wrapped pixmap, or nil after Close.
func (s *ImageSurface) Pixmap() *Pixmap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pixmap
}

// Close detaches the surface from its pixmap.
func (s *ImageSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pixmap = nil
	return nil
}

// Err reports whether the surface is still usable.
func (s *ImageSurface) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pixmap == nil {
		return errSurfaceClosed
	}
	return nil
}
