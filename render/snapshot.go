// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// RenderStats describes the render pass that produced a snapshot.
type RenderStats struct {
	// Primitives is the paint-order length after culling.
	Primitives int
	// Culled is the number of strokes removed as fully occluded.
	Culled int
	// Duration is the wall time of the pass.
	Duration time.Duration
}

// Snapshot is an immutable, fully rendered frame.
//
// A snapshot is never modified after it is published, so any number of
// goroutines may read it while later frames are rendered.
type Snapshot struct {
	pixmap *Pixmap

	// ID uniquely identifies the frame.
	ID uuid.UUID
	// Sequence counts publishes on the owning pipeline, starting at 1.
	Sequence uint64
	// Stats describes the pass that produced the frame.
	Stats RenderStats
}

// Width returns the frame width in pixels.
func (s *Snapshot) Width() int { return s.pixmap.Width() }

// Height returns the frame height in pixels.
func (s *Snapshot) Height() int { return s.pixmap.Height() }

// Stride returns the number of bytes per row.
func (s *Snapshot) Stride() int { return s.pixmap.Stride() }

// Format returns the pixel layout.
func (s *Snapshot) Format() Format { return s.pixmap.Format() }

// Pixels returns the frame bytes, Stride()*Height() long. The slice must
// not be modified.
func (s *Snapshot) Pixels() []byte { return s.pixmap.Data() }

// PixelAt returns the color of one pixel.
func (s *Snapshot) PixelAt(x, y int) RGBA { return s.pixmap.GetPixel(x, y) }

// Pixmap returns a private, mutable copy of the frame.
func (s *Snapshot) Pixmap() *Pixmap { return s.pixmap.Clone() }

// At implements the image.Image interface.
func (s *Snapshot) At(x, y int) color.Color { return s.pixmap.At(x, y) }

// Bounds implements the image.Image interface.
func (s *Snapshot) Bounds() image.Rectangle { return s.pixmap.Bounds() }

// ColorModel implements the image.Image interface.
func (s *Snapshot) ColorModel() color.Model { return s.pixmap.ColorModel() }

// Encode writes the frame to w.
func (s *Snapshot) Encode(w io.Writer, enc Encoding) error { return s.pixmap.Encode(w, enc) }

// Save writes the frame to path, choosing the encoding by extension.
func (s *Snapshot) Save(path string) error { return s.pixmap.Save(path) }

// Framebuffer is the shared reference to the latest published snapshot.
// Loads and publishes are single atomic pointer operations, so a reader
// sees either a complete previous frame or a complete new one.
type Framebuffer struct {
	current atomic.Pointer[Snapshot]
	seq     atomic.Uint64
}

// Load returns the latest snapshot, or nil before the first publish.
func (f *Framebuffer) Load() *Snapshot {
	return f.current.Load()
}

// publish wraps a finished pixmap into a snapshot and swaps it in. The
// pixmap must not be touched by the caller afterwards.
func (f *Framebuffer) publish(pm *Pixmap, stats RenderStats) *Snapshot {
	s := &Snapshot{
		pixmap:   pm,
		ID:       uuid.New(),
		Sequence: f.seq.Add(1),
		Stats:    stats,
	}
	f.current.Store(s)
	return s
}
