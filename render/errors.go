// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidViewport is returned when the camera viewport has a zero or
	// negative dimension.
	ErrInvalidViewport = errors.New("render: invalid viewport")

	// ErrSurfaceUnavailable is returned when no rasterization surface could
	// be acquired for a render pass.
	ErrSurfaceUnavailable = errors.New("render: rasterization surface unavailable")

	// ErrPipelineBusy is returned when Paint is called while another pass
	// (possibly the caller's own, from inside Draw) is still running.
	ErrPipelineBusy = errors.New("render: pipeline busy")

	// ErrUnsupportedFormat is returned for pixel formats the pixmap cannot
	// represent or encode.
	ErrUnsupportedFormat = errors.New("render: unsupported pixel format")
)

// ViewportError reports the offending dimensions of a rejected viewport.
type ViewportError struct {
	Width, Height int
}

// Error implements the error interface.
func (e *ViewportError) Error() string {
	return fmt.Sprintf("render: invalid viewport %dx%d", e.Width, e.Height)
}

// Unwrap allows errors.Is(err, ErrInvalidViewport).
func (e *ViewportError) Unwrap() error {
	return ErrInvalidViewport
}
