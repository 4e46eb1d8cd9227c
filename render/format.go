// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Format describes the channel layout of a pixel buffer.
// All formats use 8 bits per channel.
type Format uint8

const (
	// FormatRGBA stores R, G, B, A bytes per pixel. It is the layout
	// published snapshots are delivered in.
	FormatRGBA Format = iota
	// FormatBGRA stores B, G, R, A bytes per pixel. It is the native layout
	// of the software surface.
	FormatBGRA
	// FormatRGB stores R, G, B bytes per pixel.
	FormatRGB
	// FormatBGR stores B, G, R bytes per pixel.
	FormatBGR
	// FormatA stores a single alpha byte per pixel.
	FormatA

	formatCount
)

// StrideAlignment is the row alignment, in bytes, required by the surface.
const StrideAlignment = 4

// layout holds channel byte offsets; -1 marks a missing channel.
type layout struct {
	bpp        int
	r, g, b, a int
}

var layouts = [formatCount]layout{
	FormatRGBA: {bpp: 4, r: 0, g: 1, b: 2, a: 3},
	FormatBGRA: {bpp: 4, r: 2, g: 1, b: 0, a: 3},
	FormatRGB:  {bpp: 3, r: 0, g: 1, b: 2, a: -1},
	FormatBGR:  {bpp: 3, r: 2, g: 1, b: 0, a: -1},
	FormatA:    {bpp: 1, r: -1, g: -1, b: -1, a: 0},
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f < formatCount
}

// BytesPerPixel returns the size of one pixel in bytes.
func (f Format) BytesPerPixel() int {
	if !f.Valid() {
		return 0
	}
	return layouts[f].bpp
}

// HasAlpha reports whether the format carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Valid() && layouts[f].a >= 0
}

// Stride returns the row stride for a row of width pixels, padded to
// StrideAlignment bytes.
func (f Format) Stride(width int) int {
	n := width * f.BytesPerPixel()
	return (n + StrideAlignment - 1) &^ (StrideAlignment - 1)
}

// TextureFormat maps f to the equivalent GPU texture format, for consumers
// that upload snapshots. The 3-byte formats have no GPU equivalent.
func (f Format) TextureFormat() (gputypes.TextureFormat, bool) {
	switch f {
	case FormatRGBA:
		return gputypes.TextureFormatRGBA8Unorm, true
	case FormatBGRA:
		return gputypes.TextureFormatBGRA8Unorm, true
	case FormatA:
		return gputypes.TextureFormatR8Unorm, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRGBA:
		return "RGBA"
	case FormatBGRA:
		return "BGRA"
	case FormatRGB:
		return "RGB"
	case FormatBGR:
		return "BGR"
	case FormatA:
		return "A"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}
