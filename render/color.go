// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
)

// RGBA represents a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Opaque reports whether the color fully hides what lies beneath it.
func (c RGBA) Opaque() bool {
	return c.A >= 1
}

// Scale multiplies the color channels by k, leaving alpha unchanged.
func (c RGBA) Scale(k float64) RGBA {
	return RGBA{R: clamp01(c.R * k), G: clamp01(c.G * k), B: clamp01(c.B * k), A: c.A}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// to8 converts a [0, 1] channel to a byte with rounding.
func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
