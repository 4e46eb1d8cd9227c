// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// SupersampleShift controls vertical supersampling: 2 means 4 sub-scanlines per row.
const SupersampleShift = 2

// SupersampleScale is the number of sub-scanlines per pixel row.
const SupersampleScale = 1 << SupersampleShift

// AAPixmap extends Pixmap with alpha-blended pixel writing.
type AAPixmap interface {
	Pixmap
	// BlendPixelAlpha blends a color with the existing pixel using given alpha.
	// alpha is in range 0-255.
	BlendPixelAlpha(x, y int, c RGBA, alpha uint8)
}

// FillAA rasterizes the area enclosed by edges with anti-aliasing.
//
// Each pixel row is sampled on SupersampleScale sub-scanlines; along a
// sub-scanline the exact horizontal overlap of every span with every pixel
// is accumulated, so coverage is exact in x and quantized in y.
func (r *Rasterizer) FillAA(pixmap AAPixmap, edges []Edge, fillRule FillRule, color RGBA) {
	if len(edges) == 0 {
		return
	}

	xMin, yMin, xMax, yMax := Bounds(edges)
	y0 := max(int(math.Floor(yMin)), 0)
	y1 := min(int(math.Ceil(yMax)), pixmap.Height())
	x0 := max(int(math.Floor(xMin)), 0)
	x1 := min(int(math.Ceil(xMax)), pixmap.Width(), r.width)
	if x0 >= x1 {
		return
	}

	const weight = 1.0 / SupersampleScale
	for y := y0; y < y1; y++ {
		touched := false
		for s := 0; s < SupersampleScale; s++ {
			scanY := float64(y) + (float64(s)+0.5)*weight
			r.aet.Collect(edges, scanY)
			if r.aet.Len() == 0 {
				continue
			}
			r.aet.Spans(fillRule, func(sx1, sx2 float64) {
				if r.accumulate(sx1, sx2, weight) {
					touched = true
				}
			})
		}
		if touched {
			r.flushRow(pixmap, y, x0, x1, color)
		}
	}
}

// accumulate adds weighted horizontal coverage of [x1, x2) to the row buffer.
func (r *Rasterizer) accumulate(x1, x2, weight float64) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x1 = math.Max(x1, 0)
	x2 = math.Min(x2, float64(len(r.coverage)))
	if x2 <= x1 {
		return false
	}

	ix1 := int(x1)
	ix2 := int(math.Ceil(x2))
	if ix2-ix1 == 1 {
		r.coverage[ix1] += (x2 - x1) * weight
		return true
	}
	r.coverage[ix1] += (float64(ix1+1) - x1) * weight
	for x := ix1 + 1; x < ix2-1; x++ {
		r.coverage[x] += weight
	}
	r.coverage[ix2-1] += (x2 - float64(ix2-1)) * weight
	return true
}

// flushRow blends the accumulated row coverage and resets the buffer.
func (r *Rasterizer) flushRow(pixmap AAPixmap, y, x0, x1 int, color RGBA) {
	for x := x0; x < x1; x++ {
		c := r.coverage[x]
		if c <= 0 {
			continue
		}
		r.coverage[x] = 0
		//nolint:gosec // c is clamped to [0, 1] before scaling
		alpha := uint8(math.Min(c, 1)*255 + 0.5)
		if alpha != 0 {
			pixmap.BlendPixelAlpha(x, y, color, alpha)
		}
	}
}
