// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides scanline rasterization of screen-space polygons.
package raster

import "math"

// RGBA represents a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Pixmap is an interface for writing pixels.
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGBA)
}

// SpanFiller is an optional interface that pixmaps can implement for optimized span filling.
type SpanFiller interface {
	FillSpan(x1, x2, y int, c RGBA)
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Rasterizer performs scanline rasterization. It is not safe for
// concurrent use; internal buffers are reused between calls.
type Rasterizer struct {
	width    int
	height   int
	aet      *ActiveEdgeTable
	coverage []float64
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:    width,
		height:   height,
		aet:      NewActiveEdgeTable(),
		coverage: make([]float64, max(width, 0)),
	}
}

// Fill rasterizes the area enclosed by edges without anti-aliasing.
// A pixel is painted when its center lies inside.
func (r *Rasterizer) Fill(pixmap Pixmap, edges []Edge, fillRule FillRule, color RGBA) {
	if len(edges) == 0 {
		return
	}

	_, yMin, _, yMax := Bounds(edges)
	y0 := max(int(math.Floor(yMin)), 0)
	y1 := min(int(math.Ceil(yMax)), pixmap.Height())

	spanFiller, _ := pixmap.(SpanFiller)
	for y := y0; y < y1; y++ {
		r.aet.Collect(edges, float64(y)+0.5)
		if r.aet.Len() == 0 {
			continue
		}
		r.aet.Spans(fillRule, func(x1, x2 float64) {
			// Pixel centers in [x1, x2).
			ix1 := max(int(math.Ceil(x1-0.5)), 0)
			ix2 := min(int(math.Ceil(x2-0.5)), pixmap.Width())
			if ix1 >= ix2 {
				return
			}
			if spanFiller != nil {
				spanFiller.FillSpan(ix1, ix2, y, color)
				return
			}
			for x := ix1; x < ix2; x++ {
				pixmap.SetPixel(x, y, color)
			}
		})
	}
}
