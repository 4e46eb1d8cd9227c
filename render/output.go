// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/headless/internal/raster"
)

// pixmapAdapter adapts a Pixmap to the raster.AAPixmap interface.
type pixmapAdapter struct {
	pixmap *Pixmap
}

func (p *pixmapAdapter) Width() int {
	return p.pixmap.Width()
}

func (p *pixmapAdapter) Height() int {
	return p.pixmap.Height()
}

func (p *pixmapAdapter) SetPixel(x, y int, c raster.RGBA) {
	p.pixmap.SetPixel(x, y, RGBA(c))
}

// FillSpan implements raster.SpanFiller.
func (p *pixmapAdapter) FillSpan(x1, x2, y int, c raster.RGBA) {
	for x := x1; x < x2; x++ {
		p.BlendPixelAlpha(x, y, c, 255)
	}
}

// BlendPixelAlpha composites c over the existing pixel with the given
// coverage (source-over, straight alpha).
func (p *pixmapAdapter) BlendPixelAlpha(x, y int, c raster.RGBA, alpha uint8) {
	if alpha == 0 || !p.pixmap.inBounds(x, y) {
		return
	}

	srcAlpha := c.A * float64(alpha) / 255
	if srcAlpha >= 1 {
		p.pixmap.SetPixel(x, y, RGBA(c))
		return
	}

	existing := p.pixmap.GetPixel(x, y)
	inv := 1 - srcAlpha
	outA := srcAlpha + existing.A*inv
	if outA <= 0 {
		return
	}
	p.pixmap.SetPixel(x, y, RGBA{
		R: (c.R*srcAlpha + existing.R*existing.A*inv) / outA,
		G: (c.G*srcAlpha + existing.G*existing.A*inv) / outA,
		B: (c.B*srcAlpha + existing.B*existing.A*inv) / outA,
		A: outA,
	})
}

// OutputInPaintOrder rasterizes the paint-order list onto the canvas
// surface. Later primitives paint over earlier ones.
func (c *Canvas) OutputInPaintOrder() {
	target := &pixmapAdapter{pixmap: c.surface.Pixmap()}
	for _, p := range c.items {
		var (
			edges []raster.Edge
			color RGBA
		)
		switch p := p.(type) {
		case *Fill:
			edges = raster.PolygonEdges(toRaster(p.Points))
			color = p.Color
		case *Stroke:
			edges = strokeEdges(p)
			color = p.Style.Color
		}
		if len(edges) == 0 {
			continue
		}

		rc := raster.RGBA(color)
		if c.Antialias {
			c.rasterizer.FillAA(target, edges, raster.FillRuleNonZero, rc)
		} else {
			c.rasterizer.Fill(target, edges, raster.FillRuleNonZero, rc)
		}
	}
}

// strokeEdges expands each segment into a quad around it. All quads share
// one orientation, so the non-zero rule paints their union once.
func strokeEdges(s *Stroke) []raster.Edge {
	hw := strokeWidth(s.Style) / 2
	quads := make([][]raster.Point, 0, len(s.Points)-1)
	for i := 0; i+1 < len(s.Points); i++ {
		a, b := s.Points[i], s.Points[i+1]
		nx, ny, ok := normal(a, b)
		if !ok {
			continue
		}
		quads = append(quads, []raster.Point{
			{X: a.X + nx*hw, Y: a.Y + ny*hw},
			{X: a.X - nx*hw, Y: a.Y - ny*hw},
			{X: b.X - nx*hw, Y: b.Y - ny*hw},
			{X: b.X + nx*hw, Y: b.Y + ny*hw},
		})
	}
	return raster.PolygonEdges(quads...)
}

func toRaster(points []ScreenPoint) []raster.Point {
	out := make([]raster.Point, len(points))
	for i, p := range points {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}
