// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"golang.org/x/image/math/f64"

	"github.com/gogpu/headless/internal/logging"
	"github.com/gogpu/headless/internal/path"
	"github.com/gogpu/headless/internal/raster"
)

// Primitive is one entry of a canvas paint-order list: a *Stroke or a *Fill.
type Primitive interface {
	isPrimitive()
}

// StrokeStyle controls how a stroke is painted.
type StrokeStyle struct {
	Color RGBA
	// Width is the line width in pixels. Values below 1 paint a 1-pixel line.
	Width float64
}

// FillStyle controls how a filled region is painted.
type FillStyle struct {
	Color RGBA
	// Lit shades the color from the canvas lighting and the face normal.
	Lit bool
}

// Stroke is a projected polyline.
type Stroke struct {
	Points []ScreenPoint
	Style  StrokeStyle
}

func (*Stroke) isPrimitive() {}

// Fill is a projected convex polygon painted in a solid color.
type Fill struct {
	Points []ScreenPoint
	Color  RGBA
}

func (*Fill) isPrimitive() {}

// Canvas accumulates primitives for one render pass. Geometry is projected
// through Camera when appended; nothing is painted until the pipeline
// culls and outputs the paint-order list.
//
// A Canvas is only valid during the Draw call it is passed to.
type Canvas struct {
	Camera   Camera
	Lighting Lighting

	// ChordTolerance is the maximum deviation, in pixels, between a curve
	// and the line segments approximating it.
	ChordTolerance float64

	// Antialias selects coverage-based edge smoothing.
	Antialias bool

	surface    Surface
	rasterizer *raster.Rasterizer
	items      []Primitive
}

// newCanvas builds a canvas drawing into surface.
func newCanvas(camera Camera, lighting Lighting, tolerance float64, antialias bool, surface Surface) *Canvas {
	pm := surface.Pixmap()
	return &Canvas{
		Camera:         camera,
		Lighting:       lighting,
		ChordTolerance: tolerance,
		Antialias:      antialias,
		surface:        surface,
		rasterizer:     raster.NewRasterizer(pm.Width(), pm.Height()),
	}
}

// Surface returns the rasterization surface the canvas outputs to.
func (c *Canvas) Surface() Surface {
	return c.surface
}

// Primitives returns the paint-order list. The slice is owned by the canvas.
func (c *Canvas) Primitives() []Primitive {
	return c.items
}

// Len returns the number of primitives in the paint-order list.
func (c *Canvas) Len() int {
	return len(c.items)
}

// Clear empties the paint-order list, keeping its capacity.
func (c *Canvas) Clear() {
	clear(c.items)
	c.items = c.items[:0]
}

// Append adds an already projected primitive to the paint-order list.
func (c *Canvas) Append(p Primitive) {
	c.items = append(c.items, p)
}

// DrawLine appends a straight stroke from a to b.
func (c *Canvas) DrawLine(a, b f64.Vec3, style StrokeStyle) {
	c.DrawPolyline([]f64.Vec3{a, b}, style)
}

// DrawPolyline appends a stroke through points. A segment crossing behind
// the eye of a perspective camera is clipped where it leaves the view, and
// the polyline splits there.
func (c *Canvas) DrawPolyline(points []f64.Vec3, style StrokeStyle) {
	run := make([]ScreenPoint, 0, len(points))
	var prev f64.Vec4
	for i, p := range points {
		h := c.Camera.clip(p)
		visible := h[3] >= minW
		if i > 0 {
			switch prevVisible := prev[3] >= minW; {
			case prevVisible && !visible:
				run = append(run, c.Camera.clipToEye(prev, h))
				c.appendStroke(run, style)
				run = nil
			case !prevVisible && visible:
				run = append(run, c.Camera.clipToEye(h, prev))
			}
		}
		if visible {
			run = append(run, c.Camera.toScreen(h))
		}
		prev = h
	}
	c.appendStroke(run, style)
}

// DrawCubic appends a cubic Bezier stroke flattened to ChordTolerance.
func (c *Canvas) DrawCubic(p0, p1, p2, p3 f64.Vec3, style StrokeStyle) {
	pts := path.FlattenCubic(p0, p1, p2, p3, c.ChordTolerance, c.Camera.projectXY)
	c.DrawPolyline(append([]f64.Vec3{p0}, pts...), style)
}

// DrawQuadratic appends a quadratic Bezier stroke flattened to ChordTolerance.
func (c *Canvas) DrawQuadratic(p0, p1, p2 f64.Vec3, style StrokeStyle) {
	pts := path.FlattenQuad(p0, p1, p2, c.ChordTolerance, c.Camera.projectXY)
	c.DrawPolyline(append([]f64.Vec3{p0}, pts...), style)
}

// FillTriangle appends a filled triangle.
func (c *Canvas) FillTriangle(a, b, d f64.Vec3, style FillStyle) {
	c.FillPolygon([]f64.Vec3{a, b, d}, style)
}

// FillPolygon appends a filled planar convex polygon. The face normal for
// lit fills follows the right-hand rule over the first three vertices.
func (c *Canvas) FillPolygon(points []f64.Vec3, style FillStyle) {
	if len(points) < 3 {
		return
	}
	color := style.Color
	if style.Lit {
		color = c.Lighting.Shade(color, cross(sub(points[1], points[0]), sub(points[2], points[0])))
	}

	projected := make([]ScreenPoint, len(points))
	for i, p := range points {
		sp, ok := c.Camera.Project(p)
		if !ok {
			logging.Logger().Debug("render: dropping fill with unprojectable vertex", "vertices", len(points))
			return
		}
		projected[i] = sp
	}
	c.items = append(c.items, &Fill{Points: projected, Color: color})
}

func (c *Canvas) appendStroke(run []ScreenPoint, style StrokeStyle) {
	if len(run) < 2 {
		return
	}
	c.items = append(c.items, &Stroke{Points: run, Style: style})
}
