// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestDrawCubicFlattensToTolerance(t *testing.T) {
	// Quarter circle of radius 200 around the origin.
	const k = 0.5522847498
	p0 := f64.Vec3{200, 0, 0}
	p1 := f64.Vec3{200, 200 * k, 0}
	p2 := f64.Vec3{200 * k, 200, 0}
	p3 := f64.Vec3{0, 200, 0}

	coarse := newTestCanvas(t)
	coarse.ChordTolerance = 2
	coarse.DrawCubic(p0, p1, p2, p3, StrokeStyle{Color: red})

	fine := newTestCanvas(t)
	fine.ChordTolerance = 0.05
	fine.DrawCubic(p0, p1, p2, p3, StrokeStyle{Color: red})

	if coarse.Len() != 1 || fine.Len() != 1 {
		t.Fatalf("expected one stroke each, got %d and %d", coarse.Len(), fine.Len())
	}
	cs := coarse.Primitives()[0].(*Stroke)
	fs := fine.Primitives()[0].(*Stroke)
	if len(cs.Points) < 3 {
		t.Errorf("coarse curve has %d points, want a polyline", len(cs.Points))
	}
	if len(fs.Points) <= len(cs.Points) {
		t.Errorf("tighter tolerance gave %d points, coarse gave %d", len(fs.Points), len(cs.Points))
	}

	// Endpoints are exact.
	first, last := fs.Points[0], fs.Points[len(fs.Points)-1]
	if !near(first.X, 500) || !near(first.Y, 300) || !near(last.X, 300) || !near(last.Y, 100) {
		t.Errorf("endpoints = %+v, %+v", first, last)
	}

	// Every chord midpoint stays within tolerance of the circle.
	for i := 0; i+1 < len(fs.Points); i++ {
		mx := (fs.Points[i].X+fs.Points[i+1].X)/2 - 300
		my := (fs.Points[i].Y+fs.Points[i+1].Y)/2 - 300
		if d := math.Abs(math.Hypot(mx, my) - 200); d > 0.1 {
			t.Errorf("chord %d deviates %.3f px", i, d)
		}
	}
}

func TestDrawQuadratic(t *testing.T) {
	c := newTestCanvas(t)
	c.DrawQuadratic(f64.Vec3{-100, 0, 0}, f64.Vec3{0, 200, 0}, f64.Vec3{100, 0, 0}, StrokeStyle{Color: red})
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if s := c.Primitives()[0].(*Stroke); len(s.Points) < 3 {
		t.Errorf("quadratic flattened to %d points", len(s.Points))
	}
}

// perspectiveCamera returns a camera with w = -z, so points with z >= 0
// are behind the eye.
func perspectiveCamera(width, height int) Camera {
	m := Identity()
	m[14], m[15] = -1, 0
	return Camera{Width: width, Height: height, Transform: m}
}

func TestDrawPolylineSplitsBehindEye(t *testing.T) {
	c := newTestCanvas(t)
	c.Camera = perspectiveCamera(600, 600)

	c.DrawPolyline([]f64.Vec3{
		{0, 0, -1}, {0.1, 0, -1},                 // visible run
		{0, 0, 1},                                // behind the eye
		{0.2, 0, -1}, {0.3, 0, -1}, {0.4, 0, -1}, // visible run
		{0, 0, 2},                                // behind the eye
		{0.5, 0, -1},                             // visible from the eye plane on
	}, StrokeStyle{Color: red})

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	for i, want := range []int{3, 5, 2} {
		if n := len(c.Primitives()[i].(*Stroke).Points); n != want {
			t.Errorf("run %d has %d points, want %d", i, n, want)
		}
	}
}

func TestDrawLineClippedAtEye(t *testing.T) {
	tests := []struct {
		name     string
		from, to f64.Vec3
		near     int // index of the point in front of the eye
	}{
		{"leaves view", f64.Vec3{0.5, 0, -1}, f64.Vec3{0.5, 0, 1}, 0},
		{"enters view", f64.Vec3{0.5, 0, 1}, f64.Vec3{0.5, 0, -1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t)
			c.Camera = perspectiveCamera(100, 100)
			c.DrawLine(tt.from, tt.to, StrokeStyle{Color: red})

			if c.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", c.Len())
			}
			pts := c.Primitives()[0].(*Stroke).Points
			if len(pts) != 2 {
				t.Fatalf("stroke has %d points, want 2", len(pts))
			}
			if p := pts[tt.near]; !near(p.X, 75) || !near(p.Y, 50) {
				t.Errorf("near end = (%v, %v), want (75, 50)", p.X, p.Y)
			}
			// The clipped end runs off toward +X along the same row.
			if p := pts[1-tt.near]; p.X < 1e6 || !near(p.Y, 50) {
				t.Errorf("clipped end = (%v, %v), want far right on row 50", p.X, p.Y)
			}
		})
	}
}

func TestDrawLineBehindEyeDropped(t *testing.T) {
	c := newTestCanvas(t)
	c.Camera = perspectiveCamera(100, 100)
	c.DrawLine(f64.Vec3{0, 0, 1}, f64.Vec3{1, 0, 2}, StrokeStyle{Color: red})
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestFillPolygonLighting(t *testing.T) {
	c := newTestCanvas(t)
	c.Lighting = Lighting{
		Background: White,
		Ambient:    0.25,
		Lights:     [2]Light{{Intensity: 0.5, Direction: f64.Vec3{0, 0, 1}}},
	}

	c.FillPolygon(square(50, 0), FillStyle{Color: White, Lit: true})  // faces +Z
	c.FillPolygon(square(50, 0), FillStyle{Color: White, Lit: false}) // unshaded
	c.FillTriangle(f64.Vec3{0, 0, 0}, f64.Vec3{0, 10, 0}, f64.Vec3{10, 0, 0}, FillStyle{Color: White, Lit: true})

	items := c.Primitives()
	if got := items[0].(*Fill).Color; !near(got.R, 0.75) || got.A != 1 {
		t.Errorf("lit front face = %+v, want 0.75 gray", got)
	}
	if got := items[1].(*Fill).Color; got != White {
		t.Errorf("unlit face = %+v, want white", got)
	}
	if got := items[2].(*Fill).Color; !near(got.R, 0.25) {
		t.Errorf("lit back face = %+v, want ambient only", got)
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	c := newTestCanvas(t)
	c.FillPolygon([]f64.Vec3{{0, 0, 0}, {1, 1, 0}}, FillStyle{Color: blue})
	c.DrawPolyline([]f64.Vec3{{0, 0, 0}}, StrokeStyle{Color: red})
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCanvasClearKeepsCapacity(t *testing.T) {
	c := newTestCanvas(t)
	drawOcclusionScene(c)
	capBefore := cap(c.Primitives())

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	if cap(c.Primitives()) != capBefore {
		t.Errorf("Clear dropped capacity: %d -> %d", capBefore, cap(c.Primitives()))
	}
}

func TestOutputInPaintOrder(t *testing.T) {
	c := newTestCanvas(t)
	c.Antialias = false
	pm := c.Surface().Pixmap()
	pm.Clear(White)

	c.FillPolygon(square(100, 0), FillStyle{Color: blue})
	c.FillPolygon(square(50, 0), FillStyle{Color: red}) // painted over the first
	c.OutputInPaintOrder()

	if got := pm.GetPixel(300, 300); got != red {
		t.Errorf("center = %+v, want red", got)
	}
	if got := pm.GetPixel(220, 220); got != blue {
		t.Errorf("outer ring = %+v, want blue", got)
	}
	if got := pm.GetPixel(199, 300); got != White {
		t.Errorf("outside = %+v, want white", got)
	}

	blues := 0
	for y := 0; y < 600; y++ {
		for x := 0; x < 600; x++ {
			if pm.GetPixel(x, y) == blue {
				blues++
			}
		}
	}
	if want := 200*200 - 100*100; blues != want {
		t.Errorf("blue pixels = %d, want %d", blues, want)
	}
}

func TestOutputStrokeAntialiased(t *testing.T) {
	c := newTestCanvas(t)
	pm := c.Surface().Pixmap()
	pm.Clear(White)

	// A 4 px wide horizontal stroke centered on a pixel boundary.
	c.DrawLine(f64.Vec3{-100, 0, 0}, f64.Vec3{100, 0, 0}, StrokeStyle{Color: Black, Width: 4})
	c.OutputInPaintOrder()

	for _, y := range []int{298, 299, 300, 301} {
		if got := pm.GetPixel(300, y); got != Black {
			t.Errorf("row %d = %+v, want black", y, got)
		}
	}
	for _, y := range []int{297, 302} {
		if got := pm.GetPixel(300, y); got != White {
			t.Errorf("row %d = %+v, want white", y, got)
		}
	}
}

func TestTranslucentFillBlends(t *testing.T) {
	c := newTestCanvas(t)
	pm := c.Surface().Pixmap()
	pm.Clear(White)

	c.FillPolygon(square(100, 0), FillStyle{Color: RGBA{R: 0, G: 0, B: 1, A: 0.5}})
	c.OutputInPaintOrder()

	got := pm.GetPixel(300, 300)
	if math.Abs(got.R-0.5) > 1.0/255 || got.B != 1 || got.A != 1 {
		t.Errorf("blended = %+v, want half blue over white", got)
	}
}
