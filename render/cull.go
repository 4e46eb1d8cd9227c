// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"slices"
)

const (
	// depthEpsilon is how much farther a stroke must be than an occluder
	// to count as behind it. Edges lying on a face are never culled.
	depthEpsilon = 1e-7

	// coverEpsilon is the largest parameter gap tolerated between the
	// hidden intervals of a segment.
	coverEpsilon = 1e-9

	// minArea2 is the smallest doubled triangle area treated as an occluder.
	minArea2 = 1e-12

	// sampleSpacing is the largest gap, in pixels, between the lines a
	// stroke's outline is tested along.
	sampleSpacing = 0.5
)

// occluder is a screen-space triangle with a linear depth function.
type occluder struct {
	v    [3]ScreenPoint
	sign float64 // +1 or -1 so that inside tests are >= 0

	// depth(x, y) = d0 + dx*(x - v[0].X) + dy*(y - v[0].Y)
	d0, dx, dy float64

	minX, minY, maxX, maxY float64
}

func newOccluder(a, b, c ScreenPoint) (occluder, bool) {
	e1x, e1y, e1z := b.X-a.X, b.Y-a.Y, b.Depth-a.Depth
	e2x, e2y, e2z := c.X-a.X, c.Y-a.Y, c.Depth-a.Depth
	area2 := e1x*e2y - e1y*e2x
	if math.Abs(area2) < minArea2 {
		return occluder{}, false
	}
	sign := 1.0
	if area2 < 0 {
		sign = -1
	}
	return occluder{
		v:    [3]ScreenPoint{a, b, c},
		sign: sign,
		d0:   a.Depth,
		dx:   (e1z*e2y - e2z*e1y) / area2,
		dy:   (e2z*e1x - e1z*e2x) / area2,
		minX: math.Min(a.X, math.Min(b.X, c.X)),
		minY: math.Min(a.Y, math.Min(b.Y, c.Y)),
		maxX: math.Max(a.X, math.Max(b.X, c.X)),
		maxY: math.Max(a.Y, math.Max(b.Y, c.Y)),
	}, true
}

func (o *occluder) depthAt(x, y float64) float64 {
	return o.d0 + o.dx*(x-o.v[0].X) + o.dy*(y-o.v[0].Y)
}

// hiddenInterval returns the parameter range of segment a->b that lies
// inside the triangle and strictly behind it.
func (o *occluder) hiddenInterval(a, b ScreenPoint) (lo, hi float64, ok bool) {
	if math.Max(a.X, b.X) < o.minX || math.Min(a.X, b.X) > o.maxX ||
		math.Max(a.Y, b.Y) < o.minY || math.Min(a.Y, b.Y) > o.maxY {
		return 0, 0, false
	}

	lo, hi = 0, 1
	for i := 0; i < 3; i++ {
		p, q := o.v[i], o.v[(i+1)%3]
		ex, ey := q.X-p.X, q.Y-p.Y
		f0 := o.sign * (ex*(a.Y-p.Y) - ey*(a.X-p.X))
		f1 := o.sign * (ex*(b.Y-p.Y) - ey*(b.X-p.X))
		if lo, hi, ok = clipLinear(f0, f1, lo, hi); !ok {
			return 0, 0, false
		}
	}

	g0 := a.Depth - o.depthAt(a.X, a.Y) - depthEpsilon
	g1 := b.Depth - o.depthAt(b.X, b.Y) - depthEpsilon
	return clipLinear(g0, g1, lo, hi)
}

// clipLinear narrows [lo, hi] to where f(t) = f0 + (f1-f0)*t >= 0.
func clipLinear(f0, f1, lo, hi float64) (float64, float64, bool) {
	switch {
	case f0 >= 0 && f1 >= 0:
	case f0 < 0 && f1 < 0:
		return 0, 0, false
	default:
		tc := f0 / (f0 - f1)
		if f0 < 0 {
			lo = math.Max(lo, tc)
		} else {
			hi = math.Min(hi, tc)
		}
	}
	return lo, hi, lo <= hi
}

type interval struct{ lo, hi float64 }

// culler holds the occluders seen so far in paint order.
type culler struct {
	occluders []occluder
	scratch   []interval
}

// addPrimitive registers the opaque area of p as an occluder.
func (cl *culler) addPrimitive(p Primitive) {
	switch p := p.(type) {
	case *Fill:
		if !p.Color.Opaque() {
			return
		}
		for i := 1; i+1 < len(p.Points); i++ {
			cl.add(p.Points[0], p.Points[i], p.Points[i+1])
		}
	case *Stroke:
		if !p.Style.Color.Opaque() {
			return
		}
		hw := strokeWidth(p.Style) / 2
		for i := 0; i+1 < len(p.Points); i++ {
			a, b := p.Points[i], p.Points[i+1]
			nx, ny, ok := normal(a, b)
			if !ok {
				continue
			}
			a0 := ScreenPoint{a.X + nx*hw, a.Y + ny*hw, a.Depth}
			a1 := ScreenPoint{a.X - nx*hw, a.Y - ny*hw, a.Depth}
			b0 := ScreenPoint{b.X + nx*hw, b.Y + ny*hw, b.Depth}
			b1 := ScreenPoint{b.X - nx*hw, b.Y - ny*hw, b.Depth}
			cl.add(a0, a1, b1)
			cl.add(a0, b1, b0)
		}
	}
}

func (cl *culler) add(a, b, c ScreenPoint) {
	if o, ok := newOccluder(a, b, c); ok {
		cl.occluders = append(cl.occluders, o)
	}
}

// hidden reports whether the painted area of every segment of s is
// covered by occluders. Each segment is tested along lines parallel to it
// spanning the full stroke width, no more than sampleSpacing apart.
func (cl *culler) hidden(s *Stroke) bool {
	if len(cl.occluders) == 0 {
		return false
	}
	hw := strokeWidth(s.Style) / 2
	lines := int(math.Ceil(2 * hw / sampleSpacing))
	for i := 0; i+1 < len(s.Points); i++ {
		a, b := s.Points[i], s.Points[i+1]
		nx, ny, ok := normal(a, b)
		if !ok {
			if !cl.segmentHidden(a, b) {
				return false
			}
			continue
		}
		for k := 0; k <= lines; k++ {
			off := -hw + 2*hw*float64(k)/float64(lines)
			a1 := ScreenPoint{a.X + nx*off, a.Y + ny*off, a.Depth}
			b1 := ScreenPoint{b.X + nx*off, b.Y + ny*off, b.Depth}
			if !cl.segmentHidden(a1, b1) {
				return false
			}
		}
	}
	return true
}

func (cl *culler) segmentHidden(a, b ScreenPoint) bool {
	ivs := cl.scratch[:0]
	for i := range cl.occluders {
		if lo, hi, ok := cl.occluders[i].hiddenInterval(a, b); ok {
			ivs = append(ivs, interval{lo, hi})
		}
	}
	cl.scratch = ivs
	if len(ivs) == 0 {
		return false
	}

	slices.SortFunc(ivs, func(x, y interval) int {
		switch {
		case x.lo < y.lo:
			return -1
		case x.lo > y.lo:
			return 1
		}
		return 0
	})
	reach := 0.0
	for _, iv := range ivs {
		if iv.lo > reach+coverEpsilon {
			return false
		}
		reach = math.Max(reach, iv.hi)
	}
	return reach >= 1-coverEpsilon
}

// CullOccludedStrokes removes strokes that are entirely hidden behind
// opaque geometry appended before them. A stroke that is visible anywhere
// is kept whole. Fills are never removed. It returns the number of strokes
// removed.
func (c *Canvas) CullOccludedStrokes() int {
	var cl culler
	kept := c.items[:0]
	removed := 0
	for _, p := range c.items {
		if s, ok := p.(*Stroke); ok && cl.hidden(s) {
			removed++
			continue
		}
		cl.addPrimitive(p)
		kept = append(kept, p)
	}
	clear(c.items[len(kept):])
	c.items = kept
	return removed
}

// normal returns the unit perpendicular of segment a->b in screen space.
func normal(a, b ScreenPoint) (nx, ny float64, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return 0, 0, false
	}
	return -dy / l, dx / l, true
}

func strokeWidth(s StrokeStyle) float64 {
	return math.Max(s.Width, 1)
}
