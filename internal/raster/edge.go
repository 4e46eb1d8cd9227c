// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// Point is a screen-space position in pixels.
type Point struct {
	X, Y float64
}

// horizontalEpsilon is the minimum |dy| for an edge to take part in scan conversion.
const horizontalEpsilon = 1e-9

// Edge represents a line segment for scanline rasterization.
type Edge struct {
	x0, y0 float64 // Start point (y0 < y1)
	x1, y1 float64 // End point
	dir    int     // +1 or -1, for the non-zero winding rule
}

// NewEdge creates a new edge from two points. The second result is false
// for horizontal (or degenerate) segments, which contribute no crossings.
func NewEdge(p0, p1 Point) (Edge, bool) {
	if math.Abs(p1.Y-p0.Y) < horizontalEpsilon {
		return Edge{}, false
	}

	// Direction is taken before the swap.
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	return Edge{
		x0:  p0.X,
		y0:  p0.Y,
		x1:  p1.X,
		y1:  p1.Y,
		dir: dir,
	}, true
}

// PolygonEdges builds the edge list of one or more polygons. Each polygon
// is closed implicitly; no edge joins the last point of one polygon to the
// first point of the next.
func PolygonEdges(polygons ...[]Point) []Edge {
	n := 0
	for _, poly := range polygons {
		n += len(poly)
	}
	edges := make([]Edge, 0, n)
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		for i := range poly {
			j := i + 1
			if j == len(poly) {
				j = 0
			}
			if e, ok := NewEdge(poly[i], poly[j]); ok {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// Bounds returns the bounding box of a set of edges.
func Bounds(edges []Edge) (xMin, yMin, xMax, yMax float64) {
	xMin, yMin = math.MaxFloat64, math.MaxFloat64
	xMax, yMax = -math.MaxFloat64, -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
		xMin = math.Min(xMin, math.Min(e.x0, e.x1))
		xMax = math.Max(xMax, math.Max(e.x0, e.x1))
	}
	return xMin, yMin, xMax, yMax
}

// ActiveEdgeTable represents edges active at a scanline.
type ActiveEdgeTable struct {
	edges []ActiveEdge
}

// ActiveEdge is an edge crossing the current scanline.
type ActiveEdge struct {
	x   float64
	dir int
}

// NewActiveEdgeTable creates a new active edge table.
func NewActiveEdgeTable() *ActiveEdgeTable {
	return &ActiveEdgeTable{
		edges: make([]ActiveEdge, 0, 32),
	}
}

// Collect replaces the table contents with the edges crossing y.
func (aet *ActiveEdgeTable) Collect(edges []Edge, y float64) {
	aet.edges = aet.edges[:0]
	for i := range edges {
		e := &edges[i]
		if e.y0 <= y && y < e.y1 {
			aet.edges = append(aet.edges, ActiveEdge{x: e.XAtY(y), dir: e.dir})
		}
	}
	aet.sort()
}

// sort orders edges by x coordinate (insertion sort for small lists).
func (aet *ActiveEdgeTable) sort() {
	for i := 1; i < len(aet.edges); i++ {
		key := aet.edges[i]
		j := i - 1
		for j >= 0 && aet.edges[j].x > key.x {
			aet.edges[j+1] = aet.edges[j]
			j--
		}
		aet.edges[j+1] = key
	}
}

// Spans calls fn for every interior span [x1, x2) of the current scanline.
func (aet *ActiveEdgeTable) Spans(rule FillRule, fn func(x1, x2 float64)) {
	edges := aet.edges
	if rule == FillRuleEvenOdd {
		for i := 0; i+1 < len(edges); i += 2 {
			fn(edges[i].x, edges[i+1].x)
		}
		return
	}

	winding := 0
	var x1 float64
	for _, e := range edges {
		if winding == 0 {
			x1 = e.x
		}
		winding += e.dir
		if winding == 0 {
			fn(x1, e.x)
		}
	}
}

// Len returns the number of active edges.
func (aet *ActiveEdgeTable) Len() int {
	return len(aet.edges)
}
