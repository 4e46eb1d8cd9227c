// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"testing"
)

// TestNewEdge tests creating edges from two points.
func TestNewEdge(t *testing.T) {
	tests := []struct {
		name    string
		p0, p1  Point
		wantOK  bool
		wantY0  float64
		wantY1  float64
		wantDir int
	}{
		{"downward edge", Point{0, 0}, Point{10, 10}, true, 0, 10, 1},
		{"upward edge normalized", Point{10, 10}, Point{0, 0}, true, 0, 10, -1},
		{"horizontal edge rejected", Point{0, 5}, Point{10, 5}, false, 0, 0, 0},
		{"vertical edge", Point{5, 0}, Point{5, 20}, true, 0, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := NewEdge(tt.p0, tt.p1)
			if ok != tt.wantOK {
				t.Fatalf("NewEdge ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if e.y0 != tt.wantY0 || e.y1 != tt.wantY1 {
				t.Errorf("y range = [%v, %v], want [%v, %v]", e.y0, e.y1, tt.wantY0, tt.wantY1)
			}
			if e.dir != tt.wantDir {
				t.Errorf("dir = %d, want %d", e.dir, tt.wantDir)
			}
		})
	}
}

func TestEdgeXAtY(t *testing.T) {
	e, _ := NewEdge(Point{0, 0}, Point{10, 20})
	if got := e.XAtY(10); got != 5 {
		t.Errorf("XAtY(10) = %v, want 5", got)
	}
}

// TestPolygonEdgesSeparatesSubpaths verifies polygons are closed individually.
func TestPolygonEdgesSeparatesSubpaths(t *testing.T) {
	a := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := []Point{{20, 20}, {30, 20}, {30, 30}}

	edges := PolygonEdges(a, b)
	// Square: 2 non-horizontal edges; triangle: 2 non-horizontal edges.
	if len(edges) != 4 {
		t.Fatalf("got %d edges, want 4", len(edges))
	}
	for _, e := range edges {
		if e.x0 < 15 && e.x1 > 15 {
			t.Errorf("edge %+v bridges the two polygons", e)
		}
	}
}

func TestPolygonEdgesSkipsDegenerate(t *testing.T) {
	if edges := PolygonEdges([]Point{{0, 0}, {5, 5}}); len(edges) != 0 {
		t.Errorf("two-point polygon produced %d edges", len(edges))
	}
}

func TestActiveEdgeTableSpans(t *testing.T) {
	square := PolygonEdges([]Point{{2, 0}, {8, 0}, {8, 10}, {2, 10}})
	aet := NewActiveEdgeTable()
	aet.Collect(square, 5)

	var spans [][2]float64
	aet.Spans(FillRuleNonZero, func(x1, x2 float64) {
		spans = append(spans, [2]float64{x1, x2})
	})
	if len(spans) != 1 || spans[0] != [2]float64{2, 8} {
		t.Errorf("spans = %v, want [[2 8]]", spans)
	}
}
