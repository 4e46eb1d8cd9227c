// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package path flattens 3-D curves into polylines against a screen-space
// chord tolerance.
package path

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Projector maps a world-space point to screen space (pixels).
type Projector func(p f64.Vec3) (x, y float64)

// DefaultTolerance is the maximum chordal deviation, in pixels, used when
// the caller passes a non-positive tolerance.
const DefaultTolerance = 0.1

// maxDepth bounds subdivision so degenerate projections cannot recurse forever.
const maxDepth = 16

// FlattenCubic converts a cubic Bezier curve into line segments whose
// projected deviation from the curve stays under tolerance. The start
// point p0 is not included; the end point p3 always is.
func FlattenCubic(p0, p1, p2, p3 f64.Vec3, tolerance float64, project Projector) []f64.Vec3 {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	var points []f64.Vec3
	flattenCubicRec(p0, p1, p2, p3, tolerance, project, 0, &points)
	return points
}

// FlattenQuad converts a quadratic Bezier curve into line segments.
// The start point is not included.
func FlattenQuad(p0, p1, p2 f64.Vec3, tolerance float64, project Projector) []f64.Vec3 {
	// Degree elevation keeps one subdivision routine.
	c1 := lerp(p0, p1, 2.0/3.0)
	c2 := lerp(p2, p1, 2.0/3.0)
	return FlattenCubic(p0, c1, c2, p2, tolerance, project)
}

// flattenCubicRec recursively subdivides a cubic Bezier curve.
func flattenCubicRec(p0, p1, p2, p3 f64.Vec3, tolerance float64, project Projector, depth int, points *[]f64.Vec3) {
	a := screen(project, p0)
	b := screen(project, p1)
	c := screen(project, p2)
	d := screen(project, p3)
	dist := math.Max(distanceToLine(b, a, d), distanceToLine(c, a, d))

	if dist < tolerance || depth >= maxDepth || math.IsNaN(dist) {
		*points = append(*points, p3)
		return
	}

	// de Casteljau split at t = 0.5.
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	s := lerp(r0, r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, project, depth+1, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, project, depth+1, points)
}

type point2 struct{ x, y float64 }

func screen(project Projector, p f64.Vec3) point2 {
	x, y := project(p)
	return point2{x, y}
}

func lerp(p, q f64.Vec3, t float64) f64.Vec3 {
	return f64.Vec3{
		p[0] + (q[0]-p[0])*t,
		p[1] + (q[1]-p[1])*t,
		p[2] + (q[2]-p[2])*t,
	}
}

// distanceToLine calculates the distance from p to the segment (a, b).
func distanceToLine(p, a, b point2) float64 {
	abx, aby := b.x-a.x, b.y-a.y
	abLen2 := abx*abx + aby*aby
	if abLen2 < 1e-20 {
		return math.Hypot(p.x-a.x, p.y-a.y)
	}

	t := ((p.x-a.x)*abx + (p.y-a.y)*aby) / abLen2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.x-(a.x+abx*t), p.y-(a.y+aby*t))
}
