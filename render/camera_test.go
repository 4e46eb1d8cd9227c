// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestOrthoCameraProject(t *testing.T) {
	cam := NewOrthoCamera(600, 400, 2, 100)

	tests := []struct {
		p          f64.Vec3
		wantX      float64
		wantY      float64
		wantDepth  float64
		descriptor string
	}{
		{f64.Vec3{0, 0, 0}, 300, 200, 0, "origin maps to center"},
		{f64.Vec3{10, 0, 0}, 320, 200, 0, "x scales by 2"},
		{f64.Vec3{0, 10, 0}, 300, 180, 0, "y points up"},
		{f64.Vec3{0, 0, 50}, 300, 200, -0.5, "toward viewer is closer"},
	}
	for _, tt := range tests {
		sp, ok := cam.Project(tt.p)
		if !ok {
			t.Fatalf("%s: not projected", tt.descriptor)
		}
		if !near(sp.X, tt.wantX) || !near(sp.Y, tt.wantY) || !near(sp.Depth, tt.wantDepth) {
			t.Errorf("%s: got %+v", tt.descriptor, sp)
		}
	}
}

func TestProjectRejectsBehindEye(t *testing.T) {
	// w = -z: a perspective-style matrix.
	m := Identity()
	m[12], m[13], m[14], m[15] = 0, 0, -1, 0
	cam := Camera{Width: 100, Height: 100, Transform: m}

	if _, ok := cam.Project(f64.Vec3{0, 0, 5}); ok {
		t.Error("point behind the eye was projected")
	}
	if _, ok := cam.Project(f64.Vec3{0, 0, -5}); !ok {
		t.Error("point in front of the eye was rejected")
	}
}

func TestMul(t *testing.T) {
	m := Mul(Translate(f64.Vec3{1, 2, 3}), Identity())
	if m != Translate(f64.Vec3{1, 2, 3}) {
		t.Error("multiplying by identity changed the matrix")
	}

	// Two quarter turns about Y equal a half turn.
	half := Mul(RotateY(math.Pi/2), RotateY(math.Pi/2))
	want := RotateY(math.Pi)
	for i := range half {
		if !near(half[i], want[i]) {
			t.Fatalf("element %d = %v, want %v", i, half[i], want[i])
		}
	}
}

func TestLightingShade(t *testing.T) {
	l := Lighting{
		Ambient: 0.2,
		Lights:  [2]Light{{Intensity: 0.8, Direction: f64.Vec3{0, 0, 1}}},
	}
	base := RGB(1, 0.5, 0)

	facing := l.Shade(base, f64.Vec3{0, 0, 1})
	away := l.Shade(base, f64.Vec3{0, 0, -1})

	if !near(facing.R, 1) || !near(facing.G, 0.5) {
		t.Errorf("facing light = %+v, want full color", facing)
	}
	if !near(away.R, 0.2) || !near(away.G, 0.1) {
		t.Errorf("facing away = %+v, want ambient only", away)
	}
	if facing.A != 1 || away.A != 1 {
		t.Error("shading changed alpha")
	}
	if got := l.Shade(base, f64.Vec3{}); got != base {
		t.Errorf("zero normal changed color: %+v", got)
	}
}
