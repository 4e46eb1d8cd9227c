// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"golang.org/x/image/math/f64"
)

// minW is the smallest clip-space w accepted by Project; points at or
// behind the eye plane of a perspective camera are rejected.
const minW = 1e-9

// ScreenPoint is a projected point: pixel coordinates (origin top-left,
// y down) plus normalized depth, where smaller depth is closer.
type ScreenPoint struct {
	X, Y, Depth float64
}

// Camera holds the viewport and the world-to-clip transform.
type Camera struct {
	// Width and Height are the viewport size in pixels.
	Width, Height int

	// Transform maps world coordinates to clip space. It is a row-major
	// 4x4 matrix applied to column vectors (x, y, z, 1).
	Transform f64.Mat4
}

// NewOrthoCamera returns an orthographic camera centered on the world
// origin, looking down -Z, with scale pixels per world unit. Geometry with
// |z| <= depth is inside the view volume.
func NewOrthoCamera(width, height int, scale, depth float64) Camera {
	hw := float64(width) / 2 / scale
	hh := float64(height) / 2 / scale
	return Camera{
		Width:     width,
		Height:    height,
		Transform: Ortho(-hw, hw, -hh, hh, -depth, depth),
	}
}

// Project maps a world-space point to the screen. ok is false when the
// point cannot be projected (behind a perspective eye).
func (c Camera) Project(p f64.Vec3) (sp ScreenPoint, ok bool) {
	h := c.clip(p)
	if h[3] < minW {
		return ScreenPoint{}, false
	}
	return c.toScreen(h), true
}

// clip maps p to homogeneous clip space.
func (c Camera) clip(p f64.Vec3) f64.Vec4 {
	m := &c.Transform
	return f64.Vec4{
		m[0]*p[0] + m[1]*p[1] + m[2]*p[2] + m[3],
		m[4]*p[0] + m[5]*p[1] + m[6]*p[2] + m[7],
		m[8]*p[0] + m[9]*p[1] + m[10]*p[2] + m[11],
		m[12]*p[0] + m[13]*p[1] + m[14]*p[2] + m[15],
	}
}

// toScreen divides h by w and maps it to pixels. h[3] must be at least minW.
func (c Camera) toScreen(h f64.Vec4) ScreenPoint {
	x, y, z := h[0]/h[3], h[1]/h[3], h[2]/h[3]
	return ScreenPoint{
		X:     (x + 1) * 0.5 * float64(c.Width),
		Y:     (1 - y) * 0.5 * float64(c.Height),
		Depth: z,
	}
}

// clipToEye returns the screen point where the clip-space segment from the
// visible point in to the hidden point out crosses w = minW.
func (c Camera) clipToEye(in, out f64.Vec4) ScreenPoint {
	t := (in[3] - minW) / (in[3] - out[3])
	h := f64.Vec4{
		in[0] + (out[0]-in[0])*t,
		in[1] + (out[1]-in[1])*t,
		in[2] + (out[2]-in[2])*t,
		minW,
	}
	return c.toScreen(h)
}

// projectXY adapts Project to the flattening projector signature.
func (c Camera) projectXY(p f64.Vec3) (float64, float64) {
	sp, ok := c.Project(p)
	if !ok {
		return math.NaN(), math.NaN()
	}
	return sp.X, sp.Y
}

// Identity returns the 4x4 identity matrix.
func Identity() f64.Mat4 {
	return f64.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection mapping the given box to the
// clip cube, with the viewer looking down -Z.
func Ortho(left, right, bottom, top, near, far float64) f64.Mat4 {
	return f64.Mat4{
		2 / (right - left), 0, 0, -(right + left) / (right - left),
		0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom),
		0, 0, -2 / (far - near), -(far + near) / (far - near),
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(v f64.Vec3) f64.Mat4 {
	m := Identity()
	m[3], m[7], m[11] = v[0], v[1], v[2]
	return m
}

// RotateX returns a rotation of theta radians about the X axis.
func RotateX(theta float64) f64.Mat4 {
	s, c := math.Sincos(theta)
	return f64.Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation of theta radians about the Y axis.
func RotateY(theta float64) f64.Mat4 {
	s, c := math.Sincos(theta)
	return f64.Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product a*b (b is applied first).
func Mul(a, b f64.Mat4) f64.Mat4 {
	var m f64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += a[4*r+k] * b[4*k+c]
			}
			m[4*r+c] = s
		}
	}
	return m
}

// Light is a directional light.
type Light struct {
	Intensity float64
	// Direction points from the surface toward the light, in world space.
	Direction f64.Vec3
}

// Lighting describes the background and the shading of lit fills.
type Lighting struct {
	Background RGBA
	Ambient    float64
	Lights     [2]Light
}

// DefaultLighting returns a white background with one key and one fill light.
func DefaultLighting() Lighting {
	return Lighting{
		Background: White,
		Ambient:    0.3,
		Lights: [2]Light{
			{Intensity: 1.0, Direction: f64.Vec3{-1, 1, 0}},
			{Intensity: 0.5, Direction: f64.Vec3{1, 0, 0}},
		},
	}
}

// Shade scales c by the light reaching a surface with the given normal.
func (l Lighting) Shade(c RGBA, normal f64.Vec3) RGBA {
	n, ok := normalize(normal)
	if !ok {
		return c
	}
	k := l.Ambient
	for _, light := range l.Lights {
		d, ok := normalize(light.Direction)
		if !ok || light.Intensity == 0 {
			continue
		}
		k += light.Intensity * math.Max(0, dot(n, d))
	}
	return c.Scale(k)
}

func dot(a, b f64.Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func sub(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func normalize(v f64.Vec3) (f64.Vec3, bool) {
	l := math.Sqrt(dot(v, v))
	if l < 1e-12 {
		return v, false
	}
	return f64.Vec3{v[0] / l, v[1] / l, v[2] / l}, true
}
