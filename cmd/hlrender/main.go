// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command hlrender renders a shaded cube with hidden edges removed and
// writes the frame to an image file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"sort"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/headless"
	"github.com/gogpu/headless/render"
	"github.com/gogpu/headless/settings"
)

func main() {
	var (
		output   = flag.String("output", "cube.png", "output file (.png, .bmp, .tif)")
		yaw      = flag.Float64("yaw", 30, "rotation about the vertical axis, degrees")
		pitch    = flag.Float64("pitch", 20, "rotation about the horizontal axis, degrees")
		prefs    = flag.String("settings", "", "settings file (YAML key/type/value triples)")
		noAA     = flag.Bool("no-aa", false, "disable anti-aliasing")
		verbose  = flag.Bool("v", false, "log render details")
		resDir   = flag.String("res", ".", "resource directory")
		edgeSize = flag.Float64("edge-width", 2, "edge line width in pixels")
	)
	flag.Parse()

	if *verbose {
		headless.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	store := settings.NewStore()
	if *prefs != "" {
		if err := store.LoadFile(*prefs); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	win := &cubeWindow{
		yaw:       store.ThawFloat(*yaw, "ViewYaw") * math.Pi / 180,
		pitch:     store.ThawFloat(*pitch, "ViewPitch") * math.Pi / 180,
		edgeWidth: *edgeSize,
	}
	h, err := headless.New(win,
		headless.WithSettings(store),
		headless.WithResourceDir(*resDir),
		headless.WithAntialias(!*noAA),
		headless.WithChordTolerance(store.ThawFloat(render.DefaultChordTolerance, "ChordTolerance")),
	)
	if err != nil {
		log.Fatalf("Failed to create platform: %v", err)
	}
	win.width, win.height = h.GraphicsWindowSize()

	snap, err := h.PaintGraphics()
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := snap.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Frame saved to %s (%dx%d, %d primitives, %d hidden edges)\n",
		*output, snap.Width(), snap.Height(), snap.Stats.Primitives, snap.Stats.Culled)
}

// cubeWindow is a render.Window showing a unit cube.
type cubeWindow struct {
	width, height int
	yaw, pitch    float64
	edgeWidth     float64
}

// Cube faces, counter-clockwise seen from outside.
var cubeFaces = [6][4]f64.Vec3{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}},
	{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}},
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
	{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
}

const halfSize = 150

func (w *cubeWindow) Camera() render.Camera {
	return render.NewOrthoCamera(w.width, w.height, 1, 4*halfSize)
}

func (w *cubeWindow) Lighting() render.Lighting {
	return render.Lighting{
		Background: render.White,
		Ambient:    0.3,
		Lights: [2]render.Light{
			{Intensity: 0.6, Direction: f64.Vec3{-1, 1, 1}},
			{Intensity: 0.3, Direction: f64.Vec3{1, 0, 1}},
		},
	}
}

func (w *cubeWindow) Draw(c *render.Canvas) {
	model := render.Mul(render.RotateX(w.pitch), render.RotateY(w.yaw))
	faces := make([][]f64.Vec3, len(cubeFaces))
	for i, face := range cubeFaces {
		faces[i] = make([]f64.Vec3, len(face))
		for j, p := range face {
			faces[i][j] = transform(model, f64.Vec3{p[0] * halfSize, p[1] * halfSize, p[2] * halfSize})
		}
	}

	// Far faces first so near faces paint over them.
	sort.Slice(faces, func(i, j int) bool {
		return centroidZ(faces[i]) < centroidZ(faces[j])
	})
	for _, face := range faces {
		c.FillPolygon(face, render.FillStyle{Color: render.RGB(0.45, 0.6, 0.9), Lit: true})
	}

	edge := render.StrokeStyle{Color: render.Black, Width: w.edgeWidth}
	for _, face := range faces {
		for i := range face {
			c.DrawLine(face[i], face[(i+1)%len(face)], edge)
		}
	}

	// A circle inscribed in the front face, as four cubic arcs.
	const k = 0.5522847498
	r := 0.6 * halfSize
	front := func(x, y float64) f64.Vec3 {
		return transform(model, f64.Vec3{x, y, halfSize})
	}
	arc := render.StrokeStyle{Color: render.RGB(0.8, 0.1, 0.1), Width: w.edgeWidth}
	for q := 0; q < 4; q++ {
		s, cs := math.Sincos(float64(q) * math.Pi / 2)
		rot := func(x, y float64) f64.Vec3 { return front(x*cs-y*s, x*s+y*cs) }
		c.DrawCubic(rot(r, 0), rot(r, k*r), rot(k*r, r), rot(0, r), arc)
	}
}

func transform(m f64.Mat4, p f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*p[0] + m[1]*p[1] + m[2]*p[2] + m[3],
		m[4]*p[0] + m[5]*p[1] + m[6]*p[2] + m[7],
		m[8]*p[0] + m[9]*p[1] + m[10]*p[2] + m[11],
	}
}

func centroidZ(face []f64.Vec3) float64 {
	var z float64
	for _, p := range face {
		z += p[2]
	}
	return z / float64(len(face))
}
