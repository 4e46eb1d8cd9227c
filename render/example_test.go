// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/headless/render"
)

// exampleWindow draws a square face with a line hidden behind it.
type exampleWindow struct{}

func (exampleWindow) Camera() render.Camera {
	return render.NewOrthoCamera(100, 100, 1, 10)
}

func (exampleWindow) Lighting() render.Lighting {
	return render.DefaultLighting()
}

func (exampleWindow) Draw(c *render.Canvas) {
	c.FillPolygon([]f64.Vec3{
		{-20, -20, 0}, {20, -20, 0}, {20, 20, 0}, {-20, 20, 0},
	}, render.FillStyle{Color: render.RGB(0, 0, 1)})
	c.DrawLine(f64.Vec3{-10, 0, -5}, f64.Vec3{10, 0, -5}, render.StrokeStyle{Color: render.Black, Width: 1})
}

// ExamplePipeline_Paint renders one frame and reads it back.
func ExamplePipeline_Paint() {
	p, err := render.NewPipeline()
	if err != nil {
		fmt.Println("pipeline:", err)
		return
	}

	snap, err := p.Paint(exampleWindow{})
	if err != nil {
		fmt.Println("paint:", err)
		return
	}

	fmt.Println(snap.Width(), snap.Height(), snap.Format())
	fmt.Println("culled:", snap.Stats.Culled, "primitives:", snap.Stats.Primitives)
	fmt.Println("center:", snap.At(50, 50))
	// Output:
	// 100 100 RGBA
	// culled: 1 primitives: 1
	// center: {0 0 255 255}
}

// ExampleFramebuffer_Load shows a reader picking up the latest frame.
func ExampleFramebuffer_Load() {
	p, err := render.NewPipeline(render.WithOutputFormat(render.FormatBGRA))
	if err != nil {
		fmt.Println("pipeline:", err)
		return
	}

	fb := p.Framebuffer()
	fmt.Println("before:", fb.Load() == nil)

	if _, err := p.Paint(exampleWindow{}); err != nil {
		fmt.Println("paint:", err)
		return
	}

	snap := fb.Load()
	fmt.Println("sequence:", snap.Sequence, "stride:", snap.Stride())
	fmt.Println("corner bytes:", snap.Pixels()[:4])
	// Output:
	// before: true
	// sequence: 1 stride: 400
	// corner bytes: [255 255 255 255]
}
