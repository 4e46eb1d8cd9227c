// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns a 3-D scene into published pixel snapshots without
// a window.
//
// # Pipeline
//
// A Pipeline pulls a Camera and Lighting from a Window, hands the window a
// Canvas to draw into, removes strokes hidden behind earlier opaque
// geometry, rasterizes the remaining primitives in paint order, converts
// the native BGRA surface to the output format and atomically publishes
// the result as a Snapshot.
//
//	p, err := render.NewPipeline()
//	if err != nil {
//	    return err
//	}
//	snap, err := p.Paint(window)
//	if err != nil {
//	    return err
//	}
//	_ = snap.Save("frame.png")
//
// # Coordinate System
//
// Camera.Transform maps world coordinates to clip space. After the
// perspective divide, x and y map to pixels with the origin at the top
// left and y increasing down; depth is normalized so smaller values are
// closer to the viewer.
//
// # Occlusion
//
// Culling is exact in screen space: each stroke segment is clipped against
// every earlier opaque triangle (fills, and the swept area of opaque
// strokes), and the stroke is removed only if the hidden parameter
// intervals cover every segment completely.
package render
