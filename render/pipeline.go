// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gogpu/headless/internal/logging"
)

// NativeFormat is the channel layout the software surface rasterizes in.
const NativeFormat = FormatBGRA

// Window is the collaborator a render pass pulls its scene from.
type Window interface {
	// Camera returns the viewport and projection for the pass.
	Camera() Camera
	// Lighting returns the background and light setup for the pass.
	Lighting() Lighting
	// Draw appends the scene's primitives to c in paint order.
	Draw(c *Canvas)
}

// State is the stage a pipeline is in.
type State int32

const (
	// StateIdle means no pass is running.
	StateIdle State = iota
	// StateCollecting means the window is drawing into the canvas.
	StateCollecting
	// StateCulling means occluded strokes are being removed.
	StateCulling
	// StateRasterizing means primitives are being painted and converted.
	StateRasterizing
	// StatePublished means the new snapshot is visible; teardown follows.
	StatePublished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateCulling:
		return "culling"
	case StateRasterizing:
		return "rasterizing"
	case StatePublished:
		return "published"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Pipeline renders a window's scene into published snapshots.
//
// Paint runs synchronously to completion; there is no render loop. Only
// one pass runs at a time; Snapshot may be called from any goroutine.
type Pipeline struct {
	opts    options
	state   atomic.Int32
	fb      Framebuffer
	metrics *renderMetrics

	// scratch keeps the paint-order list capacity between passes.
	scratch []Primitive
}

// NewPipeline creates a pipeline with the given options.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.outputFormat.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, o.outputFormat)
	}

	p := &Pipeline{opts: o}
	if o.registerer != nil {
		m, err := newRenderMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("render: register metrics: %w", err)
		}
		p.metrics = m
	}
	return p, nil
}

// State returns the current stage of the pipeline.
func (p *Pipeline) State() State {
	return State(p.state.Load())
}

// Snapshot returns the latest published frame, or nil if none.
func (p *Pipeline) Snapshot() *Snapshot {
	return p.fb.Load()
}

// Framebuffer returns the shared snapshot reference.
func (p *Pipeline) Framebuffer() *Framebuffer {
	return &p.fb
}

// Paint runs one full render pass for w and publishes the result.
//
// It returns ErrPipelineBusy if a pass is already running, a
// *ViewportError for a non-positive viewport, and an error wrapping
// ErrSurfaceUnavailable if no surface can be acquired. On error the
// previously published snapshot stays current.
func (p *Pipeline) Paint(w Window) (*Snapshot, error) {
	if !p.state.CompareAndSwap(int32(StateIdle), int32(StateCollecting)) {
		return nil, ErrPipelineBusy
	}
	defer p.state.Store(int32(StateIdle))

	snap, err := p.paint(w)
	if err != nil {
		p.metrics.recordFailure()
		logging.Logger().Warn("render: pass failed", "err", err)
		return nil, err
	}
	p.metrics.recordPass(snap.Stats)
	logging.Logger().Info("render: snapshot published",
		"id", snap.ID,
		"seq", snap.Sequence,
		"width", snap.Width(),
		"height", snap.Height(),
		"primitives", snap.Stats.Primitives,
		"culled", snap.Stats.Culled,
	)
	return snap, nil
}

func (p *Pipeline) paint(w Window) (*Snapshot, error) {
	start := time.Now()
	log := logging.Logger()

	camera := w.Camera()
	if camera.Width <= 0 || camera.Height <= 0 {
		return nil, &ViewportError{Width: camera.Width, Height: camera.Height}
	}
	lighting := w.Lighting()

	pm, err := NewPixmap(camera.Width, camera.Height, NativeFormat)
	if err != nil {
		return nil, err
	}
	surface, err := p.opts.surfaceFactory(pm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	defer func() {
		if cerr := surface.Close(); cerr != nil {
			log.Warn("render: surface close failed", "err", cerr)
		}
	}()
	target := surface.Pixmap()
	if target == nil || target.Width() != camera.Width || target.Height() != camera.Height {
		return nil, fmt.Errorf("%w: surface does not match %dx%d viewport", ErrSurfaceUnavailable, camera.Width, camera.Height)
	}
	target.Clear(lighting.Background)

	canvas := newCanvas(camera, lighting, p.opts.chordTolerance, p.opts.antialias, surface)
	canvas.items = p.scratch[:0]
	defer func() {
		canvas.Clear()
		p.scratch = canvas.items
	}()

	w.Draw(canvas)
	drawn := canvas.Len()

	p.state.Store(int32(StateCulling))
	culled := canvas.CullOccludedStrokes()
	log.Debug("render: culled occluded strokes", "drawn", drawn, "culled", culled)

	p.state.Store(int32(StateRasterizing))
	canvas.OutputInPaintOrder()
	out, err := target.ConvertTo(p.opts.outputFormat)
	if err != nil {
		return nil, err
	}

	snap := p.fb.publish(out, RenderStats{
		Primitives: canvas.Len(),
		Culled:     culled,
		Duration:   time.Since(start),
	})
	p.state.Store(int32(StatePublished))
	return snap, nil
}
