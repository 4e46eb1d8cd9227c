// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultChordTolerance is the default curve flattening tolerance in pixels.
const DefaultChordTolerance = 0.5

// Option configures a Pipeline during creation.
//
// Example:
//
//	p, err := render.NewPipeline(
//	    render.WithAntialias(false),
//	    render.WithChordTolerance(0.25),
//	)
type Option func(*options)

// options holds optional configuration for Pipeline creation.
type options struct {
	chordTolerance float64
	antialias      bool
	surfaceFactory SurfaceFactory
	outputFormat   Format
	registerer     prometheus.Registerer
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		chordTolerance: DefaultChordTolerance,
		antialias:      true,
		surfaceFactory: NewImageSurface,
		outputFormat:   FormatRGBA,
	}
}

// WithChordTolerance sets the maximum curve deviation in pixels.
// Non-positive values are ignored.
func WithChordTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.chordTolerance = tol
		}
	}
}

// WithAntialias enables or disables anti-aliased output.
func WithAntialias(on bool) Option {
	return func(o *options) {
		o.antialias = on
	}
}

// WithSurfaceFactory replaces the surface used for rasterization.
// A nil factory keeps the default ImageSurface.
func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(o *options) {
		if f != nil {
			o.surfaceFactory = f
		}
	}
}

// WithOutputFormat sets the pixel layout of published snapshots.
func WithOutputFormat(f Format) Option {
	return func(o *options) {
		o.outputFormat = f
	}
}

// WithMetrics registers pipeline metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}
