// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"io/fs"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/headless/render"
	"github.com/gogpu/headless/settings"
)

// Option configures a Headless platform during creation.
//
// Example:
//
//	h, err := headless.New(window,
//	    headless.WithResourceDir("res"),
//	    headless.WithAntialias(false),
//	)
type Option func(*options)

// options holds optional configuration for platform creation.
type options struct {
	resourceDir    string
	resourceFS     fs.FS
	fontFiles      []string
	antialias      bool
	chordTolerance float64
	registerer     prometheus.Registerer
	settings       *settings.Store
}

// defaultOptions returns the default platform options.
func defaultOptions() options {
	return options{
		resourceDir:    ".",
		antialias:      true,
		chordTolerance: render.DefaultChordTolerance,
	}
}

// WithResourceDir sets the directory resource names are resolved against.
func WithResourceDir(dir string) Option {
	return func(o *options) {
		o.resourceDir = dir
	}
}

// WithResourceFS reads resources from fsys instead of a directory.
// It takes precedence over WithResourceDir.
func WithResourceFS(fsys fs.FS) Option {
	return func(o *options) {
		o.resourceFS = fsys
	}
}

// WithFontFiles sets the font files reported by FontFiles, in order.
func WithFontFiles(paths ...string) Option {
	return func(o *options) {
		o.fontFiles = append([]string(nil), paths...)
	}
}

// WithAntialias enables or disables anti-aliased rendering. It is on by
// default.
func WithAntialias(on bool) Option {
	return func(o *options) {
		o.antialias = on
	}
}

// WithChordTolerance sets the curve flattening tolerance in pixels.
func WithChordTolerance(tol float64) Option {
	return func(o *options) {
		o.chordTolerance = tol
	}
}

// WithMetrics registers render and resource metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithSettings uses s as the settings store instead of a new empty one.
func WithSettings(s *settings.Store) Option {
	return func(o *options) {
		o.settings = s
	}
}
