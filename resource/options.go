// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"io/fs"
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Cache during creation.
type Option func(*options)

type options struct {
	fsys       fs.FS
	registerer prometheus.Registerer
}

// WithDir reads resources from the directory dir.
func WithDir(dir string) Option {
	return func(o *options) {
		o.fsys = os.DirFS(dir)
	}
}

// WithFS reads resources from fsys, for example an embed.FS.
// A nil fsys is ignored.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		if fsys != nil {
			o.fsys = fsys
		}
	}
}

// WithMetrics registers cache metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}
