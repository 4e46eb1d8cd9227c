// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"log/slog"

	"github.com/gogpu/headless/internal/logging"
)

// SetLogger configures the logger for headless and all its sub-packages.
// By default, headless produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by headless:
//   - [slog.LevelDebug]: per-pass details (culled strokes, resource sizes)
//   - [slog.LevelInfo]: lifecycle events (platform created, snapshot published)
//   - [slog.LevelWarn]: recoverable failures (resource reads, surface release)
//   - [slog.LevelError]: contract violations just before a panic
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	headless.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by headless.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
