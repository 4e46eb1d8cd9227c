// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless is the non-interactive platform backend of a CAD
// application. It lets the application core run without any on-screen
// window: user-interface hooks are no-ops or report ErrNotImplemented,
// while three stateful services keep working.
//
// # Services
//
//   - Settings: typed preferences with freeze/thaw semantics
//     (package settings).
//   - Resources: a memoizing loader for icons, fonts and other files
//     shipped with the application (package resource).
//   - Rendering: an offscreen pipeline that draws the scene, removes
//     hidden edges, rasterizes and publishes an immutable RGBA snapshot
//     (package render).
//
// # Quick Start
//
//	h, err := headless.New(window,
//	    headless.WithResourceDir("/usr/share/app/res"),
//	    headless.WithFontFiles("/usr/share/fonts/DejaVuSans.ttf"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	snap, err := h.PaintGraphics()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = snap.Save("frame.png")
//
// The window passed to New implements render.Window: it supplies the
// camera and lighting, and draws the scene into a render.Canvas.
//
// # Platform hooks
//
// Headless implements Platform, the union of Timers, GraphicsWindow,
// TextWindow, Menus, Dialogs and Lifecycle. The graphics window reports a
// fixed 600x600 size at 72 DPI and the text window 100x100.
//
// # Logging
//
// Headless produces no log output by default. Call SetLogger to enable it.
package headless
