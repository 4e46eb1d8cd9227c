// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"slices"

	"github.com/gogpu/headless/internal/logging"
	"github.com/gogpu/headless/render"
	"github.com/gogpu/headless/resource"
	"github.com/gogpu/headless/settings"
)

// Fixed window geometry reported by the headless platform.
const (
	GraphicsWindowWidth  = 600
	GraphicsWindowHeight = 600
	ScreenDPI            = 72
	TextWindowWidth      = 100
	TextWindowHeight     = 100
)

var _ Platform = (*Headless)(nil)

// Headless is the platform implementation for running without a display.
// It owns the settings store, the resource cache and the render pipeline.
//
// The services are safe for concurrent use. PaintGraphics runs one pass at
// a time; Framebuffer may be called from any goroutine.
type Headless struct {
	window    render.Window
	pipeline  *render.Pipeline
	settings  *settings.Store
	resources *resource.Cache
	fontFiles []string
}

// New creates a headless platform drawing window.
func New(window render.Window, opts ...Option) (*Headless, error) {
	if window == nil {
		return nil, ErrNoWindow
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	renderOpts := []render.Option{
		render.WithAntialias(o.antialias),
		render.WithChordTolerance(o.chordTolerance),
	}
	resourceOpts := []resource.Option{resource.WithDir(o.resourceDir)}
	if o.resourceFS != nil {
		resourceOpts = append(resourceOpts, resource.WithFS(o.resourceFS))
	}
	if o.registerer != nil {
		renderOpts = append(renderOpts, render.WithMetrics(o.registerer))
		resourceOpts = append(resourceOpts, resource.WithMetrics(o.registerer))
	}

	pipeline, err := render.NewPipeline(renderOpts...)
	if err != nil {
		return nil, err
	}
	resources, err := resource.New(resourceOpts...)
	if err != nil {
		return nil, err
	}
	store := o.settings
	if store == nil {
		store = settings.NewStore()
	}

	logging.Logger().Info("headless: platform created",
		"antialias", o.antialias,
		"chordTolerance", o.chordTolerance,
		"fontFiles", len(o.fontFiles),
	)
	return &Headless{
		window:    window,
		pipeline:  pipeline,
		settings:  store,
		resources: resources,
		fontFiles: o.fontFiles,
	}, nil
}

// Settings returns the settings store.
func (h *Headless) Settings() *settings.Store { return h.settings }

// Resources returns the resource cache.
func (h *Headless) Resources() *resource.Cache { return h.resources }

// Pipeline returns the render pipeline.
func (h *Headless) Pipeline() *render.Pipeline { return h.pipeline }

// LoadResource returns the contents of the named resource. The returned
// slice is shared by all callers and must not be modified. See
// resource.Cache.Load.
func (h *Headless) LoadResource(name string) ([]byte, error) {
	return h.resources.Load(name)
}

// FontFiles returns the configured font file paths in order.
func (h *Headless) FontFiles() []string {
	return slices.Clone(h.fontFiles)
}

// Framebuffer returns the last frame published by PaintGraphics, or nil.
func (h *Headless) Framebuffer() *render.Snapshot {
	return h.pipeline.Snapshot()
}

// Timers

func (h *Headless) SetTimerFor(milliseconds int)    {}
func (h *Headless) SetAutosaveTimerFor(minutes int) {}
func (h *Headless) ScheduleLater()                  {}

// Graphics window

// GraphicsWindowSize returns the fixed 600x600 window size.
func (h *Headless) GraphicsWindowSize() (width, height int) {
	return GraphicsWindowWidth, GraphicsWindowHeight
}

// ScreenDPI returns 72.
func (h *Headless) ScreenDPI() float64 { return ScreenDPI }

func (h *Headless) InvalidateGraphics() {}

// PaintGraphics renders the window's scene and publishes the frame.
func (h *Headless) PaintGraphics() (*render.Snapshot, error) {
	return h.pipeline.Paint(h.window)
}

func (h *Headless) SetCurrentFilename(filename string) {}
func (h *Headless) ToggleFullScreen()                  {}
func (h *Headless) FullScreenIsActive() bool           { return false }

func (h *Headless) ShowGraphicsEditControl(x, y, fontHeight, minWidthChars int, text string) error {
	return notImplemented("ShowGraphicsEditControl")
}

func (h *Headless) HideGraphicsEditControl()           {}
func (h *Headless) GraphicsEditControlIsVisible() bool { return false }

// Text window

func (h *Headless) ShowTextWindow(visible bool) {}

// TextWindowSize returns the fixed 100x100 text window size.
func (h *Headless) TextWindowSize() (width, height int) {
	return TextWindowWidth, TextWindowHeight
}

func (h *Headless) InvalidateText()                           {}
func (h *Headless) MoveTextScrollbarTo(pos, maxPos, page int) {}
func (h *Headless) SetMousePointerToHand(hand bool)           {}

func (h *Headless) ShowTextEditControl(x, y int, text string) error {
	return notImplemented("ShowTextEditControl")
}

func (h *Headless) HideTextEditControl()           {}
func (h *Headless) TextEditControlIsVisible() bool { return false }

// Menus

func (h *Headless) ToggleMenuBar()         {}
func (h *Headless) MenuBarIsVisible() bool { return false }

func (h *Headless) AddContextMenuItem(label string, cmd ContextCommand) error {
	return notImplemented("AddContextMenuItem")
}

func (h *Headless) CreateContextSubmenu() error {
	return notImplemented("CreateContextSubmenu")
}

func (h *Headless) ShowContextMenu() (ContextCommand, error) {
	return ContextCancelled, notImplemented("ShowContextMenu")
}

func (h *Headless) EnableMenuByCmd(cmd Command, enabled bool) {}
func (h *Headless) CheckMenuByCmd(cmd Command, checked bool)  {}
func (h *Headless) RadioMenuByCmd(cmd Command, selected bool) {}
func (h *Headless) RefreshRecentMenus()                       {}

// Dialogs

func (h *Headless) GetOpenFile(active string, filters []FileFilter) (string, error) {
	return "", notImplemented("GetOpenFile")
}

func (h *Headless) GetSaveFile(active string, filters []FileFilter) (string, error) {
	return "", notImplemented("GetSaveFile")
}

func (h *Headless) SaveFileYesNoCancel() (DialogChoice, error) {
	return DialogCancel, notImplemented("SaveFileYesNoCancel")
}

func (h *Headless) LoadAutosaveYesNo() (DialogChoice, error) {
	return DialogNo, notImplemented("LoadAutosaveYesNo")
}

func (h *Headless) LocateImportedFileYesNoCancel(filename string, canCancel bool) (DialogChoice, error) {
	return DialogCancel, notImplemented("LocateImportedFileYesNoCancel")
}

// DoMessageBox logs the message, since there is nobody to show it to, and
// reports ErrNotImplemented.
func (h *Headless) DoMessageBox(message string, rows, cols int, isError bool) error {
	if isError {
		logging.Logger().Error("error box", "message", message)
	} else {
		logging.Logger().Info("message box", "message", message)
	}
	return notImplemented("DoMessageBox")
}

func (h *Headless) OpenWebsite(url string) error {
	return notImplemented("OpenWebsite")
}

// Lifecycle

func (h *Headless) ExitNow() error {
	return notImplemented("ExitNow")
}
