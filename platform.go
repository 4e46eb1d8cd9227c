// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import "github.com/gogpu/headless/render"

// Command identifies an application menu command.
type Command uint32

// ContextCommand identifies an entry of a context menu.
type ContextCommand int

// ContextCancelled is returned when a context menu is dismissed.
const ContextCancelled ContextCommand = -1

// DialogChoice is the answer to a yes/no/cancel dialog.
type DialogChoice int

// Dialog answers.
const (
	DialogYes DialogChoice = iota + 1
	DialogNo
	DialogCancel
)

// FileFilter describes one entry of a file dialog's type list.
type FileFilter struct {
	Name     string
	Patterns []string // extensions without the dot, e.g. "slvs"
}

// Timers schedule deferred work on the host event loop.
type Timers interface {
	SetTimerFor(milliseconds int)
	SetAutosaveTimerFor(minutes int)
	ScheduleLater()
}

// GraphicsWindow is the window showing the 3-D view.
type GraphicsWindow interface {
	GraphicsWindowSize() (width, height int)
	ScreenDPI() float64
	InvalidateGraphics()
	// PaintGraphics renders the current scene and publishes the frame.
	PaintGraphics() (*render.Snapshot, error)
	SetCurrentFilename(filename string)
	ToggleFullScreen()
	FullScreenIsActive() bool
	ShowGraphicsEditControl(x, y, fontHeight, minWidthChars int, text string) error
	HideGraphicsEditControl()
	GraphicsEditControlIsVisible() bool
}

// TextWindow is the property browser window.
type TextWindow interface {
	ShowTextWindow(visible bool)
	TextWindowSize() (width, height int)
	InvalidateText()
	MoveTextScrollbarTo(pos, maxPos, page int)
	SetMousePointerToHand(hand bool)
	ShowTextEditControl(x, y int, text string) error
	HideTextEditControl()
	TextEditControlIsVisible() bool
}

// Menus control the menu bar and context menus.
type Menus interface {
	ToggleMenuBar()
	MenuBarIsVisible() bool
	AddContextMenuItem(label string, cmd ContextCommand) error
	CreateContextSubmenu() error
	ShowContextMenu() (ContextCommand, error)
	EnableMenuByCmd(cmd Command, enabled bool)
	CheckMenuByCmd(cmd Command, checked bool)
	RadioMenuByCmd(cmd Command, selected bool)
	RefreshRecentMenus()
}

// Dialogs ask the user questions.
type Dialogs interface {
	GetOpenFile(active string, filters []FileFilter) (string, error)
	GetSaveFile(active string, filters []FileFilter) (string, error)
	SaveFileYesNoCancel() (DialogChoice, error)
	LoadAutosaveYesNo() (DialogChoice, error)
	LocateImportedFileYesNoCancel(filename string, canCancel bool) (DialogChoice, error)
	DoMessageBox(message string, rows, cols int, isError bool) error
	OpenWebsite(url string) error
}

// Lifecycle ends the application.
type Lifecycle interface {
	ExitNow() error
}

// Platform is everything the application core needs from its host.
type Platform interface {
	Timers
	GraphicsWindow
	TextWindow
	Menus
	Dialogs
	Lifecycle
}
