// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned by platform hooks that need an
	// interactive user interface.
	ErrNotImplemented = errors.New("headless: not implemented")

	// ErrNoWindow is returned by New when no window is supplied.
	ErrNoWindow = errors.New("headless: nil window")
)

// notImplemented names the hook in the returned error.
func notImplemented(hook string) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, hook)
}
