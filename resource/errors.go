// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"errors"
	"fmt"
)

// ErrInvalidName is returned for names that are not clean relative
// slash-separated paths.
var ErrInvalidName = errors.New("resource: invalid name")

// LoadError records a failed resource load.
type LoadError struct {
	Name string // logical resource name
	Op   string // "open", "read" or "parse"
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("resource: %s %q: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
