// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is matched by every *KindMismatchError.
	ErrKindMismatch = errors.New("settings: kind mismatch")

	// ErrUndefinedKind is returned when a value has no kind.
	ErrUndefinedKind = errors.New("settings: undefined kind")

	// ErrMalformed is returned by Load for documents that are not a list
	// of valid key/type/value triples.
	ErrMalformed = errors.New("settings: malformed document")
)

// KindMismatchError reports an access to a key with a kind other than the
// one it was established with.
type KindMismatchError struct {
	Key  string
	Have Kind // kind stored under Key
	Want Kind // kind of the rejected access
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("settings: key %q holds %s, accessed as %s", e.Key, e.Have, e.Want)
}

// Unwrap returns ErrKindMismatch.
func (e *KindMismatchError) Unwrap() error {
	return ErrKindMismatch
}
