// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"io/fs"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// canonicalName returns the cache key for name: NFC-normalized, with
// backslashes turned into slashes. Names that would escape the resource
// directory are rejected.
func canonicalName(name string) (string, error) {
	key := norm.NFC.String(strings.ReplaceAll(name, `\`, "/"))
	if key == "." || !fs.ValidPath(key) {
		return "", ErrInvalidName
	}
	return key, nil
}
