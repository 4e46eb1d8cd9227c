// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package resource loads application resources (icons, fonts, shaders)
// by logical name and keeps them in memory.
//
// Names are slash-separated paths relative to the resource directory, for
// example "icons/graphics-window/line.png". The first Load of a name reads
// the backing file; every later Load returns the same buffer without
// touching storage. Entries are never evicted.
//
//	c := resource.New(resource.WithDir("/usr/share/app/res"))
//	data, err := c.Load("fonts/unifont.hex.gz")
//
// Returned buffers are shared by all callers and must not be modified.
package resource
