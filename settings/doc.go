// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package settings provides a typed key/value store for application
// preferences.
//
// Every key holds a value of exactly one Kind. The first write of a key
// fixes its kind; later writes and reads must use the same kind. The
// Freeze and Thaw families treat a kind mismatch as a programming error
// and panic with a *KindMismatchError:
//
//	s := settings.NewStore()
//	s.FreezeInt(7, "ViewUnits")
//	units := s.ThawInt(0, "ViewUnits") // 7
//	name := s.ThawString("untitled", "LastFile") // "untitled", key not created
//
// Set and Get report the same conditions as ordinary results.
//
// A Store can be persisted with Save and restored with Load as a YAML list
// of key/type/value triples:
//
//	- key: ViewUnits
//	  type: int
//	  value: 7
package settings
