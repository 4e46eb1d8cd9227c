// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontInfo describes a TrueType or OpenType font resource.
type FontInfo struct {
	Name       string // logical resource name
	Family     string
	FullName   string
	NumGlyphs  int
	UnitsPerEm int

	// Data is the raw font file, shared with the byte cache.
	Data []byte
}

// Font loads the named resource and parses it as a font. The font must be
// readable both by the outline rasterizer (x/image sfnt) and by the text
// shaper (go-text), so a font accepted here can be used for drawing and
// for layout. Parsed fonts are cached alongside their bytes.
func (c *Cache) Font(name string) (*FontInfo, error) {
	key, err := canonicalName(name)
	if err != nil {
		return nil, &LoadError{Name: name, Op: "open", Err: err}
	}
	c.mu.Lock()
	fi, ok := c.fonts[key]
	c.mu.Unlock()
	if ok {
		return fi, nil
	}

	data, err := c.Load(key)
	if err != nil {
		return nil, err
	}
	fi, err = parseFont(key, data)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.fonts[key]; ok {
		return prev, nil
	}
	c.fonts[key] = fi
	return fi, nil
}

func parseFont(name string, data []byte) (*FontInfo, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &LoadError{Name: name, Op: "parse", Err: err}
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Name: name, Op: "parse", Err: err}
	}
	if upem := int(f.UnitsPerEm()); upem != int(face.Upem()) {
		return nil, &LoadError{Name: name, Op: "parse",
			Err: fmt.Errorf("units per em disagree: %d and %d", upem, face.Upem())}
	}

	var buf sfnt.Buffer
	fi := &FontInfo{
		Name:       name,
		NumGlyphs:  f.NumGlyphs(),
		UnitsPerEm: int(f.UnitsPerEm()),
		Data:       data,
	}
	if s, err := f.Name(&buf, sfnt.NameIDFamily); err == nil {
		fi.Family = s
	}
	if fi.Family == "" {
		fi.Family = face.Describe().Family
	}
	if s, err := f.Name(&buf, sfnt.NameIDFull); err == nil {
		fi.FullName = s
	}
	return fi, nil
}
