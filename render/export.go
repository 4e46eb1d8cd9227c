// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoding selects an image file format for export.
type Encoding int

const (
	// EncodingPNG writes a PNG image.
	EncodingPNG Encoding = iota
	// EncodingBMP writes a Windows bitmap.
	EncodingBMP
	// EncodingTIFF writes a deflate-compressed TIFF image.
	EncodingTIFF
)

// EncodingForPath picks an encoding from the file extension of path.
func EncodingForPath(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return EncodingPNG, nil
	case ".bmp":
		return EncodingBMP, nil
	case ".tif", ".tiff":
		return EncodingTIFF, nil
	default:
		return 0, fmt.Errorf("render: no encoder for %q", filepath.Ext(path))
	}
}

// Encode writes the pixmap to w in the given encoding.
func (p *Pixmap) Encode(w io.Writer, enc Encoding) error {
	img := p.ToImage()
	switch enc {
	case EncodingPNG:
		return png.Encode(w, img)
	case EncodingBMP:
		return bmp.Encode(w, img)
	case EncodingTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("render: unknown encoding %d", enc)
	}
}

// Save writes the pixmap to path, choosing the encoding by extension.
func (p *Pixmap) Save(path string) (err error) {
	enc, err := EncodingForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return p.Encode(f, enc)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return p.Encode(f, EncodingPNG)
}
