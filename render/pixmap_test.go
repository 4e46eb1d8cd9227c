// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewPixmapRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := NewPixmap(dims[0], dims[1], FormatRGBA)
		if !errors.Is(err, ErrInvalidViewport) {
			t.Errorf("NewPixmap(%d, %d) err = %v, want ErrInvalidViewport", dims[0], dims[1], err)
		}
	}
	if _, err := NewPixmap(1, 1, Format(99)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("invalid format err = %v", err)
	}
}

func TestPixmapLayoutInvariant(t *testing.T) {
	for f := FormatRGBA; f < formatCount; f++ {
		pm, err := NewPixmap(13, 7, f)
		if err != nil {
			t.Fatal(err)
		}
		if pm.Stride() != f.Stride(13) || len(pm.Data()) != pm.Stride()*7 {
			t.Errorf("%v: stride %d, len %d inconsistent", f, pm.Stride(), len(pm.Data()))
		}
		if pm.Stride()%StrideAlignment != 0 {
			t.Errorf("%v: stride %d not aligned", f, pm.Stride())
		}
	}
}

func TestPixmapSetGetPixel(t *testing.T) {
	pm, _ := NewPixmap(4, 4, FormatBGRA)
	pm.SetPixel(1, 2, RGB(1, 0, 0))

	i := 2*pm.Stride() + 1*4
	if got := pm.Data()[i : i+4]; !bytes.Equal(got, []uint8{0, 0, 255, 255}) {
		t.Errorf("BGRA bytes = %v, want [0 0 255 255]", got)
	}
	if got := pm.GetPixel(1, 2); got != RGB(1, 0, 0) {
		t.Errorf("GetPixel = %+v", got)
	}

	// Out-of-bounds writes are ignored.
	before := append([]uint8(nil), pm.Data()...)
	pm.SetPixel(-1, 0, White)
	pm.SetPixel(4, 4, White)
	if !bytes.Equal(before, pm.Data()) {
		t.Error("out-of-bounds write modified data")
	}
}

func TestPixmapClearLeavesPadding(t *testing.T) {
	pm, _ := NewPixmap(3, 2, FormatRGB) // stride 12, 9 bytes used
	pm.Clear(White)
	for y := 0; y < 2; y++ {
		for i := 9; i < 12; i++ {
			if b := pm.Data()[y*12+i]; b != 0 {
				t.Fatalf("padding byte %d of row %d = %d", i, y, b)
			}
		}
	}
}

func TestPixmapCloneIsIndependent(t *testing.T) {
	pm, _ := NewPixmap(2, 2, FormatRGBA)
	c := pm.Clone()
	c.SetPixel(0, 0, White)
	if pm.GetPixel(0, 0) == White {
		t.Error("clone shares memory with original")
	}
}

func TestPixmapEncodeFormats(t *testing.T) {
	pm, _ := NewPixmap(8, 8, FormatRGBA)
	pm.Clear(RGB(0, 1, 0))

	for _, enc := range []Encoding{EncodingPNG, EncodingBMP, EncodingTIFF} {
		var buf bytes.Buffer
		if err := pm.Encode(&buf, enc); err != nil {
			t.Errorf("Encode(%d): %v", enc, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Encode(%d) wrote nothing", enc)
		}
	}
}

func TestPixmapSaveByExtension(t *testing.T) {
	pm, _ := NewPixmap(4, 3, FormatBGRA)
	pm.Clear(RGB(1, 0, 0))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.Save(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 0xffff || g != 0 || b != 0 {
		t.Errorf("decoded pixel = %d,%d,%d; want red", r, g, b)
	}

	if _, err := EncodingForPath("frame.jpg"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
