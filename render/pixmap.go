// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer with an explicit row stride.
//
// The length of the buffer is always Stride()*Height(), and the stride is
// always Format().Stride(Width()).
type Pixmap struct {
	width  int
	height int
	stride int
	format Format
	data   []uint8
}

// NewPixmap creates a zeroed pixmap with the given dimensions and format.
func NewPixmap(width, height int, format Format) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, &ViewportError{Width: width, Height: height}
	}
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	stride := format.Stride(width)
	return &Pixmap{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		data:   make([]uint8, stride*height),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the number of bytes between the starts of adjacent rows.
func (p *Pixmap) Stride() int {
	return p.stride
}

// Format returns the channel layout.
func (p *Pixmap) Format() Format {
	return p.format
}

// Data returns the raw pixel data, including row padding.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Row returns the pixel bytes of row y, without padding.
func (p *Pixmap) Row(y int) []uint8 {
	start := y * p.stride
	return p.data[start : start+p.width*p.format.BytesPerPixel()]
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := *p
	c.data = make([]uint8, len(p.data))
	copy(c.data, p.data)
	return &c
}

func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

func (p *Pixmap) offset(x, y int) int {
	return y*p.stride + x*layouts[p.format].bpp
}

// pixel reads the channels at offset i. Missing color channels read as
// 255, a missing alpha channel reads as opaque.
func (p *Pixmap) pixel(i int) [4]uint8 {
	l := layouts[p.format]
	px := [4]uint8{255, 255, 255, 255}
	for ch, off := range [4]int{l.r, l.g, l.b, l.a} {
		if off >= 0 {
			px[ch] = p.data[i+off]
		}
	}
	return px
}

// setPixel8 writes the channels at offset i, dropping channels the format lacks.
func (p *Pixmap) setPixel8(i int, px [4]uint8) {
	l := layouts[p.format]
	for ch, off := range [4]int{l.r, l.g, l.b, l.a} {
		if off >= 0 {
			p.data[i+off] = px[ch]
		}
	}
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if !p.inBounds(x, y) {
		return
	}
	p.setPixel8(p.offset(x, y), [4]uint8{to8(c.R), to8(c.G), to8(c.B), to8(c.A)})
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !p.inBounds(x, y) {
		return RGBA{}
	}
	px := p.pixel(p.offset(x, y))
	return RGBA{
		R: float64(px[0]) / 255,
		G: float64(px[1]) / 255,
		B: float64(px[2]) / 255,
		A: float64(px[3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	px := [4]uint8{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
	bpp := layouts[p.format].bpp
	for y := 0; y < p.height; y++ {
		row := y * p.stride
		for x := 0; x < p.width; x++ {
			p.setPixel8(row+x*bpp, px)
		}
	}
}

// ConvertTo returns a copy of the pixmap in the target format. Channels are
// permuted per pixel; dimensions never change. Converting between formats
// with the same channel set (RGBA/BGRA, RGB/BGR) is lossless.
func (p *Pixmap) ConvertTo(format Format) (*Pixmap, error) {
	if format == p.format {
		return p.Clone(), nil
	}
	dst, err := NewPixmap(p.width, p.height, format)
	if err != nil {
		return nil, err
	}

	srcBpp := layouts[p.format].bpp
	dstBpp := layouts[format].bpp
	for y := 0; y < p.height; y++ {
		si := y * p.stride
		di := y * dst.stride
		for x := 0; x < p.width; x++ {
			dst.setPixel8(di, p.pixel(si))
			si += srcBpp
			di += dstBpp
		}
	}
	return dst, nil
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		si := y * p.stride
		di := y * img.Stride
		for x := 0; x < p.width; x++ {
			px := p.pixel(si)
			copy(img.Pix[di:di+4], px[:])
			si += layouts[p.format].bpp
			di += 4
		}
	}
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if !p.inBounds(x, y) {
		return color.NRGBA{}
	}
	px := p.pixel(p.offset(x, y))
	return color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
