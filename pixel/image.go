package pixel

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/BeatGlow/ssd1331/draw"
)

// Image is a framebuffer image.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by the image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// CRGB8Image is an 8-bits per pixel 3-3-2-bit RGB image.
type CRGB8Image struct {
	Buffer
}

func NewCRGB8Image(w, h int) *CRGB8Image {
	return &CRGB8Image{
		Buffer: makeBuffer(w, h, w, w*h),
	}
}

func (p *CRGB8Image) ColorModel() color.Model {
	return CRGB8Model
}

func (p *CRGB8Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	return CRGB8{p.Pix[x+y*p.Stride]}
}

func (p *CRGB8Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	p.Pix[x+y*p.Stride] = crgb8Model(c).(CRGB8).V
}

func (p *CRGB8Image) Fill(c color.Color) {
	value := crgb8Model(c).(CRGB8).V
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	return &CRGB16Image{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.BigEndian,
	}
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[x*2+y*p.Stride:])
	return CRGB16{v}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := crgb16Model(c).(CRGB16).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

func (p *CRGB16Image) Fill(c color.Color) {
	value := crgb16Model(c).(CRGB16).V
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, value)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

// Interface checks.
var (
	_ Image = (*CRGB8Image)(nil)
	_ Image = (*CRGB16Image)(nil)
)
