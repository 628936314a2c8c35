package ssd1331

import (
	"encoding/binary"

	"github.com/BeatGlow/ssd1331/pixel"
)

// colorDisplay is the framebuffer base for the two color depths the
// controller supports: 16-bit RGB565 and 8-bit RGB332.
type colorDisplay struct {
	baseDisplay
	use256 bool
	order  binary.ByteOrder
}

func (d *colorDisplay) init(config *Config, order binary.ByteOrder) error {
	d.width = config.Width
	d.height = config.Height
	d.rotation = config.Rotation
	d.use256 = config.Use256Colors
	d.order = order
	d.resize(d.width, d.height)
	return nil
}

func (d *colorDisplay) resize(w, h int) {
	if d.use256 {
		d.Image = pixel.NewCRGB8Image(w, h)
		return
	}
	img := pixel.NewCRGB16Image(w, h)
	img.Order = d.order
	d.Image = img
}

func (d *colorDisplay) pix() []byte {
	switch i := d.Image.(type) {
	case *pixel.CRGB8Image:
		return i.Pix
	case *pixel.CRGB16Image:
		return i.Pix
	}
	return nil
}

func (d *colorDisplay) bytesPerPixel() int {
	if d.use256 {
		return 1
	}
	return 2
}
