package pixel

import "image/color"

// Models for the standard color types.
var (
	MonoModel   color.Model = color.ModelFunc(monoModel)
	CRGB8Model  color.Model = color.ModelFunc(crgb8Model)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
)

var (
	Off = Mono{false}
	On  = Mono{true}
)

// Mono represents a 1-bit monochrome color.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func monoModel(c color.Color) color.Color {
	if _, ok := c.(Mono); ok {
		return c
	}
	r, g, b, _ := c.RGBA()

	// These coefficients (the fractions 0.299, 0.587 and 0.114) are the same
	// as those given by the JFIF specification and used by func RGBToYCbCr in
	// ycbcr.go.
	//
	// Note that 19595 + 38470 + 7471 equals 65536.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 31

	return Mono{On: y != 0}
}

// CRGB8 represents an 8-bit 3-3-2 RGB color.
type CRGB8 struct {
	// CRed, 3, CGreen, 3, CBlue, 2
	V uint8
}

func (c CRGB8) RGBA() (r, g, b, a uint32) {
	// Build a 3- or 2-bit value at the top of the low byte of each component.
	red := uint32(c.V&0xE0) >> 5
	grn := uint32(c.V&0x1C) >> 2
	blu := uint32(c.V & 0x03)
	// Repeat the bit pattern to fill the low byte.
	red = red<<5 | red<<2 | red>>1
	grn = grn<<5 | grn<<2 | grn>>1
	blu = blu<<6 | blu<<4 | blu<<2 | blu
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return red, grn, blu, 0xffff
}

func crgb8Model(c color.Color) color.Color {
	switch c := c.(type) {
	case Mono:
		if c.On {
			return CRGB8{0xff}
		}
		return CRGB8{}
	case CRGB8:
		return c
	default:
		r, g, b, _ := c.RGBA()
		r = (r & 0xE000) >> 8
		g = (g & 0xE000) >> 11
		b = (b & 0xC000) >> 14
		return CRGB8{uint8(r | g | b)}
	}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xF800) >> 8
	grn := (c.V & 0x07E0) >> 3
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func crgb16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case Mono:
		if c.On {
			return CRGB16{0xffff}
		}
		return CRGB16{}
	case CRGB16:
		return c
	default:
		r, g, b, _ := c.RGBA()
		r = (r & 0xF800)
		g = (g & 0xFC00) >> 5
		b = (b & 0xF800) >> 11
		return CRGB16{uint16(r | g | b)}
	}
}
