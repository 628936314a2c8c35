package pixel

import (
	"image/color"
	"testing"
)

func TestMono(t *testing.T) {
	for y := 0; y < 2; y++ {
		t.Run("", func(it *testing.T) {
			c := Off
			if y > 0 {
				c = On
			}
			r, g, b, _ := c.RGBA()
			want := uint32(y * 0xffff)
			if r != want {
				it.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				it.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				it.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
		})
	}
}

func TestCRGB8(t *testing.T) {
	tests := []struct {
		v       uint8
		r, g, b uint32
	}{
		{0x00, 0x0000, 0x0000, 0x0000},
		{0xFF, 0xffff, 0xffff, 0xffff},
		{0xE0, 0xffff, 0x0000, 0x0000},
		{0x1C, 0x0000, 0xffff, 0x0000},
		{0x03, 0x0000, 0x0000, 0xffff},
		{0x24, 0x2424, 0x2424, 0x0000},
	}
	for _, test := range tests {
		c := CRGB8{V: test.v}
		r, g, b, a := c.RGBA()
		if r != test.r || g != test.g || b != test.b {
			t.Errorf("%#02x expands to (%#04x,%#04x,%#04x), expected (%#04x,%#04x,%#04x)",
				test.v, r, g, b, test.r, test.g, test.b)
		}
		if a != 0xffff {
			t.Errorf("%#02x is not opaque", test.v)
		}
	}
}

func TestCRGB16(t *testing.T) {
	tests := []struct {
		v       uint16
		r, g, b uint32
	}{
		{0x0000, 0x0000, 0x0000, 0x0000},
		{0xFFFF, 0xffff, 0xffff, 0xffff},
		{0xF800, 0xffff, 0x0000, 0x0000},
		{0x07E0, 0x0000, 0xffff, 0x0000},
		{0x001F, 0x0000, 0x0000, 0xffff},
	}
	for _, test := range tests {
		c := CRGB16{V: test.v}
		r, g, b, a := c.RGBA()
		if r != test.r || g != test.g || b != test.b {
			t.Errorf("%#04x expands to (%#04x,%#04x,%#04x), expected (%#04x,%#04x,%#04x)",
				test.v, r, g, b, test.r, test.g, test.b)
		}
		if a != 0xffff {
			t.Errorf("%#04x is not opaque", test.v)
		}
	}
}

func TestCRGB8Model(t *testing.T) {
	tests := []struct {
		c    color.Color
		want uint8
	}{
		{color.Black, 0x00},
		{color.White, 0xFF},
		{color.RGBA{R: 0xFF, A: 0xFF}, 0xE0},
		{color.RGBA{G: 0xFF, A: 0xFF}, 0x1C},
		{color.RGBA{B: 0xFF, A: 0xFF}, 0x03},
		{Off, 0x00},
		{On, 0xFF},
	}
	for _, test := range tests {
		if v := CRGB8Model.Convert(test.c).(CRGB8).V; v != test.want {
			t.Errorf("%#+v converts to %#02x, expected %#02x", test.c, v, test.want)
		}
	}
}

func TestCRGB16Model(t *testing.T) {
	tests := []struct {
		c    color.Color
		want uint16
	}{
		{color.Black, 0x0000},
		{color.White, 0xFFFF},
		{color.RGBA{R: 0xFF, A: 0xFF}, 0xF800},
		{color.RGBA{G: 0xFF, A: 0xFF}, 0x07E0},
		{color.RGBA{B: 0xFF, A: 0xFF}, 0x001F},
		{Off, 0x0000},
		{On, 0xFFFF},
	}
	for _, test := range tests {
		if v := CRGB16Model.Convert(test.c).(CRGB16).V; v != test.want {
			t.Errorf("%#+v converts to %#04x, expected %#04x", test.c, v, test.want)
		}
	}
}
