package draw

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text renders str onto dst with the baseline starting at point at,
// using the provided TrueType font at the given point size.
func Text(dst Image, at image.Point, f *truetype.Font, size float64, str string, c color.Color) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	_, err := ctx.DrawString(str, fixed.P(at.X, at.Y))
	return err
}

// ParseFont parses TrueType font data for use with [Text].
func ParseFont(data []byte) (*truetype.Font, error) {
	return freetype.ParseFont(data)
}

// BasicText renders str onto dst with the baseline starting at point
// at, using the builtin fixed 7x13 font.
func BasicText(dst Image, at image.Point, str string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(str)
}
