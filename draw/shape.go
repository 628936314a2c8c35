package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws a rectangle outline.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	var (
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// Circle draws a circle outline around center with the given radius.
func Circle(dst Image, center image.Point, radius int, c color.Color) {
	midpointCircle(dst, center.X, center.Y, radius, false, c)
}

// Disc draws a filled circle around center with the given radius.
func Disc(dst Image, center image.Point, radius int, c color.Color) {
	midpointCircle(dst, center.X, center.Y, radius, true, c)
}

func midpointCircle(dst Image, x0, y0, radius int, filled bool, c color.Color) {
	if radius < 0 {
		return
	}

	x, y := radius, 0
	e := 1 - radius
	for x >= y {
		if filled {
			HorizontalLine(dst, x0-x, y0+y, 2*x+1, c)
			HorizontalLine(dst, x0-x, y0-y, 2*x+1, c)
			HorizontalLine(dst, x0-y, y0+x, 2*y+1, c)
			HorizontalLine(dst, x0-y, y0-x, 2*y+1, c)
		} else {
			dst.Set(x0+x, y0+y, c)
			dst.Set(x0-x, y0+y, c)
			dst.Set(x0+x, y0-y, c)
			dst.Set(x0-x, y0-y, c)
			dst.Set(x0+y, y0+x, c)
			dst.Set(x0-y, y0+x, c)
			dst.Set(x0+y, y0-x, c)
			dst.Set(x0-y, y0-x, c)
		}

		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2 * (y - x + 1)
		}
	}
}

func bresenham(dst Image, x1, y1, x2, y2 int, c color.Color) {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	e := dx - dy
	for {
		dst.Set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x1 += sx
		}
		if e2 < dx {
			e += dx
			y1 += sy
		}
	}
}
