// Package ssd1331 contains a driver for the Solomon Systech SSD1331 color OLED display.
package ssd1331

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"os"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/ssd1331/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Errors
var (
	ErrBounds     = errors.New("ssd1331: out of display bounds")
	ErrPixelCount = errors.New("ssd1331: pixel data does not match window size")
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Display is an OLED display.
type Display interface {
	// Close the display driver.
	Close() error

	// Clear the display buffer.
	Clear()

	// At returns the color of the pixel at (x, y).
	At(x, y int) color.Color

	// Set the pixel color at (x, y).
	Set(x, y int, c color.Color)

	// Bounds is the display bounding box (dimensions).
	Bounds() image.Rectangle

	// ColorModel used by the display.
	ColorModel() color.Model

	// Show toggles the display on or off.
	Show(bool) error

	// SetContrast adjusts the contrast level.
	SetContrast(level uint8) error

	// SetRotation adjusts the pixel rotation.
	SetRotation(Rotation) error

	// Refresh redraws the display.
	Refresh() error
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int

	// Rotation of the display.
	Rotation Rotation

	// Use256Colors selects the controller's 8-bit RGB332 pixel format
	// instead of the default 16-bit RGB565 format.
	Use256Colors bool

	// Reset pin
	Reset gpio.PinOut
}

type baseDisplay struct {
	draw.Image
	c         Conn
	width     int
	height    int
	colOffset int
	rowOffset int
	rotation  Rotation
}

func (d *baseDisplay) data(data ...byte) error {
	return d.c.Data(data...)
}

func (d *baseDisplay) command(command byte, data ...byte) error {
	return d.c.Command(command, data...)
}

func (d *baseDisplay) commands(commands ...[]byte) (err error) {
	for _, command := range commands {
		if err = d.c.Command(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

func (d *baseDisplay) Clear() {
	switch i := d.Image.(type) {
	case *pixel.CRGB8Image:
		for j := range i.Pix {
			i.Pix[j] = 0
		}
	case *pixel.CRGB16Image:
		for j := range i.Pix {
			i.Pix[j] = 0
		}
	}
}
