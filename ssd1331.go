package ssd1331

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/ssd1331/conn"
	"github.com/BeatGlow/ssd1331/pixel"
)

const (
	defaultWidth  = 96
	defaultHeight = 64
)

// Commands (from the SSD1331 datasheet).
const (
	setColumnAddr     = 0x15
	drawLineCmd       = 0x21
	drawRectCmd       = 0x22
	copyWindowCmd     = 0x23
	dimWindowCmd      = 0x24
	clearWindowCmd    = 0x25
	setFillMode       = 0x26
	setupScroll       = 0x27
	deactivateScroll  = 0x2E
	activateScroll    = 0x2F
	setRowAddr        = 0x75
	setContrastA      = 0x81
	setContrastB      = 0x82
	setContrastC      = 0x83
	setMasterCurrent  = 0x87
	setPrechargeA     = 0x8A
	setPrechargeB     = 0x8B
	setPrechargeC     = 0x8C
	setRemap          = 0xA0
	setStartLine      = 0xA1
	setDisplayOffset  = 0xA2
	setNormalDisplay  = 0xA4
	setAllOn          = 0xA5
	setAllOff         = 0xA6
	setInvertDisplay  = 0xA7
	setMultiplexRatio = 0xA8
	setDimMode        = 0xAB
	setDisplayOnDim   = 0xAC
	setMasterConfig   = 0xAD
	setDisplayOff     = 0xAE
	setDisplayOn      = 0xAF
	setPowerSaveMode  = 0xB0
	setPhasePeriod    = 0xB1
	setClockDivider   = 0xB3
	setGrayScaleTable = 0xB8
	setLinearGray     = 0xB9
	setPrechargeLevel = 0xBB
	setVCOMH          = 0xBE
	setCommandLock    = 0xFD
)

// Remap and color depth register (0xA0) bit fields.
const (
	remapVerticalIncrement byte = 1 << iota // D0: address increment direction
	remapColumnReverse                      // D1: column address remap
	remapBGROrder                           // D2: RGB/BGR swap
	remapCOMLeftRight                       // D3: left-right COM swap
	remapCOMReverse                         // D4: COM scan remap
	remapCOMSplit                           // D5: COM split odd/even
	remapColor65k                           // D6-D7: 01 = 65k color depth
)

// ScrollInterval is the hardware scroll time interval between shifts.
type ScrollInterval byte

// Supported scroll intervals.
const (
	Scroll6Frames ScrollInterval = iota
	Scroll10Frames
	Scroll100Frames
	Scroll200Frames
)

// Device is a SSD1331 OLED display.
type Device struct {
	colorDisplay
	halted bool
}

// New opens a SSD1331 OLED display on the provided connection.
//
// The display is reset, initialized and switched on; the framebuffer
// starts out black. A nil config selects a 96×64 RGB565 panel without
// rotation.
func New(c Conn, config *Config) (*Device, error) {
	if config == nil {
		config = new(Config)
	}

	// Update mode and speed
	if spi, ok := c.(SPI); ok {
		spi.SetDataLow(false)
		if err := spi.SetMode(conn.SPIMode3); err != nil {
			return nil, err
		}
		if err := spi.SetMaxSpeed(8_000_000); err != nil {
			return nil, err
		}
	}

	d := &Device{
		colorDisplay: colorDisplay{
			baseDisplay: baseDisplay{c: c},
		},
	}

	if err := d.init(config); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Device) String() string {
	bounds := d.Bounds()
	return fmt.Sprintf("SSD1331 %dx%d", bounds.Dx(), bounds.Dy())
}

func (d *Device) init(config *Config) (err error) {
	if config.Width == 0 && config.Height == 0 {
		if config.Rotation == Rotate90 || config.Rotation == Rotate270 {
			config.Width, config.Height = defaultHeight, defaultWidth
		} else {
			config.Width, config.Height = defaultWidth, defaultHeight
		}
	}

	var portrait = config.Rotation == Rotate90 || config.Rotation == Rotate270
	if (!portrait && (config.Width != defaultWidth || config.Height != defaultHeight)) ||
		(portrait && (config.Width != defaultHeight || config.Height != defaultWidth)) {
		return fmt.Errorf("ssd1331: unsupported size %dx%d at %s rotation", config.Width, config.Height, config.Rotation)
	}

	// init base
	if err = d.colorDisplay.init(config, binary.BigEndian); err != nil {
		return
	}

	// reset the panel
	if err = d.c.Reset(gpio.High); err != nil {
		return
	}
	time.Sleep(1 * time.Millisecond)
	if err = d.c.Reset(gpio.Low); err != nil {
		return
	}
	time.Sleep(10 * time.Millisecond)
	if err = d.c.Reset(gpio.High); err != nil {
		return
	}
	time.Sleep(10 * time.Millisecond)

	// init display; the analog values follow the Adafruit power-on sequence
	if err = d.commands(
		[]byte{setDisplayOff},
		[]byte{setStartLine, 0x00},
		[]byte{setDisplayOffset, 0x00},
		[]byte{setNormalDisplay},
		[]byte{setMultiplexRatio, 0x3F},
		[]byte{setMasterConfig, 0x8E},
		[]byte{setPowerSaveMode, 0x0B},
		[]byte{setPhasePeriod, 0x31},
		[]byte{setClockDivider, 0xF0},
		[]byte{setPrechargeA, 0x64},
		[]byte{setPrechargeB, 0x78},
		[]byte{setPrechargeC, 0x64},
		[]byte{setPrechargeLevel, 0x3A},
		[]byte{setVCOMH, 0x3E},
		[]byte{setMasterCurrent, 0x06},
		[]byte{setContrastA, 0x91},
		[]byte{setContrastB, 0x50},
		[]byte{setContrastC, 0x7D},
	); err != nil {
		return
	}

	if err = d.SetRotation(config.Rotation); err != nil {
		return
	}
	if err = d.Refresh(); err != nil {
		return
	}
	if err = d.Show(true); err != nil {
		return
	}

	return
}

func (d *Device) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			_ = d.c.Close()
			return err
		}
		d.halted = true
	}
	return d.c.Close()
}

func (d *Device) Show(show bool) error {
	var command = byte(setDisplayOff)
	if show {
		command = byte(setDisplayOn)
	}
	return d.command(command)
}

// SetContrast scales the three channel contrast registers, keeping the
// panel's factory white point.
func (d *Device) SetContrast(level uint8) error {
	scale := func(v byte) byte {
		return byte((uint16(v)*uint16(level) + 127) / 255)
	}
	return d.commands(
		[]byte{setContrastA, scale(0x91)},
		[]byte{setContrastB, scale(0x50)},
		[]byte{setContrastC, scale(0x7D)},
	)
}

// Invert toggles color inverted mode.
func (d *Device) Invert(invert bool) error {
	if invert {
		return d.command(setInvertDisplay)
	}
	return d.command(setNormalDisplay)
}

// SetDim toggles the reduced brightness display-on mode.
func (d *Device) SetDim(dim bool) error {
	if dim {
		return d.command(setDisplayOnDim)
	}
	return d.command(setDisplayOn)
}

func (d *Device) remap() byte {
	remap := remapCOMSplit
	if !d.use256 {
		remap |= remapColor65k
	}
	switch d.rotation {
	case Rotate90:
		remap |= remapVerticalIncrement | remapCOMReverse
	case Rotate180:
		// no remap
	case Rotate270:
		remap |= remapVerticalIncrement | remapColumnReverse
	default:
		remap |= remapColumnReverse | remapCOMReverse
	}
	return remap
}

func (d *Device) SetRotation(rotation Rotation) error {
	rotation &= 3
	if (rotation^d.rotation)&1 != 0 {
		d.width, d.height = d.height, d.width
		d.resize(d.width, d.height)
	}
	d.rotation = rotation
	return d.command(setRemap, d.remap())
}

// window maps a logical rectangle onto the panel's column and row
// address ranges, taking the current rotation into account.
func (d *Device) window(r image.Rectangle) (x0, y0, x1, y1 int) {
	x0, y0 = r.Min.X, r.Min.Y
	x1, y1 = r.Max.X-1, r.Max.Y-1
	if d.rotation == Rotate90 || d.rotation == Rotate270 {
		x0, y0, x1, y1 = y0, x0, y1, x1
	}
	x0 += d.colOffset
	x1 += d.colOffset
	y0 += d.rowOffset
	y1 += d.rowOffset
	return
}

// SetWindow sets the addressing window: subsequent pixel data writes
// fill r in row-major order. Out of bound windows fail with ErrBounds
// before any bus I/O is done.
func (d *Device) SetWindow(r image.Rectangle) error {
	if r.Empty() || !r.In(d.Bounds()) {
		return ErrBounds
	}
	x0, y0, x1, y1 := d.window(r)
	return d.commands(
		[]byte{setColumnAddr, byte(x0), byte(x1)},
		[]byte{setRowAddr, byte(y0), byte(y1)},
	)
}

// WritePixels sets the addressing window to r and streams raw pixel
// data in the panel's native format. The payload length must match the
// window size exactly; there is no clipping.
func (d *Device) WritePixels(r image.Rectangle, pix []byte) error {
	if r.Empty() || !r.In(d.Bounds()) {
		return ErrBounds
	}
	if len(pix) != r.Dx()*r.Dy()*d.bytesPerPixel() {
		return ErrPixelCount
	}
	if err := d.SetWindow(r); err != nil {
		return err
	}
	return d.writeBatched(pix)
}

// Refresh sets the window to full screen and redraws using the internal frame buffer.
func (d *Device) Refresh() error {
	if err := d.SetWindow(d.Bounds()); err != nil {
		return err
	}
	return d.writeBatched(d.pix())
}

func (d *Device) writeBatched(pix []byte) error {
	const batchSize = 4096

	for i, l := 0, len(pix); i < l; i += batchSize {
		j := i + batchSize
		if j > l {
			j = l
		}
		if err := d.data(pix[i:j]...); err != nil {
			return err
		}
	}
	return nil
}

// accelColor converts c to the 6-bit per channel encoding used by the
// accelerated drawing commands.
func accelColor(c color.Color) (r, g, b byte) {
	v := pixel.CRGB16Model.Convert(c).(pixel.CRGB16).V
	r = byte(v>>11) << 1
	g = byte(v>>5) & 0x3F
	b = byte(v&0x1F) << 1
	return
}

// DrawLine draws a line between two points using the controller's
// accelerated line command. The framebuffer is not modified.
func (d *Device) DrawLine(a, b image.Point, c color.Color) error {
	bounds := d.Bounds()
	if !a.In(bounds) || !b.In(bounds) {
		return ErrBounds
	}
	x0, y0, x1, y1 := d.window(image.Rectangle{Min: a, Max: b.Add(image.Pt(1, 1))})
	cr, cg, cb := accelColor(c)
	return d.command(drawLineCmd, byte(x0), byte(y0), byte(x1), byte(y1), cr, cg, cb)
}

// DrawRect draws a rectangle outline using the controller's
// accelerated rectangle command. The framebuffer is not modified.
func (d *Device) DrawRect(r image.Rectangle, line color.Color) error {
	if r.Empty() || !r.In(d.Bounds()) {
		return ErrBounds
	}
	x0, y0, x1, y1 := d.window(r)
	lr, lg, lb := accelColor(line)
	return d.commands(
		[]byte{setFillMode, 0x00},
		[]byte{drawRectCmd, byte(x0), byte(y0), byte(x1), byte(y1), lr, lg, lb, 0x00, 0x00, 0x00},
	)
}

// FillRect draws a filled rectangle using the controller's accelerated
// rectangle command. The framebuffer is not modified.
func (d *Device) FillRect(r image.Rectangle, line, fill color.Color) error {
	if r.Empty() || !r.In(d.Bounds()) {
		return ErrBounds
	}
	x0, y0, x1, y1 := d.window(r)
	lr, lg, lb := accelColor(line)
	fr, fg, fb := accelColor(fill)
	return d.commands(
		[]byte{setFillMode, 0x01},
		[]byte{drawRectCmd, byte(x0), byte(y0), byte(x1), byte(y1), lr, lg, lb, fr, fg, fb},
	)
}

// ClearWindow clears a rectangular region of the panel RAM. The
// framebuffer is not modified.
func (d *Device) ClearWindow(r image.Rectangle) error {
	if r.Empty() || !r.In(d.Bounds()) {
		return ErrBounds
	}
	x0, y0, x1, y1 := d.window(r)
	return d.command(clearWindowCmd, byte(x0), byte(y0), byte(x1), byte(y1))
}

// CopyWindow copies a rectangular region of the panel RAM to another
// position. The framebuffer is not modified.
func (d *Device) CopyWindow(r image.Rectangle, to image.Point) error {
	bounds := d.Bounds()
	if r.Empty() || !r.In(bounds) || !r.Add(to.Sub(r.Min)).In(bounds) {
		return ErrBounds
	}
	x0, y0, x1, y1 := d.window(r)
	tx, ty, _, _ := d.window(image.Rectangle{Min: to, Max: to.Add(image.Pt(1, 1))})
	return d.command(copyWindowCmd, byte(x0), byte(y0), byte(x1), byte(y1), byte(tx), byte(ty))
}

// StartScroll activates hardware scrolling by cols columns and rows
// rows per interval, wrapping around the panel edges.
func (d *Device) StartScroll(cols, rows int, interval ScrollInterval) error {
	if cols <= -defaultWidth || cols >= defaultWidth || rows <= -defaultHeight || rows >= defaultHeight {
		return ErrBounds
	}
	if cols < 0 {
		cols += defaultWidth
	}
	if rows < 0 {
		rows += defaultHeight
	}
	return d.commands(
		[]byte{setupScroll, byte(cols), 0x00, defaultHeight, byte(rows), byte(interval)},
		[]byte{activateScroll},
	)
}

// StopScroll deactivates hardware scrolling. The panel RAM should be
// rewritten afterwards, scrolling shifts it in place.
func (d *Device) StopScroll() error {
	return d.command(deactivateScroll)
}

// Interface checks
var (
	_ Display = (*Device)(nil)
)
