package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ssd1331"
	"github.com/BeatGlow/ssd1331/draw"
	"github.com/BeatGlow/ssd1331/pixel"
)

func main() {
	busFlag := flag.String("bus", "spi", "Bus type (spi or i2c)")
	i2cDeviceFlag := flag.Int("i2c-dev", ssd1331.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(ssd1331.DefaultI2CConfig.Addr), "I²C device address")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	cePinFlag := flag.String("ce", "GPIO8", "Chip enable GPIO pin")
	rotateFlag := flag.String("rotate", "", "Display rotation")
	use256Flag := flag.Bool("256", false, "Use 8-bit RGB332 colors instead of 16-bit RGB565")
	fontFlag := flag.String("font", "", "TrueType font file for the text banner")
	probeFlag := flag.Bool("probe", false, "Only probe the bus connection and exit")
	flag.Parse()

	var rotation ssd1331.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = ssd1331.NoRotation
	case "90", "right", "cw":
		rotation = ssd1331.Rotate90
	case "180", "flip":
		rotation = ssd1331.Rotate180
	case "270", "left", "ccw":
		rotation = ssd1331.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		conn ssd1331.Conn
		err  error
	)
	switch *busFlag {
	case "i2c":
		conn, err = ssd1331.OpenI2C(&ssd1331.I2CConfig{
			Device: *i2cDeviceFlag,
			Addr:   uint8(*i2cAddrFlag),
			Reset:  gpioreg.ByName(*resetPinFlag),
		})
	case "spi":
		conn, err = ssd1331.OpenSPI(&ssd1331.SPIConfig{
			Bus:    *spiBusFlag,
			Device: *spiDeviceFlag,
			Reset:  gpioreg.ByName(*resetPinFlag),
			DC:     gpioreg.ByName(*dcPinFlag),
			CE:     gpioreg.ByName(*cePinFlag),
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", *busFlag)
	}
	if err != nil {
		fatal(err)
	}
	defer conn.Close()
	fmt.Printf("using connection: %s\n", conn)

	if *probeFlag {
		return
	}

	output, err := ssd1331.New(conn, &ssd1331.Config{
		Rotation:     rotation,
		Use256Colors: *use256Flag,
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using driver: %s\n", output)

	r := output.Bounds()

	// Accelerated drawing showcase
	if err = output.FillRect(r, color.RGBA{B: 0x80, A: 0xff}, color.RGBA{A: 0xff}); err != nil {
		fatal(err)
	}
	if err = output.DrawLine(r.Min, r.Max.Sub(image.Pt(1, 1)), color.RGBA{R: 0xff, A: 0xff}); err != nil {
		fatal(err)
	}
	time.Sleep(2 * time.Second)

	// Text banner
	banner := "Hello SSD1331"
	if *fontFlag != "" {
		data, err := os.ReadFile(*fontFlag)
		if err != nil {
			fatal(err)
		}
		font, err := draw.ParseFont(data)
		if err != nil {
			fatal(err)
		}
		if err = draw.Text(output, image.Pt(0, 20), font, 13, banner, pixel.On); err != nil {
			fatal(err)
		}
	} else {
		draw.BasicText(output, image.Pt(0, 20), banner, pixel.On)
	}
	draw.Circle(output, image.Pt(r.Dx()/2, r.Dy()/2), r.Dy()/3, color.RGBA{G: 0xff, A: 0xff})
	if err = output.Refresh(); err != nil {
		fatal(err)
	}
	time.Sleep(2 * time.Second)

	var (
		offset int
		ticker = time.NewTicker(50 * time.Millisecond)
	)
	defer ticker.Stop()

	// Draw box around edge
	draw.Rectangle(output, r, pixel.On)
	if err = output.Refresh(); err != nil {
		fatal(err)
	}

	fmt.Println("hit control-c to stop...")
	for {
		// Draw gradient inside box
		for y := 1; y < r.Max.Y-1; y++ {
			for x := 1; x < r.Max.X-1; x++ {
				output.Set(x, y, color.RGBA{
					R: uint8(x + y + offset),
					G: uint8(x - y + offset),
					B: uint8(x + y - offset),
					A: 0xff,
				})
			}
		}

		if err = output.Refresh(); err != nil {
			fatal(err)
		}

		offset++
		<-ticker.C
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
