// Package conn implements low-level bus access for display hardware.
package conn

import (
	"fmt"
	"os"

	"github.com/BeatGlow/ssd1331/internal/ioctl"
)

const spiDevPath = "/dev/spidev"

// Definitions from <spi/spidev.h>
const (
	spiCPHA = 0x01
	spiCPOL = 0x02
)

// SPIMode is the SPI clock polarity and phase.
type SPIMode uint8

// SPI modes.
const (
	SPIMode0 SPIMode = (0 | 0)             //nolint:staticcheck
	SPIMode1 SPIMode = (0 | spiCPHA)       //nolint:staticcheck
	SPIMode2 SPIMode = (spiCPOL | 0)       //nolint:staticcheck
	SPIMode3 SPIMode = (spiCPOL | spiCPHA) //nolint:staticcheck
)

const (
	spiIOCMode        = 0x6b01
	spiIOCLSBFirst    = 0x6b02
	spiIOCBitsPerWord = 0x6b03
	spiIOCMaxSpeedHz  = 0x6b04
)

// SPI implements the spidev interface.
type SPI struct {
	f           *os.File
	fd          uintptr
	mode        SPIMode
	bitsPerWord uint8
	maxSpeedHz  uint32
}

// OpenSPI opens the numbered spi bus with the numbered device. The device often corresponds to the CS pin for that bus.
func OpenSPI(bus, device int) (*SPI, error) {
	spidev := fmt.Sprintf("%s%d.%d", spiDevPath, bus, device)
	f, err := os.OpenFile(spidev, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &SPI{
		f:  f,
		fd: f.Fd(),
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.mode, spiIOCMode), &c.mode); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.bitsPerWord, spiIOCBitsPerWord), &c.bitsPerWord); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.maxSpeedHz, spiIOCMaxSpeedHz), &c.maxSpeedHz); err != nil {
		_ = f.Close()
		return nil, err
	}

	return c, nil
}

func (c *SPI) Close() error {
	return c.f.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI mode=%d bits per word=%d max speed=%dHz", c.mode, c.bitsPerWord, c.maxSpeedHz)
}

func (c *SPI) Mode() SPIMode {
	return c.mode
}

func (c *SPI) SetMode(mode SPIMode) error {
	mode &= 0x0f

	if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &mode, spiIOCMode), &mode); err != nil {
		return err
	}

	var test SPIMode
	if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &test, spiIOCMode), &test); err != nil {
		return err
	}

	if test != mode {
		return fmt.Errorf("conn: SPI attempted to set mode %#02x, but mode %#02x is in use", mode, test)
	}

	c.mode = mode
	return nil
}

func (c *SPI) MaxSpeed() int {
	return int(c.maxSpeedHz)
}

func (c *SPI) SetMaxSpeed(v int) error {
	if v < 0 {
		return nil
	}

	u := uint32(v)
	if c.maxSpeedHz != u {
		if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &u, spiIOCMaxSpeedHz), &u); err != nil {
			return err
		}
		c.maxSpeedHz = u
	}

	return nil
}

func (c *SPI) Read(b []byte) (n int, err error) {
	return c.f.Read(b)
}

func (c *SPI) Write(b []byte) (n int, err error) {
	return c.f.Write(b)
}
