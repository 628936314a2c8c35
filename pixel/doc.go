// Package pixel implements the color and image formats used by the SSD1331 OLED display.
//
// The controller supports two native pixel formats: 16-bit 5-6-5 RGB (65k colors) and
// 8-bit 3-3-2 RGB (256 colors). Both are provided as color models and framebuffer
// images compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces.
package pixel
