package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(h) == 6 {
		return Color(0xFF000000 | uint32(v)), nil
	}
	rgba := uint32(v)
	return Color(rgba<<24 | rgba>>8), nil
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// ToRGBA converts to a premultiplied image/color value for rasterization.
func (c Color) ToRGBA() color.RGBA {
	a := uint32(uint8(c >> 24))
	premul := func(v uint8) uint8 { return uint8(uint32(v) * a / 0xFF) }
	return color.RGBA{
		R: premul(uint8(c >> 16)),
		G: premul(uint8(c >> 8)),
		B: premul(uint8(c)),
		A: uint8(a),
	}
}

// String formats the color as #RRGGBB, or #RRGGBBAA when not opaque.
func (c Color) String() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%06X%02X", uint32(c)&0x00FFFFFF, uint8(c>>24))
}

// MarshalText implements encoding.TextMarshaler so colors serialize as hex.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)

	// ColorLightText is the default digit color: white at 60% opacity.
	ColorLightText = Color(0x99FFFFFF)
	// ColorPanel fills the area around each flip card.
	ColorPanel = Color(0xFF2E2B2E)
	// ColorCard is the card face behind the digits.
	ColorCard = Color(0xFF111111)
)
