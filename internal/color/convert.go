// SPDX-License-Identifier: MIT

// Package color implements the color math behind WindPalette: hex, RGB and
// HSL conversion, Tailwind-style scales, contrast helpers, status colors and
// harmonies. Every function is pure and safe for concurrent use.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidHex is returned when a color is not a #RRGGBB string.
	ErrInvalidHex = errors.New("invalid hex color")
	// ErrInvalidFormat is returned for an unknown display format.
	ErrInvalidFormat = errors.New("invalid color format")
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// RGB is a color with integer channels in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness as percentages.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Format selects how FormatColor renders a color.
type Format string

const (
	FormatHex Format = "HEX"
	FormatRGB Format = "RGB"
	FormatHSL Format = "HSL"
)

// ParseFormat accepts hex, rgb or hsl in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToUpper(strings.TrimSpace(s))); f {
	case FormatHex, FormatRGB, FormatHSL:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// IsHex reports whether value is a #RRGGBB string.
func IsHex(value string) bool {
	return hexColorRegex.MatchString(value)
}

// ParseHex validates a #RRGGBB string and returns it lowercased.
func ParseHex(hex string) (string, error) {
	if !hexColorRegex.MatchString(hex) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return strings.ToLower(hex), nil
}

func parse(hex string) (colorful.Color, error) {
	if !hexColorRegex.MatchString(hex) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return c, nil
}

// HexToRGB parses a #RRGGBB string into integer channels.
func HexToRGB(hex string) (RGB, error) {
	c, err := parse(hex)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// HexToHSL converts a #RRGGBB string to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// RGBToHSL converts integer RGB to HSL.
func RGBToHSL(rgb RGB) HSL {
	return rgbFloatToHSL(float64(rgb.R)/255, float64(rgb.G)/255, float64(rgb.B)/255)
}

func rgbFloatToHSL(r, g, b float64) HSL {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// HSLToHex converts HSL to a lowercase #rrggbb string. Hue is wrapped into
// [0,360) and saturation/lightness are clamped to [0,100] first.
func HSLToHex(hsl HSL) string {
	r, g, b := hslToRGBFloat(hsl)
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

func hslToRGBFloat(hsl HSL) (r, g, b float64) {
	h := wrapHue(hsl.H)
	s := clamp(hsl.S, 0, 100) / 100
	l := clamp(hsl.L, 0, 100) / 100
	a := s * math.Min(l, 1-l)

	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		return l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
	}
	return f(0), f(8), f(4)
}

func channel(v float64) int {
	return int(clamp(math.Round(v*255), 0, 255))
}

// FormatColor renders hex for display.
func FormatColor(hex string, format Format) (string, error) {
	switch format {
	case FormatHex:
		if _, err := parse(hex); err != nil {
			return "", err
		}
		return strings.ToUpper(hex), nil
	case FormatRGB:
		rgb, err := HexToRGB(hex)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B), nil
	case FormatHSL:
		hsl, err := HexToHSL(hex)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
			int(math.Round(hsl.H)), int(math.Round(hsl.S)), int(math.Round(hsl.L))), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
