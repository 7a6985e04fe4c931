// SPDX-License-Identifier: MIT
package color

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHarmony is returned for an unknown harmony kind.
var ErrInvalidHarmony = errors.New("invalid harmony")

// Harmony is a rule for deriving related colors from a base color.
type Harmony string

const (
	Monochromatic      Harmony = "monochromatic"
	Complementary      Harmony = "complementary"
	Analogous          Harmony = "analogous"
	SplitComplementary Harmony = "splitComplementary"
	Triadic            Harmony = "triadic"
)

// Harmonies lists every harmony kind in a stable order.
var Harmonies = []Harmony{Monochromatic, Complementary, Analogous, SplitComplementary, Triadic}

// ParseHarmony validates a harmony name.
func ParseHarmony(s string) (Harmony, error) {
	for _, h := range Harmonies {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidHarmony, s)
}

// GenerateHarmonies returns the base color followed by two related colors.
func GenerateHarmonies(hex string, harmony Harmony) ([]string, error) {
	base, err := HexToHSL(hex)
	if err != nil {
		return nil, err
	}
	colors, err := HarmonyHSL(base, harmony)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = HSLToHex(c)
	}
	return out, nil
}

// HarmonyHSL is GenerateHarmonies without the hex round trip.
func HarmonyHSL(base HSL, harmony Harmony) ([]HSL, error) {
	switch harmony {
	case Monochromatic:
		return []HSL{
			base,
			Lighten(Saturate(base, 10), 20),
			Darken(Saturate(base, 20), 10),
		}, nil
	case Complementary:
		complement := Spin(base, 180)
		return []HSL{base, complement, Mix(base, complement, 50)}, nil
	case Analogous:
		return []HSL{base, Spin(base, 30), Spin(base, -30)}, nil
	case SplitComplementary:
		return []HSL{base, Spin(base, 150), Spin(base, 210)}, nil
	case Triadic:
		return []HSL{base, Spin(base, 120), Spin(base, 240)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidHarmony, harmony)
}

// Spin rotates the hue by degrees, wrapping mod 360.
func Spin(c HSL, degrees float64) HSL {
	c.H = wrapHue(c.H + degrees)
	return c
}

// Saturate adds amount percentage points of saturation.
func Saturate(c HSL, amount float64) HSL {
	c.S = clamp(c.S+amount, 0, 100)
	return c
}

// Desaturate removes amount percentage points of saturation.
func Desaturate(c HSL, amount float64) HSL {
	return Saturate(c, -amount)
}

// Lighten adds amount percentage points of lightness.
func Lighten(c HSL, amount float64) HSL {
	c.L = clamp(c.L+amount, 0, 100)
	return c
}

// Darken removes amount percentage points of lightness.
func Darken(c HSL, amount float64) HSL {
	return Lighten(c, -amount)
}

// Mix blends c toward target in RGB space; amount is the percentage of
// target in the result.
func Mix(c, target HSL, amount float64) HSL {
	from := toColorful(c)
	to := toColorful(target)
	mixed := from.BlendRgb(to, clamp(amount, 0, 100)/100)
	return rgbFloatToHSL(mixed.R, mixed.G, mixed.B)
}

func toColorful(c HSL) colorful.Color {
	r, g, b := hslToRGBFloat(c)
	return colorful.Color{R: r, G: g, B: b}
}
