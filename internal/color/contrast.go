// SPDX-License-Identifier: MIT
package color

import "math"

// MinContrast is the contrast ratio themes try to keep between colors.
const MinContrast = 4.5

const (
	Black = "#000000"
	White = "#FFFFFF"
)

// ContrastColor picks black or white text for a background using the
// perceived brightness (0.299r + 0.587g + 0.114b)/255. Exactly 0.5 picks white.
func ContrastColor(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	luminance := (0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)) / 255
	if luminance > 0.5 {
		return Black, nil
	}
	return White, nil
}

// AdjustLightness shifts lightness by delta percentage points.
func AdjustLightness(hex string, delta float64) (string, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	return HSLToHex(Lighten(hsl, delta)), nil
}

// RelativeLuminance is the sRGB relative luminance of a color.
func RelativeLuminance(hex string) (float64, error) {
	c, err := parse(hex)
	if err != nil {
		return 0, err
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// ContrastRatio returns (Lmax+0.05)/(Lmin+0.05), between 1 and 21.
func ContrastRatio(a, b string) (float64, error) {
	la, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05), nil
}

// HasGoodContrast reports whether a and b reach MinContrast.
func HasGoodContrast(a, b string) (bool, error) {
	ratio, err := ContrastRatio(a, b)
	if err != nil {
		return false, err
	}
	return ratio >= MinContrast, nil
}
