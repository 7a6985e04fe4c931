// SPDX-License-Identifier: MIT
package color

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition is returned for a base position outside 1,3,5,7,9.
var ErrInvalidPosition = errors.New("invalid base position")

// Shade is a Tailwind scale step.
type Shade int

// Shades lists the scale steps from lightest to darkest.
var Shades = []Shade{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// Scale maps each shade to a hex color.
type Scale map[Shade]string

// BasePosition says which step of the scale the input color represents.
type BasePosition string

const (
	Position100 BasePosition = "1"
	Position300 BasePosition = "3"
	Position500 BasePosition = "5"
	Position700 BasePosition = "7"
	Position900 BasePosition = "9"
)

// DefaultPosition treats the input color as shade 500.
const DefaultPosition = Position500

var positionShades = map[BasePosition]Shade{
	Position100: 100,
	Position300: 300,
	Position500: 500,
	Position700: 700,
	Position900: 900,
}

// lightnessStep is the lightness change per 100 shade units.
const lightnessStep = 10.0

// ParseBasePosition validates a position; empty means DefaultPosition.
func ParseBasePosition(s string) (BasePosition, error) {
	if s == "" {
		return DefaultPosition, nil
	}
	p := BasePosition(s)
	if _, ok := positionShades[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return p, nil
}

// Shade returns the scale step the position stands for.
func (p BasePosition) Shade() Shade {
	return positionShades[p]
}

// GenerateScale derives all eleven shades from baseHex by shifting lightness
// 10 points per 100 shade units away from the base position. Hue and
// saturation are held constant.
func GenerateScale(baseHex string, position BasePosition) (Scale, error) {
	base, err := HexToHSL(baseHex)
	if err != nil {
		return nil, err
	}
	baseIndex, ok := positionShades[position]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPosition, position)
	}

	scale := make(Scale, len(Shades))
	for _, shade := range Shades {
		steps := float64(baseIndex-shade) / 100
		scale[shade] = HSLToHex(HSL{
			H: base.H,
			S: base.S,
			L: clamp(base.L+steps*lightnessStep, 0, 100),
		})
	}
	return scale, nil
}

// Keys returns the scale as string-keyed map, handy for JSON.
func (s Scale) Keys() map[string]string {
	out := make(map[string]string, len(s))
	for shade, hex := range s {
		out[fmt.Sprintf("%d", shade)] = hex
	}
	return out
}
