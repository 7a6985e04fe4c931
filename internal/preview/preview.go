// SPDX-License-Identifier: MIT
package preview

import (
	"errors"
	"fmt"
	"image"
	imgcolor "image/color"
	"image/png"
	"io"

	"github.com/thatcatcamp/windpalette/internal/color"
	"golang.org/x/image/draw"
)

const (
	// DefaultWidth is the share preview width, sized for link cards
	DefaultWidth = 1200
	// DefaultHeight is the share preview height
	DefaultHeight = 630

	maxSide = 4096
)

// ErrNoColors is returned when there is nothing to draw.
var ErrNoColors = errors.New("no colors to render")

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > maxSide || height > maxSide {
		return fmt.Errorf("invalid preview size %dx%d", width, height)
	}
	return nil
}

func rgba(hex string) (imgcolor.RGBA, error) {
	rgb, err := color.HexToRGB(hex)
	if err != nil {
		return imgcolor.RGBA{}, err
	}
	return imgcolor.RGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 255}, nil
}

// scaleUp draws the tiny canvas onto a width x height image with hard edges.
func scaleUp(canvas *image.RGBA, width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return out
}

// RenderSwatches draws one equal-width column per color.
func RenderSwatches(colors []string, width, height int) (image.Image, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	// One pixel per swatch, then scale
	canvas := image.NewRGBA(image.Rect(0, 0, len(colors), 1))
	for i, hex := range colors {
		c, err := rgba(hex)
		if err != nil {
			return nil, err
		}
		canvas.SetRGBA(i, 0, c)
	}
	return scaleUp(canvas, width, height), nil
}

// RenderScales draws one row per scale with its shades left to right,
// lightest first.
func RenderScales(scales []color.Scale, width, height int) (image.Image, error) {
	if len(scales) == 0 {
		return nil, ErrNoColors
	}
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, len(color.Shades), len(scales)))
	for y, scale := range scales {
		for x, shade := range color.Shades {
			hex, ok := scale[shade]
			if !ok {
				continue
			}
			c, err := rgba(hex)
			if err != nil {
				return nil, err
			}
			canvas.SetRGBA(x, y, c)
		}
	}
	return scaleUp(canvas, width, height), nil
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}
