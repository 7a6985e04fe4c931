// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/windpalette/internal/color"
)

type scaleRequest struct {
	Color    string `json:"color" binding:"required"`
	Position string `json:"position"`
}

// ColorScaleHandler expands one color into its eleven shade scale
func ColorScaleHandler(c *gin.Context) {
	var req scaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "color is required")
		return
	}

	position, err := color.ParseBasePosition(req.Position)
	if err != nil {
		respondError(c, err)
		return
	}

	scale, err := color.GenerateScale(req.Color, position)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scale": scale.Keys(), "position": position})
}

type statusRequest struct {
	Primary   string `json:"primary" binding:"required"`
	Secondary string `json:"secondary" binding:"required"`
	Accent    string `json:"accent" binding:"required"`
}

// ColorStatusHandler derives info, success, warning and error colors
func ColorStatusHandler(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "primary, secondary and accent are required")
		return
	}

	status, err := color.GenerateStatusColors(req.Primary, req.Secondary, req.Accent)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

type harmonyRequest struct {
	Color string `json:"color" binding:"required"`
	Type  string `json:"type"`
}

// ColorHarmoniesHandler returns the three colors of a harmony. The type
// defaults to triadic.
func ColorHarmoniesHandler(c *gin.Context) {
	var req harmonyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "color is required")
		return
	}

	harmony := color.Triadic
	if req.Type != "" {
		h, err := color.ParseHarmony(req.Type)
		if err != nil {
			respondError(c, err)
			return
		}
		harmony = h
	}

	colors, err := color.GenerateHarmonies(req.Color, harmony)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"type": harmony, "colors": colors})
}

type contrastRequest struct {
	A string `json:"a" binding:"required"`
	B string `json:"b" binding:"required"`
}

// ColorContrastHandler reports the WCAG ratio of two colors and the
// readable text color for each
func ColorContrastHandler(c *gin.Context) {
	var req contrastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "a and b are required")
		return
	}

	ratio, err := color.ContrastRatio(req.A, req.B)
	if err != nil {
		respondError(c, err)
		return
	}
	textA, err := color.ContrastColor(req.A)
	if err != nil {
		respondError(c, err)
		return
	}
	textB, err := color.ContrastColor(req.B)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratio":     ratio,
		"good":      ratio >= color.MinContrast,
		"contrastA": textA,
		"contrastB": textB,
	})
}

// ColorFormatHandler renders a color as hex, rgb() or hsl()
func ColorFormatHandler(c *gin.Context) {
	hex := c.Query("color")
	if hex == "" {
		badRequest(c, "color is required")
		return
	}

	format := color.FormatHex
	if f := c.Query("format"); f != "" {
		parsed, err := color.ParseFormat(f)
		if err != nil {
			respondError(c, err)
			return
		}
		format = parsed
	}

	value, err := color.FormatColor(hex, format)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": value, "format": format})
}

type adjustRequest struct {
	Color     string  `json:"color" binding:"required"`
	Lightness float64 `json:"lightness"`
}

// ColorAdjustHandler shifts the lightness of a color by percentage points
func ColorAdjustHandler(c *gin.Context) {
	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "color is required")
		return
	}

	adjusted, err := color.AdjustLightness(req.Color, req.Lightness)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"color": adjusted})
}
