// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thatcatcamp/windpalette/internal/color"
	"github.com/thatcatcamp/windpalette/internal/gallery"
	"github.com/thatcatcamp/windpalette/internal/themes"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, gallery.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, gallery.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, gallery.ErrInvalidTheme),
		errors.Is(err, color.ErrInvalidHex),
		errors.Is(err, color.ErrInvalidFormat),
		errors.Is(err, color.ErrInvalidPosition),
		errors.Is(err, color.ErrInvalidHarmony),
		errors.Is(err, themes.ErrInvalidPreference),
		errors.Is(err, themes.ErrInvalidColorCount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body. Internal errors are logged and
// replaced with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// paramID parses a positive numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
