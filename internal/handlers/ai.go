// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thatcatcamp/windpalette/internal/ai"
)

type aiPaletteRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// AIPaletteHandler asks the language model for a palette matching a
// description. A nil service means the AI proxy is disabled.
func AIPaletteHandler(svc *ai.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": ai.ErrNotConfigured.Error()})
			return
		}

		var req aiPaletteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "prompt is required")
			return
		}

		suggestion, err := svc.Suggest(c.Request.Context(), req.Prompt)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, suggestion)
		case errors.Is(err, ai.ErrEmptyPrompt):
			badRequest(c, err.Error())
		case errors.Is(err, ai.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, ai.ErrNoColors), errors.Is(err, ai.ErrUpstream):
			log.Warn().Err(err).Msg("AI palette request failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not get a palette, try another description"})
		default:
			respondError(c, err)
		}
	}
}
