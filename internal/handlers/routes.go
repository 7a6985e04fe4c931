// SPDX-License-Identifier: MIT
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/windpalette/internal/ai"
	"github.com/thatcatcamp/windpalette/internal/auth"
	"github.com/thatcatcamp/windpalette/internal/middleware"
)

// Deps are the optional services behind some routes. Nil members disable
// the feature or, for limiters, the limit.
type Deps struct {
	Google       *auth.GoogleProvider
	AI           *ai.Service
	AILimiter    *middleware.RateLimiter
	LoginLimiter *middleware.RateLimiter
}

func limited(l *middleware.RateLimiter) gin.HandlerFunc {
	if l == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimitMiddleware(l)
}

// RegisterRoutes mounts the API, auth and share routes on r
func RegisterRoutes(r gin.IRouter, deps Deps) {
	r.GET("/health", HealthHandler)

	// Stateless color tools
	colors := r.Group("/api/colors")
	{
		colors.POST("/scale", ColorScaleHandler)
		colors.POST("/status", ColorStatusHandler)
		colors.POST("/harmonies", ColorHarmoniesHandler)
		colors.POST("/contrast", ColorContrastHandler)
		colors.GET("/format", ColorFormatHandler)
		colors.POST("/adjust", ColorAdjustHandler)
	}

	r.POST("/api/themes/random", RandomThemeHandler)
	r.GET("/api/palettes", PalettesHandler)
	r.GET("/api/gallery", GalleryHandler)

	// Shared themes; owners can also open their private ones
	share := r.Group("/s/:share", auth.OptionalAuth())
	{
		share.GET("", SharePageHandler)
		share.GET("/theme.css", ShareCSSHandler)
		share.GET("/tailwind.config.js", ShareTailwindHandler)
		share.GET("/preview.png", SharePreviewHandler)
	}

	authGroup := r.Group("/auth")
	{
		authGroup.GET("/google/login", limited(deps.LoginLimiter), GoogleLoginHandler(deps.Google))
		authGroup.GET("/google/callback", GoogleCallbackHandler(deps.Google))
		authGroup.POST("/logout", LogoutHandler)
	}

	api := r.Group("/api", auth.RequireAuth())
	{
		api.GET("/me", MeHandler)
		api.GET("/themes", ListMyThemesHandler)
		api.POST("/themes", CreateThemeHandler)
		api.GET("/themes/:id", GetThemeHandler)
		api.PUT("/themes/:id", UpdateThemeHandler)
		api.DELETE("/themes/:id", DeleteThemeHandler)
		api.POST("/themes/:id/like", LikeThemeHandler)
		api.POST("/ai/palette", limited(deps.AILimiter), AIPaletteHandler(deps.AI))
	}

	admin := r.Group("/api/admin", auth.RequireAdmin())
	{
		admin.GET("/users", ListUsersHandler)
	}
}
