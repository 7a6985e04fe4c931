package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/windpalette/internal/config"
)

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "SAMEORIGIN")

		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Share pages use inline styles; avatars come from Google
		csp := "default-src 'self'; " +
			"script-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data: https://lh3.googleusercontent.com; " +
			"font-src 'self' data:; " +
			"connect-src 'self'; " +
			"frame-ancestors 'self'"
		c.Header("Content-Security-Policy", csp)

		// HTTP Strict Transport Security (HSTS) - only if TLS is enabled
		if config.GetBool("server.tls_enabled") {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
