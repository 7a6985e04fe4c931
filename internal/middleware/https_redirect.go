// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const acmeChallengePrefix = "/.well-known/acme-challenge/"

// HTTPSRedirect sends plain HTTP requests to the HTTPS origin. When
// canonicalHost is set the redirect also moves www and other aliases onto it.
// ACME HTTP-01 challenges and health probes are served over plain HTTP.
func HTTPSRedirect(canonicalHost string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.TLS != nil || strings.HasPrefix(path, acmeChallengePrefix) || path == "/health" {
			c.Next()
			return
		}

		host := canonicalHost
		if host == "" {
			host = c.Request.Host
		}
		c.Redirect(http.StatusMovedPermanently, "https://"+host+c.Request.URL.RequestURI())
		c.Abort()
	}
}
