// SPDX-License-Identifier: MIT
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/windpalette/internal/config"
)

// StateCookie carries the OAuth state between login and callback.
const StateCookie = "windpalette_oauth_state"

const stateMaxAge = 10 * 60

// GenerateState creates a random OAuth state token
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func secureCookies() bool {
	return config.GetBool("auth.cookie_secure") || config.GetBool("server.tls_enabled")
}

// SetStateCookie stores state for the callback to compare against.
func SetStateCookie(c *gin.Context, state string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(StateCookie, state, stateMaxAge, "/auth", "", secureCookies(), true)
}

// VerifyState compares the callback state with the cookie and clears it.
func VerifyState(c *gin.Context, state string) bool {
	cookie, err := c.Cookie(StateCookie)
	c.SetCookie(StateCookie, "", -1, "/auth", "", secureCookies(), true)
	if err != nil || cookie == "" || state == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie), []byte(state)) == 1
}

// SetSessionCookie stores the session token.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(SessionDuration().Seconds()), "/", "", secureCookies(), true)
}

// ClearSessionCookie logs the browser out.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secureCookies(), true)
}
