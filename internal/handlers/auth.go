// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thatcatcamp/windpalette/internal/auth"
	"github.com/thatcatcamp/windpalette/internal/db"
	"github.com/thatcatcamp/windpalette/internal/users"
)

func oauthUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": auth.ErrOAuthNotConfigured.Error()})
}

// GoogleLoginHandler starts the Google sign-in flow. A nil provider means
// sign-in is not configured.
func GoogleLoginHandler(provider *auth.GoogleProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if provider == nil {
			oauthUnavailable(c)
			return
		}

		state, err := auth.GenerateState()
		if err != nil {
			respondError(c, err)
			return
		}
		auth.SetStateCookie(c, state)
		c.Redirect(http.StatusFound, provider.AuthURL(state))
	}
}

// GoogleCallbackHandler finishes sign-in, creates or refreshes the user and
// sets the session cookie
func GoogleCallbackHandler(provider *auth.GoogleProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if provider == nil {
			oauthUnavailable(c)
			return
		}

		if reason := c.Query("error"); reason != "" {
			auth.VerifyState(c, "")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign-in was cancelled"})
			return
		}

		if !auth.VerifyState(c, c.Query("state")) {
			badRequest(c, "invalid oauth state")
			return
		}

		code := c.Query("code")
		if code == "" {
			badRequest(c, "missing authorization code")
			return
		}

		profile, err := provider.Exchange(c.Request.Context(), code)
		if err != nil {
			if errors.Is(err, auth.ErrEmailNotVerified) {
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			log.Warn().Err(err).Msg("Google sign-in failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "google sign-in failed"})
			return
		}

		user, err := users.UpsertGoogleUser(db.GetDB(), profile.ID, profile.Email, profile.Name, profile.AvatarURL)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := auth.GenerateToken(user)
		if err != nil {
			respondError(c, err)
			return
		}
		auth.SetSessionCookie(c, token)

		log.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg("User signed in")
		c.Redirect(http.StatusFound, "/")
	}
}

// LogoutHandler clears the session cookie
func LogoutHandler(c *gin.Context) {
	auth.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// MeHandler returns the signed-in user
func MeHandler(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	c.JSON(http.StatusOK, user)
}

// ListUsersHandler lists all accounts for admins
func ListUsersHandler(c *gin.Context) {
	list, err := users.ListUsers(db.GetDB())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": list})
}
