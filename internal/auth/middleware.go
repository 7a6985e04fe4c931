package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/windpalette/internal/db"
	"github.com/thatcatcamp/windpalette/internal/models"
)

const userContextKey = "user"

// tokenFromRequest reads the session cookie, falling back to a bearer token
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// loadUser resolves the request's session to a user, or nil
func loadUser(c *gin.Context) *models.User {
	token := tokenFromRequest(c)
	if token == "" {
		return nil
	}

	claims, err := ValidateToken(token)
	if err != nil {
		return nil
	}

	var user models.User
	if err := db.GetDB().WithContext(c.Request.Context()).First(&user, claims.UserID).Error; err != nil {
		return nil
	}
	return &user
}

// RequireAuth middleware validates the session and loads the user
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := loadUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		// Set user in context for handlers
		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth sets the user when a valid session is present
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := loadUser(c); user != nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// RequireAdmin middleware requires admin privileges
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := loadUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrator access required"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the signed-in user set by the middleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
