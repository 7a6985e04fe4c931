package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/windpalette/internal/db"
)

// HealthHandler reports whether the service and its database are up
func HealthHandler(c *gin.Context) {
	sqlDB, err := db.GetDB().DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "service": "windpalette"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "windpalette"})
}
