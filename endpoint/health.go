package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/ariebrainware/chiro-directory/middleware"
	"github.com/gin-gonic/gin"
)

// Healthz reports whether the database answers a ping.
func Healthz(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unavailable"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"database": "unavailable",
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "available"})
}
