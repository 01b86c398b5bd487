// internal/middleware/logging.go
package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/plotvista/plotvista-backend/internal/models"
)

// PageViewLogger records a page_view analytics event for every public GET,
// fire-and-forget. Admin traffic, health checks, and scrape endpoints are
// not part of the funnel.
func PageViewLogger(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != "GET" || c.Writer.Status() >= 400 {
			return
		}

		path := c.Request.URL.Path
		if path == "/health" || path == "/metrics" || strings.Contains(path, "/admin") {
			return
		}

		event := &models.AnalyticsEvent{
			EventType: models.EventPageView,
			Page:      path,
			Metadata: models.JSONB{
				"ip":         c.ClientIP(),
				"user_agent": c.Request.UserAgent(),
			},
		}
		if propertyID := c.Param("id"); propertyID != "" && strings.Contains(path, "/properties/") {
			event.PropertyID = &propertyID
		}

		go func() {
			if err := db.Create(event).Error; err != nil {
				logrus.WithError(err).Error("Failed to record page view event")
			}
		}()
	}
}

// RequestLogger emits one structured log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		userID, _ := c.Get("user_id")
		logrus.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": duration.Milliseconds(),
			"ip":       c.ClientIP(),
			"user_id":  userID,
		}).Info("Request processed")
	}
}
