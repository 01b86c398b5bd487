// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plotvista/plotvista-backend/internal/cache"
	"github.com/plotvista/plotvista-backend/internal/config"
	"github.com/plotvista/plotvista-backend/internal/handlers"
	"github.com/plotvista/plotvista-backend/internal/metrics"
	"github.com/plotvista/plotvista-backend/internal/middleware"
	"github.com/plotvista/plotvista-backend/internal/services"
	"github.com/plotvista/plotvista-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config, cacheClient *cache.Client) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	propertyService := services.NewPropertyService(db, cacheClient, storageService)
	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	callRequestService := services.NewCallRequestService(db)
	analyticsService := services.NewAnalyticsService(db)
	settingsService := services.NewSettingsService(db)
	geocodingService := services.NewGeocodingService(cfg.Geocoding, cacheClient)

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService, analyticsService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(propertyService, userService, callRequestService, settingsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	callRequestHandler := handlers.NewCallRequestHandler(callRequestService, analyticsService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	geocodeHandler := handlers.NewGeocodeHandler(geocodingService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())
	r.Use(metrics.Middleware())
	r.Use(middleware.PageViewLogger(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
			auth.POST("/change-password", middleware.AuthRequired(), authHandler.ChangePassword)
		}

		// Public property routes. OptionalAuth attributes tracked events
		// to the user when a valid token is sent.
		properties := v1.Group("/properties")
		properties.Use(middleware.OptionalAuth())
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.GET("/search", propertyHandler.SearchProperties)
			properties.GET("/by-features", propertyHandler.SearchByFeatures)
			properties.GET("/nearby", propertyHandler.GetByLocation)
			properties.GET("/stats", propertyHandler.GetStats)
			properties.GET("/suggested-locations", propertyHandler.GetSuggestedLocations)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.GET("/:id/similar", propertyHandler.GetSimilar)
			properties.POST("/:id/views", propertyHandler.IncrementViews)
		}

		// Public contact form
		v1.POST("/call-requests", middleware.ContactRateLimit(), middleware.OptionalAuth(), callRequestHandler.Create)

		// Client-side analytics events
		v1.POST("/events", middleware.OptionalAuth(), analyticsHandler.TrackEvent)

		// Geocoding proxy
		v1.GET("/geocode", middleware.GeocodeRateLimit(), geocodeHandler.ForwardGeocode)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			adminProperties := admin.Group("/properties")
			{
				adminProperties.GET("", adminHandler.ListProperties)
				adminProperties.POST("", adminHandler.CreateProperty)
				adminProperties.DELETE("", adminHandler.DeleteAllProperties)
				adminProperties.POST("/bulk-delete", adminHandler.BulkDeleteProperties)
				adminProperties.PUT("/:id", adminHandler.UpdateProperty)
				adminProperties.DELETE("/:id", adminHandler.DeleteProperty)
				adminProperties.PUT("/:id/status", adminHandler.UpdatePropertyStatus)
			}

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", adminHandler.ListUsers)
				adminUsers.POST("", adminHandler.CreateUser)
				adminUsers.PUT("/:id/status", adminHandler.UpdateUserStatus)
			}

			admin.GET("/call-requests", adminHandler.ListCallRequests)

			adminAnalytics := admin.Group("/analytics")
			{
				adminAnalytics.GET("/summary", analyticsHandler.GetSummary)
				adminAnalytics.GET("/views-over-time", analyticsHandler.GetViewsOverTime)
				adminAnalytics.GET("/activity-over-time", analyticsHandler.GetActivityOverTime)
				adminAnalytics.GET("/top-properties", analyticsHandler.GetTopProperties)
				adminAnalytics.GET("/funnel", analyticsHandler.GetConversionFunnel)
				adminAnalytics.GET("/events", analyticsHandler.GetRecentEvents)
				adminAnalytics.GET("/export", analyticsHandler.ExportEvents)
			}

			uploads := admin.Group("/uploads")
			uploads.Use(middleware.UploadRateLimit())
			{
				uploads.POST("/images", uploadHandler.UploadImages)
				uploads.POST("/documents", uploadHandler.UploadDocument)
				uploads.GET("/presign", uploadHandler.PresignFile)
				uploads.DELETE("", uploadHandler.DeleteFile)
			}

			adminSettings := admin.Group("/settings")
			{
				adminSettings.GET("", adminHandler.GetSettings)
				adminSettings.PUT("/:category/:key", adminHandler.UpdateSetting)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
