package api

import (
	"context"
	"fmt"
	"time"

	"vantala-vaani/internal/api/handlers/health"
	recipeHandler "vantala-vaani/internal/api/handlers/recipe"
	"vantala-vaani/internal/api/middleware"
	"vantala-vaani/internal/core/language"
	"vantala-vaani/internal/infrastructure/config"
	"vantala-vaani/internal/pkg/common"
	"vantala-vaani/internal/storage/csvstore"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	timeoutDuration = 30 * time.Second
	// submissions are text only, 1MB is generous
	maxBodySize = 1 << 20
)

// SetupRouter builds the collection API engine.
func SetupRouter(cfg *config.Config, store *csvstore.Store, classifier *language.Classifier) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	if store == nil {
		common.LogError("Recipe store not initialized")
		return nil, fmt.Errorf("recipe store not initialized")
	}
	if classifier == nil {
		common.LogError("Language classifier not initialized")
		return nil, fmt.Errorf("language classifier not initialized")
	}

	// request timeout plus context wiring for the handlers
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("recipe_store", store)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(common.ErrRequestTimeout.Status, common.ErrRequestTimeout.Response(timeoutDuration.String()))
			c.Abort()
			return
		}
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(common.ErrNotFound.Status, common.ErrNotFound.Response(c.Request.URL.Path))
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		handler := recipeHandler.NewHandler(store, classifier)

		recipes := api.Group("/recipes")
		{
			recipes.POST("", middleware.Deduplication(cfg), handler.HandleSubmit)
			recipes.GET("/stats", handler.HandleStats)
			recipes.GET("/search", handler.HandleSearch)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("store_path", store.Path()),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
