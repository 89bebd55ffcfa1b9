package health

import (
	"errors"
	"net/http"
	"os"
	"runtime"
	"time"

	"vantala-vaani/internal/infrastructure/config"
	"vantala-vaani/internal/pkg/common"
	"vantala-vaani/internal/storage/csvstore"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Store     *StoreStatus           `json:"store,omitempty"`
}

// StoreStatus summarizes the recipe store.
type StoreStatus struct {
	Path         string `json:"path"`
	TotalRecipes int    `json:"total_recipes"`
}

// HealthCheck reports service status, runtime stats, and store size.
func HealthCheck(c *gin.Context) {
	cfg, exists := c.Get("config")
	if !exists {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Configuration not found",
		})
		return
	}
	config, ok := cfg.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid configuration type",
		})
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	// missing store file just means no submissions yet
	if s, exists := c.Get("recipe_store"); exists {
		if store, ok := s.(*csvstore.Store); ok {
			status := &StoreStatus{Path: store.Path()}
			if stats, err := store.Stats(); err == nil {
				status.TotalRecipes = stats.TotalRecipes
			}
			response.Store = status
		}
	}

	common.LogInfo("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck reports readiness to accept submissions. A store that
// exists but cannot be read makes the service not ready; a store that
// simply has no submissions yet does not.
func ReadinessCheck(c *gin.Context) {
	if s, exists := c.Get("recipe_store"); exists {
		if store, ok := s.(*csvstore.Store); ok {
			if _, err := store.Stats(); err != nil && !errors.Is(err, os.ErrNotExist) {
				common.LogError("Recipe store unreadable", zap.Error(err))
				c.JSON(common.ErrServiceUnavailable.Status, common.ErrServiceUnavailable.Response("recipe store unreadable"))
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck reports process liveness.
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
