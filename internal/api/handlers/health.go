package handlers

import (
	"context"
	"net/http"
	"time"

	"capi-onboarding-backend/internal/logger"
	"capi-onboarding-backend/internal/metrics"
	"capi-onboarding-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoint; overridden at build time
var Version = "1.0.0"

const pingTimeout = 5 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store *repository.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store *repository.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version" example:"1.0.0"`
	Store     string            `json:"store" example:"postgres"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including the reachability of the progress store
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Store:     h.store.Driver,
		Services:  make(map[string]string),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	metrics.StorePinged(h.store.Driver, err, time.Since(start))

	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("Store health check failed")
		response.Status = "unhealthy"
		response.Services["store"] = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	response.Services["store"] = "healthy"
	c.JSON(http.StatusOK, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now().UTC(),
	})
}
