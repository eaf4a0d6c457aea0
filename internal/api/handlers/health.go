package handlers

import (
	"context"
	"net/http"
	"time"

	"pokehub-backend/internal/formats"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database answers. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RulesState reports the lifecycle stage of the format rule table.
type RulesState interface {
	State() formats.State
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db    Pinger
	rules RulesState
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger, rules RulesState) *HealthHandler {
	return &HealthHandler{
		db:    db,
		rules: rules,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	state, dbErr := h.check(c)

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  map[string]string{"database": "healthy", "rules": state.String()},
	}
	statusCode := http.StatusOK
	if dbErr != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + dbErr.Error()
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Ready once the database answers and the format rule table is loaded
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	state, dbErr := h.check(c)

	services := map[string]string{"database": "ready", "rules": state.String()}
	if dbErr != nil {
		services["database"] = "not ready: " + dbErr.Error()
	}

	// A pod that cannot validate teams must not take traffic even when the
	// database is fine.
	ready := dbErr == nil && state == formats.StateReady
	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (formats.State, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return h.rules.State(), h.db.PingContext(ctx)
}
