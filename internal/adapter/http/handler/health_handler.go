package handler

import (
	"net/http"

	"paymentcore/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness of the process and readiness of every
// dependency wired into it (Postgres, Redis).
type HealthHandler struct {
	checkers []ports.HealthChecker
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(checkers ...ports.HealthChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers}
}

// Live handles GET /health/live — process liveness only.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "live"})
}

// Ready handles GET /health/ready — fans out Ping to every dependency.
func (h *HealthHandler) Ready(c *gin.Context) {
	deps := gin.H{}
	healthy := true
	for _, checker := range h.checkers {
		if err := checker.Ping(c.Request.Context()); err != nil {
			deps[checker.Name()] = err.Error()
			healthy = false
			continue
		}
		deps[checker.Name()] = "ok"
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": map[bool]string{true: "ready", false: "degraded"}[healthy], "dependencies": deps})
}
