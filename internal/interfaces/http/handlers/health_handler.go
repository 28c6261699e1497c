package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FilingDesk/pkg/types/common"
)

// HealthChecker is one dependency that can report its availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checks map[string]HealthChecker
}

// NewHealthHandler registers the named dependency checks probed by Readiness.
func NewHealthHandler(checks map[string]HealthChecker) *HealthHandler {
	if checks == nil {
		checks = map[string]HealthChecker{}
	}
	return &HealthHandler{checks: checks}
}

// Liveness reports that the process is running.  It must never touch
// dependencies; a wedged database should fail readiness, not liveness.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": common.HealthUp})
}

// Readiness probes every registered dependency and reports per-component
// status; any failure makes the whole probe 503.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]common.HealthStatus, len(h.checks))
	for name, check := range h.checks {
		if err := check.HealthCheck(ctx); err != nil {
			components[name] = common.HealthDown
			status = http.StatusServiceUnavailable
		} else {
			components[name] = common.HealthUp
		}
	}

	overall := common.HealthUp
	if status != http.StatusOK {
		overall = common.HealthDegraded
	}
	c.JSON(status, gin.H{"status": overall, "components": components})
}
