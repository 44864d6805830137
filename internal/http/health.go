package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db        Pinger
	scheduler AuditScheduler
	version   string
}

// NewHealthController creates the health endpoint. scheduler is optional and
// only reported, it never makes the service unhealthy.
func NewHealthController(db Pinger, scheduler AuditScheduler, version string) *HealthController {
	return &HealthController{
		db:        db,
		scheduler: scheduler,
		version:   version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check database connectivity
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			loggerFrom(c).Error("health check: database ping failed", zap.Error(err))
			checks["database"] = "error"
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	if h.scheduler != nil {
		checks["audit_cleanup"] = scheduleState(h.scheduler)
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

func scheduleState(s AuditScheduler) string {
	if !s.IsRunning() {
		return "stopped"
	}
	next := s.GetNextRunTime()
	if next == nil {
		return "running"
	}
	return "next run " + next.Format(time.RFC3339)
}
