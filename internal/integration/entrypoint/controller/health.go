// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DependencyProbe reports whether a backing service is reachable.
type DependencyProbe func() bool

// HealthController reports liveness of the API and its backing services.
type HealthController struct {
	dbProbe    DependencyProbe
	redisProbe DependencyProbe
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbProbe, redisProbe DependencyProbe) *HealthController {
	return &HealthController{
		dbProbe:    dbProbe,
		redisProbe: redisProbe,
	}
}

// Check handles GET /health requests. The overall status is "ok" only when
// the database is reachable; Redis being down degrades the status but the
// API keeps serving (the rate limiter fails open).
func (h *HealthController) Check(c *gin.Context) {
	dbUp := h.dbProbe != nil && h.dbProbe()
	redisUp := h.redisProbe != nil && h.redisProbe()

	status := "ok"
	if !dbUp {
		status = "unavailable"
	} else if !redisUp {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Database:  connectionState(dbUp),
		Redis:     connectionState(redisUp),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func connectionState(up bool) string {
	if up {
		return "connected"
	}
	return "disconnected"
}
