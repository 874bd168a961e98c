// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports service liveness and database reachability.
type HealthController struct {
	ping func() bool
}

// HealthResponse is the payload returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(ping func() bool) *HealthController {
	return &HealthController{ping: ping}
}

// Check handles GET /health requests.
func (h *HealthController) Check(ctx *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  "disconnected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if h.ping != nil && h.ping() {
		response.Database = "connected"
	}

	ctx.JSON(http.StatusOK, response)
}
