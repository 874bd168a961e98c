// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		ping         func() bool
		wantDatabase string
	}{
		{name: "database reachable", ping: func() bool { return true }, wantDatabase: "connected"},
		{name: "database down", ping: func() bool { return false }, wantDatabase: "disconnected"},
		{name: "no checker wired", ping: nil, wantDatabase: "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			NewHealthController(tt.ping).Check(ctx)

			require.Equal(t, http.StatusOK, recorder.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.Equal(t, "ok", resp.Status)
			assert.Equal(t, tt.wantDatabase, resp.Database)
			assert.NotEmpty(t, resp.Timestamp)
		})
	}
}
