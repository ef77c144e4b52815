package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	pingOK   = pingFunc(func(context.Context) error { return nil })
	pingFail = pingFunc(func(context.Context) error { return errors.New("connection refused") })
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		redis      Pinger
		db         Pinger
		wantCode   int
		wantStatus string
		wantRedis  string
		wantDB     string
	}{
		{"all up", pingOK, pingOK, http.StatusOK, "healthy", "up", "up"},
		{"db disabled", pingOK, nil, http.StatusOK, "healthy", "up", "disabled"},
		{"db down", pingOK, pingFail, http.StatusOK, "degraded", "up", "down"},
		{"redis down", pingFail, nil, http.StatusServiceUnavailable, "unhealthy", "down", "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler("student-performance-web", "1.2.3", tt.redis, tt.db).RegisterRoutes(r)

			for _, path := range []string{"/health", "/healthz"} {
				rr := httptest.NewRecorder()
				r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

				assert.Equal(t, tt.wantCode, rr.Code)

				var resp HealthResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantStatus, resp.Status)
				assert.Equal(t, tt.wantRedis, resp.Redis)
				assert.Equal(t, tt.wantDB, resp.DB)
				assert.Equal(t, "student-performance-web", resp.Service)
				assert.Equal(t, "1.2.3", resp.Version)
				assert.False(t, resp.Timestamp.IsZero())
			}
		})
	}
}
