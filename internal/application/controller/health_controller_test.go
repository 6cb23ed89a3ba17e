package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-widget/internal/domain/model"

	"github.com/labstack/echo/v4"
)

type stubHealth struct {
	status model.HealthStatus
}

func (s stubHealth) CheckHealth(context.Context) model.HealthResponse {
	return model.HealthResponse{Status: s.status}
}

func TestCheckHealthStatusCodes(t *testing.T) {
	tests := []struct {
		status model.HealthStatus
		code   int
	}{
		{model.StatusUp, http.StatusOK},
		{model.StatusDown, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		e := echo.New()
		NewHealthController(e.Group(""), stubHealth{tt.status}).InitHealthRoutes()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != tt.code {
			t.Errorf("status %s -> %d, want %d", tt.status, rec.Code, tt.code)
		}
	}
}
