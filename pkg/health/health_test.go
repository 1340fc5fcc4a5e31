package health

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, c *Checker, path string) (int, Response) {
	t.Helper()
	e := echo.New()
	c.RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestLiveness_AlwaysHealthy(t *testing.T) {
	code, body := serve(t, NewChecker("test"), "/health/live")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusHealthy, body.Status)
}

func TestReadiness_NotReadyUntilStartupFinishes(t *testing.T) {
	c := NewChecker("test")
	code, body := serve(t, c, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body.Checks, "startup")

	c.SetReady(true)
	code, _ = serve(t, c, "/health/ready")
	assert.Equal(t, http.StatusOK, code)
}

func TestHealth_FailingProbe(t *testing.T) {
	c := NewChecker("test")
	c.AddProbe("database", func(ctx context.Context) error { return stderrors.New("connection refused") })

	code, body := serve(t, c, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, StatusUnhealthy, body.Status)
	assert.Equal(t, "connection refused", body.Checks["database"].Message)
}
