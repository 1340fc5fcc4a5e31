package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ramsey-B/rose/config"
	"github.com/Ramsey-B/rose/internal/testutil"
	"github.com/Ramsey-B/rose/pkg/health"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName:      "rose-test",
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT"},
	}
}

func TestNewServer_OperationalRoutes(t *testing.T) {
	checker := health.NewChecker("test")
	checker.SetReady(true)
	e := NewServer(testConfig(), testutil.SilentLogger(), checker)

	for _, path := range []string{"/metrics", "/health", "/health/live", "/health/ready"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNewServer_RequestIDAndErrorEnvelope(t *testing.T) {
	e := NewServer(testConfig(), testutil.SilentLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"detail"`)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = NewLogger("not-a-level", false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
