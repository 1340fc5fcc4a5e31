package middleware

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(handler echo.HandlerFunc) *echo.Echo {
	logger := ectologger.NewEctoLogger(func(ectologger.EctoLogMessage) {})
	e := echo.New()
	e.HTTPErrorHandler = Error(logger)
	e.Use(Context())
	e.GET("/thing", handler)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, requestID string) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/thing", nil)
	if requestID != "" {
		req.Header.Set(echo.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestError_NotFoundEnvelope(t *testing.T) {
	e := newTestServer(func(c echo.Context) error {
		return fmt.Errorf("loading: %w", errors.NewNotFoundError("target", 42))
	})

	rec, body := doRequest(t, e, "req-1")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "target not found", body.Detail)
	assert.Equal(t, "req-1", body.RequestID)
	assert.Equal(t, "target", body.Meta["resource"])
}

func TestError_ValidationIs400(t *testing.T) {
	e := newTestServer(func(c echo.Context) error {
		return errors.NewValidationErrorf("target_id is required")
	})

	rec, body := doRequest(t, e, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "target_id is required", body.Detail)
	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, body.RequestID, rec.Header().Get(echo.HeaderXRequestID))
}

func TestError_CompletionFailureIs500WithUpstreamMessage(t *testing.T) {
	e := newTestServer(func(c echo.Context) error {
		return errors.NewCompletionServiceError(stderrors.New("model overloaded"))
	})

	rec, body := doRequest(t, e, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, body.Detail, "model overloaded")
}

func TestError_UnknownErrorIsGeneric500(t *testing.T) {
	e := newTestServer(func(c echo.Context) error {
		return stderrors.New("pq: connection refused")
	})

	rec, body := doRequest(t, e, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", body.Detail)
}

func TestError_EchoHTTPError(t *testing.T) {
	e := newTestServer(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "nope")
	})

	rec, body := doRequest(t, e, "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "nope", body.Detail)
}
