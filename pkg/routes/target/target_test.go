package target

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/Ramsey-B/rose/pkg/middleware"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	targets []models.Target
}

func (s *fakeService) Create(ctx context.Context, input models.TargetInput) (*models.Target, error) {
	t := models.NewTarget(input)
	t.ID = int64(len(s.targets) + 1)
	s.targets = append(s.targets, *t)
	return t, nil
}

func (s *fakeService) List(ctx context.Context) ([]models.Target, error) {
	return s.targets, nil
}

func (s *fakeService) Update(ctx context.Context, id int64, input models.TargetInput) (*models.Target, error) {
	for i := range s.targets {
		if s.targets[i].ID == id {
			s.targets[i].Apply(input)
			t := s.targets[i]
			return &t, nil
		}
	}
	return nil, errors.NewNotFoundError("target", id)
}

func newTestServer(service TargetService) *echo.Echo {
	logger := ectologger.NewEctoLogger(func(ectologger.EctoLogMessage) {})
	e := echo.New()
	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(middleware.Context())
	NewHandler(service).RegisterRoutes(e)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndListTargets(t *testing.T) {
	e := newTestServer(&fakeService{})

	rec := do(e, http.MethodPost, "/targets/", `{"name":"Alex","language":"English","personality":"shy"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Target
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Alex", created.Name)
	require.NotNil(t, created.Personality)
	assert.Equal(t, "shy", *created.Personality)
	assert.Nil(t, created.Gender)

	for _, path := range []string{"/targets", "/targets/"} {
		rec = do(e, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)

		var targets []models.Target
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &targets))
		require.Len(t, targets, 1)
		assert.Equal(t, created.Name, targets[0].Name)
	}
}

func TestListTargets_Empty(t *testing.T) {
	e := newTestServer(&fakeService{})

	rec := do(e, http.MethodGet, "/targets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateTarget_MissingName(t *testing.T) {
	e := newTestServer(&fakeService{})

	rec := do(e, http.MethodPost, "/targets", `{"language":"English"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Detail, "name")
}

func TestUpdateTarget(t *testing.T) {
	service := &fakeService{}
	e := newTestServer(service)

	rec := do(e, http.MethodPost, "/targets", `{"name":"Alex","language":"English"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPut, "/targets/1", `{"name":"Alexandra"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Target
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Alexandra", updated.Name)
	assert.Nil(t, updated.Language)
}

func TestUpdateTarget_NotFound(t *testing.T) {
	e := newTestServer(&fakeService{})

	rec := do(e, http.MethodPut, "/targets/9", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTarget_BadID(t *testing.T) {
	e := newTestServer(&fakeService{})

	rec := do(e, http.MethodPut, "/targets/abc", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
