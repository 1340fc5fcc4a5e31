package target

import (
	"context"
	"net/http"
	"strconv"

	appctx "github.com/Ramsey-B/rose/pkg/context"
	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/Ramsey-B/rose/pkg/tracing"
	"github.com/Ramsey-B/rose/pkg/utils"
	"github.com/labstack/echo/v4"
)

type TargetService interface {
	Create(ctx context.Context, input models.TargetInput) (*models.Target, error)
	List(ctx context.Context) ([]models.Target, error)
	Update(ctx context.Context, id int64, input models.TargetInput) (*models.Target, error)
}

type Handler struct {
	service TargetService
}

func NewHandler(service TargetService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes serves every route with and without the trailing slash.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/targets", h.CreateTarget)
	e.POST("/targets/", h.CreateTarget)
	e.GET("/targets", h.ListTargets)
	e.GET("/targets/", h.ListTargets)
	e.PUT("/targets/:id", h.UpdateTarget)
	e.PUT("/targets/:id/", h.UpdateTarget)
}

func (h *Handler) CreateTarget(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "target.CreateTarget")
	defer span.End()

	req, err := utils.BindRequest[models.TargetInput](c)
	if err != nil {
		return err
	}

	result, err := h.service.Create(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ListTargets(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "target.ListTargets")
	defer span.End()

	result, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	if result == nil {
		result = []models.Target{}
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateTarget(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "target.UpdateTarget")
	defer span.End()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errors.NewValidationErrorf("invalid target id %q", c.Param("id"))
	}
	ctx = appctx.SetTargetID(ctx, id)
	c.SetRequest(c.Request().WithContext(appctx.SetTargetID(c.Request().Context(), id)))

	req, err := utils.BindRequest[models.TargetInput](c)
	if err != nil {
		return err
	}

	result, err := h.service.Update(ctx, id, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
