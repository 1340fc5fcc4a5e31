package coaching

import (
	"context"
	"net/http"

	appctx "github.com/Ramsey-B/rose/pkg/context"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/Ramsey-B/rose/pkg/tracing"
	"github.com/Ramsey-B/rose/pkg/utils"
	"github.com/labstack/echo/v4"
)

type CoachingService interface {
	CreateLoveAnalysis(ctx context.Context, req models.LoveAnalysisRequest) (*models.ContentResponse, error)
	CreateChatStrategy(ctx context.Context, req models.ChatStrategyRequest) (*models.ContentResponse, error)
	CreateReplyOptions(ctx context.Context, req models.ReplyOptionsRequest) (*models.ReplyOptions, error)
}

type Handler struct {
	service CoachingService
}

func NewHandler(service CoachingService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes serves every route with and without the trailing slash.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/love_analysis", h.CreateLoveAnalysis)
	e.POST("/love_analysis/", h.CreateLoveAnalysis)
	e.POST("/chat_strategies", h.CreateChatStrategy)
	e.POST("/chat_strategies/", h.CreateChatStrategy)
	e.POST("/reply_options_flow", h.CreateReplyOptions)
	e.POST("/reply_options_flow/", h.CreateReplyOptions)
}

// withTarget tags the request with the target id so the request log line carries it.
func withTarget(c echo.Context, ctx context.Context, targetID int64) context.Context {
	ctx = appctx.SetTargetID(ctx, targetID)
	c.SetRequest(c.Request().WithContext(appctx.SetTargetID(c.Request().Context(), targetID)))
	return ctx
}

func (h *Handler) CreateLoveAnalysis(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "coaching.CreateLoveAnalysis")
	defer span.End()

	req, err := utils.BindRequest[models.LoveAnalysisRequest](c)
	if err != nil {
		return err
	}
	ctx = withTarget(c, ctx, req.TargetID)

	result, err := h.service.CreateLoveAnalysis(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) CreateChatStrategy(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "coaching.CreateChatStrategy")
	defer span.End()

	req, err := utils.BindRequest[models.ChatStrategyRequest](c)
	if err != nil {
		return err
	}
	ctx = withTarget(c, ctx, req.TargetID)

	result, err := h.service.CreateChatStrategy(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) CreateReplyOptions(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "coaching.CreateReplyOptions")
	defer span.End()

	req, err := utils.BindRequest[models.ReplyOptionsRequest](c)
	if err != nil {
		return err
	}
	ctx = withTarget(c, ctx, req.TargetID)

	result, err := h.service.CreateReplyOptions(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
