package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echoes-archive/feria-api/internal/api/handler/v1/request"
	"github.com/echoes-archive/feria-api/internal/api/handler/v1/response"
	"github.com/echoes-archive/feria-api/internal/domain"
	"github.com/echoes-archive/feria-api/internal/service"
)

type InsightService interface {
	LookupPopulation(ctx context.Context, fairID string) (domain.Fair, error)
	GenerateFeasibilityAnalysis(ctx context.Context, fairID string) (domain.Fair, error)
	GenerateSocialPost(ctx context.Context, fairID string, platform domain.SocialPlatform) (domain.Fair, error)
}

// InsightHandler fronts the generative enrichment calls. Enrichment is
// fail-silent: when the generator yields nothing the handler answers 204 with
// no body, never an error payload.
type InsightHandler struct {
	svc InsightService
}

func NewInsightHandler(svc InsightService) *InsightHandler {
	return &InsightHandler{
		svc: svc,
	}
}

func renderInsight(ctx *gin.Context, fair domain.Fair, err error) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFairNotFound):
			response.RenderErr(ctx, response.ErrNotFound("fair", "ID", ctx.Param("fairID")))
		case errors.Is(err, service.ErrNoInsight):
			// Already logged downstream; the spinner simply ends.
			ctx.Status(http.StatusNoContent)
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, fair)
}

// HandleLookupPopulation godoc
// @Summary      Look up the town population
// @Description  Asks the text model for the population, strips the answer to digits and stores it verbatim on the fair.
// @Tags         insights
// @Produce      json
// @Param        fairID  path      string  true  "Fair ID"
// @Success      200     {object}  domain.Fair
// @Success      204     "generator yielded no result"
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/population/lookup [post]
func (h *InsightHandler) HandleLookupPopulation(ctx *gin.Context) {
	fair, err := h.svc.LookupPopulation(ctx.Request.Context(), ctx.Param("fairID"))
	if err != nil && !errors.Is(err, service.ErrFairNotFound) && !errors.Is(err, service.ErrNoInsight) {
		err = fmt.Errorf("HandleLookupPopulation -> h.svc.LookupPopulation -> %w", err)
	}
	renderInsight(ctx, fair, err)
}

// HandleGenerateFeasibilityAnalysis godoc
// @Summary      Generate a feasibility narrative
// @Description  Stores the model's assessment text verbatim, with no parsing or length limit.
// @Tags         insights
// @Produce      json
// @Param        fairID  path      string  true  "Fair ID"
// @Success      200     {object}  domain.Fair
// @Success      204     "generator yielded no result"
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/feasibility/analysis [post]
func (h *InsightHandler) HandleGenerateFeasibilityAnalysis(ctx *gin.Context) {
	fair, err := h.svc.GenerateFeasibilityAnalysis(ctx.Request.Context(), ctx.Param("fairID"))
	if err != nil && !errors.Is(err, service.ErrFairNotFound) && !errors.Is(err, service.ErrNoInsight) {
		err = fmt.Errorf("HandleGenerateFeasibilityAnalysis -> h.svc.GenerateFeasibilityAnalysis -> %w", err)
	}
	renderInsight(ctx, fair, err)
}

// HandleGenerateSocialPost godoc
// @Summary      Draft a social post for one platform
// @Tags         insights
// @Accept       json
// @Produce      json
// @Param        fairID  path      string                             true  "Fair ID"
// @Param        input   body      request.GenerateSocialPostRequest  true  "Target platform"
// @Success      200     {object}  domain.Fair
// @Success      204     "generator yielded no result"
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/social-posts/generate [post]
func (h *InsightHandler) HandleGenerateSocialPost(ctx *gin.Context) {
	var req request.GenerateSocialPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fair, err := h.svc.GenerateSocialPost(ctx.Request.Context(), ctx.Param("fairID"), domain.SocialPlatform(req.Platform))
	if err != nil && !errors.Is(err, service.ErrFairNotFound) && !errors.Is(err, service.ErrNoInsight) {
		err = fmt.Errorf("HandleGenerateSocialPost -> h.svc.GenerateSocialPost -> %w", err)
	}
	renderInsight(ctx, fair, err)
}
