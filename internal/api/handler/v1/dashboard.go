package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chefskiss/festival-api/internal/api/handler/v1/response"
	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/service"
)

const noActiveEventMessage = "No active event found. Applications are currently closed."

type DashboardService interface {
	Stats(ctx context.Context, eventID *uuid.UUID) (domain.DashboardStats, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// HandleGetStats godoc
// @Summary      Application statistics
// @Description  Counts vendor and workshop applications per status for the active event, or for eventID when given.
// @Tags         dashboard
// @Produce      json
// @Param        eventID  query     string  false  "Event ID"
// @Success      200      {object}  response.DashboardResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /dashboard/stats [get]
// @Security BearerAuth
func (h *DashboardHandler) HandleGetStats(ctx *gin.Context) {
	eventID, respErr := optionalEventID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stats, err := h.svc.Stats(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", *eventID))
			return
		}

		err = fmt.Errorf("HandleGetStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	resp := response.DashboardResponse{DashboardStats: stats}
	if stats.Event == nil {
		resp.Message = noActiveEventMessage
	}

	ctx.JSON(http.StatusOK, resp)
}
