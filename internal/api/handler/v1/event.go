package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chefskiss/festival-api/internal/api/handler/v1/request"
	"github.com/chefskiss/festival-api/internal/api/handler/v1/response"
	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/service"
)

type EventService interface {
	GetActive(ctx context.Context) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	ActivateEvent(ctx context.Context, id uuid.UUID) (domain.Event, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List events
// @Description  Lists every event, latest start date first.
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events [get]
// @Security BearerAuth
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetActiveEvent godoc
// @Summary      Get the active event
// @Tags         events
// @Produce      json
// @Success      200  {object}  domain.Event
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/active [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetActiveEvent(ctx *gin.Context) {
	event, err := h.svc.GetActive(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetActiveEvent -> h.svc.GetActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}
	if event == nil {
		response.RenderErr(ctx, response.ErrNotFound("event", "is_active", true))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Creates an event. With activate set it replaces the current active event.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventRequest  true  "Event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrActiveEventConflict) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleActivateEvent godoc
// @Summary      Activate an event
// @Description  Opens applications for the event and closes them for every other event.
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/activate [post]
// @Security BearerAuth
func (h *EventHandler) HandleActivateEvent(ctx *gin.Context) {
	raw := ctx.Param("eventID")
	id, err := uuid.Parse(raw)
	if err != nil {
		response.RenderErr(ctx, response.ErrInvalidInput("eventID", raw))
		return
	}

	event, err := h.svc.ActivateEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", id))
			return
		}
		if errors.Is(err, service.ErrActiveEventConflict) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("HandleActivateEvent -> h.svc.ActivateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}
