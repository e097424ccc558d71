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

type WorkshopService interface {
	Submit(ctx context.Context, event *domain.Event, app domain.WorkshopApplication) (domain.WorkshopApplication, error)
	GetApplication(ctx context.Context, id string) (domain.WorkshopApplication, error)
	ListApplications(ctx context.Context, eventID *uuid.UUID) ([]domain.WorkshopApplication, error)
	UpdateStatus(ctx context.Context, change domain.StatusChange) (domain.WorkshopApplication, error)
}

type WorkshopHandler struct {
	events EventService
	svc    WorkshopService
}

func NewWorkshopHandler(events EventService, svc WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{
		events: events,
		svc:    svc,
	}
}

// HandleSubmit godoc
// @Summary      Submit a workshop application
// @Tags         workshop-applications
// @Accept       json
// @Produce      json
// @Param        input  body      request.WorkshopApplicationRequest  true  "Workshop application"
// @Success      201    {object}  response.SubmitResponse
// @Failure      400    {object}  response.Err
// @Failure      429    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /workshop-applications [post]
func (h *WorkshopHandler) HandleSubmit(ctx *gin.Context) {
	var req request.WorkshopApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.events.GetActive(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleSubmit -> h.events.GetActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	created, err := h.svc.Submit(ctx.Request.Context(), event, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveEvent) {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New(noActiveEventMessage)))
			return
		}

		err = fmt.Errorf("HandleSubmit -> h.svc.Submit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.SubmitResponse{
		Success:       true,
		ApplicationID: created.ID,
		Message:       submittedMessage,
	})
}

// HandleList godoc
// @Summary      List workshop applications
// @Tags         workshop-applications
// @Produce      json
// @Param        eventID  query     string  false  "Event ID"
// @Success      200      {array}   domain.WorkshopApplication
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /workshop-applications [get]
// @Security BearerAuth
func (h *WorkshopHandler) HandleList(ctx *gin.Context) {
	eventID, respErr := optionalEventID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	apps, err := h.svc.ListApplications(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("HandleList -> h.svc.ListApplications -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, apps)
}

// HandleGet godoc
// @Summary      Get a workshop application
// @Tags         workshop-applications
// @Produce      json
// @Param        applicationID  path      string  true  "Application ID"
// @Success      200            {object}  domain.WorkshopApplication
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /workshop-applications/{applicationID} [get]
// @Security BearerAuth
func (h *WorkshopHandler) HandleGet(ctx *gin.Context) {
	id := ctx.Param("applicationID")

	app, err := h.svc.GetApplication(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("workshop application", "id", id))
			return
		}

		err = fmt.Errorf("HandleGet -> h.svc.GetApplication -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, app)
}

// HandleUpdateStatus godoc
// @Summary      Review a workshop application
// @Tags         workshop-applications
// @Accept       json
// @Produce      json
// @Param        applicationID  path      string                        true  "Application ID"
// @Param        input          body      request.UpdateStatusRequest  true  "Decision"
// @Success      200            {object}  domain.WorkshopApplication
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /workshop-applications/{applicationID}/status [patch]
// @Security BearerAuth
func (h *WorkshopHandler) HandleUpdateStatus(ctx *gin.Context) {
	id := ctx.Param("applicationID")

	var req request.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateStatus(ctx.Request.Context(), req.ToDomain(id))
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("workshop application", "id", id))
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) || errors.Is(err, service.ErrTransitionDenied) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleUpdateStatus -> h.svc.UpdateStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
