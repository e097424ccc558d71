package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chefskiss/festival-api/internal/api/handler/v1/request"
	"github.com/chefskiss/festival-api/internal/api/handler/v1/response"
	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/service"
)

const submittedMessage = "Application submitted successfully"

type VendorService interface {
	Submit(ctx context.Context, event *domain.Event, app domain.VendorApplication) (domain.VendorApplication, error)
	GetApplication(ctx context.Context, id string) (domain.VendorApplication, error)
	ListApplications(ctx context.Context, eventID *uuid.UUID) ([]domain.VendorApplication, error)
	UpdateStatus(ctx context.Context, change domain.StatusChange) (domain.VendorApplication, error)
}

type VendorHandler struct {
	events EventService
	svc    VendorService
}

func NewVendorHandler(events EventService, svc VendorService) *VendorHandler {
	return &VendorHandler{
		events: events,
		svc:    svc,
	}
}

// HandleSubmit godoc
// @Summary      Submit a vendor application
// @Description  Stores the application under the active event and emails a confirmation.
// @Tags         vendor-applications
// @Accept       json
// @Produce      json
// @Param        input  body      request.VendorApplicationRequest  true  "Vendor application"
// @Success      201    {object}  response.SubmitResponse
// @Failure      400    {object}  response.Err
// @Failure      429    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /vendor-applications [post]
func (h *VendorHandler) HandleSubmit(ctx *gin.Context) {
	var req request.VendorApplicationRequest
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
// @Summary      List vendor applications
// @Description  Newest first. Scoped to eventID when given.
// @Tags         vendor-applications
// @Produce      json
// @Param        eventID  query     string  false  "Event ID"
// @Success      200      {array}   domain.VendorApplication
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /vendor-applications [get]
// @Security BearerAuth
func (h *VendorHandler) HandleList(ctx *gin.Context) {
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

// HandleExport godoc
// @Summary      Export vendor applications as CSV
// @Tags         vendor-applications
// @Produce      text/csv
// @Param        eventID  query     string  false  "Event ID"
// @Success      200      {string}  string
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /vendor-applications/export [get]
// @Security BearerAuth
func (h *VendorHandler) HandleExport(ctx *gin.Context) {
	eventID, respErr := optionalEventID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	apps, err := h.svc.ListApplications(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("HandleExport -> h.svc.ListApplications -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	filename := fmt.Sprintf("vendor-applications-%s.csv", time.Now().UTC().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Status(http.StatusOK)

	if err = service.WriteVendorCSV(ctx.Writer, apps); err != nil {
		_ = ctx.Error(fmt.Errorf("HandleExport -> service.WriteVendorCSV -> %w", err))
	}
}

// HandleGet godoc
// @Summary      Get a vendor application
// @Tags         vendor-applications
// @Produce      json
// @Param        applicationID  path      string  true  "Application ID"
// @Success      200            {object}  domain.VendorApplication
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /vendor-applications/{applicationID} [get]
// @Security BearerAuth
func (h *VendorHandler) HandleGet(ctx *gin.Context) {
	id := ctx.Param("applicationID")

	app, err := h.svc.GetApplication(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("vendor application", "id", id))
			return
		}

		err = fmt.Errorf("HandleGet -> h.svc.GetApplication -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, app)
}

// HandleUpdateStatus godoc
// @Summary      Review a vendor application
// @Description  Sets the status. Approval and rejection email the applicant; a rejection reason is included when given.
// @Tags         vendor-applications
// @Accept       json
// @Produce      json
// @Param        applicationID  path      string                        true  "Application ID"
// @Param        input          body      request.UpdateStatusRequest  true  "Decision"
// @Success      200            {object}  domain.VendorApplication
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /vendor-applications/{applicationID}/status [patch]
// @Security BearerAuth
func (h *VendorHandler) HandleUpdateStatus(ctx *gin.Context) {
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
			response.RenderErr(ctx, response.ErrNotFound("vendor application", "id", id))
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
