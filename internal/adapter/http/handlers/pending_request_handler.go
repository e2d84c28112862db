package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "cotacao_service/internal/adapter/http/dto/request"
	response "cotacao_service/internal/adapter/http/dto/response"
	"cotacao_service/internal/domain/entities"
	"cotacao_service/internal/usecase"
	"cotacao_service/internal/usecase/interfaces"
	"cotacao_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPendingPayload = pkg.NewDomainErrorSimple("INVALID_PENDING_INPUT", "Invalid pending registration payload", http.StatusBadRequest)
)

// PendingRequestHandler handles the catalog pending-registration sub-workflow.

type PendingRequestHandler struct {
	usecase usecase.IPendingRequestUseCase
}

func NewPendingRequestHandler(uc usecase.IPendingRequestUseCase) *PendingRequestHandler {
	return &PendingRequestHandler{usecase: uc}
}

func (h *PendingRequestHandler) Create(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreatePendingRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPendingPayload.HTTPStatus, errInvalidPendingPayload.ToHTTPError())
		return
	}

	input := usecase.CreatePendingRequestInput{
		PartCode:    payload.PartCode,
		Description: payload.Description,
		Brand:       payload.Brand,
		Notes:       payload.Notes,
		Document:    toDocumentInput(payload.Document),
	}

	p, err := h.usecase.Create(c.Request.Context(), actor, input)
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPendingRequest(p))
}

func (h *PendingRequestHandler) NextNumber(c *gin.Context) {
	if _, appErr := actorFromRequest(c); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	n, err := h.usecase.PeekNextNumber(c.Request.Context())
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NextNumberResponse{NextNumber: n})
}

func (h *PendingRequestHandler) GetByID(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingRequest(p))
}

func (h *PendingRequestHandler) List(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filter := interfaces.PendingRequestFilter{
		Status:      entities.PendingStatus(strings.TrimSpace(c.Query("status"))),
		RequesterID: strings.TrimSpace(c.Query("requester_id")),
	}

	list, err := h.usecase.List(c.Request.Context(), actor, filter)
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingRequests(list))
}

func (h *PendingRequestHandler) Counts(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	counts, err := h.usecase.CountByStatus(c.Request.Context(), actor)
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *PendingRequestHandler) Assign(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.AssignPendingRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPendingPayload.HTTPStatus, errInvalidPendingPayload.ToHTTPError())
			return
		}
	}

	p, err := h.usecase.Assign(c.Request.Context(), actor, c.Param("id"), payload.HandlerID)
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingRequest(p))
}

func (h *PendingRequestHandler) Respond(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RespondPendingRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPendingPayload.HTTPStatus, errInvalidPendingPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Respond(c.Request.Context(), actor, c.Param("id"), payload.CatalogCode, payload.Notes)
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingRequest(p))
}

func (h *PendingRequestHandler) Conclude(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.Conclude(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingRequest(p))
}

func (h *PendingRequestHandler) Reject(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RejectPendingRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPendingPayload.HTTPStatus, errInvalidPendingPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Reject(c.Request.Context(), actor, c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingRequest(p))
}

func (h *PendingRequestHandler) Cancel(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CancelPendingRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPendingPayload.HTTPStatus, errInvalidPendingPayload.ToHTTPError())
			return
		}
	}

	p, err := h.usecase.Cancel(c.Request.Context(), actor, c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingRequest(p))
}

func (h *PendingRequestHandler) Delete(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PendingRequestHandler) BackfillNumbers(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	migrated, err := h.usecase.BackfillNumbers(c.Request.Context(), actor)
	if err != nil {
		appErr := mapPendingRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.BackfillResponse{Migrated: migrated})
}

func mapPendingRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrMissingPartCode),
		errors.Is(err, usecase.ErrMissingDescription),
		errors.Is(err, usecase.ErrMissingRejectionReason):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPendingRequestNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrPendingRequestClosed), errors.Is(err, usecase.ErrMissingCatalogCode):
		return pkg.NewDomainError("STATUS_CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrUploadFailed):
		return pkg.NewDomainErrorSimple("UPLOAD_FAILED", "Document upload could not be confirmed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
