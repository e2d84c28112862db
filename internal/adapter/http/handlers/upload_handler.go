package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "cotacao_service/internal/adapter/http/dto/request"
	response "cotacao_service/internal/adapter/http/dto/response"
	"cotacao_service/internal/usecase"
	"cotacao_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidUploadPayload = pkg.NewDomainErrorSimple("INVALID_UPLOAD_INPUT", "Invalid upload payload", http.StatusBadRequest)
)

// UploadHandler hands out presigned upload targets and read URLs for
// quotation/registration documents.

type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

func (h *UploadHandler) GenerateUploadTarget(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.GenerateUploadTargetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUploadPayload.HTTPStatus, errInvalidUploadPayload.ToHTTPError())
		return
	}

	target, err := h.usecase.GenerateUploadTarget(c.Request.Context(), actor, payload.FileName, payload.ContentType, payload.Size)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.UploadTargetResponse{UploadURL: target.UploadURL, StorageRef: target.StorageRef})
}

func (h *UploadHandler) DownloadURL(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	storageRef := strings.TrimSpace(c.Query("storage_ref"))
	url, err := h.usecase.DownloadURL(c.Request.Context(), actor, storageRef)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DownloadURLResponse{URL: url})
}

func mapUploadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrMissingFileName),
		errors.Is(err, usecase.ErrInvalidDocumentType),
		errors.Is(err, usecase.ErrDocumentTooLarge):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUploadFailed):
		return pkg.NewDomainErrorSimple("UPLOAD_FAILED", "Storage reference could not be resolved", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
