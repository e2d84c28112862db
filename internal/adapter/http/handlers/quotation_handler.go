package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	request "cotacao_service/internal/adapter/http/dto/request"
	response "cotacao_service/internal/adapter/http/dto/response"
	"cotacao_service/internal/domain/entities"
	"cotacao_service/internal/usecase"
	"cotacao_service/internal/usecase/interfaces"
	"cotacao_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for the quotation lifecycle.
//
// Every mutating route re-derives the actor from the identity headers and
// lets the use case run the authorizer; nothing here trusts UI-side gating.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) Create(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	input := usecase.CreateQuotationInput{
		Client:       payload.Client,
		OrderNumber:  payload.OrderNumber,
		BudgetNumber: payload.BudgetNumber,
		SupplierRef:  payload.SupplierRef,
		RequestType:  entities.RequestType(payload.RequestType),
		Notes:        payload.Notes,
		Items:        toLineItemInputs(payload.Items),
	}

	q, err := h.usecase.Create(c.Request.Context(), actor, input)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotation(q))
}

func (h *QuotationHandler) NextNumber(c *gin.Context) {
	if _, appErr := actorFromRequest(c); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Display-only hint; the committed number is allocated on creation and
	// may differ under concurrency.
	n, err := h.usecase.PeekNextNumber(c.Request.Context())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NextNumberResponse{NextNumber: n})
}

func (h *QuotationHandler) GetByID(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) List(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filter := interfaces.QuotationFilter{
		Status:           entities.QuotationStatus(strings.TrimSpace(c.Query("status"))),
		RequesterID:      strings.TrimSpace(c.Query("requester_id")),
		BuyerID:          strings.TrimSpace(c.Query("buyer_id")),
		Search:           strings.TrimSpace(c.Query("search")),
		IncludeFinalized: c.Query("include_finalized") == "true",
	}
	if v := strings.TrimSpace(c.Query("created_from")); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.CreatedFrom = t
		}
	}
	if v := strings.TrimSpace(c.Query("created_to")); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.CreatedTo = t
		}
	}

	list, err := h.usecase.List(c.Request.Context(), actor, filter)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(list))
}

func (h *QuotationHandler) Counts(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	counts, err := h.usecase.CountByStatus(c.Request.Context(), actor)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *QuotationHandler) History(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	entries, err := h.usecase.History(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(entries))
}

func (h *QuotationHandler) Assign(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.AssignQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.AssignBuyer(c.Request.Context(), actor, c.Param("id"), payload.BuyerID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) Respond(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RespondQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	input := usecase.RespondInput{
		Notes:            payload.Notes,
		QuoteDocument:    toDocumentInput(payload.QuoteDocument),
		ProposalDocument: toDocumentInput(payload.ProposalDocument),
	}
	for _, item := range payload.Items {
		input.Items = append(input.Items, usecase.ItemResponseInput{
			ItemID:      item.ItemID,
			UnitPrice:   item.UnitPrice,
			LeadTime:    item.LeadTime,
			Supplier:    item.Supplier,
			Notes:       item.Notes,
			CatalogCode: item.CatalogCode,
		})
	}

	q, err := h.usecase.Respond(c.Request.Context(), actor, c.Param("id"), input)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) Approve(c *gin.Context) {
	h.finalize(c, h.usecase.Approve)
}

func (h *QuotationHandler) Purchase(c *gin.Context) {
	h.finalize(c, h.usecase.Purchase)
}

// finalize covers the two sequential terminal-bound transitions (approve,
// purchase); both take an optional notes body.
func (h *QuotationHandler) finalize(
	c *gin.Context,
	op func(ctx context.Context, actor entities.Actor, id, notes string) (entities.Quotation, error),
) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.FinalizeQuotationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
			return
		}
	}

	q, err := op(c.Request.Context(), actor, c.Param("id"), payload.Notes)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) Cancel(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CancelQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Cancel(c.Request.Context(), actor, c.Param("id"), payload.ResolveReason())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) EditItems(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.EditItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.EditItems(c.Request.Context(), actor, c.Param("id"), toLineItemInputs(payload.Items), payload.ItemsToRemove)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) Delete(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuotationHandler) BackfillNumbers(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	migrated, err := h.usecase.BackfillNumbers(c.Request.Context(), actor)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.BackfillResponse{Migrated: migrated})
}

func toLineItemInputs(items []request.LineItemRequest) []usecase.LineItemInput {
	out := make([]usecase.LineItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.LineItemInput{
			ID:                it.ID,
			PartCode:          it.PartCode,
			Description:       it.Description,
			Quantity:          it.Quantity,
			Notes:             it.Notes,
			NeedsRegistration: it.NeedsRegistration,
		})
	}
	return out
}

func toDocumentInput(d *request.DocumentRequest) *usecase.DocumentInput {
	if d == nil {
		return nil
	}
	return &usecase.DocumentInput{StorageRef: d.StorageRef, FileName: d.FileName}
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrMissingClient),
		errors.Is(err, usecase.ErrInvalidRequestType),
		errors.Is(err, usecase.ErrNoItems),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrMissingDescription),
		errors.Is(err, usecase.ErrInvalidUnitPrice),
		errors.Is(err, usecase.ErrMissingReason):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuotationNotFound), errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusConflict), errors.Is(err, usecase.ErrItemsAwaitingCatalog):
		return pkg.NewDomainError("STATUS_CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrUploadFailed):
		return pkg.NewDomainErrorSimple("UPLOAD_FAILED", "Document upload could not be confirmed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
