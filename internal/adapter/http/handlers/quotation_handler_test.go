package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cotacao_service/internal/adapter/http/handlers/mocks"
	"cotacao_service/internal/domain/entities"
	"cotacao_service/internal/usecase"
	"cotacao_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func withIdentity(req *http.Request, id, role string) *http.Request {
	req.Header.Set("X-User-ID", id)
	req.Header.Set("X-User-Role", role)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestQuotationHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.Create)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{}`)), "user-1", "superuser")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.Create)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{")), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty items list fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.Create)

		body := `{"client":"Oficina Silva","request_type":"cotacao","items":[]}`
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body)), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.Create)

		uc.EXPECT().Create(gomock.Any(), entities.Actor{ID: "user-1", Role: entities.RoleVendedor}, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, input usecase.CreateQuotationInput) (entities.Quotation, error) {
				if input.Client != "Oficina Silva" || len(input.Items) != 1 {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.Quotation{ID: "q-1", Number: 42, Status: entities.QuotationStatusNovo, Client: input.Client}, nil
			},
		)

		body := `{"client":"Oficina Silva","request_type":"cotacao","items":[{"description":"Rolamento 6204","quantity":2,"part_code":"P-100"}]}`
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body)), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "q-1" || resp["status"] != "novo" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("respond maps authorization failures to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/respond", h.Respond)

		uc.EXPECT().Respond(gomock.Any(), gomock.Any(), "q-1", gomock.Any()).Return(entities.Quotation{}, usecase.ErrNotAuthorized)

		req := withIdentity(httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/respond", bytes.NewBufferString(`{}`)), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("approve without a body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/approve", h.Approve)

		uc.EXPECT().Approve(gomock.Any(), gomock.Any(), "q-1", "").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusAprovada}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/approve", nil), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("purchase conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/purchase", h.Purchase)

		uc.EXPECT().Purchase(gomock.Any(), gomock.Any(), "q-1", "").Return(entities.Quotation{}, usecase.ErrItemsAwaitingCatalog)

		req := withIdentity(httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/purchase", nil), "buyer-1", "compras")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel requires a reason in the payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/cancel", h.Cancel)

		req := withIdentity(httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/cancel", bytes.NewBufferString(`{}`)), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/cancel", h.Cancel)

		uc.EXPECT().Cancel(gomock.Any(), gomock.Any(), "q-1", "duplicate").Return(entities.Quotation{
			ID:                 "q-1",
			Status:             entities.QuotationStatusCancelada,
			CancellationReason: "duplicate",
		}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/cancel", bytes.NewBufferString(`{"reason":"duplicate"}`)), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "cancelada" || resp["cancellation_reason"] != "duplicate" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown quotation maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "ghost").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/v1/quotations/ghost", nil), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotations/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}, "q-1").Return(nil)

		req := withIdentity(httptest.NewRequest(http.MethodDelete, "/v1/quotations/q-1", nil), "admin-1", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query filters reach the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, filter interfaces.QuotationFilter) ([]entities.Quotation, error) {
				if filter.Status != entities.QuotationStatusNovo || filter.Search != "rolamento" || !filter.IncludeFinalized {
					t.Fatalf("unexpected filter: %+v", filter)
				}
				return []entities.Quotation{{ID: "q-1"}}, nil
			},
		)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/v1/quotations?status=novo&search=rolamento&include_finalized=true", nil), "buyer-1", "compras")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapQuotationError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrMissingClient, http.StatusBadRequest},
		{usecase.ErrInvalidQuantity, http.StatusBadRequest},
		{usecase.ErrMissingReason, http.StatusBadRequest},
		{usecase.ErrNotAuthorized, http.StatusForbidden},
		{usecase.ErrQuotationNotFound, http.StatusNotFound},
		{usecase.ErrLineItemNotFound, http.StatusNotFound},
		{usecase.ErrStatusConflict, http.StatusConflict},
		{usecase.ErrItemsAwaitingCatalog, http.StatusConflict},
		{usecase.ErrUploadFailed, http.StatusBadGateway},
		{errors.New("ddb exploded"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapQuotationError(tc.err); got.HTTPStatus != tc.code {
			t.Errorf("mapQuotationError(%v) = %d, want %d", tc.err, got.HTTPStatus, tc.code)
		}
	}
}
