package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cotacao_service/internal/adapter/http/handlers/mocks"
	"cotacao_service/internal/usecase"
	"cotacao_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUploadHandler_GenerateUploadTarget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields fail binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		h := NewUploadHandler(uc)

		r := gin.New()
		r.POST("/v1/uploads", h.GenerateUploadTarget)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/v1/uploads", bytes.NewBufferString(`{"file_name":"quote.pdf"}`)), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("oversized document maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		h := NewUploadHandler(uc)

		r := gin.New()
		r.POST("/v1/uploads", h.GenerateUploadTarget)

		uc.EXPECT().GenerateUploadTarget(gomock.Any(), gomock.Any(), "quote.pdf", "application/pdf", int64(99999999)).
			Return(interfaces.UploadTarget{}, usecase.ErrDocumentTooLarge)

		body := `{"file_name":"quote.pdf","content_type":"application/pdf","size":99999999}`
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/v1/uploads", bytes.NewBufferString(body)), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		h := NewUploadHandler(uc)

		r := gin.New()
		r.POST("/v1/uploads", h.GenerateUploadTarget)

		uc.EXPECT().GenerateUploadTarget(gomock.Any(), gomock.Any(), "quote.pdf", "application/pdf", int64(2048)).
			Return(interfaces.UploadTarget{UploadURL: "https://bucket/presigned", StorageRef: "documents/x/quote.pdf"}, nil)

		body := `{"file_name":"quote.pdf","content_type":"application/pdf","size":2048}`
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/v1/uploads", bytes.NewBufferString(body)), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["storage_ref"] != "documents/x/quote.pdf" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestUploadHandler_DownloadURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unresolvable ref maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		h := NewUploadHandler(uc)

		r := gin.New()
		r.GET("/v1/uploads/url", h.DownloadURL)

		uc.EXPECT().DownloadURL(gomock.Any(), gomock.Any(), "").Return("", usecase.ErrUploadFailed)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/v1/uploads/url", nil), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		h := NewUploadHandler(uc)

		r := gin.New()
		r.GET("/v1/uploads/url", h.DownloadURL)

		uc.EXPECT().DownloadURL(gomock.Any(), gomock.Any(), "documents/x/quote.pdf").Return("https://bucket/read", nil)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/v1/uploads/url?storage_ref=documents%2Fx%2Fquote.pdf", nil), "user-1", "vendedor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
