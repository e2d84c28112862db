package routes

import (
	"cotacao_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations      = "/quotations"
	PathPendingRequests = "/pending-requests"
	PathUploads         = "/uploads"
)

func addQuotationRoutes(rg *gin.RouterGroup, h *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", h.Create)
		quotations.GET("", h.List)
		quotations.GET("/counts", h.Counts)
		quotations.GET("/next-number", h.NextNumber)
		quotations.POST("/backfill-numbers", h.BackfillNumbers)
		quotations.GET("/:id", h.GetByID)
		quotations.GET("/:id/history", h.History)
		quotations.PATCH("/:id/assign", h.Assign)
		quotations.PATCH("/:id/respond", h.Respond)
		quotations.PATCH("/:id/approve", h.Approve)
		quotations.PATCH("/:id/purchase", h.Purchase)
		quotations.PATCH("/:id/cancel", h.Cancel)
		quotations.PUT("/:id/items", h.EditItems)
		quotations.DELETE("/:id", h.Delete)
	}
}

func addPendingRequestRoutes(rg *gin.RouterGroup, h *handlers.PendingRequestHandler) {
	pending := rg.Group(PathPendingRequests)
	{
		pending.POST("", h.Create)
		pending.GET("", h.List)
		pending.GET("/counts", h.Counts)
		pending.GET("/next-number", h.NextNumber)
		pending.POST("/backfill-numbers", h.BackfillNumbers)
		pending.GET("/:id", h.GetByID)
		pending.PATCH("/:id/assign", h.Assign)
		pending.PATCH("/:id/respond", h.Respond)
		pending.PATCH("/:id/conclude", h.Conclude)
		pending.PATCH("/:id/reject", h.Reject)
		pending.PATCH("/:id/cancel", h.Cancel)
		pending.DELETE("/:id", h.Delete)
	}
}

func addUploadRoutes(rg *gin.RouterGroup, h *handlers.UploadHandler) {
	uploads := rg.Group(PathUploads)
	{
		uploads.POST("", h.GenerateUploadTarget)
		uploads.GET("/url", h.DownloadURL)
	}
}
