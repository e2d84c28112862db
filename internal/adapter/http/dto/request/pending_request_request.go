package request

type CreatePendingRequestRequest struct {
	PartCode    string           `json:"part_code" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Brand       string           `json:"brand"`
	Notes       string           `json:"notes"`
	Document    *DocumentRequest `json:"document"`
}

type AssignPendingRequestRequest struct {
	HandlerID string `json:"handler_id"`
}

type RespondPendingRequestRequest struct {
	CatalogCode string `json:"catalog_code" binding:"required"`
	Notes       string `json:"notes"`
}

type RejectPendingRequestRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CancelPendingRequestRequest sets the cancellation overlay; the reason is
// optional here, unlike quotation cancellation.
type CancelPendingRequestRequest struct {
	Reason string `json:"reason"`
}
