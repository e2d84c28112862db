package response

import (
	"time"

	"cotacao_service/internal/domain/entities"
)

// PendingRequestResponse exposes both halves of the dual-flag cancellation:
// Status keeps the underlying workflow value, DisplayStatus is what screens
// render (the overlay wins when set).
type PendingRequestResponse struct {
	ID              string            `json:"id"`
	Number          int64             `json:"number"`
	PartCode        string            `json:"part_code"`
	Description     string            `json:"description"`
	Brand           string            `json:"brand,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	RequesterID     string            `json:"requester_id"`
	Status          string            `json:"status"`
	DisplayStatus   string            `json:"display_status"`
	Document        *DocumentResponse `json:"document,omitempty"`
	HandlerID       string            `json:"handler_id,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	CatalogPartRef  string            `json:"catalog_part_ref,omitempty"`
	CatalogCode     string            `json:"catalog_code,omitempty"`

	Cancelled          bool   `json:"cancelled"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	ConcludedAt *time.Time `json:"concluded_at,omitempty"`
}

func FromPendingRequest(p entities.PendingRequest) PendingRequestResponse {
	return PendingRequestResponse{
		ID:                 p.ID,
		Number:             p.Number,
		PartCode:           p.PartCode,
		Description:        p.Description,
		Brand:              p.Brand,
		Notes:              p.Notes,
		RequesterID:        p.RequesterID,
		Status:             string(p.Status),
		DisplayStatus:      p.DisplayStatus(),
		Document:           fromDocument(p.Document),
		HandlerID:          p.HandlerID,
		RejectionReason:    p.RejectionReason,
		CatalogPartRef:     p.CatalogPartRef,
		CatalogCode:        p.CatalogCode,
		Cancelled:          p.Cancelled,
		CancellationReason: p.CancellationReason,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
		AssignedAt:         p.AssignedAt,
		RespondedAt:        p.RespondedAt,
		ConcludedAt:        p.ConcludedAt,
	}
}

func FromPendingRequests(list []entities.PendingRequest) []PendingRequestResponse {
	out := make([]PendingRequestResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPendingRequest(p))
	}
	return out
}
