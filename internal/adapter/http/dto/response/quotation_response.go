package response

import (
	"time"

	"cotacao_service/internal/domain/entities"
)

type DocumentResponse struct {
	StorageRef string `json:"storage_ref"`
	FileName   string `json:"file_name,omitempty"`
}

type LineItemResponse struct {
	ID                string   `json:"id"`
	PartCode          string   `json:"part_code,omitempty"`
	Description       string   `json:"description"`
	Quantity          int      `json:"quantity"`
	UnitPrice         *float64 `json:"unit_price,omitempty"`
	TotalPrice        *float64 `json:"total_price,omitempty"`
	LeadTime          string   `json:"lead_time,omitempty"`
	Supplier          string   `json:"supplier,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	NeedsRegistration bool     `json:"needs_registration"`
	CatalogCode       string   `json:"catalog_code,omitempty"`
}

type QuotationResponse struct {
	ID                 string             `json:"id"`
	Number             int64              `json:"number"`
	OrderNumber        string             `json:"order_number,omitempty"`
	BudgetNumber       string             `json:"budget_number,omitempty"`
	Client             string             `json:"client"`
	RequesterID        string             `json:"requester_id"`
	BuyerID            string             `json:"buyer_id,omitempty"`
	SupplierRef        string             `json:"supplier_ref,omitempty"`
	RequestType        string             `json:"request_type"`
	Status             string             `json:"status"`
	CancellationReason string             `json:"cancellation_reason,omitempty"`
	Notes              string             `json:"notes,omitempty"`
	QuoteDocument      *DocumentResponse  `json:"quote_document,omitempty"`
	ProposalDocument   *DocumentResponse  `json:"proposal_document,omitempty"`
	Items              []LineItemResponse `json:"items"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	RespondedAt        *time.Time         `json:"responded_at,omitempty"`
	ApprovedAt         *time.Time         `json:"approved_at,omitempty"`
	PurchasedAt        *time.Time         `json:"purchased_at,omitempty"`
	CancelledAt        *time.Time         `json:"cancelled_at,omitempty"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	items := make([]LineItemResponse, 0, len(q.Items))
	for _, li := range q.Items {
		items = append(items, LineItemResponse{
			ID:                li.ID,
			PartCode:          li.PartCode,
			Description:       li.Description,
			Quantity:          li.Quantity,
			UnitPrice:         li.UnitPrice,
			TotalPrice:        li.TotalPrice,
			LeadTime:          li.LeadTime,
			Supplier:          li.Supplier,
			Notes:             li.Notes,
			NeedsRegistration: li.NeedsRegistration,
			CatalogCode:       li.CatalogCode,
		})
	}
	return QuotationResponse{
		ID:                 q.ID,
		Number:             q.Number,
		OrderNumber:        q.OrderNumber,
		BudgetNumber:       q.BudgetNumber,
		Client:             q.Client,
		RequesterID:        q.RequesterID,
		BuyerID:            q.BuyerID,
		SupplierRef:        q.SupplierRef,
		RequestType:        string(q.RequestType),
		Status:             string(q.Status),
		CancellationReason: q.CancellationReason,
		Notes:              q.Notes,
		QuoteDocument:      fromDocument(q.QuoteDocument),
		ProposalDocument:   fromDocument(q.ProposalDocument),
		Items:              items,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
		RespondedAt:        q.RespondedAt,
		ApprovedAt:         q.ApprovedAt,
		PurchasedAt:        q.PurchasedAt,
		CancelledAt:        q.CancelledAt,
	}
}

func FromQuotations(list []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(list))
	for _, q := range list {
		out = append(out, FromQuotation(q))
	}
	return out
}

type HistoryEntryResponse struct {
	ID             string    `json:"id"`
	QuotationID    string    `json:"quotation_id"`
	ActorID        string    `json:"actor_id"`
	Action         string    `json:"action"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromHistory(entries []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, HistoryEntryResponse{
			ID:             h.ID,
			QuotationID:    h.QuotationID,
			ActorID:        h.ActorID,
			Action:         string(h.Action),
			PreviousStatus: string(h.PreviousStatus),
			NewStatus:      string(h.NewStatus),
			Notes:          h.Notes,
			CreatedAt:      h.CreatedAt,
		})
	}
	return out
}

type NextNumberResponse struct {
	NextNumber int64 `json:"next_number"`
}

type BackfillResponse struct {
	Migrated int `json:"migrated"`
}

func fromDocument(d *entities.DocumentRef) *DocumentResponse {
	if d == nil {
		return nil
	}
	return &DocumentResponse{StorageRef: d.StorageRef, FileName: d.FileName}
}
