package request

import "strings"

// LineItemRequest carries one item on creation and edit payloads. An empty
// ID means "insert this item"; a filled ID targets an existing one.
type LineItemRequest struct {
	ID                string `json:"id"`
	PartCode          string `json:"part_code"`
	Description       string `json:"description" binding:"required"`
	Quantity          int    `json:"quantity" binding:"required"`
	Notes             string `json:"notes"`
	NeedsRegistration bool   `json:"needs_registration"`
}

type CreateQuotationRequest struct {
	Client       string            `json:"client" binding:"required"`
	OrderNumber  string            `json:"order_number"`
	BudgetNumber string            `json:"budget_number"`
	SupplierRef  string            `json:"supplier_ref"`
	RequestType  string            `json:"request_type" binding:"required"`
	Notes        string            `json:"notes"`
	Items        []LineItemRequest `json:"items" binding:"required,min=1"`
}

// DocumentRequest references a file already uploaded through the upload
// endpoint. StorageRef is the key returned with the upload target.
type DocumentRequest struct {
	StorageRef string `json:"storage_ref" binding:"required"`
	FileName   string `json:"file_name"`
}

// ItemResponseRequest answers one line item. Pointer fields distinguish
// "not answered" from explicit values; the response may cover any subset of
// the items.
type ItemResponseRequest struct {
	ItemID      string   `json:"item_id" binding:"required"`
	UnitPrice   *float64 `json:"unit_price"`
	LeadTime    *string  `json:"lead_time"`
	Supplier    *string  `json:"supplier"`
	Notes       *string  `json:"notes"`
	CatalogCode *string  `json:"catalog_code"`
}

type RespondQuotationRequest struct {
	Items            []ItemResponseRequest `json:"items"`
	Notes            string                `json:"notes"`
	QuoteDocument    *DocumentRequest      `json:"quote_document"`
	ProposalDocument *DocumentRequest      `json:"proposal_document"`
}

type AssignQuotationRequest struct {
	BuyerID string `json:"buyer_id"`
}

type FinalizeQuotationRequest struct {
	Notes string `json:"notes"`
}

type CancelQuotationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (r CancelQuotationRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}

type EditItemsRequest struct {
	Items         []LineItemRequest `json:"items"`
	ItemsToRemove []string          `json:"items_to_remove"`
}
