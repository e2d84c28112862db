package entities

import "time"

// QuotationStatus represents the lifecycle of a parts quotation (cotação).
//
// Domain notes:
//   - The cotacao-service is the source of truth for quotation state.
//   - `comprada` and `cancelada` are terminal: nothing transitions out of them.
//   - `em_cotacao` is entered when a buyer assumes the quotation.

type QuotationStatus string

const (
	QuotationStatusNovo       QuotationStatus = "novo"
	QuotationStatusEmCotacao  QuotationStatus = "em_cotacao"
	QuotationStatusRespondida QuotationStatus = "respondida"
	QuotationStatusAprovada   QuotationStatus = "aprovada_para_compra"
	QuotationStatusComprada   QuotationStatus = "comprada"
	QuotationStatusCancelada  QuotationStatus = "cancelada"
)

// IsTerminal reports whether the status is a sink of the lifecycle graph.
func (s QuotationStatus) IsTerminal() bool {
	return s == QuotationStatusComprada || s == QuotationStatusCancelada
}

// IsValid reports whether s is one of the known lifecycle statuses.
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusNovo, QuotationStatusEmCotacao, QuotationStatusRespondida,
		QuotationStatusAprovada, QuotationStatusComprada, QuotationStatusCancelada:
		return true
	}
	return false
}

// RequestType tells what the requester expects back from procurement.

type RequestType string

const (
	RequestTypeCotacao       RequestType = "cotacao"
	RequestTypeEspecificacao RequestType = "especificacao_tecnica"
	RequestTypeAmbos         RequestType = "ambos"
)

func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeCotacao, RequestTypeEspecificacao, RequestTypeAmbos:
		return true
	}
	return false
}

// DocumentRef points to a file persisted by the blob storage collaborator.
// StorageRef is the storage key; FileName is the display name shown to users.
type DocumentRef struct {
	StorageRef string `json:"storage_ref"`
	FileName   string `json:"file_name"`
}

// LineItem is one part entry inside a quotation. It shares the parent's
// lifecycle but is priced independently: UnitPrice stays nil until a buyer
// responds, and TotalPrice is always derived from Quantity * UnitPrice.
type LineItem struct {
	ID                string   `json:"id"`
	PartCode          string   `json:"part_code"`
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

// RecomputeTotal re-derives TotalPrice from Quantity * UnitPrice.
// An unpriced item keeps a nil total.
func (li *LineItem) RecomputeTotal() {
	if li.UnitPrice == nil {
		li.TotalPrice = nil
		return
	}
	total := float64(li.Quantity) * (*li.UnitPrice)
	li.TotalPrice = &total
}

// AwaitingCatalogCode reports whether the item was flagged for catalog
// registration and still has no catalog code filled in.
func (li LineItem) AwaitingCatalogCode() bool {
	return li.NeedsRegistration && li.CatalogCode == ""
}

// Quotation is the parts-procurement aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Items are embedded in the aggregate row, so every write replaces the
//     item set atomically.
//   - Number is assigned once by the sequence allocator and never changes.
//
// Each lifecycle timestamp is set exactly once, on the matching transition.
type Quotation struct {
	ID                 string          `json:"id"`
	Number             int64           `json:"number"`
	OrderNumber        string          `json:"order_number,omitempty"`
	BudgetNumber       string          `json:"budget_number,omitempty"`
	Client             string          `json:"client"`
	RequesterID        string          `json:"requester_id"`
	BuyerID            string          `json:"buyer_id,omitempty"`
	SupplierRef        string          `json:"supplier_ref,omitempty"`
	RequestType        RequestType     `json:"request_type"`
	Status             QuotationStatus `json:"status"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	QuoteDocument      *DocumentRef    `json:"quote_document,omitempty"`
	ProposalDocument   *DocumentRef    `json:"proposal_document,omitempty"`
	Items              []LineItem      `json:"items"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// ItemByID returns a pointer to the line item with the given id, or nil.
func (q *Quotation) ItemByID(id string) *LineItem {
	for i := range q.Items {
		if q.Items[i].ID == id {
			return &q.Items[i]
		}
	}
	return nil
}

// HasItemsAwaitingCatalog reports whether any line item still needs a catalog
// code before the quotation can be purchased.
func (q Quotation) HasItemsAwaitingCatalog() bool {
	for _, li := range q.Items {
		if li.AwaitingCatalogCode() {
			return true
		}
	}
	return false
}
