package interfaces

import (
	"context"
	"time"

	"cotacao_service/internal/domain/entities"
)

// QuotationFilter narrows quotation listings. Zero values mean "no filter".
type QuotationFilter struct {
	Status           entities.QuotationStatus
	RequesterID      string
	BuyerID          string
	Search           string
	CreatedFrom      time.Time
	CreatedTo        time.Time
	IncludeFinalized bool
}

// IQuotationRepository abstracts DynamoDB persistence for the Quotation
// aggregate and its append-only history.
//
// Atomicity contract:
//   - Create and Update take the full aggregate (items embedded) plus the
//     history entry describing the change, and must commit both as one
//     transaction. A status flip without its history entry must be impossible.
//   - History entries are append-only; no update/delete path exists.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation, h entities.HistoryEntry) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	Update(ctx context.Context, q entities.Quotation, h *entities.HistoryEntry) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter QuotationFilter) ([]entities.Quotation, error)
	CountByStatus(ctx context.Context, requesterID string) (map[entities.QuotationStatus]int, error)
	ListHistory(ctx context.Context, quotationID string) ([]entities.HistoryEntry, error)

	// Backfill support: rows created before sequential numbering existed.
	ListWithoutNumber(ctx context.Context) ([]entities.Quotation, error)
	SetNumberIfAbsent(ctx context.Context, id string, number int64) (bool, error)
}
