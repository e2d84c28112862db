package interfaces

import (
	"context"

	"cotacao_service/internal/domain/entities"
)

// INotifier signals interested parties after a status change. Fire and
// forget: callers log failures and move on; a notification must never block
// or fail the transaction it follows.

type INotifier interface {
	NotifyStatusChange(ctx context.Context, q entities.Quotation, previous entities.QuotationStatus) error
}
