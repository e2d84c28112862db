package notification

import (
	"context"
	"log"

	"cotacao_service/internal/domain/entities"
	"cotacao_service/internal/usecase/interfaces"
)

// LogNotifier is the fire-and-forget notification collaborator. The real
// delivery channel (e-mail/WhatsApp) lives outside this service; here the
// signal is emitted to the log stream the integrations tail.
//
// It must never block or fail the transaction that precedes it, so it has no
// external dependency at all.

type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyStatusChange(_ context.Context, q entities.Quotation, previous entities.QuotationStatus) error {
	log.Printf("[notify][quotation] number=%d from=%s to=%s requester_id=%s buyer_id=%s",
		q.Number, previous, q.Status, q.RequesterID, q.BuyerID)
	return nil
}
