package entities

import "time"

// HistoryAction tags what produced a history entry.

type HistoryAction string

const (
	HistoryActionCriada        HistoryAction = "criada"
	HistoryActionEmCotacao     HistoryAction = "em_cotacao"
	HistoryActionRespondida    HistoryAction = "respondida"
	HistoryActionAprovada      HistoryAction = "aprovada"
	HistoryActionComprada      HistoryAction = "comprada"
	HistoryActionCancelada     HistoryAction = "cancelada"
	HistoryActionItensEditados HistoryAction = "itens_editados"
)

// HistoryEntry is one record of the append-only audit trail. Entries are
// written in the same transaction as the state change they describe and are
// never edited or deleted afterwards.
type HistoryEntry struct {
	ID             string          `json:"id"`
	QuotationID    string          `json:"quotation_id"`
	ActorID        string          `json:"actor_id"`
	Action         HistoryAction   `json:"action"`
	PreviousStatus QuotationStatus `json:"previous_status"`
	NewStatus      QuotationStatus `json:"new_status"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
