package entities

import "time"

// PendingStatus is the lifecycle of a catalog pending-registration request.
// `completed` and `rejected` are terminal.

type PendingStatus string

const (
	PendingStatusPending    PendingStatus = "pending"
	PendingStatusInProgress PendingStatus = "in_progress"
	PendingStatusCompleted  PendingStatus = "completed"
	PendingStatusRejected   PendingStatus = "rejected"
)

func (s PendingStatus) IsTerminal() bool {
	return s == PendingStatusCompleted || s == PendingStatusRejected
}

func (s PendingStatus) IsValid() bool {
	switch s {
	case PendingStatusPending, PendingStatusInProgress, PendingStatusCompleted, PendingStatusRejected:
		return true
	}
	return false
}

// DisplayStatusCancelled is what the UI shows whenever the cancellation
// overlay is set, whatever the underlying status says.
const DisplayStatusCancelled = "cancelled"

// PendingRequest asks procurement to register a new part code in the external
// catalog. It is a separate aggregate from Quotation, though it may logically
// correspond to one of a quotation's line items.
//
// Cancellation is an overlay: Cancelled/CancellationReason are independent of
// Status, which keeps its last value as audit information. The two fields are
// deliberately not collapsed into one enum.
type PendingRequest struct {
	ID              string        `json:"id"`
	Number          int64         `json:"number"`
	PartCode        string        `json:"part_code"`
	Description     string        `json:"description"`
	Brand           string        `json:"brand,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	RequesterID     string        `json:"requester_id"`
	Status          PendingStatus `json:"status"`
	Document        *DocumentRef  `json:"document,omitempty"`
	HandlerID       string        `json:"handler_id,omitempty"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	CatalogPartRef  string        `json:"catalog_part_ref,omitempty"`
	CatalogCode     string        `json:"catalog_code,omitempty"`

	Cancelled          bool   `json:"cancelled"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	ConcludedAt *time.Time `json:"concluded_at,omitempty"`
}

// DisplayStatus projects the dual-flag state into what users see: the overlay
// wins, the underlying status stays inspectable.
func (p PendingRequest) DisplayStatus() string {
	if p.Cancelled {
		return DisplayStatusCancelled
	}
	return string(p.Status)
}

// Closed reports whether the request accepts no further workflow actions.
func (p PendingRequest) Closed() bool {
	return p.Cancelled || p.Status.IsTerminal()
}
