package interfaces

import "context"

// Sequence names, one counter per aggregate type.
const (
	SequenceQuotations      = "quotations"
	SequencePendingRequests = "pending_requests"
)

// ISequenceRepository issues unique, monotonically increasing numbers per
// aggregate type.
//
// AllocateNumber is the only source of truth for assigned numbers: it is an
// atomic increment-and-fetch and is called inside the creation flow.
// PeekNextNumber is a display-only hint; it never reserves anything and may
// race with concurrent allocations.

type ISequenceRepository interface {
	AllocateNumber(ctx context.Context, name string) (int64, error)
	PeekNextNumber(ctx context.Context, name string) (int64, error)
}
