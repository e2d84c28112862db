package interfaces

import (
	"context"

	"cotacao_service/internal/domain/entities"
)

// PendingRequestFilter narrows pending-registration listings.
type PendingRequestFilter struct {
	Status      entities.PendingStatus
	RequesterID string
}

// IPendingRequestRepository abstracts DynamoDB persistence for catalog
// pending-registration requests.

type IPendingRequestRepository interface {
	Create(ctx context.Context, p entities.PendingRequest) (entities.PendingRequest, error)
	GetByID(ctx context.Context, id string) (entities.PendingRequest, error)
	Update(ctx context.Context, p entities.PendingRequest) (entities.PendingRequest, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PendingRequestFilter) ([]entities.PendingRequest, error)
	CountByStatus(ctx context.Context, requesterID string) (map[entities.PendingStatus]int, error)

	ListWithoutNumber(ctx context.Context) ([]entities.PendingRequest, error)
	SetNumberIfAbsent(ctx context.Context, id string, number int64) (bool, error)
}
