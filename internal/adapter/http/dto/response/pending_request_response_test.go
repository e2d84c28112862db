package response

import (
	"testing"
	"time"

	"cotacao_service/internal/domain/entities"
)

func TestFromPendingRequest(t *testing.T) {
	now := time.Now().UTC()
	p := entities.PendingRequest{
		ID:          "pr-1",
		Number:      11,
		PartCode:    "P-900",
		Description: "Bucha",
		RequesterID: "user-1",
		Status:      entities.PendingStatusInProgress,
		CatalogCode: "SK-1234",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromPendingRequest(p)
	if res.Status != "in_progress" || res.DisplayStatus != "in_progress" {
		t.Fatalf("unexpected statuses: %+v", res)
	}
	if res.CatalogCode != "SK-1234" {
		t.Fatalf("unexpected catalog code: %+v", res)
	}

	// The overlay changes the projection but leaves the raw status exposed.
	p.Cancelled = true
	p.CancellationReason = "no longer needed"
	res = FromPendingRequest(p)
	if res.Status != "in_progress" || res.DisplayStatus != entities.DisplayStatusCancelled {
		t.Fatalf("unexpected cancelled projection: %+v", res)
	}
	if !res.Cancelled || res.CancellationReason != "no longer needed" {
		t.Fatalf("unexpected overlay fields: %+v", res)
	}
}
