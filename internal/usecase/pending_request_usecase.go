package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cotacao_service/internal/domain/entities"
	"cotacao_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPendingRequestNotFound = errors.New("pending registration request not found")
	ErrPendingRequestClosed   = errors.New("pending registration request already closed")
	ErrMissingPartCode        = errors.New("missing part code")
	ErrMissingCatalogCode     = errors.New("missing catalog code")
	ErrMissingRejectionReason = errors.New("missing rejection reason")
)

type CreatePendingRequestInput struct {
	PartCode    string
	Description string
	Brand       string
	Notes       string
	Document    *DocumentInput
}

// IPendingRequestUseCase drives the catalog registration sub-workflow.
//
// It is a smaller state machine than the quotation one: pending ->
// in_progress -> completed|rejected, plus a cancellation overlay that never
// touches the underlying status.

type IPendingRequestUseCase interface {
	PeekNextNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, actor entities.Actor, input CreatePendingRequestInput) (entities.PendingRequest, error)
	Assign(ctx context.Context, actor entities.Actor, id, handlerID string) (entities.PendingRequest, error)
	Respond(ctx context.Context, actor entities.Actor, id, catalogCode, notes string) (entities.PendingRequest, error)
	Conclude(ctx context.Context, actor entities.Actor, id string) (entities.PendingRequest, error)
	Reject(ctx context.Context, actor entities.Actor, id, reason string) (entities.PendingRequest, error)
	Cancel(ctx context.Context, actor entities.Actor, id, reason string) (entities.PendingRequest, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.PendingRequest, error)
	List(ctx context.Context, actor entities.Actor, filter interfaces.PendingRequestFilter) ([]entities.PendingRequest, error)
	CountByStatus(ctx context.Context, actor entities.Actor) (map[entities.PendingStatus]int, error)
	BackfillNumbers(ctx context.Context, actor entities.Actor) (int, error)
}

type PendingRequestUseCase struct {
	repo      interfaces.IPendingRequestRepository
	sequences interfaces.ISequenceRepository
	storage   interfaces.IFileStorage
}

var _ IPendingRequestUseCase = (*PendingRequestUseCase)(nil)

func NewPendingRequestUseCase(
	repo interfaces.IPendingRequestRepository,
	sequences interfaces.ISequenceRepository,
	storage interfaces.IFileStorage,
) *PendingRequestUseCase {
	return &PendingRequestUseCase{repo: repo, sequences: sequences, storage: storage}
}

func (u *PendingRequestUseCase) PeekNextNumber(ctx context.Context) (int64, error) {
	return u.sequences.PeekNextNumber(ctx, interfaces.SequencePendingRequests)
}

func (u *PendingRequestUseCase) Create(ctx context.Context, actor entities.Actor, input CreatePendingRequestInput) (entities.PendingRequest, error) {
	if err := validateActor(actor); err != nil {
		return entities.PendingRequest{}, err
	}
	if strings.TrimSpace(input.PartCode) == "" {
		return entities.PendingRequest{}, ErrMissingPartCode
	}
	if strings.TrimSpace(input.Description) == "" {
		return entities.PendingRequest{}, ErrMissingDescription
	}

	var doc *entities.DocumentRef
	if input.Document != nil {
		ref := strings.TrimSpace(input.Document.StorageRef)
		if ref == "" {
			return entities.PendingRequest{}, ErrUploadFailed
		}
		ok, err := u.storage.Exists(ctx, ref)
		if err != nil || !ok {
			return entities.PendingRequest{}, ErrUploadFailed
		}
		doc = &entities.DocumentRef{StorageRef: ref, FileName: strings.TrimSpace(input.Document.FileName)}
	}

	number, err := u.sequences.AllocateNumber(ctx, interfaces.SequencePendingRequests)
	if err != nil {
		return entities.PendingRequest{}, err
	}

	now := time.Now().UTC()
	p := entities.PendingRequest{
		ID:          uuid.NewString(),
		Number:      number,
		PartCode:    strings.TrimSpace(input.PartCode),
		Description: strings.TrimSpace(input.Description),
		Brand:       strings.TrimSpace(input.Brand),
		Notes:       strings.TrimSpace(input.Notes),
		RequesterID: actor.ID,
		Status:      entities.PendingStatusPending,
		Document:    doc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PendingRequestUseCase) Assign(ctx context.Context, actor entities.Actor, id, handlerID string) (entities.PendingRequest, error) {
	p, err := u.loadOpen(ctx, actor, id)
	if err != nil {
		return entities.PendingRequest{}, err
	}
	if !actor.Role.IsProcurement() {
		return entities.PendingRequest{}, ErrNotAuthorized
	}

	handlerID = strings.TrimSpace(handlerID)
	if handlerID == "" {
		handlerID = actor.ID
	}

	now := time.Now().UTC()
	p.HandlerID = handlerID
	p.Status = entities.PendingStatusInProgress
	if p.AssignedAt == nil {
		p.AssignedAt = &now
	}
	p.UpdatedAt = now
	return u.repo.Update(ctx, p)
}

// Respond records the catalog code issued by the external ERP. It is an
// informational action, deliberately separate from Conclude: the status does
// not move here.
func (u *PendingRequestUseCase) Respond(ctx context.Context, actor entities.Actor, id, catalogCode, notes string) (entities.PendingRequest, error) {
	p, err := u.loadOpen(ctx, actor, id)
	if err != nil {
		return entities.PendingRequest{}, err
	}
	if !actor.Role.IsProcurement() {
		return entities.PendingRequest{}, ErrNotAuthorized
	}
	catalogCode = strings.TrimSpace(catalogCode)
	if catalogCode == "" {
		return entities.PendingRequest{}, ErrMissingCatalogCode
	}

	now := time.Now().UTC()
	p.CatalogCode = catalogCode
	if notes = strings.TrimSpace(notes); notes != "" {
		p.Notes = notes
	}
	if p.HandlerID == "" {
		p.HandlerID = actor.ID
	}
	if p.RespondedAt == nil {
		p.RespondedAt = &now
	}
	p.UpdatedAt = now
	return u.repo.Update(ctx, p)
}

// Conclude closes the request as completed. A catalog code must already have
// been recorded by Respond; concluding an unanswered request is a conflict.
func (u *PendingRequestUseCase) Conclude(ctx context.Context, actor entities.Actor, id string) (entities.PendingRequest, error) {
	p, err := u.loadOpen(ctx, actor, id)
	if err != nil {
		return entities.PendingRequest{}, err
	}
	if !actor.Role.IsProcurement() {
		return entities.PendingRequest{}, ErrNotAuthorized
	}
	if p.CatalogCode == "" {
		return entities.PendingRequest{}, ErrMissingCatalogCode
	}

	now := time.Now().UTC()
	p.Status = entities.PendingStatusCompleted
	p.ConcludedAt = &now
	p.UpdatedAt = now
	return u.repo.Update(ctx, p)
}

func (u *PendingRequestUseCase) Reject(ctx context.Context, actor entities.Actor, id, reason string) (entities.PendingRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.PendingRequest{}, ErrMissingRejectionReason
	}

	p, err := u.loadOpen(ctx, actor, id)
	if err != nil {
		return entities.PendingRequest{}, err
	}
	if !actor.Role.IsProcurement() {
		return entities.PendingRequest{}, ErrNotAuthorized
	}

	now := time.Now().UTC()
	p.Status = entities.PendingStatusRejected
	p.RejectionReason = reason
	p.ConcludedAt = &now
	p.UpdatedAt = now
	return u.repo.Update(ctx, p)
}

// Cancel sets the overlay. The underlying status keeps its last value as
// audit information; DisplayStatus projects the overlay for the UI.
func (u *PendingRequestUseCase) Cancel(ctx context.Context, actor entities.Actor, id, reason string) (entities.PendingRequest, error) {
	p, err := u.loadOpen(ctx, actor, id)
	if err != nil {
		return entities.PendingRequest{}, err
	}
	if !actor.Role.IsProcurement() && actor.ID != p.RequesterID {
		return entities.PendingRequest{}, ErrNotAuthorized
	}

	p.Cancelled = true
	p.CancellationReason = strings.TrimSpace(reason)
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

func (u *PendingRequestUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	if actor.Role != entities.RoleAdmin {
		return ErrNotAuthorized
	}
	p, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPendingRequestNotFound
	}
	return u.repo.Delete(ctx, p.ID)
}

func (u *PendingRequestUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.PendingRequest, error) {
	return u.load(ctx, actor, id)
}

func (u *PendingRequestUseCase) List(ctx context.Context, actor entities.Actor, filter interfaces.PendingRequestFilter) ([]entities.PendingRequest, error) {
	if err := validateActor(actor); err != nil {
		return nil, err
	}
	if !actor.Role.IsProcurement() {
		filter.RequesterID = actor.ID
	}
	return u.repo.List(ctx, filter)
}

// CountByStatus scopes like the listing: procurement roles count everything,
// everyone else counts only their own requests.
func (u *PendingRequestUseCase) CountByStatus(ctx context.Context, actor entities.Actor) (map[entities.PendingStatus]int, error) {
	if err := validateActor(actor); err != nil {
		return nil, err
	}
	requesterID := ""
	if !actor.Role.IsProcurement() {
		requesterID = actor.ID
	}
	return u.repo.CountByStatus(ctx, requesterID)
}

func (u *PendingRequestUseCase) BackfillNumbers(ctx context.Context, actor entities.Actor) (int, error) {
	if err := validateActor(actor); err != nil {
		return 0, err
	}
	if actor.Role != entities.RoleAdmin {
		return 0, ErrNotAuthorized
	}

	missing, err := u.repo.ListWithoutNumber(ctx)
	if err != nil {
		return 0, err
	}

	migrated := 0
	for _, p := range missing {
		number, err := u.sequences.AllocateNumber(ctx, interfaces.SequencePendingRequests)
		if err != nil {
			return migrated, err
		}
		set, err := u.repo.SetNumberIfAbsent(ctx, p.ID, number)
		if err != nil {
			return migrated, err
		}
		if set {
			migrated++
		}
	}
	return migrated, nil
}

func (u *PendingRequestUseCase) load(ctx context.Context, actor entities.Actor, id string) (entities.PendingRequest, error) {
	if err := validateActor(actor); err != nil {
		return entities.PendingRequest{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PendingRequest{}, ErrPendingRequestNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PendingRequest{}, err
	}
	if p.ID == "" {
		return entities.PendingRequest{}, ErrPendingRequestNotFound
	}
	return p, nil
}

func (u *PendingRequestUseCase) loadOpen(ctx context.Context, actor entities.Actor, id string) (entities.PendingRequest, error) {
	p, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.PendingRequest{}, err
	}
	if p.Closed() {
		return entities.PendingRequest{}, ErrPendingRequestClosed
	}
	return p, nil
}
