package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cotacao_service/internal/domain/entities"
	"cotacao_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrLineItemNotFound  = errors.New("line item not found")

	ErrNotAuthorized  = errors.New("actor not authorized for this action")
	ErrStatusConflict = errors.New("action not allowed in current status")

	ErrInvalidActor         = errors.New("invalid actor")
	ErrMissingClient        = errors.New("missing client name")
	ErrInvalidRequestType   = errors.New("invalid request type")
	ErrNoItems              = errors.New("quotation must keep at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be greater than zero")
	ErrMissingDescription   = errors.New("missing item description")
	ErrInvalidUnitPrice     = errors.New("unit price must be greater than zero")
	ErrMissingReason        = errors.New("missing cancellation reason")
	ErrItemsAwaitingCatalog = errors.New("items still waiting for catalog registration")

	ErrUploadFailed = errors.New("document upload not confirmed by storage")
)

// LineItemInput carries item data for creation and edits. An empty ID means
// insert; a non-empty ID targets an existing item.
type LineItemInput struct {
	ID                string
	PartCode          string
	Description       string
	Quantity          int
	Notes             string
	NeedsRegistration bool
}

type CreateQuotationInput struct {
	Client       string
	OrderNumber  string
	BudgetNumber string
	SupplierRef  string
	RequestType  entities.RequestType
	Notes        string
	Items        []LineItemInput
}

// ItemResponseInput is one per-line pricing answer. Nil fields are "not
// answered" and leave the stored value untouched; partial responses are
// explicitly allowed.
type ItemResponseInput struct {
	ItemID      string
	UnitPrice   *float64
	LeadTime    *string
	Supplier    *string
	Notes       *string
	CatalogCode *string
}

type DocumentInput struct {
	StorageRef string
	FileName   string
}

type RespondInput struct {
	Items            []ItemResponseInput
	Notes            string
	QuoteDocument    *DocumentInput
	ProposalDocument *DocumentInput
}

// IQuotationUseCase exposes the quotation lifecycle operations.
//
// Status graph: novo -> em_cotacao -> respondida -> aprovada_para_compra ->
// comprada, with cancelada reachable from every non-terminal status. Every
// status change commits together with exactly one history entry.

type IQuotationUseCase interface {
	PeekNextNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, actor entities.Actor, input CreateQuotationInput) (entities.Quotation, error)
	AssignBuyer(ctx context.Context, actor entities.Actor, id, buyerID string) (entities.Quotation, error)
	Respond(ctx context.Context, actor entities.Actor, id string, input RespondInput) (entities.Quotation, error)
	Approve(ctx context.Context, actor entities.Actor, id, notes string) (entities.Quotation, error)
	Purchase(ctx context.Context, actor entities.Actor, id, notes string) (entities.Quotation, error)
	Cancel(ctx context.Context, actor entities.Actor, id, reason string) (entities.Quotation, error)
	EditItems(ctx context.Context, actor entities.Actor, id string, items []LineItemInput, itemsToRemove []string) (entities.Quotation, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Quotation, error)
	List(ctx context.Context, actor entities.Actor, filter interfaces.QuotationFilter) ([]entities.Quotation, error)
	CountByStatus(ctx context.Context, actor entities.Actor) (map[entities.QuotationStatus]int, error)
	History(ctx context.Context, actor entities.Actor, id string) ([]entities.HistoryEntry, error)
	BackfillNumbers(ctx context.Context, actor entities.Actor) (int, error)
}

type QuotationUseCase struct {
	repo      interfaces.IQuotationRepository
	sequences interfaces.ISequenceRepository
	storage   interfaces.IFileStorage
	notifier  interfaces.INotifier
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	sequences interfaces.ISequenceRepository,
	storage interfaces.IFileStorage,
	notifier interfaces.INotifier,
) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, sequences: sequences, storage: storage, notifier: notifier}
}

func (u *QuotationUseCase) PeekNextNumber(ctx context.Context) (int64, error) {
	return u.sequences.PeekNextNumber(ctx, interfaces.SequenceQuotations)
}

func (u *QuotationUseCase) Create(ctx context.Context, actor entities.Actor, input CreateQuotationInput) (entities.Quotation, error) {
	if err := validateActor(actor); err != nil {
		return entities.Quotation{}, err
	}
	if strings.TrimSpace(input.Client) == "" {
		return entities.Quotation{}, ErrMissingClient
	}
	if !input.RequestType.IsValid() {
		return entities.Quotation{}, ErrInvalidRequestType
	}
	if len(input.Items) == 0 {
		return entities.Quotation{}, ErrNoItems
	}

	items := make([]entities.LineItem, 0, len(input.Items))
	for _, in := range input.Items {
		li, err := newLineItem(in)
		if err != nil {
			return entities.Quotation{}, err
		}
		items = append(items, li)
	}

	// The number is assigned here, inside the creation flow, never from a peek.
	number, err := u.sequences.AllocateNumber(ctx, interfaces.SequenceQuotations)
	if err != nil {
		return entities.Quotation{}, err
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:           uuid.NewString(),
		Number:       number,
		OrderNumber:  strings.TrimSpace(input.OrderNumber),
		BudgetNumber: strings.TrimSpace(input.BudgetNumber),
		Client:       strings.TrimSpace(input.Client),
		RequesterID:  actor.ID,
		SupplierRef:  strings.TrimSpace(input.SupplierRef),
		RequestType:  input.RequestType,
		Status:       entities.QuotationStatusNovo,
		Notes:        strings.TrimSpace(input.Notes),
		Items:        items,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	h := newHistoryEntry(q, actor, entities.HistoryActionCriada, "", q.Status, "")
	return u.repo.Create(ctx, q, h)
}

func (u *QuotationUseCase) AssignBuyer(ctx context.Context, actor entities.Actor, id, buyerID string) (entities.Quotation, error) {
	q, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := authorize(q, entities.ActionAssign, actor); err != nil {
		return entities.Quotation{}, err
	}

	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		buyerID = actor.ID
	}

	prev := q.Status
	q.BuyerID = buyerID
	q.Status = entities.QuotationStatusEmCotacao
	q.UpdatedAt = time.Now().UTC()

	h := newHistoryEntry(q, actor, entities.HistoryActionEmCotacao, prev, q.Status, "")
	return u.commit(ctx, q, &h, prev)
}

func (u *QuotationUseCase) Respond(ctx context.Context, actor entities.Actor, id string, input RespondInput) (entities.Quotation, error) {
	q, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := authorize(q, entities.ActionRespond, actor); err != nil {
		return entities.Quotation{}, err
	}

	for _, resp := range input.Items {
		li := q.ItemByID(strings.TrimSpace(resp.ItemID))
		if li == nil {
			return entities.Quotation{}, ErrLineItemNotFound
		}
		if resp.UnitPrice != nil {
			if *resp.UnitPrice <= 0 {
				return entities.Quotation{}, ErrInvalidUnitPrice
			}
			price := *resp.UnitPrice
			li.UnitPrice = &price
			li.RecomputeTotal()
		}
		if resp.LeadTime != nil {
			li.LeadTime = strings.TrimSpace(*resp.LeadTime)
		}
		if resp.Supplier != nil {
			li.Supplier = strings.TrimSpace(*resp.Supplier)
		}
		if resp.Notes != nil {
			li.Notes = strings.TrimSpace(*resp.Notes)
		}
		if resp.CatalogCode != nil {
			li.CatalogCode = strings.TrimSpace(*resp.CatalogCode)
		}
	}

	// Documents are confirmed against storage before anything is written, so
	// a failed upload can never leave a responded quotation without its file.
	quoteDoc, err := u.confirmDocument(ctx, input.QuoteDocument)
	if err != nil {
		return entities.Quotation{}, err
	}
	proposalDoc, err := u.confirmDocument(ctx, input.ProposalDocument)
	if err != nil {
		return entities.Quotation{}, err
	}
	if quoteDoc != nil {
		q.QuoteDocument = quoteDoc
	}
	if proposalDoc != nil {
		q.ProposalDocument = proposalDoc
	}

	now := time.Now().UTC()
	prev := q.Status
	if q.BuyerID == "" {
		q.BuyerID = actor.ID
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		q.Notes = notes
	}
	q.Status = entities.QuotationStatusRespondida
	if q.RespondedAt == nil {
		q.RespondedAt = &now
	}
	q.UpdatedAt = now

	h := newHistoryEntry(q, actor, entities.HistoryActionRespondida, prev, q.Status, strings.TrimSpace(input.Notes))
	return u.commit(ctx, q, &h, prev)
}

func (u *QuotationUseCase) Approve(ctx context.Context, actor entities.Actor, id, notes string) (entities.Quotation, error) {
	q, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := authorize(q, entities.ActionApprove, actor); err != nil {
		return entities.Quotation{}, err
	}

	now := time.Now().UTC()
	prev := q.Status
	q.Status = entities.QuotationStatusAprovada
	q.ApprovedAt = &now
	q.UpdatedAt = now

	h := newHistoryEntry(q, actor, entities.HistoryActionAprovada, prev, q.Status, strings.TrimSpace(notes))
	return u.commit(ctx, q, &h, prev)
}

func (u *QuotationUseCase) Purchase(ctx context.Context, actor entities.Actor, id, notes string) (entities.Quotation, error) {
	q, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := authorize(q, entities.ActionPurchase, actor); err != nil {
		return entities.Quotation{}, err
	}
	if q.HasItemsAwaitingCatalog() {
		return entities.Quotation{}, ErrItemsAwaitingCatalog
	}

	now := time.Now().UTC()
	prev := q.Status
	q.Status = entities.QuotationStatusComprada
	q.PurchasedAt = &now
	q.UpdatedAt = now

	h := newHistoryEntry(q, actor, entities.HistoryActionComprada, prev, q.Status, strings.TrimSpace(notes))
	return u.commit(ctx, q, &h, prev)
}

func (u *QuotationUseCase) Cancel(ctx context.Context, actor entities.Actor, id, reason string) (entities.Quotation, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Quotation{}, ErrMissingReason
	}

	q, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := authorize(q, entities.ActionCancel, actor); err != nil {
		return entities.Quotation{}, err
	}

	now := time.Now().UTC()
	prev := q.Status
	q.Status = entities.QuotationStatusCancelada
	q.CancellationReason = reason
	q.CancelledAt = &now
	q.UpdatedAt = now

	h := newHistoryEntry(q, actor, entities.HistoryActionCancelada, prev, q.Status, reason)
	return u.commit(ctx, q, &h, prev)
}

func (u *QuotationUseCase) EditItems(ctx context.Context, actor entities.Actor, id string, items []LineItemInput, itemsToRemove []string) (entities.Quotation, error) {
	q, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := authorize(q, entities.ActionEdit, actor); err != nil {
		return entities.Quotation{}, err
	}

	for _, in := range items {
		if strings.TrimSpace(in.ID) == "" {
			li, err := newLineItem(in)
			if err != nil {
				return entities.Quotation{}, err
			}
			q.Items = append(q.Items, li)
			continue
		}
		li := q.ItemByID(strings.TrimSpace(in.ID))
		if li == nil {
			return entities.Quotation{}, ErrLineItemNotFound
		}
		if in.Quantity <= 0 {
			return entities.Quotation{}, ErrInvalidQuantity
		}
		if strings.TrimSpace(in.Description) == "" {
			return entities.Quotation{}, ErrMissingDescription
		}
		li.PartCode = strings.TrimSpace(in.PartCode)
		li.Description = strings.TrimSpace(in.Description)
		li.Quantity = in.Quantity
		li.Notes = strings.TrimSpace(in.Notes)
		li.NeedsRegistration = in.NeedsRegistration
		li.RecomputeTotal()
	}

	for _, removeID := range itemsToRemove {
		removeID = strings.TrimSpace(removeID)
		idx := -1
		for i := range q.Items {
			if q.Items[i].ID == removeID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return entities.Quotation{}, ErrLineItemNotFound
		}
		q.Items = append(q.Items[:idx], q.Items[idx+1:]...)
	}

	if len(q.Items) == 0 {
		return entities.Quotation{}, ErrNoItems
	}

	prev := q.Status
	q.UpdatedAt = time.Now().UTC()

	// Editing never moves the status, but it is still auditable.
	h := newHistoryEntry(q, actor, entities.HistoryActionItensEditados, prev, q.Status, "")
	updated, err := u.repo.Update(ctx, q, &h)
	if err != nil {
		return entities.Quotation{}, err
	}
	return updated, nil
}

// Delete is the irreversible hard delete: the aggregate, its items and its
// whole history are gone. Cancellation is the auditable path; this one is
// restricted to admin.
func (u *QuotationUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	if actor.Role != entities.RoleAdmin {
		return ErrNotAuthorized
	}
	q, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuotationNotFound
	}
	return u.repo.Delete(ctx, q.ID)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Quotation, error) {
	return u.load(ctx, actor, id)
}

func (u *QuotationUseCase) List(ctx context.Context, actor entities.Actor, filter interfaces.QuotationFilter) ([]entities.Quotation, error) {
	if err := validateActor(actor); err != nil {
		return nil, err
	}
	if !actor.Role.IsProcurement() {
		filter.RequesterID = actor.ID
	}
	return u.repo.List(ctx, filter)
}

func (u *QuotationUseCase) CountByStatus(ctx context.Context, actor entities.Actor) (map[entities.QuotationStatus]int, error) {
	if err := validateActor(actor); err != nil {
		return nil, err
	}
	requesterID := ""
	if !actor.Role.IsProcurement() {
		requesterID = actor.ID
	}
	return u.repo.CountByStatus(ctx, requesterID)
}

func (u *QuotationUseCase) History(ctx context.Context, actor entities.Actor, id string) ([]entities.HistoryEntry, error) {
	q, err := u.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return u.repo.ListHistory(ctx, q.ID)
}

// BackfillNumbers assigns sequence numbers to legacy quotations that lack
// one. Idempotent: rows that already carry a number are skipped, and a lost
// conditional write just means someone else numbered the row first.
func (u *QuotationUseCase) BackfillNumbers(ctx context.Context, actor entities.Actor) (int, error) {
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
	for _, q := range missing {
		number, err := u.sequences.AllocateNumber(ctx, interfaces.SequenceQuotations)
		if err != nil {
			return migrated, err
		}
		set, err := u.repo.SetNumberIfAbsent(ctx, q.ID, number)
		if err != nil {
			return migrated, err
		}
		if set {
			migrated++
		}
	}
	log.Printf("[quotation][backfill] migrated=%d scanned=%d", migrated, len(missing))
	return migrated, nil
}

func (u *QuotationUseCase) load(ctx context.Context, actor entities.Actor, id string) (entities.Quotation, error) {
	if err := validateActor(actor); err != nil {
		return entities.Quotation{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

// commit persists the aggregate together with its history entry and fires
// the status-change notification. Notification failures are logged only;
// they never undo or fail the committed transaction.
func (u *QuotationUseCase) commit(ctx context.Context, q entities.Quotation, h *entities.HistoryEntry, prev entities.QuotationStatus) (entities.Quotation, error) {
	updated, err := u.repo.Update(ctx, q, h)
	if err != nil {
		return entities.Quotation{}, err
	}
	if u.notifier != nil && updated.Status != prev {
		if err := u.notifier.NotifyStatusChange(ctx, updated, prev); err != nil {
			log.Printf("[quotation][notify] failed quotation_id=%s from=%s to=%s err=%v", updated.ID, prev, updated.Status, err)
		}
	}
	return updated, nil
}

func (u *QuotationUseCase) confirmDocument(ctx context.Context, in *DocumentInput) (*entities.DocumentRef, error) {
	if in == nil {
		return nil, nil
	}
	ref := strings.TrimSpace(in.StorageRef)
	if ref == "" {
		return nil, ErrUploadFailed
	}
	ok, err := u.storage.Exists(ctx, ref)
	if err != nil || !ok {
		return nil, ErrUploadFailed
	}
	return &entities.DocumentRef{StorageRef: ref, FileName: strings.TrimSpace(in.FileName)}, nil
}

// authorize splits the two failure kinds: a status that does not admit the
// action at all is a state conflict; a status that admits it but not for this
// caller is an authorization failure.
func authorize(q entities.Quotation, action entities.Action, actor entities.Actor) error {
	if !entities.StatusAllows(q.Status, action) {
		return ErrStatusConflict
	}
	isRequester := actor.ID != "" && actor.ID == q.RequesterID
	isBuyer := actor.ID != "" && actor.ID == q.BuyerID
	if !entities.CanPerform(q.Status, action, actor.Role, isRequester, isBuyer) {
		return ErrNotAuthorized
	}
	return nil
}

func validateActor(actor entities.Actor) error {
	if strings.TrimSpace(actor.ID) == "" || !actor.Role.IsValid() {
		return ErrInvalidActor
	}
	return nil
}

func newLineItem(in LineItemInput) (entities.LineItem, error) {
	if in.Quantity <= 0 {
		return entities.LineItem{}, ErrInvalidQuantity
	}
	if strings.TrimSpace(in.Description) == "" {
		return entities.LineItem{}, ErrMissingDescription
	}
	return entities.LineItem{
		ID:                uuid.NewString(),
		PartCode:          strings.TrimSpace(in.PartCode),
		Description:       strings.TrimSpace(in.Description),
		Quantity:          in.Quantity,
		Notes:             strings.TrimSpace(in.Notes),
		NeedsRegistration: in.NeedsRegistration,
	}, nil
}

func newHistoryEntry(q entities.Quotation, actor entities.Actor, action entities.HistoryAction, prev, next entities.QuotationStatus, notes string) entities.HistoryEntry {
	return entities.HistoryEntry{
		ID:             uuid.NewString(),
		QuotationID:    q.ID,
		ActorID:        actor.ID,
		Action:         action,
		PreviousStatus: prev,
		NewStatus:      next,
		Notes:          notes,
		CreatedAt:      time.Now().UTC(),
	}
}
