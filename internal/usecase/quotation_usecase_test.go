package usecase

import (
	"context"
	"errors"
	"testing"

	"cotacao_service/internal/domain/entities"
	"cotacao_service/internal/usecase/interfaces"
	mock_interfaces "cotacao_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quotationMocks struct {
	repo      *mock_interfaces.MockIQuotationRepository
	sequences *mock_interfaces.MockISequenceRepository
	storage   *mock_interfaces.MockIFileStorage
	notifier  *mock_interfaces.MockINotifier
}

func newQuotationUseCaseForTest(t *testing.T) (*QuotationUseCase, quotationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := quotationMocks{
		repo:      mock_interfaces.NewMockIQuotationRepository(ctrl),
		sequences: mock_interfaces.NewMockISequenceRepository(ctrl),
		storage:   mock_interfaces.NewMockIFileStorage(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
	}
	return NewQuotationUseCase(m.repo, m.sequences, m.storage, m.notifier), m
}

var (
	requester = entities.Actor{ID: "user-1", Role: entities.RoleVendedor}
	buyer     = entities.Actor{ID: "buyer-1", Role: entities.RoleCompras}
	admin     = entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}
)

func TestQuotationUseCase_Create(t *testing.T) {
	validInput := func() CreateQuotationInput {
		return CreateQuotationInput{
			Client:      "Oficina Silva",
			RequestType: entities.RequestTypeCotacao,
			Items: []LineItemInput{
				{PartCode: "P-100", Description: "Rolamento 6204", Quantity: 2},
				{Description: "Retentor dianteiro", Quantity: 1, NeedsRegistration: true},
			},
		}
	}

	t.Run("success assigns number and starts as novo", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)

		m.sequences.EXPECT().AllocateNumber(gomock.Any(), "quotations").Return(int64(42), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation, h entities.HistoryEntry) (entities.Quotation, error) {
				if q.ID == "" || q.Number != 42 || q.Status != entities.QuotationStatusNovo {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				if q.RequesterID != requester.ID {
					t.Fatalf("expected requester %s, got %s", requester.ID, q.RequesterID)
				}
				if len(q.Items) != 2 {
					t.Fatalf("expected 2 items, got %d", len(q.Items))
				}
				for _, li := range q.Items {
					if li.ID == "" {
						t.Fatalf("expected generated item id")
					}
					if li.UnitPrice != nil || li.TotalPrice != nil {
						t.Fatalf("new items must be unpriced: %+v", li)
					}
				}
				if h.QuotationID != q.ID || h.Action != entities.HistoryActionCriada || h.NewStatus != entities.QuotationStatusNovo {
					t.Fatalf("unexpected history entry: %+v", h)
				}
				return q, nil
			},
		)

		q, err := uc.Create(context.Background(), requester, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuotationStatusNovo {
			t.Fatalf("expected novo, got %s", q.Status)
		}
	})

	t.Run("missing client", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		in := validInput()
		in.Client = "   "
		if _, err := uc.Create(context.Background(), requester, in); !errors.Is(err, ErrMissingClient) {
			t.Fatalf("expected ErrMissingClient, got %v", err)
		}
	})

	t.Run("invalid request type", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		in := validInput()
		in.RequestType = "orcamento"
		if _, err := uc.Create(context.Background(), requester, in); !errors.Is(err, ErrInvalidRequestType) {
			t.Fatalf("expected ErrInvalidRequestType, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		in := validInput()
		in.Items = nil
		if _, err := uc.Create(context.Background(), requester, in); !errors.Is(err, ErrNoItems) {
			t.Fatalf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("zero quantity item", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		in := validInput()
		in.Items[0].Quantity = 0
		if _, err := uc.Create(context.Background(), requester, in); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("invalid actor", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		_, err := uc.Create(context.Background(), entities.Actor{ID: "", Role: entities.RoleVendedor}, validInput())
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("sequence failure aborts creation", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.sequences.EXPECT().AllocateNumber(gomock.Any(), "quotations").Return(int64(0), errors.New("ddb"))
		if _, err := uc.Create(context.Background(), requester, validInput()); err == nil || err.Error() != "ddb" {
			t.Fatalf("expected ddb error, got %v", err)
		}
	})
}

func TestQuotationUseCase_AssignBuyer(t *testing.T) {
	base := func() entities.Quotation {
		return entities.Quotation{
			ID:          "q-1",
			RequesterID: requester.ID,
			Status:      entities.QuotationStatusNovo,
			Items:       []entities.LineItem{{ID: "item-1", Description: "Rolamento", Quantity: 1}},
		}
	}

	t.Run("buyer assumes the quotation", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation, h *entities.HistoryEntry) (entities.Quotation, error) {
				if q.Status != entities.QuotationStatusEmCotacao || q.BuyerID != buyer.ID {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				if h == nil || h.Action != entities.HistoryActionEmCotacao || h.PreviousStatus != entities.QuotationStatusNovo {
					t.Fatalf("unexpected history: %+v", h)
				}
				return q, nil
			},
		)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), gomock.Any(), entities.QuotationStatusNovo).Return(nil)

		q, err := uc.AssignBuyer(context.Background(), buyer, "q-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.BuyerID != buyer.ID {
			t.Fatalf("empty buyer id must default to the actor, got %s", q.BuyerID)
		}
	})

	t.Run("vendedor cannot assign", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)

		_, err := uc.AssignBuyer(context.Background(), requester, "q-1", "")
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("assign after novo is a conflict", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		q := base()
		q.Status = entities.QuotationStatusRespondida
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.AssignBuyer(context.Background(), buyer, "q-1", "")
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})
}

func TestQuotationUseCase_Respond(t *testing.T) {
	base := func() entities.Quotation {
		return entities.Quotation{
			ID:          "q-1",
			RequesterID: requester.ID,
			BuyerID:     buyer.ID,
			Status:      entities.QuotationStatusEmCotacao,
			Items: []entities.LineItem{
				{ID: "item-1", Description: "Rolamento 6204", Quantity: 3},
				{ID: "item-2", Description: "Retentor", Quantity: 1},
			},
		}
	}

	t.Run("partial response prices one item and leaves the other untouched", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		price := 10.0
		lead := "5 dias"

		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation, h *entities.HistoryEntry) (entities.Quotation, error) {
				if q.Status != entities.QuotationStatusRespondida {
					t.Fatalf("expected respondida, got %s", q.Status)
				}
				priced := q.ItemByID("item-1")
				if priced.UnitPrice == nil || *priced.UnitPrice != 10.0 {
					t.Fatalf("expected unit price 10, got %v", priced.UnitPrice)
				}
				if priced.TotalPrice == nil || *priced.TotalPrice != 30.0 {
					t.Fatalf("expected total 30, got %v", priced.TotalPrice)
				}
				if priced.LeadTime != "5 dias" {
					t.Fatalf("expected lead time, got %q", priced.LeadTime)
				}
				other := q.ItemByID("item-2")
				if other.UnitPrice != nil || other.TotalPrice != nil {
					t.Fatalf("unanswered item must stay unpriced: %+v", other)
				}
				if q.RespondedAt == nil {
					t.Fatalf("expected responded_at timestamp")
				}
				if h == nil || h.Action != entities.HistoryActionRespondida {
					t.Fatalf("unexpected history: %+v", h)
				}
				return q, nil
			},
		)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), gomock.Any(), entities.QuotationStatusEmCotacao).Return(nil)

		_, err := uc.Respond(context.Background(), buyer, "q-1", RespondInput{
			Items: []ItemResponseInput{{ItemID: "item-1", UnitPrice: &price, LeadTime: &lead}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-procurement requester cannot respond", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)
		// No Update expectation: a denied respond must not write anything.

		_, err := uc.Respond(context.Background(), requester, "q-1", RespondInput{})
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("unknown line item", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		price := 10.0
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)

		_, err := uc.Respond(context.Background(), buyer, "q-1", RespondInput{
			Items: []ItemResponseInput{{ItemID: "ghost", UnitPrice: &price}},
		})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("non-positive unit price", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		price := 0.0
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)

		_, err := uc.Respond(context.Background(), buyer, "q-1", RespondInput{
			Items: []ItemResponseInput{{ItemID: "item-1", UnitPrice: &price}},
		})
		if !errors.Is(err, ErrInvalidUnitPrice) {
			t.Fatalf("expected ErrInvalidUnitPrice, got %v", err)
		}
	})

	t.Run("unconfirmed upload aborts the whole response", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)
		m.storage.EXPECT().Exists(gomock.Any(), "documents/abc/quote.pdf").Return(false, nil)
		// No Update expectation: the aggregate never reaches respondida.

		_, err := uc.Respond(context.Background(), buyer, "q-1", RespondInput{
			QuoteDocument: &DocumentInput{StorageRef: "documents/abc/quote.pdf", FileName: "quote.pdf"},
		})
		if !errors.Is(err, ErrUploadFailed) {
			t.Fatalf("expected ErrUploadFailed, got %v", err)
		}
	})

	t.Run("confirmed documents are attached", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)
		m.storage.EXPECT().Exists(gomock.Any(), "documents/abc/quote.pdf").Return(true, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation, _ *entities.HistoryEntry) (entities.Quotation, error) {
				if q.QuoteDocument == nil || q.QuoteDocument.StorageRef != "documents/abc/quote.pdf" {
					t.Fatalf("expected attached quote document: %+v", q.QuoteDocument)
				}
				return q, nil
			},
		)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Respond(context.Background(), buyer, "q-1", RespondInput{
			QuoteDocument: &DocumentInput{StorageRef: "documents/abc/quote.pdf", FileName: "quote.pdf"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_ApproveAndPurchase(t *testing.T) {
	responded := func() entities.Quotation {
		return entities.Quotation{
			ID:          "q-1",
			RequesterID: requester.ID,
			BuyerID:     buyer.ID,
			Status:      entities.QuotationStatusRespondida,
			Items:       []entities.LineItem{{ID: "item-1", Description: "Rolamento", Quantity: 1}},
		}
	}

	t.Run("requester approves", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(responded(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation, h *entities.HistoryEntry) (entities.Quotation, error) {
				if q.Status != entities.QuotationStatusAprovada || q.ApprovedAt == nil {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				if h.Action != entities.HistoryActionAprovada {
					t.Fatalf("unexpected history: %+v", h)
				}
				return q, nil
			},
		)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), gomock.Any(), entities.QuotationStatusRespondida).Return(nil)

		if _, err := uc.Approve(context.Background(), requester, "q-1", "ok"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("second approve is a status conflict", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		q := responded()
		q.Status = entities.QuotationStatusAprovada
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Approve(context.Background(), requester, "q-1", "")
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("buyer purchases approved quotation", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		q := responded()
		q.Status = entities.QuotationStatusAprovada
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation, _ *entities.HistoryEntry) (entities.Quotation, error) {
				if q.Status != entities.QuotationStatusComprada || q.PurchasedAt == nil {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				return q, nil
			},
		)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), gomock.Any(), entities.QuotationStatusAprovada).Return(nil)

		if _, err := uc.Purchase(context.Background(), buyer, "q-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("purchase blocked while items await catalog codes", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		q := responded()
		q.Status = entities.QuotationStatusAprovada
		q.Items[0].NeedsRegistration = true
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Purchase(context.Background(), buyer, "q-1", "")
		if !errors.Is(err, ErrItemsAwaitingCatalog) {
			t.Fatalf("expected ErrItemsAwaitingCatalog, got %v", err)
		}
	})

	t.Run("notifier failure never fails the committed transition", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(responded(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation, _ *entities.HistoryEntry) (entities.Quotation, error) {
				return q, nil
			},
		)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		if _, err := uc.Approve(context.Background(), requester, "q-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_Cancel(t *testing.T) {
	base := func() entities.Quotation {
		return entities.Quotation{
			ID:          "q-1",
			RequesterID: requester.ID,
			Status:      entities.QuotationStatusNovo,
			Items:       []entities.LineItem{{ID: "item-1", Description: "Rolamento", Quantity: 1}},
		}
	}

	t.Run("requester cancels with a reason", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation, h *entities.HistoryEntry) (entities.Quotation, error) {
				if q.Status != entities.QuotationStatusCancelada || q.CancellationReason != "duplicate" || q.CancelledAt == nil {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				if h.Action != entities.HistoryActionCancelada || h.Notes != "duplicate" {
					t.Fatalf("unexpected history: %+v", h)
				}
				return q, nil
			},
		)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), gomock.Any(), entities.QuotationStatusNovo).Return(nil)

		if _, err := uc.Cancel(context.Background(), requester, "q-1", "duplicate"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing reason", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		if _, err := uc.Cancel(context.Background(), requester, "q-1", "  "); !errors.Is(err, ErrMissingReason) {
			t.Fatalf("expected ErrMissingReason, got %v", err)
		}
	})

	t.Run("cancelling a cancelled quotation is a conflict", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		q := base()
		q.Status = entities.QuotationStatusCancelada
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Cancel(context.Background(), requester, "q-1", "again")
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("unrelated consultor cannot cancel", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)

		_, err := uc.Cancel(context.Background(), entities.Actor{ID: "other", Role: entities.RoleConsultor}, "q-1", "why not")
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}

func TestQuotationUseCase_EditItems(t *testing.T) {
	base := func() entities.Quotation {
		return entities.Quotation{
			ID:          "q-1",
			RequesterID: requester.ID,
			Status:      entities.QuotationStatusNovo,
			Items: []entities.LineItem{
				{ID: "item-1", Description: "Rolamento", Quantity: 1},
				{ID: "item-2", Description: "Retentor", Quantity: 2},
			},
		}
	}

	t.Run("edit and remove without status change", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation, h *entities.HistoryEntry) (entities.Quotation, error) {
				if q.Status != entities.QuotationStatusNovo {
					t.Fatalf("editing must not move status, got %s", q.Status)
				}
				if len(q.Items) != 2 {
					t.Fatalf("expected 2 items after edit, got %d", len(q.Items))
				}
				if q.ItemByID("item-2") != nil {
					t.Fatalf("item-2 should have been removed")
				}
				if got := q.ItemByID("item-1"); got.Quantity != 5 {
					t.Fatalf("expected quantity 5, got %d", got.Quantity)
				}
				if h.Action != entities.HistoryActionItensEditados || h.PreviousStatus != h.NewStatus {
					t.Fatalf("unexpected history: %+v", h)
				}
				return q, nil
			},
		)

		_, err := uc.EditItems(context.Background(), requester, "q-1",
			[]LineItemInput{
				{ID: "item-1", Description: "Rolamento", Quantity: 5},
				{Description: "Correia dentada", Quantity: 1},
			},
			[]string{"item-2"},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("removing every item is rejected", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)

		_, err := uc.EditItems(context.Background(), requester, "q-1", nil, []string{"item-1", "item-2"})
		if !errors.Is(err, ErrNoItems) {
			t.Fatalf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("removing an unknown item", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(base(), nil)

		_, err := uc.EditItems(context.Background(), requester, "q-1", nil, []string{"ghost"})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("requester cannot edit after response", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		q := base()
		q.Status = entities.QuotationStatusRespondida
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.EditItems(context.Background(), requester, "q-1", nil, []string{"item-1"})
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}

func TestQuotationUseCase_DeleteAndQueries(t *testing.T) {
	t.Run("delete is admin only", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		if err := uc.Delete(context.Background(), buyer, "q-1"); !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("delete removes aggregate and history", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1"}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		if err := uc.Delete(context.Background(), admin, "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("get unknown id", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Quotation{}, nil)

		_, err := uc.GetByID(context.Background(), requester, "ghost")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("list scopes non-procurement callers to their own quotations", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter interfaces.QuotationFilter) ([]entities.Quotation, error) {
				if filter.RequesterID != requester.ID {
					t.Fatalf("expected scoped filter, got %+v", filter)
				}
				return nil, nil
			},
		)

		if _, err := uc.List(context.Background(), requester, interfaces.QuotationFilter{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("list leaves procurement filters alone", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter interfaces.QuotationFilter) ([]entities.Quotation, error) {
				if filter.RequesterID != "" {
					t.Fatalf("procurement filter must not be rescoped: %+v", filter)
				}
				return nil, nil
			},
		)

		if _, err := uc.List(context.Background(), buyer, interfaces.QuotationFilter{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("counts scope like listings", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().CountByStatus(gomock.Any(), requester.ID).Return(map[entities.QuotationStatus]int{entities.QuotationStatusNovo: 2}, nil)

		counts, err := uc.CountByStatus(context.Background(), requester)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts[entities.QuotationStatusNovo] != 2 {
			t.Fatalf("unexpected counts: %+v", counts)
		}
	})
}

func TestQuotationUseCase_BackfillNumbers(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		uc, _ := newQuotationUseCaseForTest(t)
		if _, err := uc.BackfillNumbers(context.Background(), buyer); !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("skips rows numbered by a concurrent run", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().ListWithoutNumber(gomock.Any()).Return([]entities.Quotation{{ID: "q-1"}, {ID: "q-2"}}, nil)
		m.sequences.EXPECT().AllocateNumber(gomock.Any(), "quotations").Return(int64(7), nil)
		m.repo.EXPECT().SetNumberIfAbsent(gomock.Any(), "q-1", int64(7)).Return(true, nil)
		m.sequences.EXPECT().AllocateNumber(gomock.Any(), "quotations").Return(int64(8), nil)
		m.repo.EXPECT().SetNumberIfAbsent(gomock.Any(), "q-2", int64(8)).Return(false, nil)

		migrated, err := uc.BackfillNumbers(context.Background(), admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if migrated != 1 {
			t.Fatalf("expected 1 migrated, got %d", migrated)
		}
	})

	t.Run("nothing to migrate", func(t *testing.T) {
		uc, m := newQuotationUseCaseForTest(t)
		m.repo.EXPECT().ListWithoutNumber(gomock.Any()).Return(nil, nil)

		migrated, err := uc.BackfillNumbers(context.Background(), admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if migrated != 0 {
			t.Fatalf("expected 0 migrated, got %d", migrated)
		}
	})
}
