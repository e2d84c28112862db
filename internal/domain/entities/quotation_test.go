package entities

import "testing"

func TestQuotationStatus(t *testing.T) {
	t.Run("terminal statuses", func(t *testing.T) {
		if !QuotationStatusComprada.IsTerminal() || !QuotationStatusCancelada.IsTerminal() {
			t.Fatalf("comprada and cancelada must be terminal")
		}
		for _, s := range []QuotationStatus{QuotationStatusNovo, QuotationStatusEmCotacao, QuotationStatusRespondida, QuotationStatusAprovada} {
			if s.IsTerminal() {
				t.Fatalf("%s must not be terminal", s)
			}
		}
	})

	t.Run("valid statuses", func(t *testing.T) {
		if !QuotationStatusAprovada.IsValid() {
			t.Fatalf("aprovada_para_compra must be valid")
		}
		if QuotationStatus("aprovada").IsValid() {
			t.Fatalf("unknown status must be invalid")
		}
	})
}

func TestLineItemRecomputeTotal(t *testing.T) {
	t.Run("unpriced item keeps nil total", func(t *testing.T) {
		li := LineItem{Quantity: 3}
		li.RecomputeTotal()
		if li.TotalPrice != nil {
			t.Fatalf("expected nil total, got %v", *li.TotalPrice)
		}
	})

	t.Run("total derives from quantity times unit price", func(t *testing.T) {
		price := 10.0
		li := LineItem{Quantity: 3, UnitPrice: &price}
		li.RecomputeTotal()
		if li.TotalPrice == nil || *li.TotalPrice != 30.0 {
			t.Fatalf("expected total 30, got %v", li.TotalPrice)
		}
	})

	t.Run("clearing the price clears the total", func(t *testing.T) {
		price, total := 10.0, 30.0
		li := LineItem{Quantity: 3, UnitPrice: &price, TotalPrice: &total}
		li.UnitPrice = nil
		li.RecomputeTotal()
		if li.TotalPrice != nil {
			t.Fatalf("expected nil total after price removal")
		}
	})
}

func TestQuotationItems(t *testing.T) {
	q := Quotation{Items: []LineItem{{ID: "a", PartCode: "P-1"}, {ID: "b", PartCode: "P-2"}}}

	t.Run("ItemByID returns mutable pointer", func(t *testing.T) {
		li := q.ItemByID("b")
		if li == nil || li.PartCode != "P-2" {
			t.Fatalf("unexpected item: %+v", li)
		}
		li.Supplier = "ACME"
		if q.Items[1].Supplier != "ACME" {
			t.Fatalf("expected mutation to reach the aggregate")
		}
		if q.ItemByID("missing") != nil {
			t.Fatalf("expected nil for unknown id")
		}
	})

	t.Run("catalog gate", func(t *testing.T) {
		q := Quotation{Items: []LineItem{
			{ID: "a", NeedsRegistration: true},
			{ID: "b"},
		}}
		if !q.HasItemsAwaitingCatalog() {
			t.Fatalf("flagged item without code must block")
		}
		q.Items[0].CatalogCode = "SK-1234"
		if q.HasItemsAwaitingCatalog() {
			t.Fatalf("filled catalog code must unblock")
		}
	})
}
