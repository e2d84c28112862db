package entities

import "testing"

func TestStatusAllows(t *testing.T) {
	cases := []struct {
		status QuotationStatus
		action Action
		want   bool
	}{
		{QuotationStatusNovo, ActionAssign, true},
		{QuotationStatusEmCotacao, ActionAssign, false},
		{QuotationStatusNovo, ActionRespond, true},
		{QuotationStatusEmCotacao, ActionRespond, true},
		{QuotationStatusRespondida, ActionRespond, false},
		{QuotationStatusRespondida, ActionApprove, true},
		{QuotationStatusNovo, ActionApprove, false},
		{QuotationStatusAprovada, ActionPurchase, true},
		{QuotationStatusRespondida, ActionPurchase, false},
		{QuotationStatusNovo, ActionCancel, true},
		{QuotationStatusEmCotacao, ActionCancel, true},
		{QuotationStatusRespondida, ActionCancel, true},
		{QuotationStatusAprovada, ActionCancel, true},
		{QuotationStatusComprada, ActionCancel, false},
		{QuotationStatusCancelada, ActionCancel, false},
		{QuotationStatusNovo, ActionEdit, true},
		{QuotationStatusComprada, ActionEdit, false},
		{QuotationStatusCancelada, ActionEdit, false},
	}

	for _, tc := range cases {
		if got := StatusAllows(tc.status, tc.action); got != tc.want {
			t.Errorf("StatusAllows(%s, %s) = %v, want %v", tc.status, tc.action, got, tc.want)
		}
	}
}

func TestCanPerform(t *testing.T) {
	cases := []struct {
		name        string
		status      QuotationStatus
		action      Action
		role        Role
		isRequester bool
		isBuyer     bool
		want        bool
	}{
		{"admin assigns novo", QuotationStatusNovo, ActionAssign, RoleAdmin, false, false, true},
		{"compras assigns novo", QuotationStatusNovo, ActionAssign, RoleCompras, false, false, true},
		{"gerente assigns novo", QuotationStatusNovo, ActionAssign, RoleGerente, false, false, true},
		{"vendedor cannot assign", QuotationStatusNovo, ActionAssign, RoleVendedor, true, false, false},

		{"compras responds em_cotacao", QuotationStatusEmCotacao, ActionRespond, RoleCompras, false, true, true},
		{"consultor cannot respond", QuotationStatusEmCotacao, ActionRespond, RoleConsultor, false, false, false},
		{"vendedor requester cannot respond", QuotationStatusEmCotacao, ActionRespond, RoleVendedor, true, false, false},

		{"requester approves respondida", QuotationStatusRespondida, ActionApprove, RoleVendedor, true, false, true},
		{"non-requester cannot approve", QuotationStatusRespondida, ActionApprove, RoleVendedor, false, false, false},
		{"compras non-requester cannot approve", QuotationStatusRespondida, ActionApprove, RoleCompras, false, true, false},
		{"admin approves anyway", QuotationStatusRespondida, ActionApprove, RoleAdmin, false, false, true},

		{"compras purchases aprovada", QuotationStatusAprovada, ActionPurchase, RoleCompras, false, true, true},
		{"requester cannot purchase", QuotationStatusAprovada, ActionPurchase, RoleVendedor, true, false, false},

		{"requester cancels novo", QuotationStatusNovo, ActionCancel, RoleVendedor, true, false, true},
		{"gerente cancels respondida", QuotationStatusRespondida, ActionCancel, RoleGerente, false, false, true},
		{"stranger cannot cancel", QuotationStatusNovo, ActionCancel, RoleConsultor, false, false, false},

		{"requester edits novo", QuotationStatusNovo, ActionEdit, RoleVendedor, true, false, true},
		{"requester edits em_cotacao", QuotationStatusEmCotacao, ActionEdit, RoleVendedor, true, false, true},
		{"requester cannot edit respondida", QuotationStatusRespondida, ActionEdit, RoleVendedor, true, false, false},
		{"compras edits em_cotacao", QuotationStatusEmCotacao, ActionEdit, RoleCompras, false, true, true},
		{"compras cannot edit novo", QuotationStatusNovo, ActionEdit, RoleCompras, false, false, false},

		// Terminal statuses are immutable for everyone, admin included.
		{"admin cannot cancel comprada", QuotationStatusComprada, ActionCancel, RoleAdmin, false, false, false},
		{"admin cannot edit cancelada", QuotationStatusCancelada, ActionEdit, RoleAdmin, true, false, false},
		{"admin cannot respond respondida", QuotationStatusRespondida, ActionRespond, RoleAdmin, false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanPerform(tc.status, tc.action, tc.role, tc.isRequester, tc.isBuyer)
			if got != tc.want {
				t.Fatalf("CanPerform(%s, %s, %s, requester=%v, buyer=%v) = %v, want %v",
					tc.status, tc.action, tc.role, tc.isRequester, tc.isBuyer, got, tc.want)
			}
		})
	}
}

func TestCanPerformIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if !CanPerform(QuotationStatusRespondida, ActionApprove, RoleVendedor, true, false) {
			t.Fatalf("identical inputs must produce identical answers (run %d)", i)
		}
	}
}
