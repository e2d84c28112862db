package request

import "testing"

func TestCancelQuotationRequest_ResolveReason(t *testing.T) {
	r := CancelQuotationRequest{Reason: "  duplicate request  "}
	if got := r.ResolveReason(); got != "duplicate request" {
		t.Fatalf("expected trimmed reason, got %q", got)
	}

	r2 := CancelQuotationRequest{Reason: "   "}
	if got := r2.ResolveReason(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
