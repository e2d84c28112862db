package entities

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	t.Run("normalizes case and spacing", func(t *testing.T) {
		r, err := ParseRole("  Compras ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r != RoleCompras {
			t.Fatalf("expected compras, got %s", r)
		}
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		for _, s := range []string{"", "root", "buyer"} {
			if _, err := ParseRole(s); !errors.Is(err, ErrUnknownRole) {
				t.Fatalf("expected ErrUnknownRole for %q, got %v", s, err)
			}
		}
	})
}

func TestRoleIsProcurement(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleCompras, RoleGerente} {
		if !r.IsProcurement() {
			t.Errorf("%s must be procurement", r)
		}
	}
	for _, r := range []Role{RoleVendedor, RoleConsultor} {
		if r.IsProcurement() {
			t.Errorf("%s must not be procurement", r)
		}
	}
}
