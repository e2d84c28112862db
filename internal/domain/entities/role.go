package entities

import (
	"errors"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

// Role is the closed set of user roles the identity collaborator can supply.
// Keeping it closed (instead of free-form strings) makes the authorizer's
// decision table total and removes typo-class authorization bugs.

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCompras   Role = "compras"
	RoleGerente   Role = "gerente"
	RoleVendedor  Role = "vendedor"
	RoleConsultor Role = "consultor"
)

// IsProcurement reports whether the role belongs to the procurement side
// (buyers/managers). Procurement roles see all aggregates; other roles are
// scoped to their own requests.
func (r Role) IsProcurement() bool {
	return r == RoleAdmin || r == RoleCompras || r == RoleGerente
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCompras, RoleGerente, RoleVendedor, RoleConsultor:
		return true
	}
	return false
}

// ParseRole normalizes and validates a role string supplied by the identity
// collaborator.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", ErrUnknownRole
	}
	return r, nil
}

// Actor is the acting user on an operation, as supplied by the identity
// collaborator. The core trusts the given role verbatim.
type Actor struct {
	ID   string
	Role Role
}
