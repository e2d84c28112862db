package entities

// Action is a mutating operation on a quotation that must pass the
// authorizer before any write.

type Action string

const (
	ActionAssign   Action = "assign"
	ActionRespond  Action = "respond"
	ActionApprove  Action = "approve"
	ActionPurchase Action = "purchase"
	ActionCancel   Action = "cancel"
	ActionEdit     Action = "edit"
)

// StatusAllows reports whether the action is possible at all in the given
// status, regardless of who is asking. A false here is a state conflict, not
// an authorization failure; callers surface the two differently.
func StatusAllows(status QuotationStatus, action Action) bool {
	switch action {
	case ActionAssign:
		return status == QuotationStatusNovo
	case ActionRespond:
		return status == QuotationStatusNovo || status == QuotationStatusEmCotacao
	case ActionApprove:
		return status == QuotationStatusRespondida
	case ActionPurchase:
		return status == QuotationStatusAprovada
	case ActionCancel, ActionEdit:
		return !status.IsTerminal()
	}
	return false
}

// CanPerform is the pure authorization decision: given the quotation status,
// the requested action and who the caller is, it answers allow/deny. It never
// reads or writes state, so identical inputs always produce the identical
// answer.
//
// Admin is allowed everything the status permits; terminal statuses are
// immutable for everyone, admin included.
func CanPerform(status QuotationStatus, action Action, role Role, isRequester, isBuyer bool) bool {
	if !StatusAllows(status, action) {
		return false
	}
	if role == RoleAdmin {
		return true
	}

	switch action {
	case ActionAssign, ActionRespond, ActionPurchase:
		return role == RoleCompras || role == RoleGerente
	case ActionApprove:
		return isRequester
	case ActionCancel:
		return isRequester || role == RoleCompras || role == RoleGerente
	case ActionEdit:
		if isRequester && (status == QuotationStatusNovo || status == QuotationStatusEmCotacao) {
			return true
		}
		return status == QuotationStatusEmCotacao && (role == RoleCompras || role == RoleGerente)
	}
	return false
}
