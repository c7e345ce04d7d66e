package booking

import "slotbook/models"

// CancelPolicy decides whether actor may cancel the booking on slot.
type CancelPolicy interface {
	CanCancel(actor models.Principal, slot models.Slot) bool
}

// CancelPolicyFunc adapts a plain function to CancelPolicy.
type CancelPolicyFunc func(actor models.Principal, slot models.Slot) bool

func (f CancelPolicyFunc) CanCancel(actor models.Principal, slot models.Slot) bool {
	return f(actor, slot)
}

// OwnerOrAdminPolicy lets the owner cancel their own booking and admins cancel
// any booking. A booking without an owner can only be cancelled by an admin.
type OwnerOrAdminPolicy struct{}

func (OwnerOrAdminPolicy) CanCancel(actor models.Principal, slot models.Slot) bool {
	if actor.IsAdmin() {
		return true
	}
	return slot.BookedBy != "" && slot.BookedBy == actor.Username
}
