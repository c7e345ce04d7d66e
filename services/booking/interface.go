package booking

import (
	"context"

	timeslotRepo "slotbook/database/repository/timeslot"
	"slotbook/models"
)

// BookingService manages the Open -> Booked -> Open lifecycle of the fixed slots.
type BookingService interface {
	ListSlots(ctx context.Context) ([]models.Slot, error)
	Book(ctx context.Context, actor models.Principal, time, name string) (models.Slot, error)
	Cancel(ctx context.Context, actor models.Principal, time string) (models.Slot, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo timeslotRepo.TimeSlotRepository
	// Policy decides who may cancel; nil means OwnerOrAdminPolicy.
	Policy CancelPolicy
}

func (s *DefaultBookingService) policy() CancelPolicy {
	if s.Policy == nil {
		return OwnerOrAdminPolicy{}
	}
	return s.Policy
}
