package booking

import (
	"context"

	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
)

// Cancel reopens the booked slot at time if the policy allows actor to.
func (s *DefaultBookingService) Cancel(ctx context.Context, actor models.Principal, time string) (models.Slot, error) {
	if time == "" {
		return models.Slot{}, ErrMissingTime
	}

	policy := s.policy()
	var previousOwner string

	slot, err := s.Repo.Update(ctx, time, func(slot *models.Slot) error {
		if !slot.Booked {
			return ErrSlotNotBooked
		}
		if !policy.CanCancel(actor, *slot) {
			return ErrNotSlotOwner
		}
		previousOwner = slot.BookedBy
		slot.Open()
		return nil
	})
	if err != nil {
		return models.Slot{}, translateRepoError(err)
	}

	utils.GetLogger().Info("Booking cancelled",
		zap.String("time", slot.Time),
		zap.String("cancelledBy", actor.Username),
		zap.String("owner", previousOwner),
	)
	return slot, nil
}
