package booking

import (
	"context"
	"errors"
	"fmt"

	timeslotRepo "slotbook/database/repository/timeslot"
	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
)

// Book reserves the open slot at time for actor under the display name.
func (s *DefaultBookingService) Book(ctx context.Context, actor models.Principal, time, name string) (models.Slot, error) {
	if name == "" || time == "" {
		return models.Slot{}, ErrMissingFields
	}

	slot, err := s.Repo.Update(ctx, time, func(slot *models.Slot) error {
		if slot.Booked {
			return ErrSlotAlreadyBooked
		}
		slot.Booked = true
		slot.Name = name
		slot.BookedBy = actor.Username
		return nil
	})
	if err != nil {
		return models.Slot{}, translateRepoError(err)
	}

	utils.GetLogger().Info("Slot booked",
		zap.String("time", slot.Time),
		zap.String("bookedBy", slot.BookedBy),
	)
	return slot, nil
}

func translateRepoError(err error) error {
	switch {
	case errors.Is(err, timeslotRepo.ErrSlotNotFound):
		return ErrSlotNotFound
	case errors.Is(err, ErrSlotAlreadyBooked),
		errors.Is(err, ErrSlotNotBooked),
		errors.Is(err, ErrNotSlotOwner):
		return err
	default:
		return fmt.Errorf("failed to update slot: %w", err)
	}
}
