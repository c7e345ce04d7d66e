package booking

import (
	"context"
	"fmt"

	"slotbook/models"
)

// ListSlots returns every slot with its current state.
func (s *DefaultBookingService) ListSlots(ctx context.Context) ([]models.Slot, error) {
	slots, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	return slots, nil
}
