// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"
	"errors"

	"slotbook/models"
)

var ErrSlotNotFound = errors.New("slot not found")

// SlotMutator changes a slot in place. Returning an error discards the change.
type SlotMutator func(slot *models.Slot) error

type TimeSlotRepository interface {
	// GetAll returns a snapshot of every slot in display order.
	GetAll(ctx context.Context) ([]models.Slot, error)
	// Update applies fn to the slot at time atomically and returns the result.
	Update(ctx context.Context, time string, fn SlotMutator) (models.Slot, error)
}
