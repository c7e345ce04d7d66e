package timeslotRepo

import (
	"context"
	"sync"

	"slotbook/models"
)

// memoryTimeSlotRepo holds a fixed, ordered set of slots for the process lifetime.
type memoryTimeSlotRepo struct {
	mu    sync.Mutex
	slots []models.Slot
	index map[string]int
}

// NewMemoryTimeSlotRepo creates one open slot per entry of times.
// Duplicate times are ignored after their first occurrence.
func NewMemoryTimeSlotRepo(times []string) TimeSlotRepository {
	r := &memoryTimeSlotRepo{
		slots: make([]models.Slot, 0, len(times)),
		index: make(map[string]int, len(times)),
	}
	for _, t := range times {
		if _, dup := r.index[t]; dup {
			continue
		}
		r.index[t] = len(r.slots)
		r.slots = append(r.slots, models.Slot{Time: t})
	}
	return r
}

func (r *memoryTimeSlotRepo) GetAll(_ context.Context) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Slot, len(r.slots))
	copy(out, r.slots)
	return out, nil
}

func (r *memoryTimeSlotRepo) Update(_ context.Context, time string, fn SlotMutator) (models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[time]
	if !ok {
		return models.Slot{}, ErrSlotNotFound
	}

	slot := r.slots[i]
	if err := fn(&slot); err != nil {
		return models.Slot{}, err
	}
	r.slots[i] = slot
	return slot, nil
}
