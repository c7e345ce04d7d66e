package booking

import "errors"

var (
	// Validation.
	ErrMissingFields     = errors.New("name and time are required")
	ErrMissingTime       = errors.New("time is required")
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	ErrSlotNotBooked     = errors.New("slot is not booked")

	// Lookup.
	ErrSlotNotFound = errors.New("slot not found")

	// Authorization.
	ErrNotSlotOwner = errors.New("you can only cancel your own bookings")
)
