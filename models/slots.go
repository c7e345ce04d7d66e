package models

// DefaultSlotTimes are the bookable hourly slots, in display order.
var DefaultSlotTimes = []string{
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

// Slot is a single bookable time. Booked is true iff BookedBy is non-empty.
type Slot struct {
	Time     string `json:"time"`
	Booked   bool   `json:"booked"`
	Name     string `json:"name"`
	BookedBy string `json:"bookedBy"`
}

// Open resets the slot to its unbooked state.
func (s *Slot) Open() {
	s.Booked = false
	s.Name = ""
	s.BookedBy = ""
}
