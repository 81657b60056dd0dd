package domain

import "github.com/tfdeleon/bdnetworking/pkg/types"

// TimeSlot is a bookable time window identified by its start time.
// Value is the canonical "HH:MM" key; Label is the derived 12-hour
// rendering shown to the visitor.
type TimeSlot struct {
	Value types.TimeString
	Label string
}

// Availability is the availability picture for one day. Slots carries
// the full grid, booked ones included, so the client can render taken
// slots as disabled rather than hiding them. BookedTimes is the set of
// taken keys, ascending.
type Availability struct {
	Slots       []TimeSlot
	BookedTimes []types.TimeString
}

// IsBooked reports whether the given slot key is in BookedTimes.
func (a *Availability) IsBooked(value types.TimeString) bool {
	for _, t := range a.BookedTimes {
		if t == value {
			return true
		}
	}
	return false
}
