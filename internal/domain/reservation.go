package domain

import (
	"time"

	"github.com/tfdeleon/bdnetworking/pkg/types"
)

// Reservation is a confirmed booking occupying an interval in the
// external calendar. It lives in the external store; the service only
// reads a projection of it and, when booking, writes one new interval.
type Reservation struct {
	EventID     string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// Overlaps reports whether the reservation interval strictly overlaps
// [start, end). Touching intervals do not overlap.
func (r Reservation) Overlaps(start, end time.Time) bool {
	return r.Start.Before(end) && r.End.After(start)
}

// StartKey returns the reservation's start time truncated to "HH:MM"
// in the given location.
func (r Reservation) StartKey(loc *time.Location) types.TimeString {
	return types.NewTimeString(r.Start.In(loc))
}
