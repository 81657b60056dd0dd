package domain

import (
	"time"

	"github.com/tfdeleon/bdnetworking/pkg/types"
)

// Booking is a committed consultation booking. The calendar event is
// the durable fact; this record exists for confirmation and for the
// local journal.
type Booking struct {
	Reference       string // uuid handed back to the visitor
	Name            string
	Phone           *string
	Email           string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Message         *string
	EventID         string // id assigned by the external calendar
	CreatedAt       time.Time
}

// SlotKey identifies the booked slot as "YYYY-MM-DD HH:MM". Used to
// serialize concurrent booking attempts for the same slot.
func (b *Booking) SlotKey() string {
	return b.Date.Format(DateFormat) + " " + b.StartTime.String()
}
