package get_bookings

import (
	"time"

	"github.com/tfdeleon/bdnetworking/internal/domain"
)

// BookingResponse HTTP response model for one journal entry.
type BookingResponse struct {
	Reference       string  `json:"reference"`
	Name            string  `json:"name"`
	Phone           *string `json:"phone,omitempty"`
	Email           string  `json:"email"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	Message         *string `json:"message,omitempty"`
	EventID         string  `json:"eventId"`
	CreatedAt       string  `json:"createdAt"`
}

// BookingsResponse HTTP response model for the day listing.
type BookingsResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromBookings converts journal entries into the HTTP response. The
// slice is always non-nil so an empty day serializes as [].
func FromBookings(date time.Time, bookings []*domain.Booking) *BookingsResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingResponse{
			Reference:       b.Reference,
			Name:            b.Name,
			Phone:           b.Phone,
			Email:           b.Email,
			Date:            b.Date.Format(domain.DateFormat),
			Time:            b.StartTime.String(),
			DurationMinutes: b.DurationMinutes,
			Message:         b.Message,
			EventID:         b.EventID,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		})
	}

	return &BookingsResponse{
		Date:     date.Format(domain.DateFormat),
		Bookings: out,
	}
}
