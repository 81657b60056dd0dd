package create_booking

import (
	"context"
	"time"

	"github.com/tfdeleon/bdnetworking/internal/domain"
)

// CalendarClient is the external calendar store, addressed by its two
// operations only.
type CalendarClient interface {
	ListReservations(ctx context.Context, timeMin, timeMax time.Time) ([]domain.Reservation, error)
	InsertReservation(ctx context.Context, res domain.Reservation) (domain.Reservation, error)
}

// Verifier is the external bot-challenge verifier.
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

// Notifier sends the booking confirmation. Best-effort; failures are
// logged, never surfaced to the visitor.
type Notifier interface {
	SendConfirmation(booking *domain.Booking) error
}

// JournalRepository records committed bookings locally. Optional.
type JournalRepository interface {
	Record(ctx context.Context, booking *domain.Booking) error
}

// AvailabilityProvider recomputes the day's availability for the
// conflict response.
type AvailabilityProvider interface {
	Availability(ctx context.Context, date time.Time) (domain.Availability, error)
}

// SlotLocker serializes the conflict-check-then-insert sequence for
// one slot key within this process.
type SlotLocker interface {
	DoExclusive(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// MetricsRecorder counts booking outcomes. Implementations tolerate a
// nil receiver.
type MetricsRecorder interface {
	IncBookingCreated()
	IncBookingConflict()
	IncVerificationFailed()
	IncNotifyFailure()
}

// Logger is the logging interface the use case depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
