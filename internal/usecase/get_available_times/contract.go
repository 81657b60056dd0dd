package get_available_times

import (
	"context"
	"time"

	"github.com/tfdeleon/bdnetworking/internal/domain"
)

// CalendarClient is the read side of the external calendar store.
type CalendarClient interface {
	ListReservations(ctx context.Context, timeMin, timeMax time.Time) ([]domain.Reservation, error)
}

// Logger is the logging interface the use case depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
