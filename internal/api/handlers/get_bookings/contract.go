package get_bookings

import (
	"context"
	"time"

	"github.com/tfdeleon/bdnetworking/internal/domain"
)

// JournalReader lists committed bookings from the journal. The handler
// talks to the repository directly: the listing is a straight read with
// no business rules, so there is no use case layer in between.
type JournalReader interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
