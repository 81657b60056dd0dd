package get_available_times

import (
	"context"
	"fmt"
	"time"

	"github.com/tfdeleon/bdnetworking/internal/domain"
	"github.com/tfdeleon/bdnetworking/internal/slots"
)

// UseCase computes the availability picture for a day: the slot grid
// from the working-hours policy plus the subset already taken in the
// external calendar. It is recomputed on every request and never
// cached; the external store is the sole source of truth and can
// change between requests.
type UseCase struct {
	calendar CalendarClient
	policy   domain.WorkingHours
	logger   Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(calendar CalendarClient, policy domain.WorkingHours, logger Logger) *UseCase {
	return &UseCase{
		calendar: calendar,
		policy:   policy,
		logger:   logger,
	}
}

// Execute returns the availability for the requested date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableTimes: missing date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	availability, err := uc.Availability(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableTimes: date=%s, slots=%d, booked=%d",
		req.Date.Format(domain.DateFormat), len(availability.Slots), len(availability.BookedTimes))

	return &Response{
		Date:         req.Date,
		Availability: availability,
	}, nil
}

// Availability queries the store for the day's reservations and
// partitions the slot grid against them. Also used by the booking
// flow to refresh availability after a conflict.
func (uc *UseCase) Availability(ctx context.Context, date time.Time) (domain.Availability, error) {
	windowStart, windowEnd, err := uc.policy.DayWindow(date)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("%w: compute day window: %v", ErrInvalidInput, err)
	}

	reservations, err := uc.calendar.ListReservations(ctx, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to list reservations for %s: %v",
			date.Format(domain.DateFormat), err)
		return domain.Availability{}, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	grid, err := slots.Grid(date, uc.policy)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("%w: compute slot grid: %v", ErrInternal, err)
	}

	return slots.Partition(grid, reservations, date, uc.policy), nil
}
