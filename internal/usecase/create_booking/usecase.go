package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tfdeleon/bdnetworking/internal/domain"
	"github.com/tfdeleon/bdnetworking/internal/integrations/recaptcha"
)

// UseCase books a consultation slot against the external calendar.
//
// The availability a visitor saw earlier is never trusted: the slot
// interval is re-read from the store at write time, under a per-slot
// lock that serializes concurrent attempts for the same (date, time)
// within this process. The store offers no conditional write, so a
// narrow race window across process instances remains; a losing writer
// there produces a double-booking only a reconciliation read can find.
type UseCase struct {
	calendar     CalendarClient
	verifier     Verifier // nil when verification is disabled
	notifier     Notifier // nil when the mailer is disabled
	journal      JournalRepository
	availability AvailabilityProvider
	locker       SlotLocker
	policy       domain.WorkingHours
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase creates the booking use case.
func NewUseCase(
	calendar CalendarClient,
	verifier Verifier,
	notifier Notifier,
	journal JournalRepository,
	availability AvailabilityProvider,
	locker SlotLocker,
	policy domain.WorkingHours,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:     calendar,
		verifier:     verifier,
		notifier:     notifier,
		journal:      journal,
		availability: availability,
		locker:       locker,
		policy:       policy,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute runs the booking protocol: validate, verify, re-check the
// slot against the store, insert, then notify.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s",
		req.Email, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validation. Free, so it runs before anything external.
	if err := validateRequest(req, uc.verifier != nil); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Working-hours check, also before any external read.
	if !uc.policy.Contains(req.StartTime) {
		uc.logger.Warn("CreateBooking: time %s outside working hours [%s, %s)",
			req.StartTime, uc.policy.Start, uc.policy.End)
		return nil, ErrOutsideWorkingHours
	}

	// 3. Bot verification, before the store is touched, so unverified
	// traffic never costs a reservation attempt.
	if uc.verifier != nil {
		if err := uc.verifier.Verify(ctx, req.CaptchaToken); err != nil {
			if errors.Is(err, recaptcha.ErrVerificationFailed) {
				uc.logger.Warn("CreateBooking: captcha rejected for %s", req.Email)
				uc.metrics.IncVerificationFailed()
				return nil, ErrVerificationFailed
			}
			uc.logger.Error("CreateBooking: verifier error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrVerifierUnavailable, err)
		}
	}

	slotStart, err := req.StartTime.OnDate(uc.policy.Day(req.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	slotEnd := slotStart.Add(uc.policy.SlotDuration())

	booking := &domain.Booking{
		Reference:       uuid.NewString(),
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: uc.policy.SlotDurationMinutes,
		Message:         req.Message,
	}

	// 4-5. Conflict re-check and insert, serialized per slot key so two
	// in-process requests for the same slot cannot both pass the check.
	err = uc.locker.DoExclusive(ctx, booking.SlotKey(), func(ctx context.Context) error {
		reservations, err := uc.calendar.ListReservations(ctx, slotStart, slotEnd)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}

		for _, res := range reservations {
			if res.Overlaps(slotStart, slotEnd) {
				uc.logger.Warn("CreateBooking: slot %s already booked (event_id=%s)",
					booking.SlotKey(), res.EventID)
				return uc.conflict(ctx, req)
			}
		}

		inserted, err := uc.calendar.InsertReservation(ctx, domain.Reservation{
			Summary:     fmt.Sprintf("Consultation with %s", req.Name),
			Description: eventDescription(req),
			Start:       slotStart,
			End:         slotEnd,
		})
		if err != nil {
			// The store rejected the write, or a concurrent insert won
			// the race between the read above and this call. Either
			// way the slot cannot be handed out.
			uc.logger.Error("CreateBooking: insert failed for %s: %v", booking.SlotKey(), err)
			return uc.conflict(ctx, req)
		}

		booking.EventID = inserted.EventID
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: committed reference=%s, event_id=%s, slot=%s",
		booking.Reference, booking.EventID, booking.SlotKey())

	// 6. Side effects after the commit. Neither can undo the booking.
	uc.notify(booking)
	uc.record(ctx, booking)

	return &Response{
		Reference:       booking.Reference,
		Name:            booking.Name,
		Email:           booking.Email,
		Date:            booking.Date,
		StartTime:       booking.StartTime,
		DurationMinutes: booking.DurationMinutes,
		EventID:         booking.EventID,
	}, nil
}

// conflict builds the ConflictError, refreshing the day's availability
// so the client can recover without another round trip.
func (uc *UseCase) conflict(ctx context.Context, req *Request) error {
	uc.metrics.IncBookingConflict()

	availability, err := uc.availability.Availability(ctx, req.Date)
	if err != nil {
		// The conflict still stands; the client just gets no refreshed
		// choices and has to re-query.
		uc.logger.Error("CreateBooking: failed to refresh availability after conflict: %v", err)
		availability = domain.Availability{}
	}

	return &ConflictError{Availability: availability}
}

func (uc *UseCase) notify(booking *domain.Booking) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.SendConfirmation(booking); err != nil {
		uc.metrics.IncNotifyFailure()
		uc.logger.Error("CreateBooking: confirmation email failed for reference=%s: %v",
			booking.Reference, err)
	}
}

func (uc *UseCase) record(ctx context.Context, booking *domain.Booking) {
	if uc.journal == nil {
		return
	}
	if err := uc.journal.Record(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: journal write failed for reference=%s: %v",
			booking.Reference, err)
	}
}

func eventDescription(req *Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if req.Phone != nil {
		fmt.Fprintf(&b, "Phone: %s\n", *req.Phone)
	}
	if req.Message != nil {
		fmt.Fprintf(&b, "Message: %s\n", *req.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}
