package create_booking

import (
	"errors"

	"github.com/tfdeleon/bdnetworking/internal/domain"
)

var (
	// ErrInvalidInput is returned when required fields are missing or
	// malformed.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrOutsideWorkingHours is returned when the requested time does
	// not lie within the bookable window. Checked before any external
	// call, since it is free.
	ErrOutsideWorkingHours = errors.New("create_booking: selected time is outside of working hours")

	// ErrVerificationFailed is returned when the bot-challenge token
	// is rejected.
	ErrVerificationFailed = errors.New("create_booking: captcha verification failed")

	// ErrVerifierUnavailable is returned when the verifier itself
	// cannot answer.
	ErrVerifierUnavailable = errors.New("create_booking: captcha verifier unavailable")

	// ErrCalendarUnavailable is returned when the external store
	// cannot be read for the conflict check.
	ErrCalendarUnavailable = errors.New("create_booking: calendar unavailable")

	// ErrInternal is returned on internal failures.
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError is an ErrInvalidInput with the reason spelled out,
// safe to show to the visitor.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "create_booking: invalid input data: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ConflictError is returned when the requested slot overlaps an
// existing reservation. It carries freshly recomputed availability so
// the client can re-offer valid choices without a second round trip.
type ConflictError struct {
	Availability domain.Availability
}

func (e *ConflictError) Error() string {
	return "create_booking: time slot already booked"
}
