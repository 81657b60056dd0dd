package get_available_times

import "errors"

var (
	// ErrInvalidInput is returned when the request is malformed.
	ErrInvalidInput = errors.New("get_available_times: invalid input data")

	// ErrCalendarUnavailable is returned when the external calendar
	// store cannot be queried.
	ErrCalendarUnavailable = errors.New("get_available_times: calendar unavailable")

	// ErrInternal is returned on internal failures.
	ErrInternal = errors.New("get_available_times: internal error")
)
