package googlecalendar

import "errors"

var (
	// ErrMissingCredentials is returned at construction time when the
	// OAuth client or tokens are not configured. The process must not
	// start without them.
	ErrMissingCredentials = errors.New("googlecalendar client: missing credentials")

	// ErrInvalidCredentials is returned when the configured tokens
	// cannot be parsed.
	ErrInvalidCredentials = errors.New("googlecalendar client: invalid credentials")

	// ErrUnavailable is returned when the calendar API call fails.
	ErrUnavailable = errors.New("googlecalendar client: calendar unavailable")

	// ErrInvalidResponse is returned when the calendar API returns
	// data the client cannot interpret.
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")
)
