package recaptcha

import "errors"

var (
	// ErrVerificationFailed is returned when the verifier rejects the
	// submitted token.
	ErrVerificationFailed = errors.New("recaptcha client: verification failed")

	// ErrUnavailable is returned when the verifier cannot be reached
	// or answers with an unexpected status.
	ErrUnavailable = errors.New("recaptcha client: verifier unavailable")

	// ErrInvalidResponse is returned when the verifier's response body
	// cannot be decoded.
	ErrInvalidResponse = errors.New("recaptcha client: invalid response")
)
