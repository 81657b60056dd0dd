package mailer

import "errors"

// ErrSendFailed is returned when the confirmation email could not be
// delivered to the SMTP server. Callers log it and move on; the
// booking does not depend on it.
var ErrSendFailed = errors.New("mailer: failed to send confirmation email")
