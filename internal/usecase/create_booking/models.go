package create_booking

import (
	"time"

	"github.com/tfdeleon/bdnetworking/pkg/types"
)

// Request is a visitor's booking submission.
type Request struct {
	Name         string
	Phone        *string
	Email        string
	Date         time.Time
	StartTime    types.TimeString
	Message      *string
	CaptchaToken string
}

// Response describes the committed booking.
type Response struct {
	Reference       string
	Name            string
	Email           string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	EventID         string
}
