package get_available_times

import (
	"time"

	"github.com/tfdeleon/bdnetworking/internal/domain"
)

// Request is the availability query for one day.
type Request struct {
	Date time.Time
}

// Response carries the slot grid and the taken keys for the day.
type Response struct {
	Date         time.Time
	Availability domain.Availability
}
