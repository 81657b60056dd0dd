package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/tfdeleon/bdnetworking/pkg/types"
)

// WorkingHours is the daily booking policy: the bookable window and the
// slot granularity, in a single fixed time zone.
type WorkingHours struct {
	Start               types.TimeString
	End                 types.TimeString
	SlotDurationMinutes int
	Location            *time.Location
}

var ErrInvalidWorkingHours = errors.New("invalid working hours policy")

// Validate checks the policy invariants: start < end and a positive
// slot duration within business limits.
func (w WorkingHours) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidWorkingHours, err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidWorkingHours, err)
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWorkingHours, w.Start, w.End)
	}
	if w.SlotDurationMinutes < MinSlotDurationMinutes || w.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration %d minutes out of range", ErrInvalidWorkingHours, w.SlotDurationMinutes)
	}
	if w.Location == nil {
		return fmt.Errorf("%w: location is required", ErrInvalidWorkingHours)
	}
	return nil
}

// SlotDuration returns the slot granularity as a time.Duration.
func (w WorkingHours) SlotDuration() time.Duration {
	return time.Duration(w.SlotDurationMinutes) * time.Minute
}

// Contains reports whether a slot starting at t lies within the
// bookable window [Start, End).
func (w WorkingHours) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.Start) && t.IsBefore(w.End)
}

// Day pins a calendar date (year, month, day; the time-of-day and zone
// of the argument are ignored) to midnight in the policy's time zone.
func (w WorkingHours) Day(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, w.Location)
}

// DayWindow returns the [date+Start, date+End) interval for a calendar
// date, pinned to the policy's time zone.
func (w WorkingHours) DayWindow(date time.Time) (time.Time, time.Time, error) {
	day := w.Day(date)
	start, err := w.Start.OnDate(day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := w.End.OnDate(day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
