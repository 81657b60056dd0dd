package types

import (
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString is a wall-clock time of day in "HH:MM" (24h, zero-padded).
// It is the canonical key for a slot.
type TimeString string

var ErrInvalidTimeString = errors.New("invalid time string, expected HH:MM")

// NewTimeString truncates t to minutes and converts it to a TimeString.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the "HH:MM" format.
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	// time.Parse accepts "9:04"; the canonical form is zero-padded.
	if parsed.Format(timeLayout) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// "HH:MM" strings compare correctly as plain strings.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// OnDate pins the time of day onto the given calendar date in date's location.
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

func (t TimeString) String() string {
	return string(t)
}
