package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid last minute", input: "23:59", want: "23:59"},
		{name: "not zero padded", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "with seconds", input: "10:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Seconds are truncated, zone is respected.
	ts := NewTimeString(time.Date(2026, 3, 14, 9, 30, 45, 0, loc))
	assert.Equal(t, TimeString("09:30"), ts)
}

func TestTimeStringAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "within hour", start: "09:00", minutes: 30, want: "09:30"},
		{name: "across hour", start: "09:45", minutes: 30, want: "10:15"},
		{name: "wraps midnight", start: "23:45", minutes: 30, want: "00:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeStringOnDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)
	got, err := TimeString("10:30").OnDate(day)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 14, 10, 30, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
