package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfdeleon/bdnetworking/pkg/types"
)

func testPolicy(t *testing.T) WorkingHours {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return WorkingHours{
		Start:               "09:00",
		End:                 "17:00",
		SlotDurationMinutes: 30,
		Location:            loc,
	}
}

func TestWorkingHoursValidate(t *testing.T) {
	base := testPolicy(t)

	tests := []struct {
		name    string
		mutate  func(*WorkingHours)
		wantErr bool
	}{
		{name: "valid", mutate: func(w *WorkingHours) {}},
		{name: "start after end", mutate: func(w *WorkingHours) { w.Start = "18:00" }, wantErr: true},
		{name: "start equals end", mutate: func(w *WorkingHours) { w.Start = w.End }, wantErr: true},
		{name: "bad start format", mutate: func(w *WorkingHours) { w.Start = "9:00" }, wantErr: true},
		{name: "duration too small", mutate: func(w *WorkingHours) { w.SlotDurationMinutes = 1 }, wantErr: true},
		{name: "duration too large", mutate: func(w *WorkingHours) { w.SlotDurationMinutes = 600 }, wantErr: true},
		{name: "missing location", mutate: func(w *WorkingHours) { w.Location = nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := base
			tt.mutate(&policy)
			err := policy.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidWorkingHours)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWorkingHoursContains(t *testing.T) {
	policy := testPolicy(t)

	assert.True(t, policy.Contains("09:00"), "window start is bookable")
	assert.True(t, policy.Contains("16:30"))
	assert.False(t, policy.Contains("17:00"), "window end is exclusive")
	assert.False(t, policy.Contains("08:59"))
	assert.False(t, policy.Contains("20:00"))
}

func TestWorkingHoursDayIgnoresArgumentZone(t *testing.T) {
	policy := testPolicy(t)

	// A date parsed from "2026-03-14" carries UTC midnight; pinning it
	// must not slide to the previous day in the policy zone.
	parsed := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	day := policy.Day(parsed)

	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 14, day.Day())
	assert.Equal(t, policy.Location, day.Location())
}

func TestWorkingHoursDayWindow(t *testing.T) {
	policy := testPolicy(t)

	start, end, err := policy.DayWindow(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 14, 9, 0, 0, 0, policy.Location), start)
	assert.Equal(t, time.Date(2026, 3, 14, 17, 0, 0, 0, policy.Location), end)
}

func TestBookingSlotKey(t *testing.T) {
	booking := Booking{
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
	}
	assert.Equal(t, "2026-03-14 10:00", booking.SlotKey())
}
