// Package slots derives the bookable slot grid for a day from the
// working-hours policy and marks the slots taken by existing
// reservations. It is pure: no I/O, deterministic, safe for concurrent
// use.
package slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/tfdeleon/bdnetworking/internal/domain"
	"github.com/tfdeleon/bdnetworking/pkg/types"
)

// Grid computes the ordered slot grid for a calendar date. Slots are
// emitted chronologically from policy.Start with a fixed step of
// policy.SlotDurationMinutes; a remainder slot whose end would cross
// policy.End is dropped.
func Grid(date time.Time, policy domain.WorkingHours) ([]domain.TimeSlot, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	start, end, err := policy.DayWindow(date)
	if err != nil {
		return nil, fmt.Errorf("compute day window: %w", err)
	}

	step := time.Duration(policy.SlotDurationMinutes) * time.Minute

	var grid []domain.TimeSlot
	for cursor := start; cursor.Before(end); cursor = cursor.Add(step) {
		if cursor.Add(step).After(end) {
			break
		}
		value := types.NewTimeString(cursor)
		grid = append(grid, domain.TimeSlot{
			Value: value,
			Label: FormatTo12Hour(value),
		})
	}

	return grid, nil
}

// Partition marks each grid slot as booked when its interval overlaps
// any reservation. The full grid is returned, booked slots included;
// BookedTimes carries the taken keys. A reservation starting off-grid
// still contributes its truncated start key to BookedTimes even though
// no grid slot matches it.
func Partition(grid []domain.TimeSlot, reservations []domain.Reservation, date time.Time, policy domain.WorkingHours) domain.Availability {
	booked := make(map[types.TimeString]struct{})

	day := policy.Day(date)
	step := time.Duration(policy.SlotDurationMinutes) * time.Minute

	for _, slot := range grid {
		slotStart, err := slot.Value.OnDate(day)
		if err != nil {
			continue
		}
		slotEnd := slotStart.Add(step)
		for _, res := range reservations {
			if res.Overlaps(slotStart, slotEnd) {
				booked[slot.Value] = struct{}{}
				break
			}
		}
	}

	for _, res := range reservations {
		booked[res.StartKey(policy.Location)] = struct{}{}
	}

	keys := make([]types.TimeString, 0, len(booked))
	for key := range booked {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].IsBefore(keys[j]) })

	return domain.Availability{
		Slots:       grid,
		BookedTimes: keys,
	}
}

// FormatTo12Hour renders a canonical "HH:MM" value as "H:MM AM/PM".
// Hour 0 and hour 12 both render as 12; AM iff hour < 12.
func FormatTo12Hour(value types.TimeString) string {
	parsed, err := time.Parse(domain.TimeFormat, value.String())
	if err != nil {
		return value.String()
	}

	hour := parsed.Hour()
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour12, parsed.Minute(), ampm)
}
