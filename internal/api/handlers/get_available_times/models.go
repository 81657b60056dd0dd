package get_available_times

import (
	"github.com/tfdeleon/bdnetworking/internal/domain"
	getAvailableTimes "github.com/tfdeleon/bdnetworking/internal/usecase/get_available_times"
)

// SlotResponse is one offered slot: canonical value plus display label.
type SlotResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AvailableTimesResponse HTTP response model.
type AvailableTimesResponse struct {
	Date           string         `json:"date"`
	AvailableTimes []SlotResponse `json:"availableTimes"`
	BookedTimes    []string       `json:"bookedTimes"`
}

// FromUseCaseResponse converts the use case result into the HTTP
// response. Slices are always non-nil so clients get [] rather than
// null for an empty day.
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	slots := make([]SlotResponse, 0, len(resp.Availability.Slots))
	for _, slot := range resp.Availability.Slots {
		slots = append(slots, SlotResponse{
			Value: slot.Value.String(),
			Label: slot.Label,
		})
	}

	booked := make([]string, 0, len(resp.Availability.BookedTimes))
	for _, key := range resp.Availability.BookedTimes {
		booked = append(booked, key.String())
	}

	return &AvailableTimesResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableTimes: slots,
		BookedTimes:    booked,
	}
}
