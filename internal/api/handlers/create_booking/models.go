package create_booking

import (
	"time"

	"github.com/tfdeleon/bdnetworking/internal/domain"
	createBooking "github.com/tfdeleon/bdnetworking/internal/usecase/create_booking"
	"github.com/tfdeleon/bdnetworking/pkg/types"
)

// CreateBookingRequest HTTP request model.
type CreateBookingRequest struct {
	Name           string  `json:"name"`
	Phone          *string `json:"phone,omitempty"`
	Email          string  `json:"email"`
	Date           string  `json:"date"` // "2026-03-14"
	Time           string  `json:"time"` // "10:00"
	Message        *string `json:"message,omitempty"`
	RecaptchaToken string  `json:"recaptchaToken"`
}

// BookingResponse HTTP response model.
type BookingResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// ConflictResponse is the 409 body: the rejection plus a fresh view of
// the day so the client can re-offer valid slots without another call.
type ConflictResponse struct {
	Error          string   `json:"error"`
	AvailableTimes []string `json:"availableTimes"`
	BookedTimes    []string `json:"bookedTimes"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and time.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		Date:         date,
		StartTime:    startTime,
		Message:      r.Message,
		CaptchaToken: r.RecaptchaToken,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP
// response.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Success:   true,
		Reference: resp.Reference,
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.StartTime.String(),
	}
}

// FromConflict converts the typed conflict into the 409 body.
func FromConflict(message string, availability domain.Availability) *ConflictResponse {
	available := make([]string, 0, len(availability.Slots))
	for _, slot := range availability.Slots {
		available = append(available, slot.Value.String())
	}

	booked := make([]string, 0, len(availability.BookedTimes))
	for _, key := range availability.BookedTimes {
		booked = append(booked, key.String())
	}

	return &ConflictResponse{
		Error:          message,
		AvailableTimes: available,
		BookedTimes:    booked,
	}
}
