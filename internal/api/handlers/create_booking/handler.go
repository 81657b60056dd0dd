package create_booking

import (
	"errors"
	"net/http"

	"github.com/tfdeleon/bdnetworking/internal/api/handlers"
	createBooking "github.com/tfdeleon/bdnetworking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDateOrTime   = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput        = "name, email, date and time are required"
	msgOutsideWorkingHours = "selected time is outside of working hours"
	msgVerificationFailed  = "captcha verification failed"
	msgVerifierUnavailable = "captcha verification is temporarily unavailable"
	msgSlotAlreadyBooked   = "this time slot is already booked"
	msgCalendarUnavailable = "booking is temporarily unavailable"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createBooking.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Slot already booked: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondJSON(w, http.StatusConflict,
				FromConflict(msgSlotAlreadyBooked, conflict.Availability))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrVerificationFailed):
			h.logger.Warn("POST /bookings - Captcha rejected: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgVerificationFailed)

		case errors.Is(err, createBooking.ErrVerifierUnavailable):
			h.logger.Error("POST /bookings - Captcha verifier unavailable: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgVerifierUnavailable)

		case errors.Is(err, createBooking.ErrCalendarUnavailable):
			h.logger.Error("POST /bookings - Calendar unavailable: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCalendarUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: reference=%s, date=%s, time=%s",
		result.Reference, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// validationMessage surfaces the specific validation reason when the
// use case provides one, so the client learns which field to correct.
func validationMessage(err error) string {
	var validation *createBooking.ValidationError
	if errors.As(err, &validation) {
		return validation.Reason
	}
	return msgInvalidInput
}
