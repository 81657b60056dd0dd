package get_available_times

import (
	"errors"
	"net/http"
	"time"

	"github.com/tfdeleon/bdnetworking/internal/api/handlers"
	"github.com/tfdeleon/bdnetworking/internal/domain"
	getAvailableTimes "github.com/tfdeleon/bdnetworking/internal/usecase/get_available_times"
)

const (
	msgDateRequired = "date query parameter is required"
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-times?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /available-times - Missing date parameter")
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /available-times - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /available-times - Invalid input: date=%s, error=%v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /available-times - Failed to compute availability: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-times - OK: date=%s, slots=%d, booked=%d",
		rawDate, len(result.Availability.Slots), len(result.Availability.BookedTimes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
