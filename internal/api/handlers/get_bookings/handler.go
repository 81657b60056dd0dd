package get_bookings

import (
	"net/http"
	"time"

	"github.com/tfdeleon/bdnetworking/internal/api/handlers"
	"github.com/tfdeleon/bdnetworking/internal/domain"
)

const (
	msgDateRequired       = "date query parameter is required"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgJournalUnavailable = "booking journal is not enabled"
)

type Handler struct {
	journal JournalReader
	logger  Logger
}

// NewHandler creates the journal listing handler. journal may be nil
// when the database is disabled in config; the route then answers 503.
func NewHandler(journal JournalReader, logger Logger) *Handler {
	return &Handler{
		journal: journal,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.journal == nil {
		handlers.RespondServiceUnavailable(w, msgJournalUnavailable)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /bookings - Missing date parameter")
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	bookings, err := h.journal.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list journal: date=%s, error=%v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - OK: date=%s, count=%d", rawDate, len(bookings))
	handlers.RespondJSON(w, http.StatusOK, FromBookings(date, bookings))
}
