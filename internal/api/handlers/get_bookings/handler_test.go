package get_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfdeleon/bdnetworking/internal/domain"
	"github.com/tfdeleon/bdnetworking/pkg/types"
)

type fakeJournal struct {
	bookings []*domain.Booking
	err      error

	gotDate time.Time
}

func (f *fakeJournal) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	f.gotDate = date
	return f.bookings, f.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandleOK(t *testing.T) {
	journal := &fakeJournal{
		bookings: []*domain.Booking{
			{
				Reference:       "ref-1",
				Name:            "Ada Lovelace",
				Email:           "ada@example.com",
				Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
				StartTime:       types.TimeString("10:00"),
				DurationMinutes: 30,
				EventID:         "evt-1",
				CreatedAt:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	h := NewHandler(journal, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body BookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-03-14", body.Date)
	require.Len(t, body.Bookings, 1)
	assert.Equal(t, "ref-1", body.Bookings[0].Reference)
	assert.Equal(t, "10:00", body.Bookings[0].Time)
}

func TestHandleEmptyDaySerializesArray(t *testing.T) {
	h := NewHandler(&fakeJournal{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bookings":[]`)
}

func TestHandleJournalDisabled(t *testing.T) {
	h := NewHandler(nil, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleMissingDate(t *testing.T) {
	h := NewHandler(&fakeJournal{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleJournalError(t *testing.T) {
	h := NewHandler(&fakeJournal{err: errors.New("db down")}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
