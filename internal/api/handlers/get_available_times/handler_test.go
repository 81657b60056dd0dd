package get_available_times

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfdeleon/bdnetworking/internal/domain"
	getAvailableTimes "github.com/tfdeleon/bdnetworking/internal/usecase/get_available_times"
	"github.com/tfdeleon/bdnetworking/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableTimes.Response
	err  error

	gotDate time.Time
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableTimes.Request) (*getAvailableTimes.Response, error) {
	f.gotDate = req.Date
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandleOK(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &getAvailableTimes.Response{
			Date: date,
			Availability: domain.Availability{
				Slots: []domain.TimeSlot{
					{Value: "09:00", Label: "9:00 AM"},
					{Value: "09:30", Label: "9:30 AM"},
				},
				BookedTimes: []types.TimeString{"09:00"},
			},
		},
	}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, date, uc.gotDate)

	var body AvailableTimesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-03-14", body.Date)
	require.Len(t, body.AvailableTimes, 2)
	assert.Equal(t, SlotResponse{Value: "09:00", Label: "9:00 AM"}, body.AvailableTimes[0])
	assert.Equal(t, []string{"09:00"}, body.BookedTimes)
}

func TestHandleEmptyDaySerializesArrays(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailableTimes.Response{
			Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Availability: domain.Availability{},
		},
	}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"availableTimes":[]`)
	assert.Contains(t, rec.Body.String(), `"bookedTimes":[]`)
}

func TestHandleMissingDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "date query parameter is required")
}

func TestHandleInvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	for _, raw := range []string{"14-03-2026", "2026/03/14", "tomorrow"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times?date="+raw, nil)
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "date=%s", raw)
	}
}

func TestHandleCalendarUnavailable(t *testing.T) {
	uc := &fakeUseCase{err: getAvailableTimes.ErrCalendarUnavailable}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-times?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
