package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfdeleon/bdnetworking/internal/domain"
	createBooking "github.com/tfdeleon/bdnetworking/internal/usecase/create_booking"
	"github.com/tfdeleon/bdnetworking/pkg/types"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"name": "Ada Lovelace",
	"phone": "+1 555 0100",
	"email": "ada@example.com",
	"date": "2026-03-14",
	"time": "10:00",
	"message": "Hi",
	"recaptchaToken": "tok-123"
}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			Reference: "ref-123",
			Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			StartTime: types.TimeString("10:00"),
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := post(h, validBody)

	require.Equal(t, http.StatusOK, rec.Code)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ref-123", body.Reference)
	assert.Equal(t, "2026-03-14", body.Date)
	assert.Equal(t, "10:00", body.Time)

	// Request is parsed into the use case model.
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "Ada Lovelace", uc.gotReq.Name)
	assert.Equal(t, types.TimeString("10:00"), uc.gotReq.StartTime)
	assert.Equal(t, "tok-123", uc.gotReq.CaptchaToken)
}

func TestHandleMalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	rec := post(h, `{"name": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestHandleUnparseableDateOrTime(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	tests := []struct {
		name string
		body string
	}{
		{name: "bad date", body: `{"name":"A","email":"a@b.c","date":"14-03-2026","time":"10:00"}`},
		{name: "bad time", body: `{"name":"A","email":"a@b.c","date":"2026-03-14","time":"10am"}`},
		{name: "unpadded time", body: `{"name":"A","email":"a@b.c","date":"2026-03-14","time":"9:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleUseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "outside working hours", err: createBooking.ErrOutsideWorkingHours, wantStatus: http.StatusBadRequest},
		{name: "verification failed", err: createBooking.ErrVerificationFailed, wantStatus: http.StatusBadRequest},
		{name: "verifier unavailable", err: createBooking.ErrVerifierUnavailable, wantStatus: http.StatusInternalServerError},
		{name: "calendar unavailable", err: createBooking.ErrCalendarUnavailable, wantStatus: http.StatusInternalServerError},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, noopLogger{})
			rec := post(h, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleValidationReasonSurfaced(t *testing.T) {
	h := NewHandler(&fakeUseCase{
		err: &createBooking.ValidationError{Reason: "captcha token is required"},
	}, noopLogger{})

	rec := post(h, validBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "captcha token is required", body.Error,
		"the specific validation reason reaches the client")
}

func TestHandleConflict(t *testing.T) {
	uc := &fakeUseCase{
		err: &createBooking.ConflictError{
			Availability: domain.Availability{
				Slots: []domain.TimeSlot{
					{Value: "09:00", Label: "9:00 AM"},
					{Value: "10:00", Label: "10:00 AM"},
				},
				BookedTimes: []types.TimeString{"10:00"},
			},
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := post(h, validBody)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "this time slot is already booked", body.Error)
	assert.Equal(t, []string{"09:00", "10:00"}, body.AvailableTimes)
	assert.Equal(t, []string{"10:00"}, body.BookedTimes)
}
