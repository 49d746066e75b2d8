package reserve_slot

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reserveSlot "github.com/revivatech/RT-AvailabilityService/internal/usecase/reserve_slot"
)

type fakeUseCase struct {
	resp *reserveSlot.Response
	err  error

	gotReq *reserveSlot.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *reserveSlot.Request) (*reserveSlot.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/availability/slots",
		bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	reservedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &reserveSlot.Response{
		SlotID:          "2026-03-02-0900-1",
		HoldToken:       "token-1",
		ReservedAt:      reservedAt,
		ExpiresAt:       reservedAt.Add(15 * time.Minute),
		DurationMinutes: 15,
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"slotId":"2026-03-02-0900-1","duration":15}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ReserveSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "2026-03-02-0900-1", resp.SlotID)
	assert.Equal(t, "token-1", resp.HoldToken)
	assert.Equal(t, reservedAt.UnixMilli(), resp.ReservedAt)
	assert.Equal(t, reservedAt.Add(15*time.Minute).UnixMilli(), resp.ExpiresAt)
	assert.Equal(t, 15, resp.Duration)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, 15, uc.gotReq.DurationMinutes)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"malformed slot id", reserveSlot.ErrInvalidSlotID, http.StatusBadRequest},
		{"past date", reserveSlot.ErrInvalidDate, http.StatusBadRequest},
		{"invalid input", reserveSlot.ErrInvalidInput, http.StatusBadRequest},
		{"slot unavailable", reserveSlot.ErrSlotUnavailable, http.StatusConflict},
		{"already reserved", reserveSlot.ErrAlreadyReserved, http.StatusConflict},
		{"internal", reserveSlot.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tc.err}, nopLogger{})

			rec := doRequest(t, h, `{"slotId":"2026-03-02-0900-1"}`)

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
