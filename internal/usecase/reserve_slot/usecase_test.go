package reserve_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
	"github.com/revivatech/RT-AvailabilityService/internal/infra/reservations"
	"github.com/revivatech/RT-AvailabilityService/pkg/types"
)

type fakeStore struct {
	created map[string]bool
}

func (f *fakeStore) Create(slotID string, durationMinutes int, customerInfo map[string]interface{}) (*domain.Reservation, error) {
	if f.created == nil {
		f.created = make(map[string]bool)
	}
	if f.created[slotID] {
		return nil, reservations.ErrAlreadyReserved
	}
	f.created[slotID] = true

	reservedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		SlotID:     slotID,
		HoldToken:  "token-1",
		ReservedAt: reservedAt,
		ExpiresAt:  reservedAt.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

type fakeSchedule struct {
	slots []*domain.Slot
}

func (f *fakeSchedule) SlotsForDate(date, now time.Time, durationMinutes int, counts map[string]int) ([]*domain.Slot, error) {
	return f.slots, nil
}

type fakeBookingCounter struct{}

func (f *fakeBookingCounter) CountBySlot(ctx context.Context, date time.Time) (map[string]int, error) {
	return nil, nil
}

type fakeTimeProvider struct {
	current time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.current }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(schedule *fakeSchedule) (*UseCase, *fakeStore) {
	store := &fakeStore{}
	uc := NewUseCase(store, schedule, &fakeBookingCounter{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc, store
}

func scheduleWith(id string, available bool) *fakeSchedule {
	return &fakeSchedule{slots: []*domain.Slot{{
		ID:                id,
		Date:              time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:         types.TimeString("09:00"),
		Capacity:          3,
		ScheduleAvailable: available,
	}}}
}

func TestUseCase_Execute(t *testing.T) {
	uc, _ := newTestUseCase(scheduleWith("2026-03-02-0900-1", true))

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:          "2026-03-02-0900-1",
		DurationMinutes: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02-0900-1", resp.SlotID)
	assert.Equal(t, "token-1", resp.HoldToken)
	assert.Equal(t, 20, resp.DurationMinutes)
	assert.Equal(t, resp.ReservedAt.Add(20*time.Minute), resp.ExpiresAt)
}

func TestUseCase_Execute_DefaultDuration(t *testing.T) {
	uc, _ := newTestUseCase(scheduleWith("2026-03-02-0900-1", true))

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "2026-03-02-0900-1"})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultReservationMinutes, resp.DurationMinutes)
}

func TestUseCase_Execute_InvalidSlotID(t *testing.T) {
	uc, _ := newTestUseCase(&fakeSchedule{})

	cases := []string{
		"garbage",
		"2026-03-02-0900",     // нет номера
		"2026-13-45-0900-1",   // невозможная дата
		"2026-03-02-9900-1",   // невозможное время
		"2026-03-02-0900-abc", // нечисловой номер
	}
	for _, slotID := range cases {
		_, err := uc.Execute(context.Background(), &Request{SlotID: slotID})
		assert.ErrorIs(t, err, ErrInvalidSlotID, "slotID=%q", slotID)
	}
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	uc, _ := newTestUseCase(&fakeSchedule{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "2026-02-20-0900-1"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_SlotNotInSchedule(t *testing.T) {
	uc, _ := newTestUseCase(scheduleWith("2026-03-02-0900-1", true))

	// Дата корректна, но такого слота в расписании нет
	_, err := uc.Execute(context.Background(), &Request{SlotID: "2026-03-02-2300-9"})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUseCase_Execute_SlotFullyBooked(t *testing.T) {
	uc, _ := newTestUseCase(scheduleWith("2026-03-02-0900-1", false))

	_, err := uc.Execute(context.Background(), &Request{SlotID: "2026-03-02-0900-1"})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUseCase_Execute_AlreadyReserved(t *testing.T) {
	uc, _ := newTestUseCase(scheduleWith("2026-03-02-0900-1", true))

	_, err := uc.Execute(context.Background(), &Request{SlotID: "2026-03-02-0900-1"})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{SlotID: "2026-03-02-0900-1"})
	assert.ErrorIs(t, err, ErrAlreadyReserved)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(&fakeSchedule{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		SlotID:          "2026-03-02-0900-1",
		DurationMinutes: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "короче минимальных 5 минут")

	_, err = uc.Execute(context.Background(), &Request{
		SlotID:          "2026-03-02-0900-1",
		DurationMinutes: 90,
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "дольше максимальных 60 минут")
}
