package reserve_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
	"github.com/revivatech/RT-AvailabilityService/internal/infra/reservations"
)

// UseCase use case резервации слота на время checkout
// Перед созданием резервации проверяет, что слот существует в расписании
// и его ёмкость не исчерпана подтверждёнными бронированиями.
// Сама гарантия эксклюзивности (ровно одна живая резервация на слот)
// обеспечивается атомарным Create хранилища, не этим кодом
type UseCase struct {
	store        ReservationStore
	schedule     ScheduleGenerator
	bookingRepo  BookingCounter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store ReservationStore,
	schedule ScheduleGenerator,
	bookingRepo BookingCounter,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		schedule:     schedule,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case резервации слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSlot: slot=%s, duration=%d", req.SlotID, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. slotId обязан раскладываться на дату и время
	date, _, err := domain.ParseSlotID(req.SlotID)
	if err != nil {
		uc.logger.Warn("ReserveSlot: malformed slot id %q: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotID, err)
	}

	// 3. Дата слота не может быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(date, now) {
		uc.logger.Warn("ReserveSlot: slot %s is in the past", req.SlotID)
		return nil, ErrInvalidDate
	}

	// 4. Проверяем, что слот существует и доступен по расписанию
	counts, err := uc.bookingRepo.CountBySlot(ctx, date)
	if err != nil {
		uc.logger.Error("ReserveSlot: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	slots, err := uc.schedule.SlotsForDate(date, now, 0, counts)
	if err != nil {
		uc.logger.Error("ReserveSlot: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	slot := findSlot(slots, req.SlotID)
	if slot == nil || !slot.ScheduleAvailable {
		uc.logger.Warn("ReserveSlot: slot %s is not schedule-available", req.SlotID)
		return nil, ErrSlotUnavailable
	}

	// 5. Создаем резервацию (атомарный insert-if-absent внутри хранилища)
	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultReservationMinutes
	}

	reservation, err := uc.store.Create(req.SlotID, duration, req.CustomerInfo)
	if err != nil {
		if errors.Is(err, reservations.ErrAlreadyReserved) {
			uc.logger.Warn("ReserveSlot: slot %s is already reserved", req.SlotID)
			return nil, ErrAlreadyReserved
		}
		uc.logger.Error("ReserveSlot: failed to create reservation for slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("ReserveSlot: slot %s reserved until %s",
		req.SlotID, reservation.ExpiresAt.Format(time.RFC3339))

	return &Response{
		SlotID:          reservation.SlotID,
		HoldToken:       reservation.HoldToken,
		ReservedAt:      reservation.ReservedAt,
		ExpiresAt:       reservation.ExpiresAt,
		DurationMinutes: int(reservation.ExpiresAt.Sub(reservation.ReservedAt).Minutes()),
	}, nil
}

func findSlot(slots []*domain.Slot, id string) *domain.Slot {
	for _, s := range slots {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
