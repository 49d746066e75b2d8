package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationStore "github.com/revivatech/RT-AvailabilityService/internal/infra/reservations"
)

// Service сервис управления жизненным циклом резерваций
// Продление и снятие - тонкие операции над хранилищем; проверка расписания
// нужна только при создании, поэтому создание живёт в отдельном use case
type Service struct {
	store  ReservationStore
	logger Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(store ReservationStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Extend продлевает резервацию слота на additionalMinutes минут
// Итоговый срок жизни резервации никогда не превышает 60 минут с момента создания
func (s *Service) Extend(_ context.Context, slotID string, additionalMinutes int) (time.Time, error) {
	if slotID == "" {
		return time.Time{}, fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}
	if additionalMinutes <= 0 {
		return time.Time{}, fmt.Errorf("%w: additionalTime must be positive", ErrInvalidInput)
	}

	newExpiry, err := s.store.Extend(slotID, additionalMinutes)
	if err != nil {
		switch {
		case errors.Is(err, reservationStore.ErrNotFound):
			s.logger.Warn("Extend: reservation for slot %s not found", slotID)
			return time.Time{}, ErrNotFound
		case errors.Is(err, reservationStore.ErrExpired):
			s.logger.Warn("Extend: reservation for slot %s has expired", slotID)
			return time.Time{}, ErrExpired
		default:
			s.logger.Error("Extend: store error for slot %s: %v", slotID, err)
			return time.Time{}, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Extend: slot %s extended until %s", slotID, newExpiry.Format(time.RFC3339))
	return newExpiry, nil
}

// Release снимает резервацию со слота
// Возвращает true, если резервация действительно была удалена;
// повторное снятие - не ошибка
func (s *Service) Release(_ context.Context, slotID string) (bool, error) {
	if slotID == "" {
		return false, fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	removed := s.store.Release(slotID)
	if removed {
		s.logger.Info("Release: reservation for slot %s released", slotID)
	} else {
		s.logger.Info("Release: no reservation found for slot %s", slotID)
	}
	return removed, nil
}
