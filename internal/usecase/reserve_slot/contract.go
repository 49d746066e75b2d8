package reserve_slot

import (
	"context"
	"time"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
)

// ReservationStore интерфейс хранилища резерваций
type ReservationStore interface {
	Create(slotID string, durationMinutes int, customerInfo map[string]interface{}) (*domain.Reservation, error)
}

// ScheduleGenerator интерфейс генератора сырых слотов ёмкости
type ScheduleGenerator interface {
	SlotsForDate(date, now time.Time, durationMinutes int, counts map[string]int) ([]*domain.Slot, error)
}

// BookingCounter интерфейс репозитория счётчиков бронирований
type BookingCounter interface {
	CountBySlot(ctx context.Context, date time.Time) (map[string]int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
