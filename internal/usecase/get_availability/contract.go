package get_availability

import (
	"context"
	"time"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
	"github.com/revivatech/RT-AvailabilityService/pkg/types"
)

// ScheduleGenerator интерфейс генератора сырых слотов ёмкости
type ScheduleGenerator interface {
	SlotsForDate(date, now time.Time, durationMinutes int, counts map[string]int) ([]*domain.Slot, error)
	HoursForDate(date time.Time) domain.DaySchedule
}

// BookingCounter интерфейс репозитория счётчиков бронирований
type BookingCounter interface {
	CountBySlot(ctx context.Context, date time.Time) (map[string]int, error)
	CountByRepairType(ctx context.Context, date time.Time, repairType string) (int, error)
}

// PricingCalculator интерфейс калькулятора цен
type PricingCalculator interface {
	Calculate(basePrice float64, date time.Time, start types.TimeString, repairType string,
		urgency domain.Urgency, serviceType domain.ServiceType) domain.PricingBreakdown
}

// RuleEvaluator интерфейс оценщика бизнес-правил
type RuleEvaluator interface {
	Evaluate(now time.Time, slot *domain.Slot, repairType string,
		urgency domain.Urgency, repairTypeDailyCount int) *domain.BusinessRuleResult
}

// ReservationChecker интерфейс хранилища резерваций
type ReservationChecker interface {
	IsReserved(slotID string) bool
}

// RepairTypeCatalog интерфейс справочника типов ремонта
type RepairTypeCatalog interface {
	Get(slug string) (*domain.RepairType, error)
}

// HolidayProvider интерфейс таблицы праздников
type HolidayProvider interface {
	All() []*domain.Holiday
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
