package rules

import "github.com/revivatech/RT-AvailabilityService/internal/domain"

// HolidayLookup интерфейс таблицы праздничных дней
type HolidayLookup interface {
	Lookup(date string) (*domain.Holiday, bool)
}

// ReservationChecker интерфейс хранилища резерваций
type ReservationChecker interface {
	IsReserved(slotID string) bool
}

// Config параметры бизнес-правил бронирования
// Read-only, собирается из конфигурации при старте
type Config struct {
	MinimumNoticeHours int
	AdvanceBookingDays int

	// DailyCaps дневной потолок бронирований по типу ремонта
	// Отсутствие ключа = без ограничения
	DailyCaps map[string]int
}
