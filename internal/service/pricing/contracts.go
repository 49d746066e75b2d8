package pricing

import "github.com/revivatech/RT-AvailabilityService/internal/domain"

// HolidayLookup интерфейс таблицы праздничных дней
type HolidayLookup interface {
	Lookup(date string) (*domain.Holiday, bool)
}
