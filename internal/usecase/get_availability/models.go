package get_availability

import (
	"time"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
	"github.com/revivatech/RT-AvailabilityService/pkg/types"
)

// Request модель запроса доступности слотов
type Request struct {
	Date            time.Time          // дата, на которую запрашиваются слоты
	RepairType      string             // slug типа ремонта из справочника
	DurationMinutes *int               // требуемая длительность работ (опционально)
	TechnicianID    *string            // фильтр по мастеру (опционально)
	Urgency         domain.Urgency     // срочность (неизвестная = standard)
	ServiceType     domain.ServiceType // способ передачи устройства
}

// Response модель ответа со списком аннотированных слотов
type Response struct {
	Date        time.Time
	RepairType  string
	Urgency     domain.Urgency
	ServiceType domain.ServiceType

	Slots   []SlotResult
	Summary Summary

	BusinessHours domain.DaySchedule
	Holidays      []*domain.Holiday
}

// SlotResult слот с итоговой доступностью, ценой и вердиктом бизнес-правил
type SlotResult struct {
	Slot      *domain.Slot
	Available bool // schedule-доступен, правила не блокируют, резервации нет
	Reserved  bool // слот удерживается чьей-то живой резервацией
	Pricing   domain.PricingBreakdown
	Rules     *domain.BusinessRuleResult
}

// Summary агрегаты по возвращённому списку слотов
type Summary struct {
	TotalSlots       int
	AvailableSlots   int
	ReservedSlots    int
	FullyBookedSlots int
	AveragePrice     float64 // средняя итоговая цена по всем слотам списка

	EarliestAvailable *types.TimeString
	LatestAvailable   *types.TimeString
}
