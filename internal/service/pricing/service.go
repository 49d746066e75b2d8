package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
	"github.com/revivatech/RT-AvailabilityService/pkg/types"
)

// Surcharge name constants - стабильные коды позиций для клиентов API,
// человекочитаемое объяснение лежит в поле reason
const (
	surchargeHoliday    = "holiday"
	surchargeCollection = "collection_fee"
	surchargePostal     = "postal_fee"
)

// Service калькулятор итоговой цены слота
//
// Порядок вычисления фиксирован:
//  1. Календарные наценки (выходной, праздник, пиковые часы) - каждая
//     считается в процентах от базовой цены и добавляется к ней
//  2. Наценка за срочность - считается от ИСХОДНОЙ базовой цены, а не от
//     уже наценённой: срочность и календарь - независимые измерения,
//     мультипликативное накопление сделало бы цену необъяснимой для клиента
//  3. Фиксированные сборы за способ передачи устройства
//
// Порядок позиций важен только для отображения, итог - коммутативная сумма
type Service struct {
	cfg      Config
	holidays HolidayLookup
}

// NewService создает калькулятор цен
func NewService(cfg Config, holidays HolidayLookup) *Service {
	return &Service{
		cfg:      cfg,
		holidays: holidays,
	}
}

// Calculate вычисляет разбивку цены слота
// Ошибок не возвращает: входные данные валидируются вызывающим кодом,
// неизвестная срочность трактуется как standard
func (s *Service) Calculate(
	basePrice float64,
	date time.Time,
	start types.TimeString,
	repairType string,
	urgency domain.Urgency,
	serviceType domain.ServiceType,
) domain.PricingBreakdown {
	surcharges := make([]domain.Surcharge, 0, 4)
	adjustedBase := basePrice

	// 1. Календарные правила из таблицы
	for _, rule := range s.cfg.Calendar {
		if !rule.matches(date.Weekday(), start) {
			continue
		}
		amount := round2(basePrice * rule.Percent / 100)
		surcharges = append(surcharges, domain.Surcharge{
			Name:       rule.Name,
			Amount:     amount,
			Percentage: rule.Percent,
			Reason:     rule.Reason,
		})
		adjustedBase += amount
	}

	// Праздничная наценка - тоже календарное измерение
	if holiday, ok := s.holidays.Lookup(date.Format(domain.DateFormat)); ok && s.cfg.HolidayPercent > 0 {
		amount := round2(basePrice * s.cfg.HolidayPercent / 100)
		surcharges = append(surcharges, domain.Surcharge{
			Name:       surchargeHoliday,
			Amount:     amount,
			Percentage: s.cfg.HolidayPercent,
			Reason:     fmt.Sprintf("наценка за работу в праздничный день (%s)", holiday.Name),
		})
		adjustedBase += amount
	}

	total := adjustedBase

	// 2. Срочность - процент от исходной базовой цены
	if urgencyPct := s.urgencyPercent(urgency); urgencyPct > 0 {
		amount := round2(basePrice * urgencyPct / 100)
		surcharges = append(surcharges, domain.Surcharge{
			Name:       "urgency_" + string(urgency),
			Amount:     amount,
			Percentage: urgencyPct,
			Reason:     urgencyReason(urgency),
		})
		total += amount
	}

	// 3. Фиксированный сбор за способ передачи устройства
	if fee, name, reason := s.serviceFee(serviceType); fee > 0 {
		surcharges = append(surcharges, domain.Surcharge{
			Name:   name,
			Amount: fee,
			Reason: reason,
		})
		total += fee
	}

	return domain.PricingBreakdown{
		BasePrice:  basePrice,
		Surcharges: surcharges,
		TotalPrice: round2(total),
	}
}

func (s *Service) urgencyPercent(urgency domain.Urgency) float64 {
	switch urgency {
	case domain.UrgencyPriority:
		return s.cfg.PriorityPercent
	case domain.UrgencyEmergency:
		return s.cfg.EmergencyPercent
	default:
		return 0
	}
}

func urgencyReason(urgency domain.Urgency) string {
	if urgency == domain.UrgencyEmergency {
		return "наценка за срочный ремонт"
	}
	return "наценка за приоритетный ремонт"
}

func (s *Service) serviceFee(serviceType domain.ServiceType) (float64, string, string) {
	switch serviceType {
	case domain.ServiceTypeCollection:
		return s.cfg.CollectionFee, surchargeCollection, "выезд курьера за устройством"
	case domain.ServiceTypePostal:
		return s.cfg.PostalFee, surchargePostal, "пересылка устройства почтой"
	default:
		return 0, "", ""
	}
}

// round2 округляет до копеек
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
