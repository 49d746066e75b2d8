package rules

import (
	"fmt"
	"time"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
)

// Service оценивает бизнес-правила бронирования для слота
//
// Проверки выполняются в фиксированном порядке, каждая независимо добавляет
// либо ограничение (жёсткий блокер, canBook=false), либо предупреждение.
// Ограничения и предупреждения - готовые к показу строки: это пояснения для
// клиента, а не исключительные ситуации, поэтому кодов ошибок у них нет
type Service struct {
	cfg          Config
	holidays     HolidayLookup
	reservations ReservationChecker
}

// NewService создает оценщик бизнес-правил
func NewService(cfg Config, holidays HolidayLookup, reservations ReservationChecker) *Service {
	if cfg.MinimumNoticeHours == 0 {
		cfg.MinimumNoticeHours = domain.DefaultMinimumNoticeHours
	}
	if cfg.AdvanceBookingDays == 0 {
		cfg.AdvanceBookingDays = domain.DefaultAdvanceBookingDays
	}
	return &Service{
		cfg:          cfg,
		holidays:     holidays,
		reservations: reservations,
	}
}

// Evaluate возвращает вердикт о бронируемости слота
// repairTypeDailyCount - сколько бронирований этого типа ремонта уже
// подтверждено на дату слота (для проверки дневного потолка услуги)
func (s *Service) Evaluate(
	now time.Time,
	slot *domain.Slot,
	repairType string,
	urgency domain.Urgency,
	repairTypeDailyCount int,
) *domain.BusinessRuleResult {
	result := domain.NewBusinessRuleResult()

	hoursUntil := slot.StartAt(now.Location()).Sub(now).Hours()

	// 1. Минимальное время до начала
	if hoursUntil < float64(s.cfg.MinimumNoticeHours) {
		result.AddRestriction(fmt.Sprintf(
			"бронирование возможно не менее чем за %d ч до начала слота", s.cfg.MinimumNoticeHours))
	}

	// 2. Максимальная глубина бронирования
	if daysUntil(now, slot.Date) > s.cfg.AdvanceBookingDays {
		result.AddRestriction(fmt.Sprintf(
			"бронирование возможно не более чем за %d дней", s.cfg.AdvanceBookingDays))
	}

	// 3. Дневной потолок по типу ремонта - более узкое ограничение, чем
	// общая ёмкость слота, которой управляет capacity/bookingCount
	if limit, ok := s.cfg.DailyCaps[repairType]; ok && repairTypeDailyCount >= limit {
		result.AddRestriction(fmt.Sprintf(
			"дневной лимит записей на эту услугу исчерпан (%d)", limit))
	}

	// 4. Живая резервация другого клиента
	if s.reservations.IsReserved(slot.ID) {
		result.AddRestriction("слот временно удерживается другим клиентом")
	}

	// 5. Срочный ремонт обычно выполняется день в день - предупреждение, не блокер
	if urgency == domain.UrgencyEmergency && hoursUntil > domain.EmergencySameDayHours {
		result.AddWarning("срочный ремонт обычно выполняется в тот же день, выбранный слот позже")
	}

	// 6. Выходной день - действует наценка, бронирование не блокируется
	if weekday := slot.Date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		result.AddWarning("выходной день: действует наценка за работу в выходные")
	}

	// 7. Праздничный день
	if holiday, ok := s.holidays.Lookup(slot.Date.Format(domain.DateFormat)); ok {
		if holiday.Closure == domain.ClosureFull {
			result.AddRestriction(fmt.Sprintf("мастерская закрыта: %s", holiday.Name))
		} else {
			result.AddWarning(fmt.Sprintf("%s: мастерская работает по сокращённому графику", holiday.Name))
		}
	}

	return result
}

// daysUntil возвращает число календарных дней от сегодняшнего дня до даты
func daysUntil(now, date time.Time) int {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	targetDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return int(targetDay.Sub(nowDay).Hours() / 24)
}
