package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/revivatech/RT-AvailabilityService/internal/config"
	"github.com/revivatech/RT-AvailabilityService/internal/domain"
	"github.com/revivatech/RT-AvailabilityService/pkg/types"
)

// Generator генерирует сырые слоты ёмкости мастерской на день
// из сконфигурированных рабочих часов. Генератор ничего не знает про
// бизнес-правила и цены - только расписание и занятость по брони
type Generator struct {
	hours map[time.Weekday]config.DayHours
}

// NewGenerator создает генератор из конфигурации рабочих часов
// Ключи карты - английские названия дней недели (monday..sunday)
func NewGenerator(hours map[string]config.DayHours) (*Generator, error) {
	byWeekday := make(map[time.Weekday]config.DayHours, len(hours))
	for name, day := range hours {
		weekday, err := parseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("schedule: %w", err)
		}
		byWeekday[weekday] = day
	}
	return &Generator{hours: byWeekday}, nil
}

// HoursForDate возвращает рабочие часы мастерской на указанную дату
func (g *Generator) HoursForDate(date time.Time) domain.DaySchedule {
	day, ok := g.hours[date.Weekday()]
	if !ok || day.Closed {
		return domain.DaySchedule{IsOpen: false}
	}
	openTime, closeTime := day.Open, day.Close
	return domain.DaySchedule{
		IsOpen:    true,
		OpenTime:  &openTime,
		CloseTime: &closeTime,
	}
}

// SlotsForDate генерирует все слоты на дату с фиксированным шагом
//
// durationMinutes - требуемая длительность работ (0 = шаг расписания);
// слоты, не успевающие завершиться до закрытия, не генерируются.
// counts - число подтверждённых бронирований по ID слота; слот, чья ёмкость
// исчерпана, помечается недоступным по расписанию, но не выбрасывается.
// Для дат в прошлом возвращается пустой список
func (g *Generator) SlotsForDate(
	date time.Time,
	now time.Time,
	durationMinutes int,
	counts map[string]int,
) ([]*domain.Slot, error) {
	if isDateInPast(date, now) {
		return []*domain.Slot{}, nil
	}

	day, ok := g.hours[date.Weekday()]
	if !ok || day.Closed {
		return []*domain.Slot{}, nil
	}

	openTime, err := types.NewTimeStringFromString(day.Open)
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid open time %q: %w", day.Open, err)
	}
	closeTime, err := types.NewTimeStringFromString(day.Close)
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid close time %q: %w", day.Close, err)
	}

	duration := durationMinutes
	if duration <= 0 {
		duration = day.SlotMinutes
	}

	slots := make([]*domain.Slot, 0)
	current := openTime
	seq := 1

	for current.IsBefore(closeTime) {
		// Слот должен целиком помещаться в рабочие часы
		slotEnd, err := current.AddMinutes(duration)
		if err != nil || slotEnd.IsAfter(closeTime) {
			break
		}

		id := domain.NewSlotID(date, current, seq)
		bookingCount := counts[id]

		slots = append(slots, &domain.Slot{
			ID:                id,
			Date:              date,
			StartTime:         current,
			DurationMinutes:   duration,
			Capacity:          day.Capacity,
			BookingCount:      bookingCount,
			TechnicianIDs:     day.Technicians,
			ScheduleAvailable: bookingCount < day.Capacity,
		})

		current, err = current.AddMinutes(day.SlotMinutes)
		if err != nil {
			break
		}
		seq++
	}

	return slots, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	case "sunday":
		return time.Sunday, nil
	default:
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
}
