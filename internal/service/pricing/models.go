package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/revivatech/RT-AvailabilityService/internal/config"
	"github.com/revivatech/RT-AvailabilityService/pkg/types"
)

// Config таблица правил ценообразования
// Собирается один раз при старте, дальше только читается
type Config struct {
	PriorityPercent  float64
	EmergencyPercent float64
	HolidayPercent   float64
	CollectionFee    float64
	PostalFee        float64
	Calendar         []CalendarRule
}

// CalendarRule календарное правило наценки по дню недели и интервалу времени
type CalendarRule struct {
	Name    string
	Days    map[time.Weekday]bool
	From    types.TimeString // пустое значение = весь день
	To      types.TimeString // не включительно
	Percent float64
	Reason  string
}

// matches возвращает true, если правило срабатывает для дня недели и времени
func (r *CalendarRule) matches(weekday time.Weekday, start types.TimeString) bool {
	if !r.Days[weekday] {
		return false
	}
	if r.From == "" && r.To == "" {
		return true
	}
	// Интервал [From, To): начало включается, конец - нет
	if start.IsBefore(r.From) {
		return false
	}
	return start.IsBefore(r.To)
}

// NewConfig конвертирует TOML-конфигурацию в таблицу правил
func NewConfig(cfg config.PricingConfig) (Config, error) {
	result := Config{
		PriorityPercent:  cfg.PriorityPercent,
		EmergencyPercent: cfg.EmergencyPercent,
		HolidayPercent:   cfg.HolidayPercent,
		CollectionFee:    cfg.CollectionFee,
		PostalFee:        cfg.PostalFee,
	}

	for _, rule := range cfg.Calendar {
		days := make(map[time.Weekday]bool, len(rule.Days))
		for _, name := range rule.Days {
			day, err := parseWeekday(name)
			if err != nil {
				return Config{}, fmt.Errorf("pricing rule %q: %w", rule.Name, err)
			}
			days[day] = true
		}

		converted := CalendarRule{
			Name:    rule.Name,
			Days:    days,
			Percent: rule.Percent,
			Reason:  rule.Reason,
		}

		if rule.From != "" || rule.To != "" {
			from, err := types.NewTimeStringFromString(rule.From)
			if err != nil {
				return Config{}, fmt.Errorf("pricing rule %q: %w", rule.Name, err)
			}
			to, err := types.NewTimeStringFromString(rule.To)
			if err != nil {
				return Config{}, fmt.Errorf("pricing rule %q: %w", rule.Name, err)
			}
			converted.From = from
			converted.To = to
		}

		result.Calendar = append(result.Calendar, converted)
	}

	return result, nil
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
