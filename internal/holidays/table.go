package holidays

import (
	"sort"

	"github.com/revivatech/RT-AvailabilityService/internal/config"
	"github.com/revivatech/RT-AvailabilityService/internal/domain"
)

// Table read-only таблица праздничных дней, ключ - дата YYYY-MM-DD
// Загружается один раз из конфигурации при старте сервиса
type Table struct {
	byDate map[string]*domain.Holiday
}

// NewTable создает таблицу праздников из конфигурации
func NewTable(entries []config.Holiday) *Table {
	byDate := make(map[string]*domain.Holiday, len(entries))
	for _, e := range entries {
		holiday := &domain.Holiday{
			Date:    e.Date,
			Name:    e.Name,
			Closure: domain.ClosureType(e.Closure),
		}
		if e.Hours != "" {
			hours := e.Hours
			holiday.Hours = &hours
		}
		byDate[e.Date] = holiday
	}
	return &Table{byDate: byDate}
}

// Lookup возвращает праздник на указанную дату (YYYY-MM-DD)
func (t *Table) Lookup(date string) (*domain.Holiday, bool) {
	h, ok := t.byDate[date]
	return h, ok
}

// All возвращает все праздники, отсортированные по дате
func (t *Table) All() []*domain.Holiday {
	result := make([]*domain.Holiday, 0, len(t.byDate))
	for _, h := range t.byDate {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}
