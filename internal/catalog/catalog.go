package catalog

import (
	"sort"

	"github.com/revivatech/RT-AvailabilityService/internal/config"
	"github.com/revivatech/RT-AvailabilityService/internal/domain"
)

// Catalog read-only справочник типов ремонта
// Загружается один раз из конфигурации при старте сервиса
type Catalog struct {
	bySlug map[string]*domain.RepairType
}

// New создает справочник из конфигурации
func New(entries []config.RepairType) *Catalog {
	bySlug := make(map[string]*domain.RepairType, len(entries))
	for _, e := range entries {
		bySlug[e.Slug] = &domain.RepairType{
			Slug:            e.Slug,
			Name:            e.Name,
			BasePrice:       e.BasePrice,
			DurationMinutes: e.DurationMinutes,
			SkillLevel:      e.SkillLevel,
		}
	}
	return &Catalog{bySlug: bySlug}
}

// Get возвращает тип ремонта по slug
func (c *Catalog) Get(slug string) (*domain.RepairType, error) {
	rt, ok := c.bySlug[slug]
	if !ok {
		return nil, ErrRepairTypeNotFound
	}
	return rt, nil
}

// List возвращает все типы ремонта, отсортированные по slug
func (c *Catalog) List() []*domain.RepairType {
	result := make([]*domain.RepairType, 0, len(c.bySlug))
	for _, rt := range c.bySlug {
		result = append(result, rt)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Slug < result[j].Slug })
	return result
}
