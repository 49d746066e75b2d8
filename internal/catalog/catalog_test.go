package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revivatech/RT-AvailabilityService/internal/config"
)

func newTestCatalog() *Catalog {
	return New([]config.RepairType{
		{Slug: "screen_replacement", Name: "Замена экрана", BasePrice: 89, DurationMinutes: 60, SkillLevel: "standard"},
		{Slug: "data_recovery", Name: "Восстановление данных", BasePrice: 199, DurationMinutes: 180, SkillLevel: "senior"},
	})
}

func TestCatalog_Get(t *testing.T) {
	c := newTestCatalog()

	rt, err := c.Get("screen_replacement")
	require.NoError(t, err)
	assert.Equal(t, "Замена экрана", rt.Name)
	assert.Equal(t, 89.0, rt.BasePrice)
	assert.Equal(t, 60, rt.DurationMinutes)

	_, err = c.Get("flux_capacitor_repair")
	assert.ErrorIs(t, err, ErrRepairTypeNotFound)
}

func TestCatalog_List_SortedBySlug(t *testing.T) {
	c := newTestCatalog()

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "data_recovery", list[0].Slug)
	assert.Equal(t, "screen_replacement", list[1].Slug)
}
