package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revivatech/RT-AvailabilityService/internal/config"
	"github.com/revivatech/RT-AvailabilityService/internal/domain"
)

// fakeHolidays таблица праздников для тестов
type fakeHolidays struct {
	entries map[string]*domain.Holiday
}

func (f *fakeHolidays) Lookup(date string) (*domain.Holiday, bool) {
	h, ok := f.entries[date]
	return h, ok
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg, err := NewConfig(config.PricingConfig{
		PriorityPercent:  25,
		EmergencyPercent: 50,
		HolidayPercent:   30,
		CollectionFee:    15,
		PostalFee:        9,
		Calendar: []config.CalendarRule{
			{
				Name:    "weekend",
				Days:    []string{"saturday", "sunday"},
				Percent: 20,
				Reason:  "Наценка выходного дня",
			},
			{
				Name:    "peak_hours",
				Days:    []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
				From:    "17:00",
				To:      "19:00",
				Percent: 10,
				Reason:  "Наценка пиковых часов",
			},
		},
	})
	require.NoError(t, err)

	return NewService(cfg, &fakeHolidays{entries: map[string]*domain.Holiday{
		"2026-12-25": {Date: "2026-12-25", Name: "Рождество", Closure: domain.ClosureFull},
	}})
}

func TestService_Calculate_NoSurcharges(t *testing.T) {
	svc := newTestService(t)

	// Вторник 10:00, обычная срочность, самовынос
	weekday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	breakdown := svc.Calculate(89, weekday, "10:00", "screen_replacement",
		domain.UrgencyStandard, domain.ServiceTypeDropOff)

	assert.Equal(t, 89.0, breakdown.BasePrice)
	assert.Empty(t, breakdown.Surcharges)
	assert.Equal(t, 89.0, breakdown.TotalPrice)
}

func TestService_Calculate_WeekendSurcharge(t *testing.T) {
	svc := newTestService(t)

	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	breakdown := svc.Calculate(100, saturday, "11:00", "screen_replacement",
		domain.UrgencyStandard, domain.ServiceTypeDropOff)

	require.Len(t, breakdown.Surcharges, 1)
	assert.Equal(t, "weekend", breakdown.Surcharges[0].Name)
	assert.Equal(t, 20.0, breakdown.Surcharges[0].Amount)
	assert.Equal(t, 120.0, breakdown.TotalPrice)
}

func TestService_Calculate_PeakHoursWindow(t *testing.T) {
	svc := newTestService(t)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// До окна - наценки нет
	breakdown := svc.Calculate(100, monday, "16:00", "screen_replacement",
		domain.UrgencyStandard, domain.ServiceTypeDropOff)
	assert.Empty(t, breakdown.Surcharges)

	// Начало окна включается
	breakdown = svc.Calculate(100, monday, "17:00", "screen_replacement",
		domain.UrgencyStandard, domain.ServiceTypeDropOff)
	require.Len(t, breakdown.Surcharges, 1)
	assert.Equal(t, "peak_hours", breakdown.Surcharges[0].Name)
	assert.Equal(t, 110.0, breakdown.TotalPrice)

	// Конец окна не включается
	breakdown = svc.Calculate(100, monday, "19:00", "screen_replacement",
		domain.UrgencyStandard, domain.ServiceTypeDropOff)
	assert.Empty(t, breakdown.Surcharges)
}

func TestService_Calculate_UrgencyFromOriginalBase(t *testing.T) {
	svc := newTestService(t)

	// Суббота + priority: наценка срочности считается от исходной базы,
	// а не от базы с уже добавленной выходной наценкой
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	breakdown := svc.Calculate(100, saturday, "11:00", "screen_replacement",
		domain.UrgencyPriority, domain.ServiceTypeDropOff)

	require.Len(t, breakdown.Surcharges, 2)
	assert.Equal(t, 20.0, breakdown.Surcharges[0].Amount)
	assert.Equal(t, "urgency_priority", breakdown.Surcharges[1].Name)
	assert.Equal(t, 25.0, breakdown.Surcharges[1].Amount, "25% от 100, не от 120")
	assert.Equal(t, 145.0, breakdown.TotalPrice)
}

func TestService_Calculate_EmergencyUrgency(t *testing.T) {
	svc := newTestService(t)

	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	breakdown := svc.Calculate(200, tuesday, "10:00", "data_recovery",
		domain.UrgencyEmergency, domain.ServiceTypeDropOff)

	require.Len(t, breakdown.Surcharges, 1)
	assert.Equal(t, "urgency_emergency", breakdown.Surcharges[0].Name)
	assert.Equal(t, 100.0, breakdown.Surcharges[0].Amount)
	assert.Equal(t, 300.0, breakdown.TotalPrice)
}

func TestService_Calculate_HolidaySurcharge(t *testing.T) {
	svc := newTestService(t)

	// 2026-12-25 - пятница и праздник одновременно
	christmas := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	breakdown := svc.Calculate(100, christmas, "10:00", "screen_replacement",
		domain.UrgencyStandard, domain.ServiceTypeDropOff)

	require.Len(t, breakdown.Surcharges, 1)
	assert.Equal(t, "holiday", breakdown.Surcharges[0].Name)
	assert.Equal(t, 30.0, breakdown.Surcharges[0].Amount)
	assert.Contains(t, breakdown.Surcharges[0].Reason, "Рождество")
	assert.Equal(t, 130.0, breakdown.TotalPrice)
}

func TestService_Calculate_ServiceFees(t *testing.T) {
	svc := newTestService(t)
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	collection := svc.Calculate(100, tuesday, "10:00", "screen_replacement",
		domain.UrgencyStandard, domain.ServiceTypeCollection)
	require.Len(t, collection.Surcharges, 1)
	assert.Equal(t, "collection_fee", collection.Surcharges[0].Name)
	assert.Equal(t, 115.0, collection.TotalPrice)

	postal := svc.Calculate(100, tuesday, "10:00", "screen_replacement",
		domain.UrgencyStandard, domain.ServiceTypePostal)
	require.Len(t, postal.Surcharges, 1)
	assert.Equal(t, "postal_fee", postal.Surcharges[0].Name)
	assert.Equal(t, 109.0, postal.TotalPrice)
}

func TestService_Calculate_AllDimensionsAdditive(t *testing.T) {
	svc := newTestService(t)

	// Выходной + emergency + курьер: все наценки складываются независимо
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	breakdown := svc.Calculate(100, saturday, "11:00", "motherboard_repair",
		domain.UrgencyEmergency, domain.ServiceTypeCollection)

	require.Len(t, breakdown.Surcharges, 3)
	assert.Equal(t, 100+20+50+15.0, breakdown.TotalPrice)
}

func TestParseUrgency_UnknownFallsBackToStandard(t *testing.T) {
	assert.Equal(t, domain.UrgencyStandard, domain.ParseUrgency("turbo"))
	assert.Equal(t, domain.UrgencyStandard, domain.ParseUrgency(""))
	assert.Equal(t, domain.UrgencyEmergency, domain.ParseUrgency("emergency"))
}
