package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revivatech/RT-AvailabilityService/internal/catalog"
	"github.com/revivatech/RT-AvailabilityService/internal/domain"
	"github.com/revivatech/RT-AvailabilityService/pkg/ptr"
	"github.com/revivatech/RT-AvailabilityService/pkg/types"
)

type fakeSchedule struct {
	slots []*domain.Slot
	hours domain.DaySchedule
}

func (f *fakeSchedule) SlotsForDate(date, now time.Time, durationMinutes int, counts map[string]int) ([]*domain.Slot, error) {
	return f.slots, nil
}

func (f *fakeSchedule) HoursForDate(date time.Time) domain.DaySchedule {
	return f.hours
}

type fakeBookingCounter struct {
	counts     map[string]int
	dailyCount int
}

func (f *fakeBookingCounter) CountBySlot(ctx context.Context, date time.Time) (map[string]int, error) {
	return f.counts, nil
}

func (f *fakeBookingCounter) CountByRepairType(ctx context.Context, date time.Time, repairType string) (int, error) {
	return f.dailyCount, nil
}

type fakePricing struct {
	price float64
}

func (f *fakePricing) Calculate(basePrice float64, date time.Time, start types.TimeString,
	repairType string, urgency domain.Urgency, serviceType domain.ServiceType) domain.PricingBreakdown {
	return domain.PricingBreakdown{BasePrice: basePrice, TotalPrice: f.price}
}

type fakeRules struct {
	blocked map[string]bool
}

func (f *fakeRules) Evaluate(now time.Time, slot *domain.Slot, repairType string,
	urgency domain.Urgency, repairTypeDailyCount int) *domain.BusinessRuleResult {
	result := domain.NewBusinessRuleResult()
	if f.blocked[slot.ID] {
		result.AddRestriction("заблокировано правилом")
	}
	return result
}

type fakeReservations struct {
	reserved map[string]bool
}

func (f *fakeReservations) IsReserved(slotID string) bool {
	return f.reserved[slotID]
}

type fakeCatalog struct {
	types map[string]*domain.RepairType
}

func (f *fakeCatalog) Get(slug string) (*domain.RepairType, error) {
	rt, ok := f.types[slug]
	if !ok {
		return nil, catalog.ErrRepairTypeNotFound
	}
	return rt, nil
}

type fakeHolidays struct{}

func (f *fakeHolidays) All() []*domain.Holiday { return nil }

type fakeTimeProvider struct {
	current time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.current }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testSlot(id, start string, techs ...string) *domain.Slot {
	return &domain.Slot{
		ID:                id,
		Date:              time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:         types.TimeString(start),
		DurationMinutes:   60,
		Capacity:          3,
		TechnicianIDs:     techs,
		ScheduleAvailable: true,
	}
}

func newTestUseCase(
	schedule *fakeSchedule,
	rules *fakeRules,
	reservations *fakeReservations,
) *UseCase {
	uc := NewUseCase(
		schedule,
		&fakeBookingCounter{},
		&fakePricing{price: 100},
		rules,
		reservations,
		&fakeCatalog{types: map[string]*domain.RepairType{
			"screen_replacement": {
				Slug:            "screen_replacement",
				BasePrice:       89,
				DurationMinutes: 60,
				SkillLevel:      "standard",
			},
		}},
		&fakeHolidays{},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func baseRequest() *Request {
	return &Request{
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		RepairType:  "screen_replacement",
		Urgency:     domain.UrgencyStandard,
		ServiceType: domain.ServiceTypeDropOff,
	}
}

func TestUseCase_Execute(t *testing.T) {
	schedule := &fakeSchedule{slots: []*domain.Slot{
		testSlot("2026-03-02-1000-2", "10:00"),
		testSlot("2026-03-02-0900-1", "09:00"),
		testSlot("2026-03-02-1100-3", "11:00"),
	}}
	uc := newTestUseCase(schedule, &fakeRules{}, &fakeReservations{})

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)

	// Слоты отсортированы по времени начала
	assert.Equal(t, "09:00", resp.Slots[0].Slot.StartTime.String())
	assert.Equal(t, "10:00", resp.Slots[1].Slot.StartTime.String())
	assert.Equal(t, "11:00", resp.Slots[2].Slot.StartTime.String())

	// Каждому слоту проставлен уровень мастера из справочника
	for _, s := range resp.Slots {
		assert.Equal(t, "standard", s.Slot.SkillLevel)
		assert.True(t, s.Available)
	}

	assert.Equal(t, 3, resp.Summary.TotalSlots)
	assert.Equal(t, 3, resp.Summary.AvailableSlots)
	assert.Equal(t, 100.0, resp.Summary.AveragePrice)
	require.NotNil(t, resp.Summary.EarliestAvailable)
	assert.Equal(t, "09:00", resp.Summary.EarliestAvailable.String())
	assert.Equal(t, "11:00", resp.Summary.LatestAvailable.String())
}

func TestUseCase_Execute_ReservationMask(t *testing.T) {
	schedule := &fakeSchedule{slots: []*domain.Slot{
		testSlot("2026-03-02-0900-1", "09:00"),
		testSlot("2026-03-02-1000-2", "10:00"),
	}}
	reservations := &fakeReservations{reserved: map[string]bool{"2026-03-02-0900-1": true}}
	uc := newTestUseCase(schedule, &fakeRules{}, reservations)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.True(t, resp.Slots[0].Reserved)
	assert.False(t, resp.Slots[0].Available, "зарезервированный слот недоступен")
	assert.True(t, resp.Slots[1].Available)

	assert.Equal(t, 1, resp.Summary.ReservedSlots)
	assert.Equal(t, 1, resp.Summary.AvailableSlots)
}

func TestUseCase_Execute_RuleRestrictionsBlock(t *testing.T) {
	schedule := &fakeSchedule{slots: []*domain.Slot{
		testSlot("2026-03-02-0900-1", "09:00"),
		testSlot("2026-03-02-1000-2", "10:00"),
	}}
	rules := &fakeRules{blocked: map[string]bool{"2026-03-02-1000-2": true}}
	uc := newTestUseCase(schedule, rules, &fakeReservations{})

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.False(t, resp.Slots[1].Rules.CanBook)
	assert.Equal(t, 1, resp.Summary.AvailableSlots)
}

func TestUseCase_Execute_TechnicianFilter(t *testing.T) {
	schedule := &fakeSchedule{slots: []*domain.Slot{
		testSlot("2026-03-02-0900-1", "09:00", "tech-01", "tech-02"),
		testSlot("2026-03-02-1000-2", "10:00", "tech-02"),
		testSlot("2026-03-02-1100-3", "11:00", "tech-03"),
	}}
	uc := newTestUseCase(schedule, &fakeRules{}, &fakeReservations{})

	req := baseRequest()
	req.TechnicianID = ptr.Ptr("tech-02")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "2026-03-02-0900-1", resp.Slots[0].Slot.ID)
	assert.Equal(t, "2026-03-02-1000-2", resp.Slots[1].Slot.ID)
}

func TestUseCase_Execute_RepairTypeNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeSchedule{}, &fakeRules{}, &fakeReservations{})

	req := baseRequest()
	req.RepairType = "flux_capacitor_repair"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRepairTypeNotFound)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeSchedule{}, &fakeRules{}, &fakeReservations{})

	req := baseRequest()
	req.Date = time.Time{}
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = baseRequest()
	req.RepairType = ""
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = baseRequest()
	req.DurationMinutes = ptr.Ptr(5)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput, "длительность короче 15 минут")

	req = baseRequest()
	req.DurationMinutes = ptr.Ptr(600)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput, "длительность больше 480 минут")
}

func TestUseCase_Execute_EmptyDay(t *testing.T) {
	uc := newTestUseCase(&fakeSchedule{slots: []*domain.Slot{}}, &fakeRules{}, &fakeReservations{})

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Zero(t, resp.Summary.TotalSlots)
	assert.Nil(t, resp.Summary.EarliestAvailable)
	assert.Zero(t, resp.Summary.AveragePrice)
}
