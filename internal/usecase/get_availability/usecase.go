package get_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/revivatech/RT-AvailabilityService/internal/catalog"
	"github.com/revivatech/RT-AvailabilityService/internal/domain"
)

// UseCase use case получения доступных слотов
// Единственная точка, через которую наружный код узнаёт о доступности:
// композирует расписание, счётчики бронирований, цены, бизнес-правила
// и маску живых резерваций
type UseCase struct {
	schedule     ScheduleGenerator
	bookingRepo  BookingCounter
	pricing      PricingCalculator
	rules        RuleEvaluator
	reservations ReservationChecker
	catalog      RepairTypeCatalog
	holidays     HolidayProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schedule ScheduleGenerator,
	bookingRepo BookingCounter,
	pricing PricingCalculator,
	rules RuleEvaluator,
	reservations ReservationChecker,
	repairTypes RepairTypeCatalog,
	holidays HolidayProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule:     schedule,
		bookingRepo:  bookingRepo,
		pricing:      pricing,
		rules:        rules,
		reservations: reservations,
		catalog:      repairTypes,
		holidays:     holidays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, repairType=%s, urgency=%s, serviceType=%s",
		req.Date.Format(domain.DateFormat), req.RepairType, req.Urgency, req.ServiceType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Ищем тип ремонта в справочнике
	repairType, err := uc.catalog.Get(req.RepairType)
	if err != nil {
		if errors.Is(err, catalog.ErrRepairTypeNotFound) {
			uc.logger.Warn("GetAvailability: repair type %q not found", req.RepairType)
			return nil, ErrRepairTypeNotFound
		}
		uc.logger.Error("GetAvailability: failed to get repair type %q: %v", req.RepairType, err)
		return nil, fmt.Errorf("%w: failed to get repair type: %v", ErrInternal, err)
	}

	// 4. Получаем счётчики подтверждённых бронирований на дату
	counts, err := uc.bookingRepo.CountBySlot(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	dailyCount, err := uc.bookingRepo.CountByRepairType(ctx, req.Date, req.RepairType)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to count repair type bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count repair type bookings: %v", ErrInternal, err)
	}

	// 5. Генерируем сырые слоты из расписания
	duration := repairType.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	rawSlots, err := uc.schedule.SlotsForDate(req.Date, now, duration, counts)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 6. Аннотируем каждый слот ценой, вердиктом правил и маской резерваций
	results := make([]SlotResult, 0, len(rawSlots))
	for _, slot := range rawSlots {
		// Опциональный фильтр по мастеру
		if req.TechnicianID != nil && !containsTechnician(slot.TechnicianIDs, *req.TechnicianID) {
			continue
		}

		slot.SkillLevel = repairType.SkillLevel

		pricing := uc.pricing.Calculate(
			repairType.BasePrice, req.Date, slot.StartTime,
			req.RepairType, req.Urgency, req.ServiceType,
		)
		ruleResult := uc.rules.Evaluate(now, slot, req.RepairType, req.Urgency, dailyCount)
		reserved := uc.reservations.IsReserved(slot.ID)

		results = append(results, SlotResult{
			Slot:      slot,
			Available: slot.ScheduleAvailable && ruleResult.CanBook && !reserved,
			Reserved:  reserved,
			Pricing:   pricing,
			Rules:     ruleResult,
		})
	}

	// 7. Сортируем по времени начала
	sort.Slice(results, func(i, j int) bool {
		return results[i].Slot.StartTime.IsBefore(results[j].Slot.StartTime)
	})

	uc.logger.Info("GetAvailability: %d slots for date=%s, repairType=%s",
		len(results), req.Date.Format(domain.DateFormat), req.RepairType)

	return &Response{
		Date:          req.Date,
		RepairType:    req.RepairType,
		Urgency:       req.Urgency,
		ServiceType:   req.ServiceType,
		Slots:         results,
		Summary:       buildSummary(results),
		BusinessHours: uc.schedule.HoursForDate(req.Date),
		Holidays:      uc.holidays.All(),
	}, nil
}

// buildSummary вычисляет агрегаты по списку слотов
func buildSummary(results []SlotResult) Summary {
	summary := Summary{TotalSlots: len(results)}

	var priceSum float64
	for i := range results {
		r := &results[i]
		priceSum += r.Pricing.TotalPrice

		if r.Reserved {
			summary.ReservedSlots++
		}
		if r.Slot.IsFull() {
			summary.FullyBookedSlots++
		}
		if r.Available {
			summary.AvailableSlots++
			start := r.Slot.StartTime
			if summary.EarliestAvailable == nil || start.IsBefore(*summary.EarliestAvailable) {
				s := start
				summary.EarliestAvailable = &s
			}
			if summary.LatestAvailable == nil || start.IsAfter(*summary.LatestAvailable) {
				s := start
				summary.LatestAvailable = &s
			}
		}
	}

	if len(results) > 0 {
		summary.AveragePrice = priceSum / float64(len(results))
	}

	return summary
}

func containsTechnician(ids []string, id string) bool {
	for _, t := range ids {
		if t == id {
			return true
		}
	}
	return false
}
