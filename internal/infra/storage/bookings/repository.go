package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
	"github.com/revivatech/RT-AvailabilityService/pkg/psqlbuilder"
)

// Repository read-only репозиторий подтверждённых бронирований
//
// Таблицей bookings владеет подсистема бронирования - этот сервис только
// читает из неё счётчики занятости, чтобы вычислять доступность слотов.
// Никаких INSERT/UPDATE здесь нет и быть не должно
type Repository struct {
	db DBExecutor
}

// NewRepository создает репозиторий бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountBySlot возвращает число активных бронирований на дату по ID слота
// Слоты без бронирований в карте отсутствуют
func (r *Repository) CountBySlot(ctx context.Context, date time.Time) (map[string]int, error) {
	query, args, err := psqlbuilder.Select("slot_id", "COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{
			"booking_date": date.Format(domain.DateFormat),
			"status":       domain.ActiveStatuses,
		}).
		GroupBy("slot_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountBySlot - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var slotID string
		var count int
		if err := rows.Scan(&slotID, &count); err != nil {
			return nil, fmt.Errorf("%w: CountBySlot - scan row: %v", ErrScanRow, err)
		}
		counts[slotID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountBySlot - rows error: %v", ErrExecQuery, err)
	}

	return counts, nil
}

// CountByRepairType возвращает число активных бронирований типа ремонта на дату
// Используется для проверки дневного потолка услуги
func (r *Repository) CountByRepairType(ctx context.Context, date time.Time, repairType string) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{
			"booking_date": date.Format(domain.DateFormat),
			"repair_type":  repairType,
			"status":       domain.ActiveStatuses,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByRepairType - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByRepairType - execute select: %v", ErrExecQuery, err)
	}

	return count, nil
}
