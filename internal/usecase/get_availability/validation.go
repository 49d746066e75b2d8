package get_availability

import (
	"fmt"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.RepairType == "" {
		return fmt.Errorf("%w: repairType is required", ErrInvalidInput)
	}

	if req.DurationMinutes != nil {
		d := *req.DurationMinutes
		if d < domain.MinQueryDurationMinutes || d > domain.MaxQueryDurationMinutes {
			return fmt.Errorf("%w: duration must be between %d and %d minutes",
				ErrInvalidInput, domain.MinQueryDurationMinutes, domain.MaxQueryDurationMinutes)
		}
	}

	return nil
}
