package reserve_slot

import (
	"fmt"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 {
		d := req.DurationMinutes
		if d < domain.MinReservationMinutes || d > domain.MaxReservationMinutes {
			return fmt.Errorf("%w: duration must be between %d and %d minutes",
				ErrInvalidInput, domain.MinReservationMinutes, domain.MaxReservationMinutes)
		}
	}

	return nil
}
