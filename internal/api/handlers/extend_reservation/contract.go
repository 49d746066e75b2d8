package extend_reservation

import (
	"context"
	"time"
)

type ReservationService interface {
	Extend(ctx context.Context, slotID string, additionalMinutes int) (time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
