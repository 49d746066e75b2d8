package release_reservation

import "context"

type ReservationService interface {
	Release(ctx context.Context, slotID string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
