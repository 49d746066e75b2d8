package reservations

import "time"

// ReservationStore интерфейс хранилища резерваций
type ReservationStore interface {
	Extend(slotID string, additionalMinutes int) (time.Time, error)
	Release(slotID string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
