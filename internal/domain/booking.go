package domain

// BookingStatus represents the status of a confirmed booking in the booking
// subsystem. This service only reads bookings to count occupied capacity
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// ActiveStatuses список статусов, занимающих ёмкость слота
// Используется при подсчёте bookingCount
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}
