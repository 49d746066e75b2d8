package domain

import "time"

// Reservation lifetime limits
const (
	MinReservationMinutes     = 5
	MaxReservationMinutes     = 60
	DefaultReservationMinutes = 15

	// MaxReservationLifetime is the hard ceiling on a reservation's total
	// lifetime from its creation, across all extensions
	MaxReservationLifetime = 60 * time.Minute
)

// Availability query validation constants
const (
	MinQueryDurationMinutes = 15
	MaxQueryDurationMinutes = 480 // 8 hours
)

// Default business rule values, used when config omits them
const (
	DefaultMinimumNoticeHours = 2
	DefaultAdvanceBookingDays = 30
)

// EmergencySameDayHours is the window after which an emergency request gets
// a timing warning: emergency service is typically same-day
const EmergencySameDayHours = 8

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
