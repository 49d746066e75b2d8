package domain

import "time"

// Reservation is a short-lived exclusive hold on a slot while a customer
// completes checkout. It is distinct from a confirmed booking: at most one
// live reservation exists per slot, and it self-expires if never converted
type Reservation struct {
	SlotID       string
	HoldToken    string // opaque token returned to the client for reference
	ReservedAt   time.Time
	ExpiresAt    time.Time
	CustomerInfo map[string]interface{} // opaque to this service
}

// IsExpired returns true if the reservation has expired at the given moment
func (r *Reservation) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// MaxExpiry returns the hard ceiling for this reservation's expiry:
// no extension may push the lifetime past MaxReservationLifetime from creation
func (r *Reservation) MaxExpiry() time.Time {
	return r.ReservedAt.Add(MaxReservationLifetime)
}

// Remaining returns the time left until expiry (negative once expired)
func (r *Reservation) Remaining(now time.Time) time.Duration {
	return r.ExpiresAt.Sub(now)
}
