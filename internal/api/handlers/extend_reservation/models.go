package extend_reservation

// ExtendReservationRequest HTTP request model
type ExtendReservationRequest struct {
	SlotID         string `json:"slotId"`
	AdditionalTime int    `json:"additionalTime"` // минуты
}

// ExtendReservationResponse HTTP response model
// expiresAt - epoch миллисекунды
type ExtendReservationResponse struct {
	Success   bool   `json:"success"`
	SlotID    string `json:"slotId"`
	ExpiresAt int64  `json:"expiresAt"`
}
