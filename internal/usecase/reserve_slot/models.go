package reserve_slot

import "time"

// Request модель запроса на резервацию слота
type Request struct {
	SlotID          string
	DurationMinutes int // 0 = длительность по умолчанию
	CustomerInfo    map[string]interface{}
}

// Response модель ответа с созданной резервацией
type Response struct {
	SlotID          string
	HoldToken       string
	ReservedAt      time.Time
	ExpiresAt       time.Time
	DurationMinutes int
}
