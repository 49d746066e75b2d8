package reserve_slot

import (
	reserveSlot "github.com/revivatech/RT-AvailabilityService/internal/usecase/reserve_slot"
)

// ReserveSlotRequest HTTP request model
type ReserveSlotRequest struct {
	SlotID       string                 `json:"slotId"`
	Duration     int                    `json:"duration,omitempty"`
	CustomerInfo map[string]interface{} `json:"customerInfo,omitempty"`
}

// ReserveSlotResponse HTTP response model
// reservedAt и expiresAt - epoch миллисекунды
type ReserveSlotResponse struct {
	Success    bool   `json:"success"`
	SlotID     string `json:"slotId"`
	HoldToken  string `json:"holdToken"`
	ReservedAt int64  `json:"reservedAt"`
	ExpiresAt  int64  `json:"expiresAt"`
	Duration   int    `json:"duration"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveSlotRequest) ToUseCaseRequest() *reserveSlot.Request {
	return &reserveSlot.Request{
		SlotID:          r.SlotID,
		DurationMinutes: r.Duration,
		CustomerInfo:    r.CustomerInfo,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *ReserveSlotResponse {
	return &ReserveSlotResponse{
		Success:    true,
		SlotID:     resp.SlotID,
		HoldToken:  resp.HoldToken,
		ReservedAt: resp.ReservedAt.UnixMilli(),
		ExpiresAt:  resp.ExpiresAt.UnixMilli(),
		Duration:   resp.DurationMinutes,
	}
}
