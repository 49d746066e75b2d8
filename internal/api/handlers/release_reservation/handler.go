package release_reservation

import (
	"net/http"

	"github.com/revivatech/RT-AvailabilityService/internal/api/handlers"
)

const msgMissingSlotID = "slotId обязателен"

// ReleaseReservationResponse HTTP response model
// cancelled=false означает, что резервации не было - это не ошибка
type ReleaseReservationResponse struct {
	Success   bool   `json:"success"`
	SlotID    string `json:"slotId"`
	Cancelled bool   `json:"cancelled"`
}

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/availability/slots?slotId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := r.URL.Query().Get("slotId")
	if slotID == "" {
		h.logger.Warn("DELETE /availability/slots - Missing slot id")
		handlers.RespondBadRequest(w, msgMissingSlotID)
		return
	}

	cancelled, err := h.service.Release(r.Context(), slotID)
	if err != nil {
		h.logger.Error("DELETE /availability/slots - Failed to release reservation %s: %v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /availability/slots - Release: slot=%s, cancelled=%v", slotID, cancelled)
	handlers.RespondJSON(w, http.StatusOK, ReleaseReservationResponse{
		Success:   true,
		SlotID:    slotID,
		Cancelled: cancelled,
	})
}
