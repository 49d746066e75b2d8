package extend_reservation

import (
	"errors"
	"net/http"

	"github.com/revivatech/RT-AvailabilityService/internal/api/handlers"
	reservationsService "github.com/revivatech/RT-AvailabilityService/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "slotId и additionalTime обязательны"
	msgNotFound           = "резервация не найдена"
	msgExpired            = "резервация уже истекла"
)

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

// Handle PUT /api/availability/slots
// Body: { slotId, additionalTime }
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ExtendReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	newExpiry, err := h.service.Extend(r.Context(), req.SlotID, req.AdditionalTime)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("PUT /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, reservationsService.ErrNotFound):
			h.logger.Warn("PUT /availability/slots - Reservation not found: %s", req.SlotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservationsService.ErrExpired):
			h.logger.Warn("PUT /availability/slots - Reservation expired: %s", req.SlotID)
			handlers.RespondConflict(w, msgExpired)

		default:
			h.logger.Error("PUT /availability/slots - Failed to extend reservation %s: %v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability/slots - Reservation extended: slot=%s", req.SlotID)
	handlers.RespondJSON(w, http.StatusOK, ExtendReservationResponse{
		Success:   true,
		SlotID:    req.SlotID,
		ExpiresAt: newExpiry.UnixMilli(),
	})
}
