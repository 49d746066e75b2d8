package reserve_slot

import (
	"errors"
	"net/http"

	"github.com/revivatech/RT-AvailabilityService/internal/api/handlers"
	reserveSlot "github.com/revivatech/RT-AvailabilityService/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgInvalidDate        = "некорректная дата слота"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgSlotUnavailable    = "слот недоступен для бронирования"
	msgAlreadyReserved    = "слот уже удерживается другим клиентом"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/availability/slots
// Body: { slotId, duration?, customerInfo? }
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrInvalidSlotID):
			h.logger.Warn("POST /availability/slots - Malformed slot id: %s", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		case errors.Is(err, reserveSlot.ErrInvalidDate):
			h.logger.Warn("POST /availability/slots - Slot date in the past: %s", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, reserveSlot.ErrSlotUnavailable):
			h.logger.Warn("POST /availability/slots - Slot unavailable: %s", req.SlotID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, reserveSlot.ErrAlreadyReserved):
			h.logger.Warn("POST /availability/slots - Slot already reserved: %s", req.SlotID)
			handlers.RespondConflict(w, msgAlreadyReserved)

		default:
			h.logger.Error("POST /availability/slots - Failed to reserve slot %s: %v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/slots - Slot reserved: slot=%s, token=%s",
		result.SlotID, result.HoldToken)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
