package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/revivatech/RT-AvailabilityService/internal/api/handlers"
	"github.com/revivatech/RT-AvailabilityService/internal/domain"
	getAvailability "github.com/revivatech/RT-AvailabilityService/internal/usecase/get_availability"
	"github.com/revivatech/RT-AvailabilityService/pkg/ptr"
)

const (
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingRepairType   = "тип ремонта обязателен"
	msgUnknownRepairType   = "неизвестный тип ремонта"
	msgInvalidDuration     = "некорректная длительность, ожидается число минут от 15 до 480"
	msgInvalidRequest      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability/slots
// Query params: date (required, YYYY-MM-DD), repairType (required),
// duration?, technicianId?, urgency?, serviceType?
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	repairType := query.Get("repairType")
	if repairType == "" {
		h.logger.Warn("GET /availability/slots - Missing repair type")
		handlers.RespondBadRequest(w, msgMissingRepairType)
		return
	}

	req := &getAvailability.Request{
		Date:        date,
		RepairType:  repairType,
		Urgency:     domain.ParseUrgency(query.Get("urgency")),
		ServiceType: domain.ParseServiceType(query.Get("serviceType")),
	}

	if durationStr := query.Get("duration"); durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /availability/slots - Invalid duration %q: %v", durationStr, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		req.DurationMinutes = ptr.Ptr(duration)
	}

	if technicianID := query.Get("technicianId"); technicianID != "" {
		req.TechnicianID = ptr.Ptr(technicianID)
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrRepairTypeNotFound):
			h.logger.Warn("GET /availability/slots - Repair type not found: %s", repairType)
			handlers.RespondBadRequest(w, msgUnknownRepairType)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability/slots - Failed to get availability: date=%s, repairType=%s, error=%v",
				dateStr, repairType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, req, time.Now())

	h.logger.Info("GET /availability/slots - %d slots returned: date=%s, repairType=%s",
		len(response.Slots), dateStr, repairType)
	handlers.RespondJSON(w, http.StatusOK, response)
}
