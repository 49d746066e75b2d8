package get_repair_types

import (
	"net/http"

	"github.com/revivatech/RT-AvailabilityService/internal/api/handlers"
)

// RepairTypesResponse HTTP response model
type RepairTypesResponse struct {
	RepairTypes []RepairType `json:"repairTypes"`
}

// RepairType запись справочника в HTTP ответе
type RepairType struct {
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	BasePrice       float64 `json:"basePrice"`
	DurationMinutes int     `json:"durationMinutes"`
	SkillLevel      string  `json:"skillLevel"`
}

type Handler struct {
	catalog RepairTypeCatalog
	logger  Logger
}

func NewHandler(catalog RepairTypeCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/availability/repair-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries := h.catalog.List()

	repairTypes := make([]RepairType, len(entries))
	for i, rt := range entries {
		repairTypes[i] = RepairType{
			Slug:            rt.Slug,
			Name:            rt.Name,
			BasePrice:       rt.BasePrice,
			DurationMinutes: rt.DurationMinutes,
			SkillLevel:      rt.SkillLevel,
		}
	}

	h.logger.Info("GET /availability/repair-types - %d entries returned", len(repairTypes))
	handlers.RespondJSON(w, http.StatusOK, RepairTypesResponse{RepairTypes: repairTypes})
}
