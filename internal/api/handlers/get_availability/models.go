package get_availability

import (
	"time"

	"github.com/revivatech/RT-AvailabilityService/internal/domain"
	getAvailability "github.com/revivatech/RT-AvailabilityService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Slots         []AvailabilitySlot `json:"slots"`
	Summary       Summary            `json:"summary"`
	RequestInfo   RequestInfo        `json:"requestInfo"`
	BusinessHours BusinessHours      `json:"businessHours"`
	Holidays      []Holiday          `json:"holidays"`
}

// AvailabilitySlot аннотированный слот в HTTP ответе
type AvailabilitySlot struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Duration      int           `json:"duration"`
	Available     bool          `json:"available"`
	Capacity      int           `json:"capacity"`
	BookingCount  int           `json:"bookingCount"`
	TechnicianIDs []string      `json:"technicianIds"`
	Pricing       Pricing       `json:"pricing"`
	BusinessRules BusinessRules `json:"businessRules"`
	Metadata      Metadata      `json:"metadata"`
}

// Pricing разбивка цены слота
type Pricing struct {
	BasePrice  float64     `json:"basePrice"`
	Surcharges []Surcharge `json:"surcharges"`
	TotalPrice float64     `json:"totalPrice"`
}

// Surcharge позиция наценки
type Surcharge struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage,omitempty"`
	Reason     string  `json:"reason"`
}

// BusinessRules вердикт бизнес-правил
type BusinessRules struct {
	CanBook      bool     `json:"canBook"`
	Restrictions []string `json:"restrictions"`
	Warnings     []string `json:"warnings"`
}

// Metadata дополнительная информация о слоте
type Metadata struct {
	SkillLevel    string  `json:"skillLevel"`
	Reserved      bool    `json:"reserved"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// Summary агрегаты по списку слотов
type Summary struct {
	TotalSlots        int     `json:"totalSlots"`
	AvailableSlots    int     `json:"availableSlots"`
	ReservedSlots     int     `json:"reservedSlots"`
	FullyBookedSlots  int     `json:"fullyBookedSlots"`
	AveragePrice      float64 `json:"averagePrice"`
	EarliestAvailable *string `json:"earliestAvailable,omitempty"`
	LatestAvailable   *string `json:"latestAvailable,omitempty"`
}

// RequestInfo эхо параметров запроса
type RequestInfo struct {
	Date         string  `json:"date"`
	RepairType   string  `json:"repairType"`
	Urgency      string  `json:"urgency"`
	ServiceType  string  `json:"serviceType"`
	TechnicianID *string `json:"technicianId,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	Timestamp    string  `json:"timestamp"`
}

// BusinessHours рабочие часы мастерской на запрошенную дату
type BusinessHours struct {
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// Holiday праздничный день
type Holiday struct {
	Date    string  `json:"date"`
	Name    string  `json:"name"`
	Closure string  `json:"closure"`
	Hours   *string `json:"hours,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response, req *getAvailability.Request, now time.Time) *AvailabilityResponse {
	slots := make([]AvailabilitySlot, len(resp.Slots))
	for i, s := range resp.Slots {
		surcharges := make([]Surcharge, len(s.Pricing.Surcharges))
		for j, sur := range s.Pricing.Surcharges {
			surcharges[j] = Surcharge{
				Name:       sur.Name,
				Amount:     sur.Amount,
				Percentage: sur.Percentage,
				Reason:     sur.Reason,
			}
		}

		slots[i] = AvailabilitySlot{
			ID:            s.Slot.ID,
			Date:          s.Slot.Date.Format(domain.DateFormat),
			Time:          s.Slot.StartTime.String(),
			Duration:      s.Slot.DurationMinutes,
			Available:     s.Available,
			Capacity:      s.Slot.Capacity,
			BookingCount:  s.Slot.BookingCount,
			TechnicianIDs: s.Slot.TechnicianIDs,
			Pricing: Pricing{
				BasePrice:  s.Pricing.BasePrice,
				Surcharges: surcharges,
				TotalPrice: s.Pricing.TotalPrice,
			},
			BusinessRules: BusinessRules{
				CanBook:      s.Rules.CanBook,
				Restrictions: s.Rules.Restrictions,
				Warnings:     s.Rules.Warnings,
			},
			Metadata: Metadata{
				SkillLevel:    s.Slot.SkillLevel,
				Reserved:      s.Reserved,
				OccupancyRate: s.Slot.OccupancyRate(),
			},
		}
	}

	holidays := make([]Holiday, len(resp.Holidays))
	for i, h := range resp.Holidays {
		holidays[i] = Holiday{
			Date:    h.Date,
			Name:    h.Name,
			Closure: string(h.Closure),
			Hours:   h.Hours,
		}
	}

	summary := Summary{
		TotalSlots:       resp.Summary.TotalSlots,
		AvailableSlots:   resp.Summary.AvailableSlots,
		ReservedSlots:    resp.Summary.ReservedSlots,
		FullyBookedSlots: resp.Summary.FullyBookedSlots,
		AveragePrice:     resp.Summary.AveragePrice,
	}
	if resp.Summary.EarliestAvailable != nil {
		s := resp.Summary.EarliestAvailable.String()
		summary.EarliestAvailable = &s
	}
	if resp.Summary.LatestAvailable != nil {
		s := resp.Summary.LatestAvailable.String()
		summary.LatestAvailable = &s
	}

	return &AvailabilityResponse{
		Slots:   slots,
		Summary: summary,
		RequestInfo: RequestInfo{
			Date:         resp.Date.Format(domain.DateFormat),
			RepairType:   resp.RepairType,
			Urgency:      string(resp.Urgency),
			ServiceType:  string(resp.ServiceType),
			TechnicianID: req.TechnicianID,
			Duration:     req.DurationMinutes,
			Timestamp:    now.Format(time.RFC3339),
		},
		BusinessHours: BusinessHours{
			IsOpen:    resp.BusinessHours.IsOpen,
			OpenTime:  resp.BusinessHours.OpenTime,
			CloseTime: resp.BusinessHours.CloseTime,
		},
		Holidays: holidays,
	}
}
