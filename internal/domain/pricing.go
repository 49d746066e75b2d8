package domain

// Urgency is the customer-selected service speed tier
type Urgency string

const (
	UrgencyStandard  Urgency = "standard"
	UrgencyPriority  Urgency = "priority"
	UrgencyEmergency Urgency = "emergency"
)

// ParseUrgency maps a raw string to an Urgency.
// Unknown values fall back to standard (fail-safe default, not an error)
func ParseUrgency(s string) Urgency {
	switch Urgency(s) {
	case UrgencyPriority:
		return UrgencyPriority
	case UrgencyEmergency:
		return UrgencyEmergency
	default:
		return UrgencyStandard
	}
}

// ServiceType is how the customer hands the device over
type ServiceType string

const (
	ServiceTypeDropOff    ServiceType = "drop_off"
	ServiceTypeCollection ServiceType = "collection"
	ServiceTypePostal     ServiceType = "postal"
)

// ParseServiceType maps a raw string to a ServiceType, defaulting to drop_off
func ParseServiceType(s string) ServiceType {
	switch ServiceType(s) {
	case ServiceTypeCollection:
		return ServiceTypeCollection
	case ServiceTypePostal:
		return ServiceTypePostal
	default:
		return ServiceTypeDropOff
	}
}

// Surcharge is a named, itemized price adjustment on top of the base price
type Surcharge struct {
	Name       string
	Amount     float64
	Percentage float64 // 0 for flat fees
	Reason     string
}

// PricingBreakdown is the derived price of a slot: base price plus an ordered
// list of surcharges. Order matters for display (calendar surcharges first,
// then urgency, then handover fees), not for the total
type PricingBreakdown struct {
	BasePrice  float64
	Surcharges []Surcharge
	TotalPrice float64
}

// RepairType describes a bookable repair service from the catalog
type RepairType struct {
	Slug            string
	Name            string
	BasePrice       float64
	DurationMinutes int
	SkillLevel      string
}
