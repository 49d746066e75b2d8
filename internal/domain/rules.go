package domain

// BusinessRuleResult is the bookability verdict for a single slot.
// Restrictions are hard blockers (any of them forces CanBook=false),
// warnings are soft advisories that never block booking.
// Both are human-readable strings meant for direct display
type BusinessRuleResult struct {
	CanBook      bool
	Restrictions []string
	Warnings     []string
}

// NewBusinessRuleResult returns a verdict with no restrictions or warnings
func NewBusinessRuleResult() *BusinessRuleResult {
	return &BusinessRuleResult{
		CanBook:      true,
		Restrictions: []string{},
		Warnings:     []string{},
	}
}

// AddRestriction appends a hard blocker and forces CanBook=false
func (r *BusinessRuleResult) AddRestriction(msg string) {
	r.Restrictions = append(r.Restrictions, msg)
	r.CanBook = false
}

// AddWarning appends a soft advisory
func (r *BusinessRuleResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// ClosureType describes how a holiday affects the shop's schedule
type ClosureType string

const (
	ClosureFull    ClosureType = "full_closure"
	ClosureLimited ClosureType = "limited_hours"
)

// Holiday is one entry of the holiday table, keyed by date (YYYY-MM-DD)
type Holiday struct {
	Date    string
	Name    string
	Closure ClosureType
	Hours   *string // limited opening hours, e.g. "10:00-14:00"
}

// DaySchedule describes the shop's working hours for one day
type DaySchedule struct {
	IsOpen    bool
	OpenTime  *string
	CloseTime *string
}
