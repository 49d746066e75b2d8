package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/revivatech/RT-AvailabilityService/pkg/types"
)

// Slot represents a bookable unit of shop capacity
type Slot struct {
	ID              string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Capacity        int
	BookingCount    int // confirmed bookings, owned by the booking subsystem (read-only here)
	TechnicianIDs   []string
	SkillLevel      string

	// ScheduleAvailable is the raw schedule verdict: false once confirmed
	// bookings have exhausted the slot's capacity
	ScheduleAvailable bool
}

// NewSlotID builds a stable slot identifier: date + start time + sequence,
// e.g. "2025-08-01-0900-3"
func NewSlotID(date time.Time, start types.TimeString, seq int) string {
	return fmt.Sprintf("%s-%s-%d",
		date.Format(DateFormat),
		strings.ReplaceAll(start.String(), ":", ""),
		seq,
	)
}

// ParseSlotID decomposes a slot identifier into its date and start time.
// The identifier must carry a parseable date component
func ParseSlotID(id string) (time.Time, types.TimeString, error) {
	parts := strings.Split(id, "-")
	if len(parts) != 5 {
		return time.Time{}, "", fmt.Errorf("invalid slot id format: %q", id)
	}

	date, err := time.Parse(DateFormat, strings.Join(parts[:3], "-"))
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid slot id date: %q", id)
	}

	raw := parts[3]
	if len(raw) != 4 {
		return time.Time{}, "", fmt.Errorf("invalid slot id time: %q", id)
	}
	start, err := types.NewTimeStringFromString(raw[:2] + ":" + raw[2:])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid slot id time: %q", id)
	}

	if _, err := strconv.Atoi(parts[4]); err != nil {
		return time.Time{}, "", fmt.Errorf("invalid slot id sequence: %q", id)
	}

	return date, start, nil
}

// StartAt returns the slot's start as a full timestamp in the given location
func (s *Slot) StartAt(loc *time.Location) time.Time {
	minutes, err := s.StartTime.Minutes()
	if err != nil {
		minutes = 0
	}
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(),
		minutes/60, minutes%60, 0, 0, loc)
}

// IsFull returns true if confirmed bookings have exhausted the slot's capacity
func (s *Slot) IsFull() bool {
	return s.BookingCount >= s.Capacity
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *Slot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.BookingCount) / float64(s.Capacity) * 100
}
