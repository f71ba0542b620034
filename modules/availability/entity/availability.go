package entity

import (
	"careconnect-api/core/entity"

	"github.com/google/uuid"
)

// AvailabilityDay is one weekday's container for a worker's bookable slots.
// At most one row exists per (profile_id, day_of_week); days are created
// lazily during sync and never deleted.
type AvailabilityDay struct {
	ProfileID   uuid.UUID `db:"profile_id" json:"profile_id"`
	DayOfWeek   int       `db:"day_of_week" json:"day_of_week"` // 0=Sunday .. 6=Saturday
	IsAvailable bool      `db:"is_available" json:"is_available"`

	entity.BaseEntity
}

// AvailabilitySlot is a concrete bookable time window on one day. Times are
// stored normalized as "HH:MM:SS". ProfileID is denormalized so the full
// slot set of a worker can be loaded without joining through days.
type AvailabilitySlot struct {
	ProfileID           uuid.UUID `db:"profile_id" json:"profile_id"`
	AvailabilityDayID   uuid.UUID `db:"availability_day_id" json:"availability_day_id"`
	StartTime           string    `db:"start_time" json:"start_time"`
	EndTime             string    `db:"end_time" json:"end_time"`
	SlotDurationMinutes int       `db:"slot_duration_minutes" json:"slot_duration_minutes"`
	IsActive            bool      `db:"is_active" json:"is_active"`

	entity.BaseEntity
}

// Overlaps reports whether the two slots' intervals intersect, using the
// half-open test: A.start < B.end && A.end > B.start. Normalized time
// strings compare chronologically, so plain string comparison is safe here.
func (s *AvailabilitySlot) Overlaps(other *AvailabilitySlot) bool {
	return s.StartTime < other.EndTime && s.EndTime > other.StartTime
}

// SameWindow reports an exact (start, end) duplicate.
func (s *AvailabilitySlot) SameWindow(other *AvailabilitySlot) bool {
	return s.StartTime == other.StartTime && s.EndTime == other.EndTime
}
