package entity

import (
	"careconnect-api/core/entity"

	"github.com/google/uuid"
)

// PswProfile is the worker-specific record owning an availability schedule.
// Created lazily on first availability access, never deleted.
type PswProfile struct {
	UserID             uuid.UUID `db:"user_id" json:"user_id"`
	MinBookingSlot     int       `db:"min_booking_slot" json:"min_booking_slot"`
	Bio                *string   `db:"bio" json:"bio,omitempty"`
	YearsExperience    int       `db:"years_experience" json:"years_experience"`
	VerificationStatus string    `db:"verification_status" json:"verification_status"`

	entity.BaseEntity
}
