package entity

import (
	"time"

	"careconnect-api/core/entity"

	"github.com/google/uuid"
)

// VerificationDocument is the bookkeeping record for a credential a PSW
// submits for review (licence, police check, first-aid certificate). Only
// metadata lives here; the file itself is stored elsewhere.
type VerificationDocument struct {
	ProfileID       uuid.UUID  `db:"profile_id" json:"profile_id"`
	DocumentType    string     `db:"document_type" json:"document_type"`
	ReferenceNumber string     `db:"reference_number" json:"reference_number"`
	Status          string     `db:"status" json:"status"` // pending | verified | rejected | expired
	SubmittedAt     time.Time  `db:"submitted_at" json:"submitted_at"`
	ReviewedAt      *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewNote      *string    `db:"review_note" json:"review_note,omitempty"`

	entity.BaseEntity
}
