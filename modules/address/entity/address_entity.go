package entity

import (
	"careconnect-api/core/entity"

	"github.com/google/uuid"
)

// Address is a saved service location for a user. At most one address per
// user carries the default flag; when a user has any addresses, exactly one
// is the default.
type Address struct {
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	Label      string    `db:"label" json:"label"`
	Line1      string    `db:"line1" json:"line1"`
	Line2      *string   `db:"line2" json:"line2,omitempty"`
	City       string    `db:"city" json:"city"`
	Province   string    `db:"province" json:"province"`
	PostalCode string    `db:"postal_code" json:"postal_code"`
	IsDefault  bool      `db:"is_default" json:"is_default"`

	entity.BaseEntity
}
