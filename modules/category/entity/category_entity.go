package entity

import (
	"careconnect-api/core/entity"
)

// ServiceCategory is an admin-managed category a PSW can offer services
// under (e.g. personal care, housekeeping, respite).
type ServiceCategory struct {
	Name            string `db:"name" json:"name"`
	Slug            string `db:"slug" json:"slug"`
	Description     string `db:"description" json:"description"`
	HourlyRateCents int    `db:"hourly_rate_cents" json:"hourly_rate_cents"`
	IsActive        bool   `db:"is_active" json:"is_active"`

	entity.BaseEntity
}

type PaginatedCategoryEntity = entity.Pagination[ServiceCategory]
