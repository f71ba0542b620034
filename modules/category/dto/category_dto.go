package dto

import "time"

type CategoryRequest struct {
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description"`
	HourlyRateCents int    `json:"hourly_rate_cents" validate:"min=0"`
	IsActive        *bool  `json:"is_active"`
}

type CategoryResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description,omitempty"`
	HourlyRateCents int       `json:"hourly_rate_cents"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PaginatedCategoryResponse struct {
	Items      []CategoryResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPages int                `json:"total_pages"`
	PageNumber int                `json:"page_number"`
	PageSize   int                `json:"page_size"`
}
