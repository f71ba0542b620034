package dto

import (
	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

// SyncSlotRequest is one desired slot. A nil ID means a new slot; a set ID
// updates the existing row. DayOfWeek is optional and, when present, must
// name a day included in the request's days list.
type SyncSlotRequest struct {
	ID                  *uuid.UUID `json:"id"`
	DayOfWeek           *int       `json:"day_of_week"`
	StartTime           string     `json:"start_time" validate:"required"`
	EndTime             string     `json:"end_time" validate:"required"`
	SlotDurationMinutes *int       `json:"slot_duration_minutes"`
	IsActive            *bool      `json:"is_active"`
}

// SyncDayRequest is one desired weekday state. Slots omitted from the list
// are deleted: the submitted set is authoritative for the whole profile.
type SyncDayRequest struct {
	DayOfWeek   *int              `json:"day_of_week" validate:"required"`
	IsAvailable *bool             `json:"is_available" validate:"required"`
	Slots       []SyncSlotRequest `json:"slots"`
}

type SyncScheduleRequest struct {
	MinBookingSlot *int             `json:"min_booking_slot"`
	Days           []SyncDayRequest `json:"days"`
}

// ===================== Response DTOs =====================

type SlotResponse struct {
	ID                  string `json:"id"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	IsActive            bool   `json:"is_active"`
	StartTimeFormatted  string `json:"start_time_formatted"`
	EndTimeFormatted    string `json:"end_time_formatted"`
}

type DayResponse struct {
	DayOfWeek   int            `json:"day_of_week"`
	IsAvailable bool           `json:"is_available"`
	Slots       []SlotResponse `json:"slots"`
}

type ScheduleResponse struct {
	MinBookingSlot int           `json:"min_booking_slot"`
	Days           []DayResponse `json:"days"`
}
