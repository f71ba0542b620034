package dto

import "time"

// UpdateProfileRequest updates the caller's own PSW profile.
type UpdateProfileRequest struct {
	MinBookingSlot  *int    `json:"min_booking_slot"`
	Bio             *string `json:"bio"`
	YearsExperience *int    `json:"years_experience"`
}

type ProfileResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	MinBookingSlot     int       `json:"min_booking_slot"`
	Bio                string    `json:"bio,omitempty"`
	YearsExperience    int       `json:"years_experience"`
	VerificationStatus string    `json:"verification_status"`
	CreatedAt          time.Time `json:"created_at"`
}
