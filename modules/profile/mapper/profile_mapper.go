package mapper

import (
	"careconnect-api/modules/profile/dto"
	"careconnect-api/modules/profile/entity"
)

func ToProfileResponse(profile *entity.PswProfile) *dto.ProfileResponse {
	response := &dto.ProfileResponse{
		ID:                 profile.ID.String(),
		UserID:             profile.UserID.String(),
		MinBookingSlot:     profile.MinBookingSlot,
		YearsExperience:    profile.YearsExperience,
		VerificationStatus: profile.VerificationStatus,
		CreatedAt:          profile.CreatedAt,
	}
	if profile.Bio != nil {
		response.Bio = *profile.Bio
	}
	return response
}
