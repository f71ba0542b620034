package service

import (
	"context"

	"careconnect-api/core/constants"
	"careconnect-api/core/errors"
	"careconnect-api/modules/profile/dto"
	"careconnect-api/modules/profile/entity"
	"careconnect-api/modules/profile/repository"

	"github.com/google/uuid"
)

type ProfileService struct {
	repo repository.ProfileRepositoryInterface
}

type ProfileServiceInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.PswProfile, *errors.AppError)
	GetOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*entity.PswProfile, *errors.AppError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*entity.PswProfile, *errors.AppError)
	SetVerificationStatus(ctx context.Context, profileID uuid.UUID, status string) *errors.AppError
}

func NewProfileService(repo repository.ProfileRepositoryInterface) ProfileServiceInterface {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.PswProfile, *errors.AppError) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get profile", err)
	}
	if profile == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "profile not found", nil)
	}
	return profile, nil
}

// GetOrCreateByUserID lazily creates the worker's profile with the default
// booking granularity on first access.
func (s *ProfileService) GetOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*entity.PswProfile, *errors.AppError) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get profile", err)
	}
	if profile != nil {
		return profile, nil
	}

	created := &entity.PswProfile{
		UserID:             userID,
		MinBookingSlot:     constants.DefaultMinBookingSlot,
		VerificationStatus: constants.VerificationStatusPending,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create profile", err)
	}
	return created, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*entity.PswProfile, *errors.AppError) {
	profile, appErr := s.GetOrCreateByUserID(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	if req.MinBookingSlot != nil {
		if !isValidMinBookingSlot(*req.MinBookingSlot) {
			return nil, errors.NewValidationError("min_booking_slot must be one of 15, 30, 45, 60")
		}
		profile.MinBookingSlot = *req.MinBookingSlot
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.YearsExperience != nil {
		if *req.YearsExperience < 0 {
			return nil, errors.NewValidationError("years_experience must not be negative")
		}
		profile.YearsExperience = *req.YearsExperience
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update profile", err)
	}
	return profile, nil
}

func (s *ProfileService) SetVerificationStatus(ctx context.Context, profileID uuid.UUID, status string) *errors.AppError {
	if err := s.repo.SetVerificationStatus(ctx, profileID, status); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to update verification status", err)
	}
	return nil
}

func isValidMinBookingSlot(minutes int) bool {
	for _, opt := range constants.MinBookingSlotOptions {
		if minutes == opt {
			return true
		}
	}
	return false
}
