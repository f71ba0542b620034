package service

import (
	"context"
	"testing"

	"careconnect-api/core/constants"
	"careconnect-api/core/errors"
	"careconnect-api/modules/profile/dto"
	"careconnect-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profiles []entity.PswProfile
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PswProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			profile := f.profiles[i]
			return &profile, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.PswProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].UserID == userID {
			profile := f.profiles[i]
			return &profile, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.PswProfile) error {
	profile.ID = uuid.New()
	f.profiles = append(f.profiles, *profile)
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.PswProfile) error {
	for i := range f.profiles {
		if f.profiles[i].ID == profile.ID {
			f.profiles[i] = *profile
			return nil
		}
	}
	return nil
}

func (f *fakeProfileRepo) SetVerificationStatus(ctx context.Context, profileID uuid.UUID, status string) error {
	for i := range f.profiles {
		if f.profiles[i].ID == profileID {
			f.profiles[i].VerificationStatus = status
			return nil
		}
	}
	return nil
}

func TestGetOrCreateByUserIDLazyCreates(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo)
	userID := uuid.New()
	ctx := context.Background()

	profile, appErr := svc.GetOrCreateByUserID(ctx, userID)
	require.Nil(t, appErr)
	assert.Equal(t, constants.DefaultMinBookingSlot, profile.MinBookingSlot)
	assert.Equal(t, constants.VerificationStatusPending, profile.VerificationStatus)

	// Second call finds the existing row instead of creating another.
	again, appErr := svc.GetOrCreateByUserID(ctx, userID)
	require.Nil(t, appErr)
	assert.Equal(t, profile.ID, again.ID)
	assert.Len(t, repo.profiles, 1)
}

func TestGetByUserIDMissing(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	_, appErr := svc.GetByUserID(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestUpdateProfile(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo)
	userID := uuid.New()
	ctx := context.Background()

	bio := "Ten years of home-care experience."
	updated, appErr := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{
		MinBookingSlot:  ptr(60),
		Bio:             &bio,
		YearsExperience: ptr(10),
	})
	require.Nil(t, appErr)
	assert.Equal(t, 60, updated.MinBookingSlot)
	assert.Equal(t, 10, updated.YearsExperience)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, bio, *updated.Bio)
}

func TestUpdateProfileValidation(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})
	userID := uuid.New()
	ctx := context.Background()

	_, appErr := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{MinBookingSlot: ptr(25)})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)

	_, appErr = svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{YearsExperience: ptr(-1)})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
}

func ptr[T any](v T) *T { return &v }
