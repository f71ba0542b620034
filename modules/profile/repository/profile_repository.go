package repository

import (
	"context"
	"database/sql"

	"careconnect-api/core/database"
	"careconnect-api/core/logger"
	"careconnect-api/modules/profile/entity"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	db database.IDatabase
}

type ProfileRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PswProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.PswProfile, error)
	Create(ctx context.Context, profile *entity.PswProfile) error
	Update(ctx context.Context, profile *entity.PswProfile) error
	SetVerificationStatus(ctx context.Context, profileID uuid.UUID, status string) error
}

func NewProfileRepository(db database.IDatabase) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PswProfile, error) {
	query := `
		SELECT id, user_id, min_booking_slot, bio, years_experience, verification_status, created_at, updated_at
		FROM psw_profiles WHERE id = $1
	`

	var profile entity.PswProfile
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ProfileRepository:GetByID", err)
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.PswProfile, error) {
	query := `
		SELECT id, user_id, min_booking_slot, bio, years_experience, verification_status, created_at, updated_at
		FROM psw_profiles WHERE user_id = $1
	`

	var profile entity.PswProfile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ProfileRepository:GetByUserID", err)
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entity.PswProfile) error {
	query := `
		INSERT INTO psw_profiles (user_id, min_booking_slot, bio, years_experience, verification_status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.MinBookingSlot, profile.Bio,
		profile.YearsExperience, profile.VerificationStatus).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		logger.Error("ProfileRepository:Create", err)
		return err
	}
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *entity.PswProfile) error {
	query := `
		UPDATE psw_profiles
		SET min_booking_slot = $2, bio = $3, years_experience = $4, updated_at = NOW()
		WHERE id = $1
	`

	err := r.db.ExecContext(ctx, query,
		profile.ID, profile.MinBookingSlot, profile.Bio, profile.YearsExperience)
	if err != nil {
		logger.Error("ProfileRepository:Update", err)
		return err
	}
	return nil
}

func (r *ProfileRepository) SetVerificationStatus(ctx context.Context, profileID uuid.UUID, status string) error {
	query := `UPDATE psw_profiles SET verification_status = $2, updated_at = NOW() WHERE id = $1`

	if err := r.db.ExecContext(ctx, query, profileID, status); err != nil {
		logger.Error("ProfileRepository:SetVerificationStatus", err)
		return err
	}
	return nil
}
