package repository

import (
	"context"
	"database/sql"

	"careconnect-api/core/database"
	"careconnect-api/core/logger"
	"careconnect-api/modules/auth/entity"

	"github.com/google/uuid"
)

type UserRepository struct {
	db database.IDatabase
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	MarkPhoneVerified(ctx context.Context, id uuid.UUID) error
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, phone, password_hash, full_name, role, email_verified, phone_verified, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Phone, user.PasswordHash, user.FullName,
		user.Role, user.EmailVerified, user.PhoneVerified, user.Status).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		logger.Error("UserRepository:Create", err)
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, email, phone, password_hash, full_name, role, email_verified, phone_verified, status, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, phone, password_hash, full_name, role, email_verified, phone_verified, status, created_at, updated_at
		FROM users WHERE email = $1
	`

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByEmail", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET email_verified = true, updated_at = NOW() WHERE id = $1`
	if err := r.db.ExecContext(ctx, query, id); err != nil {
		logger.Error("UserRepository:MarkEmailVerified", err)
		return err
	}
	return nil
}

func (r *UserRepository) MarkPhoneVerified(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET phone_verified = true, updated_at = NOW() WHERE id = $1`
	if err := r.db.ExecContext(ctx, query, id); err != nil {
		logger.Error("UserRepository:MarkPhoneVerified", err)
		return err
	}
	return nil
}
