package repository

import (
	"context"
	"database/sql"

	"careconnect-api/core/database"
	"careconnect-api/core/logger"
	"careconnect-api/modules/address/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AddressRepository struct {
	db database.IDatabase
}

type AddressRepositoryInterface interface {
	Create(ctx context.Context, address *entity.Address) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Address, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetDefault(ctx context.Context, userID, addressID uuid.UUID) error
}

func NewAddressRepository(db database.IDatabase) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, address *entity.Address) error {
	query := `
		INSERT INTO addresses (user_id, label, line1, line2, city, province, postal_code, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		address.UserID, address.Label, address.Line1, address.Line2,
		address.City, address.Province, address.PostalCode, address.IsDefault).
		Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		logger.Error("AddressRepository:Create", err)
		return err
	}
	return nil
}

func (r *AddressRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	query := `
		SELECT id, user_id, label, line1, line2, city, province, postal_code, is_default, created_at, updated_at
		FROM addresses WHERE id = $1
	`

	var address entity.Address
	err := r.db.GetContext(ctx, &address, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AddressRepository:GetByID", err)
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Address, error) {
	query := `
		SELECT id, user_id, label, line1, line2, city, province, postal_code, is_default, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at
	`

	var addresses []entity.Address
	if err := r.db.SelectContext(ctx, &addresses, query, userID); err != nil {
		logger.Error("AddressRepository:ListByUser", err)
		return nil, err
	}
	return addresses, nil
}

func (r *AddressRepository) Update(ctx context.Context, address *entity.Address) error {
	query := `
		UPDATE addresses
		SET label = $2, line1 = $3, line2 = $4, city = $5, province = $6, postal_code = $7, updated_at = NOW()
		WHERE id = $1
	`

	err := r.db.ExecContext(ctx, query,
		address.ID, address.Label, address.Line1, address.Line2,
		address.City, address.Province, address.PostalCode)
	if err != nil {
		logger.Error("AddressRepository:Update", err)
		return err
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id); err != nil {
		logger.Error("AddressRepository:Delete", err)
		return err
	}
	return nil
}

// SetDefault flips the default flag to the given address. Both updates run
// in one transaction so the one-default-per-user invariant survives failures.
func (r *AddressRepository) SetDefault(ctx context.Context, userID, addressID uuid.UUID) error {
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE addresses SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default`, userID); err != nil {
			logger.Error("AddressRepository:SetDefault", err)
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE addresses SET is_default = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2`, addressID, userID); err != nil {
			logger.Error("AddressRepository:SetDefault", err)
			return err
		}
		return nil
	})
}
