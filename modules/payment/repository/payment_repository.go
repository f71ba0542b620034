package repository

import (
	"context"
	"database/sql"

	"careconnect-api/core/database"
	"careconnect-api/core/logger"
	"careconnect-api/modules/payment/entity"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	db database.IDatabase
}

type PaymentRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.PaymentCustomer, error)
	Create(ctx context.Context, customer *entity.PaymentCustomer) error
}

func NewPaymentRepository(db database.IDatabase) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.PaymentCustomer, error) {
	query := `
		SELECT id, user_id, gateway_customer_id, created_at, updated_at
		FROM payment_customers WHERE user_id = $1
	`

	var customer entity.PaymentCustomer
	err := r.db.GetContext(ctx, &customer, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PaymentRepository:GetByUserID", err)
		return nil, err
	}
	return &customer, nil
}

func (r *PaymentRepository) Create(ctx context.Context, customer *entity.PaymentCustomer) error {
	query := `
		INSERT INTO payment_customers (user_id, gateway_customer_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET gateway_customer_id = EXCLUDED.gateway_customer_id, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, customer.UserID, customer.GatewayCustomerID).
		Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		logger.Error("PaymentRepository:Create", err)
		return err
	}
	return nil
}
