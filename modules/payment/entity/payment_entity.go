package entity

import (
	"careconnect-api/core/entity"

	"github.com/google/uuid"
)

// PaymentCustomer links a local user to their customer record at the
// payment gateway. One row per user, created on first payment activity.
type PaymentCustomer struct {
	UserID            uuid.UUID `db:"user_id" json:"user_id"`
	GatewayCustomerID string    `db:"gateway_customer_id" json:"gateway_customer_id"`

	entity.BaseEntity
}
