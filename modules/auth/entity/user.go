package entity

import (
	"careconnect-api/core/entity"
)

// UserStatus represents account state
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

type User struct {
	Email         string  `db:"email" json:"email"`
	Phone         *string `db:"phone" json:"phone,omitempty"`
	PasswordHash  string  `db:"password_hash" json:"-"`
	FullName      string  `db:"full_name" json:"full_name"`
	Role          string  `db:"role" json:"role"` // client | psw | admin
	EmailVerified bool    `db:"email_verified" json:"email_verified"`
	PhoneVerified bool    `db:"phone_verified" json:"phone_verified"`
	Status        string  `db:"status" json:"status"`

	entity.BaseEntity
}
