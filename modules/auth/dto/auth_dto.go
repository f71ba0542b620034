package dto

import "time"

// ===================== Request DTOs =====================

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=client psw"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SendOTPRequest picks the delivery channel for the verification code.
type SendOTPRequest struct {
	Channel string `json:"channel" validate:"required,oneof=email sms"`
}

type VerifyOTPRequest struct {
	Channel string `json:"channel" validate:"required,oneof=email sms"`
	Code    string `json:"code" validate:"required"`
}

// ===================== Response DTOs =====================

type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	FullName      string    `json:"full_name"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	PhoneVerified bool      `json:"phone_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
