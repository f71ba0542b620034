package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// User roles
const (
	RoleClient = "client"
	RolePsw    = "psw"
	RoleAdmin  = "admin"
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// OTP settings
const (
	OTPLength        = 6
	OTPExpiryMinutes = 10
	OTPKeyPrefix     = "otp:"
)

// Token blacklist
const (
	TokenBlacklistPrefix = "token:blacklist:"
)

// Availability settings
const (
	DefaultMinBookingSlot   = 30
	DefaultSlotDurationMins = 30
)

// MinBookingSlotOptions are the accepted booking granularities in minutes.
var MinBookingSlotOptions = []int{15, 30, 45, 60}

// Verification document statuses
const (
	VerificationStatusPending  = "pending"
	VerificationStatusVerified = "verified"
	VerificationStatusRejected = "rejected"
	VerificationStatusExpired  = "expired"
)
