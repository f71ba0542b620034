package service

import (
	"context"
	"fmt"
	"time"

	"careconnect-api/core/cache"
	"careconnect-api/core/config"
	"careconnect-api/core/constants"
	"careconnect-api/core/errors"
	"careconnect-api/core/logger"
	"careconnect-api/core/notify"
	"careconnect-api/core/utils"
	"careconnect-api/modules/auth/dto"
	"careconnect-api/modules/auth/entity"
	"careconnect-api/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	repo   repository.UserRepositoryInterface
	cache  cache.Cache
	sender notify.Sender
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	SendOTP(ctx context.Context, userID uuid.UUID, channel string) *errors.AppError
	VerifyOTP(ctx context.Context, userID uuid.UUID, req *dto.VerifyOTPRequest) *errors.AppError
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, *errors.AppError)
}

func NewAuthService(repo repository.UserRepositoryInterface, cache cache.Cache, sender notify.Sender) AuthServiceInterface {
	return &AuthService{
		repo:   repo,
		cache:  cache,
		sender: sender,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, *errors.AppError) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email is already registered", nil)
	}
	if req.Role != constants.RoleClient && req.Role != constants.RolePsw {
		return nil, errors.NewValidationError("role must be client or psw")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
		Status:       entity.UserStatusActive,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}
	if user.Status != entity.UserStatusActive {
		return nil, errors.NewAppError(errors.ErrForbidden, "account is disabled", nil)
	}

	return s.issueToken(user)
}

func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	cfg, ok := config.GetSafe()
	if !ok {
		return errors.NewAppError(errors.ErrInternalServer, "server configuration error", nil)
	}

	ttl := time.Duration(cfg.JWT.ExpiryHours) * time.Hour
	if err := s.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}
	return nil
}

// SendOTP generates a one-time code, stores it with a TTL and hands it to
// the notification collaborator for delivery.
func (s *AuthService) SendOTP(ctx context.Context, userID uuid.UUID, channel string) *errors.AppError {
	user, appErr := s.GetUserByID(ctx, userID)
	if appErr != nil {
		return appErr
	}

	code := utils.GenerateOTP(constants.OTPLength)
	if code == "" {
		return errors.NewAppError(errors.ErrInternalServer, "failed to generate OTP", nil)
	}

	key := otpKey(userID, channel)
	if err := s.cache.SetOTP(ctx, key, code); err != nil {
		logger.Error("AuthService:SendOTP:SetOTP", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to save OTP", err)
	}

	switch channel {
	case "email":
		body := fmt.Sprintf("Your CareConnect verification code is %s. It expires in %d minutes.", code, constants.OTPExpiryMinutes)
		if err := s.sender.SendEmail(ctx, user.Email, "Your verification code", body); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to send OTP email", err)
		}
	case "sms":
		if user.Phone == nil {
			return errors.NewValidationError("no phone number on file")
		}
		body := fmt.Sprintf("CareConnect code: %s", code)
		if err := s.sender.SendSMS(ctx, *user.Phone, body); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to send OTP SMS", err)
		}
	default:
		return errors.NewValidationError("channel must be email or sms")
	}

	return nil
}

// VerifyOTP checks the submitted code and marks the contact method verified.
// Codes are single-use.
func (s *AuthService) VerifyOTP(ctx context.Context, userID uuid.UUID, req *dto.VerifyOTPRequest) *errors.AppError {
	key := otpKey(userID, req.Channel)
	stored, err := s.cache.GetOTP(ctx, key)
	if err != nil {
		logger.Error("AuthService:VerifyOTP:GetOTP", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to get OTP", err)
	}
	if stored == "" || stored != req.Code {
		return errors.NewAppError(errors.ErrUnauthorized, "invalid OTP", nil)
	}

	if err := s.cache.DeleteOTP(ctx, key); err != nil {
		logger.Error("AuthService:VerifyOTP:DeleteOTP", err)
	}

	switch req.Channel {
	case "email":
		if err := s.repo.MarkEmailVerified(ctx, userID); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to mark email verified", err)
		}
	case "sms":
		if err := s.repo.MarkPhoneVerified(ctx, userID); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to mark phone verified", err)
		}
	default:
		return errors.NewValidationError("channel must be email or sms")
	}

	return nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return user, nil
}

func (s *AuthService) issueToken(user *entity.User) (*dto.LoginResponse, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "server configuration error", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate token", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		FullName:      user.FullName,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
		PhoneVerified: user.PhoneVerified,
		CreatedAt:     user.CreatedAt,
	}
	if user.Phone != nil {
		resp.Phone = *user.Phone
	}
	return resp
}

func otpKey(userID uuid.UUID, channel string) string {
	return fmt.Sprintf("%s:%s", userID, channel)
}
