package service

import (
	"context"
	"strings"

	"careconnect-api/core/errors"
	"careconnect-api/modules/address/dto"
	"careconnect-api/modules/address/entity"
	"careconnect-api/modules/address/repository"

	"github.com/google/uuid"
)

type AddressService struct {
	repo repository.AddressRepositoryInterface
}

type AddressServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.AddressRequest) (*entity.Address, *errors.AppError)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Address, *errors.AppError)
	Update(ctx context.Context, userID, addressID uuid.UUID, req *dto.AddressRequest) (*entity.Address, *errors.AppError)
	SetDefault(ctx context.Context, userID, addressID uuid.UUID) *errors.AppError
	Delete(ctx context.Context, userID, addressID uuid.UUID) *errors.AppError
}

func NewAddressService(repo repository.AddressRepositoryInterface) AddressServiceInterface {
	return &AddressService{repo: repo}
}

func validateAddressRequest(req *dto.AddressRequest) *errors.AppError {
	switch {
	case strings.TrimSpace(req.Label) == "":
		return errors.NewValidationError("label is required")
	case strings.TrimSpace(req.Line1) == "":
		return errors.NewValidationError("line1 is required")
	case strings.TrimSpace(req.City) == "":
		return errors.NewValidationError("city is required")
	case strings.TrimSpace(req.Province) == "":
		return errors.NewValidationError("province is required")
	case strings.TrimSpace(req.PostalCode) == "":
		return errors.NewValidationError("postal_code is required")
	}
	return nil
}

// getOwned loads an address and verifies it belongs to the caller. Foreign
// addresses come back as not-found so callers cannot tell foreign ids from missing ones.
func (s *AddressService) getOwned(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, *errors.AppError) {
	address, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get address", err)
	}
	if address == nil || address.UserID != userID {
		return nil, errors.NewAppError(errors.ErrNotFound, "address not found", nil)
	}
	return address, nil
}

// Create saves a new address. The user's first address always becomes the
// default; a later one does only when the request asks for it.
func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, req *dto.AddressRequest) (*entity.Address, *errors.AppError) {
	if appErr := validateAddressRequest(req); appErr != nil {
		return nil, appErr
	}

	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list addresses", err)
	}

	address := &entity.Address{
		UserID:     userID,
		Label:      strings.TrimSpace(req.Label),
		Line1:      strings.TrimSpace(req.Line1),
		Line2:      req.Line2,
		City:       strings.TrimSpace(req.City),
		Province:   strings.TrimSpace(req.Province),
		PostalCode: strings.TrimSpace(req.PostalCode),
		IsDefault:  len(existing) == 0,
	}
	if err := s.repo.Create(ctx, address); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create address", err)
	}

	if !address.IsDefault && req.IsDefault != nil && *req.IsDefault {
		if err := s.repo.SetDefault(ctx, userID, address.ID); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to set default address", err)
		}
		address.IsDefault = true
	}
	return address, nil
}

func (s *AddressService) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Address, *errors.AppError) {
	addresses, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list addresses", err)
	}
	return addresses, nil
}

func (s *AddressService) Update(ctx context.Context, userID, addressID uuid.UUID, req *dto.AddressRequest) (*entity.Address, *errors.AppError) {
	if appErr := validateAddressRequest(req); appErr != nil {
		return nil, appErr
	}

	address, appErr := s.getOwned(ctx, userID, addressID)
	if appErr != nil {
		return nil, appErr
	}

	address.Label = strings.TrimSpace(req.Label)
	address.Line1 = strings.TrimSpace(req.Line1)
	address.Line2 = req.Line2
	address.City = strings.TrimSpace(req.City)
	address.Province = strings.TrimSpace(req.Province)
	address.PostalCode = strings.TrimSpace(req.PostalCode)

	if err := s.repo.Update(ctx, address); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update address", err)
	}

	if req.IsDefault != nil && *req.IsDefault && !address.IsDefault {
		if err := s.repo.SetDefault(ctx, userID, address.ID); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to set default address", err)
		}
		address.IsDefault = true
	}
	return address, nil
}

func (s *AddressService) SetDefault(ctx context.Context, userID, addressID uuid.UUID) *errors.AppError {
	if _, appErr := s.getOwned(ctx, userID, addressID); appErr != nil {
		return appErr
	}
	if err := s.repo.SetDefault(ctx, userID, addressID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to set default address", err)
	}
	return nil
}

// Delete removes an address. Deleting the default promotes the oldest
// remaining address so a user with addresses always has exactly one default.
func (s *AddressService) Delete(ctx context.Context, userID, addressID uuid.UUID) *errors.AppError {
	address, appErr := s.getOwned(ctx, userID, addressID)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, addressID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete address", err)
	}

	if address.IsDefault {
		remaining, err := s.repo.ListByUser(ctx, userID)
		if err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to list addresses", err)
		}
		if len(remaining) > 0 {
			if err := s.repo.SetDefault(ctx, userID, remaining[0].ID); err != nil {
				return errors.NewAppError(errors.ErrInternalServer, "failed to set default address", err)
			}
		}
	}
	return nil
}
