package service

import (
	"context"

	"careconnect-api/core/errors"
	"careconnect-api/core/logger"
	authservice "careconnect-api/modules/auth/service"
	"careconnect-api/modules/payment/dto"
	"careconnect-api/modules/payment/entity"
	"careconnect-api/modules/payment/repository"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/customer"
	"github.com/stripe/stripe-go/v78/paymentmethod"
	"github.com/stripe/stripe-go/v78/setupintent"
)

type PaymentService struct {
	repo    repository.PaymentRepositoryInterface
	authSvc authservice.AuthServiceInterface
}

type PaymentServiceInterface interface {
	CreateSetupIntent(ctx context.Context, userID uuid.UUID) (*dto.SetupIntentResponse, *errors.AppError)
	ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]dto.PaymentMethodResponse, *errors.AppError)
	DetachPaymentMethod(ctx context.Context, userID uuid.UUID, paymentMethodID string) *errors.AppError
}

func NewPaymentService(repo repository.PaymentRepositoryInterface, authSvc authservice.AuthServiceInterface) PaymentServiceInterface {
	return &PaymentService{repo: repo, authSvc: authSvc}
}

// getOrCreateCustomer resolves the gateway customer for a user, creating it
// at the gateway on first use and remembering the mapping locally.
func (s *PaymentService) getOrCreateCustomer(ctx context.Context, userID uuid.UUID) (string, *errors.AppError) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to get payment customer", err)
	}
	if existing != nil {
		return existing.GatewayCustomerID, nil
	}

	user, appErr := s.authSvc.GetUserByID(ctx, userID)
	if appErr != nil {
		return "", appErr
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Name:  stripe.String(user.FullName),
	}
	params.AddMetadata("user_id", userID.String())

	created, err := customer.New(params)
	if err != nil {
		logger.Error("PaymentService:getOrCreateCustomer", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to create payment customer", err)
	}

	record := &entity.PaymentCustomer{
		UserID:            userID,
		GatewayCustomerID: created.ID,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to save payment customer", err)
	}
	return created.ID, nil
}

func (s *PaymentService) CreateSetupIntent(ctx context.Context, userID uuid.UUID) (*dto.SetupIntentResponse, *errors.AppError) {
	customerID, appErr := s.getOrCreateCustomer(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	intent, err := setupintent.New(&stripe.SetupIntentParams{
		Customer:           stripe.String(customerID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Usage:              stripe.String(string(stripe.SetupIntentUsageOffSession)),
	})
	if err != nil {
		logger.Error("PaymentService:CreateSetupIntent", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create setup intent", err)
	}

	return &dto.SetupIntentResponse{
		ClientSecret: intent.ClientSecret,
		CustomerID:   customerID,
	}, nil
}

func (s *PaymentService) ListPaymentMethods(ctx context.Context, userID uuid.UUID) ([]dto.PaymentMethodResponse, *errors.AppError) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get payment customer", err)
	}
	if existing == nil {
		return []dto.PaymentMethodResponse{}, nil
	}

	iter := paymentmethod.List(&stripe.PaymentMethodListParams{
		Customer: stripe.String(existing.GatewayCustomerID),
		Type:     stripe.String(string(stripe.PaymentMethodTypeCard)),
	})

	methods := []dto.PaymentMethodResponse{}
	for iter.Next() {
		pm := iter.PaymentMethod()
		method := dto.PaymentMethodResponse{ID: pm.ID}
		if pm.Card != nil {
			method.Brand = string(pm.Card.Brand)
			method.Last4 = pm.Card.Last4
			method.ExpMonth = pm.Card.ExpMonth
			method.ExpYear = pm.Card.ExpYear
		}
		methods = append(methods, method)
	}
	if err := iter.Err(); err != nil {
		logger.Error("PaymentService:ListPaymentMethods", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list payment methods", err)
	}
	return methods, nil
}

// DetachPaymentMethod removes a saved card. The method must belong to the
// caller's gateway customer.
func (s *PaymentService) DetachPaymentMethod(ctx context.Context, userID uuid.UUID, paymentMethodID string) *errors.AppError {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to get payment customer", err)
	}
	if existing == nil {
		return errors.NewAppError(errors.ErrNotFound, "payment method not found", nil)
	}

	pm, err := paymentmethod.Get(paymentMethodID, nil)
	if err != nil {
		logger.Error("PaymentService:DetachPaymentMethod", err)
		return errors.NewAppError(errors.ErrNotFound, "payment method not found", err)
	}
	if pm.Customer == nil || pm.Customer.ID != existing.GatewayCustomerID {
		return errors.NewAppError(errors.ErrForbidden, "payment method does not belong to this account", nil)
	}

	if _, err := paymentmethod.Detach(paymentMethodID, nil); err != nil {
		logger.Error("PaymentService:DetachPaymentMethod", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to remove payment method", err)
	}
	return nil
}
