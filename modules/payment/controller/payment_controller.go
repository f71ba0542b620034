package controller

import (
	"careconnect-api/core/constants"
	"careconnect-api/core/controller"
	"careconnect-api/core/errors"
	"careconnect-api/core/utils"
	"careconnect-api/modules/payment/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type PaymentController struct {
	controller.BaseController
	PaymentService service.PaymentServiceInterface
}

func NewPaymentController(svc service.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		BaseController: controller.NewBaseController(),
		PaymentService: svc,
	}
}

func (c *PaymentController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// CreateSetupIntent handles POST /private/payment/setup-intent
// @Summary Create a setup intent for saving a card
// @Tags Payment
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SetupIntentResponse
// @Router /private/payment/setup-intent [post]
func (c *PaymentController) CreateSetupIntent(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	result, appErr := c.PaymentService.CreateSetupIntent(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Setup intent created")
}

// ListPaymentMethods handles GET /private/payment/methods
// @Summary List my saved payment methods
// @Tags Payment
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.PaymentMethodResponse
// @Router /private/payment/methods [get]
func (c *PaymentController) ListPaymentMethods(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	methods, appErr := c.PaymentService.ListPaymentMethods(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, methods, "Success")
}

// DetachPaymentMethod handles DELETE /private/payment/methods/:id
// @Summary Remove a saved payment method
// @Tags Payment
// @Security BearerAuth
// @Param id path string true "Payment method ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/payment/methods/{id} [delete]
func (c *PaymentController) DetachPaymentMethod(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	paymentMethodID := ctx.Param("id")
	if paymentMethodID == "" {
		return c.BadRequest(errors.ErrInvalidInput, "payment method id is required")
	}

	if appErr := c.PaymentService.DetachPaymentMethod(ctx.Request().Context(), userID, paymentMethodID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Payment method removed")
}
