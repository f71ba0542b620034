package controller

import (
	"careconnect-api/core/constants"
	"careconnect-api/core/controller"
	"careconnect-api/core/errors"
	"careconnect-api/core/utils"
	"careconnect-api/modules/address/dto"
	"careconnect-api/modules/address/mapper"
	"careconnect-api/modules/address/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AddressController struct {
	controller.BaseController
	AddressService service.AddressServiceInterface
}

func NewAddressController(svc service.AddressServiceInterface) *AddressController {
	return &AddressController{
		BaseController: controller.NewBaseController(),
		AddressService: svc,
	}
}

func (c *AddressController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// ListAddresses handles GET /private/addresses
// @Summary List my saved addresses
// @Tags Address
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.AddressResponse
// @Router /private/addresses [get]
func (c *AddressController) ListAddresses(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	addresses, appErr := c.AddressService.ListByUser(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, mapper.ToAddressListResponse(addresses), "Success")
}

// CreateAddress handles POST /private/addresses
// @Summary Save a new address
// @Tags Address
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AddressRequest true "Address"
// @Success 200 {object} dto.AddressResponse
// @Failure 400 {object} errors.AppError
// @Router /private/addresses [post]
func (c *AddressController) CreateAddress(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	var req dto.AddressRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	address, appErr := c.AddressService.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, mapper.ToAddressResponse(address), "Address created")
}

// UpdateAddress handles PUT /private/addresses/:id
// @Summary Update a saved address
// @Tags Address
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Address ID"
// @Param request body dto.AddressRequest true "Address"
// @Success 200 {object} dto.AddressResponse
// @Failure 404 {object} errors.AppError
// @Router /private/addresses/{id} [put]
func (c *AddressController) UpdateAddress(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	addressID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid address id")
	}

	var req dto.AddressRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	address, appErr := c.AddressService.Update(ctx.Request().Context(), userID, addressID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, mapper.ToAddressResponse(address), "Address updated")
}

// SetDefaultAddress handles PUT /private/addresses/:id/default
// @Summary Make an address the default
// @Tags Address
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/addresses/{id}/default [put]
func (c *AddressController) SetDefaultAddress(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	addressID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid address id")
	}

	if appErr := c.AddressService.SetDefault(ctx.Request().Context(), userID, addressID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Default address updated")
}

// DeleteAddress handles DELETE /private/addresses/:id
// @Summary Delete a saved address
// @Tags Address
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/addresses/{id} [delete]
func (c *AddressController) DeleteAddress(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	addressID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid address id")
	}

	if appErr := c.AddressService.Delete(ctx.Request().Context(), userID, addressID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Address deleted")
}
