package controller

import (
	"careconnect-api/core/constants"
	"careconnect-api/core/controller"
	"careconnect-api/core/errors"
	"careconnect-api/core/utils"
	"careconnect-api/modules/profile/dto"
	"careconnect-api/modules/profile/mapper"
	"careconnect-api/modules/profile/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProfileController struct {
	controller.BaseController
	ProfileService service.ProfileServiceInterface
}

func NewProfileController(svc service.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		BaseController: controller.NewBaseController(),
		ProfileService: svc,
	}
}

func (c *ProfileController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "user not authenticated", nil)
	}
	return claims.UserID, nil
}

// GetProfile handles GET /private/profile
// @Summary Get my PSW profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Router /private/profile [get]
func (c *ProfileController) GetProfile(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	profile, appErr := c.ProfileService.GetOrCreateByUserID(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, mapper.ToProfileResponse(profile), "Success")
}

// UpdateProfile handles PUT /private/profile
// @Summary Update my PSW profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Router /private/profile [put]
func (c *ProfileController) UpdateProfile(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	var req dto.UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	profile, appErr := c.ProfileService.UpdateProfile(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, mapper.ToProfileResponse(profile), "Profile updated successfully")
}
