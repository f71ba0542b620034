package controller

import (
	"careconnect-api/core/constants"
	"careconnect-api/core/controller"
	"careconnect-api/core/errors"
	"careconnect-api/core/utils"
	"careconnect-api/modules/availability/dto"
	"careconnect-api/modules/availability/service"
	profileservice "careconnect-api/modules/profile/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
	ProfileService      profileservice.ProfileServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface, profileSvc profileservice.ProfileServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
		ProfileService:      profileSvc,
	}
}

func (c *AvailabilityController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "user not authenticated", nil)
	}
	return claims.UserID, nil
}

// GetSchedule handles GET /private/availability
// @Summary Get my weekly availability schedule
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ScheduleResponse
// @Failure 404 {object} errors.AppError
// @Router /private/availability [get]
func (c *AvailabilityController) GetSchedule(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	// Read path does not lazy-create; a worker without a profile has no schedule.
	profile, appErr := c.ProfileService.GetByUserID(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	result, appErr := c.AvailabilityService.GetSchedule(ctx.Request().Context(), profile.ID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// SyncSchedule handles PUT /private/availability
// @Summary Replace my weekly availability schedule
// @Description Reconciles stored state against the submitted desired state in one atomic operation
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SyncScheduleRequest true "Desired schedule"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 400 {object} errors.AppError
// @Router /private/availability [put]
func (c *AvailabilityController) SyncSchedule(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	var req dto.SyncScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	profile, appErr := c.ProfileService.GetOrCreateByUserID(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	result, appErr := c.AvailabilityService.SyncSchedule(ctx.Request().Context(), profile.ID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Schedule updated successfully")
}
