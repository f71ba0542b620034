package controller

import (
	"careconnect-api/core/constants"
	"careconnect-api/core/controller"
	"careconnect-api/core/errors"
	"careconnect-api/core/utils"
	profileservice "careconnect-api/modules/profile/service"
	"careconnect-api/modules/verification/dto"
	"careconnect-api/modules/verification/mapper"
	"careconnect-api/modules/verification/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type VerificationController struct {
	controller.BaseController
	VerificationService service.VerificationServiceInterface
	ProfileService      profileservice.ProfileServiceInterface
}

func NewVerificationController(svc service.VerificationServiceInterface, profileSvc profileservice.ProfileServiceInterface) *VerificationController {
	return &VerificationController{
		BaseController:      controller.NewBaseController(),
		VerificationService: svc,
		ProfileService:      profileSvc,
	}
}

func (c *VerificationController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// SubmitDocument handles POST /private/verification/documents
// @Summary Submit a credential for review
// @Tags Verification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitDocumentRequest true "Document metadata"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} errors.AppError
// @Router /private/verification/documents [post]
func (c *VerificationController) SubmitDocument(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	var req dto.SubmitDocumentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	profile, appErr := c.ProfileService.GetOrCreateByUserID(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	doc, appErr := c.VerificationService.SubmitDocument(ctx.Request().Context(), profile.ID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, mapper.ToDocumentResponse(doc), "Document submitted")
}

// ListMyDocuments handles GET /private/verification/documents
// @Summary List my submitted credentials
// @Tags Verification
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.DocumentResponse
// @Router /private/verification/documents [get]
func (c *VerificationController) ListMyDocuments(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "user not authenticated")
	}

	profile, appErr := c.ProfileService.GetByUserID(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	docs, appErr := c.VerificationService.ListByProfile(ctx.Request().Context(), profile.ID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, mapper.ToDocumentListResponse(docs), "Success")
}

// ListPending handles GET /private/admin/verification/documents
// @Summary List credentials awaiting review
// @Tags Verification
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.DocumentResponse
// @Router /private/admin/verification/documents [get]
func (c *VerificationController) ListPending(ctx echo.Context) error {
	docs, appErr := c.VerificationService.ListPending(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, mapper.ToDocumentListResponse(docs), "Success")
}

// ReviewDocument handles PUT /private/admin/verification/documents/:id
// @Summary Approve or reject a submitted credential
// @Tags Verification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body dto.ReviewDocumentRequest true "Review decision"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} errors.AppError
// @Router /private/admin/verification/documents/{id} [put]
func (c *VerificationController) ReviewDocument(ctx echo.Context) error {
	documentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid document id")
	}

	var req dto.ReviewDocumentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	doc, appErr := c.VerificationService.ReviewDocument(ctx.Request().Context(), documentID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, mapper.ToDocumentResponse(doc), "Document reviewed")
}
