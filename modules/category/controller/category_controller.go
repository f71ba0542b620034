package controller

import (
	"strconv"

	"careconnect-api/core/controller"
	"careconnect-api/core/errors"
	"careconnect-api/core/params"
	"careconnect-api/modules/category/dto"
	"careconnect-api/modules/category/mapper"
	"careconnect-api/modules/category/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	controller.BaseController
	CategoryService service.CategoryServiceInterface
}

func NewCategoryController(svc service.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		BaseController:  controller.NewBaseController(),
		CategoryService: svc,
	}
}

func queryParams(ctx echo.Context) params.QueryParams {
	pageNumber, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))
	return params.QueryParams{PageNumber: pageNumber, PageSize: pageSize}.Normalized()
}

// List handles GET /categories
// @Summary List active service categories
// @Tags Category
// @Produce json
// @Success 200 {object} dto.PaginatedCategoryResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx echo.Context) error {
	result, appErr := c.CategoryService.List(ctx.Request().Context(), true, queryParams(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToCategoryPaginationResponse(result), "Success")
}

// ListAll handles GET /private/admin/categories
// @Summary List all service categories including inactive ones
// @Tags Category
// @Security BearerAuth
// @Produce json
// @Router /private/admin/categories [get]
func (c *CategoryController) ListAll(ctx echo.Context) error {
	result, appErr := c.CategoryService.List(ctx.Request().Context(), false, queryParams(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToCategoryPaginationResponse(result), "Success")
}

// Create handles POST /private/admin/categories
// @Summary Create a service category
// @Tags Category
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Category"
// @Router /private/admin/categories [post]
func (c *CategoryController) Create(ctx echo.Context) error {
	var req dto.CategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	category, appErr := c.CategoryService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToCategoryResponse(category), "Category created successfully")
}

// Update handles PUT /private/admin/categories/:id
// @Summary Update a service category
// @Tags Category
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Router /private/admin/categories/{id} [put]
func (c *CategoryController) Update(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid category ID")
	}

	var req dto.CategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	category, appErr := c.CategoryService.Update(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToCategoryResponse(category), "Category updated successfully")
}

// Delete handles DELETE /private/admin/categories/:id
// @Summary Delete a service category
// @Tags Category
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Router /private/admin/categories/{id} [delete]
func (c *CategoryController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid category ID")
	}

	if appErr := c.CategoryService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Category deleted successfully")
}
