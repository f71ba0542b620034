package mapper

import (
	"careconnect-api/modules/category/dto"
	"careconnect-api/modules/category/entity"
)

func ToCategoryResponse(category *entity.ServiceCategory) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:              category.ID.String(),
		Name:            category.Name,
		Slug:            category.Slug,
		Description:     category.Description,
		HourlyRateCents: category.HourlyRateCents,
		IsActive:        category.IsActive,
		CreatedAt:       category.CreatedAt,
		UpdatedAt:       category.UpdatedAt,
	}
}

func ToCategoryPaginationResponse(paginated *entity.PaginatedCategoryEntity) *dto.PaginatedCategoryResponse {
	if paginated == nil {
		return &dto.PaginatedCategoryResponse{Items: []dto.CategoryResponse{}}
	}

	items := make([]dto.CategoryResponse, len(paginated.Items))
	for i, category := range paginated.Items {
		items[i] = *ToCategoryResponse(&category)
	}

	totalPages := 0
	if paginated.PageSize > 0 {
		totalPages = (paginated.TotalItems + paginated.PageSize - 1) / paginated.PageSize
	}

	return &dto.PaginatedCategoryResponse{
		Items:      items,
		TotalItems: paginated.TotalItems,
		TotalPages: totalPages,
		PageNumber: paginated.PageNumber,
		PageSize:   paginated.PageSize,
	}
}
