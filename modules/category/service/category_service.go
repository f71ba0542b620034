package service

import (
	"context"

	"careconnect-api/core/errors"
	"careconnect-api/core/params"
	"careconnect-api/modules/category/dto"
	"careconnect-api/modules/category/entity"
	"careconnect-api/modules/category/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type CategoryService struct {
	repo repository.CategoryRepositoryInterface
}

type CategoryServiceInterface interface {
	Create(ctx context.Context, req *dto.CategoryRequest) (*entity.ServiceCategory, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, *errors.AppError)
	List(ctx context.Context, activeOnly bool, qp params.QueryParams) (*entity.PaginatedCategoryEntity, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, req *dto.CategoryRequest) (*entity.ServiceCategory, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

func NewCategoryService(repo repository.CategoryRepositoryInterface) CategoryServiceInterface {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, req *dto.CategoryRequest) (*entity.ServiceCategory, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}

	categorySlug := slug.Make(req.Name)
	existing, err := s.repo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check category slug", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "a category with this name already exists", nil)
	}

	category := &entity.ServiceCategory{
		Name:            req.Name,
		Slug:            categorySlug,
		Description:     req.Description,
		HourlyRateCents: req.HourlyRateCents,
		IsActive:        true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create category", err)
	}
	return category, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, *errors.AppError) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get category", err)
	}
	if category == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "category not found", nil)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, activeOnly bool, qp params.QueryParams) (*entity.PaginatedCategoryEntity, *errors.AppError) {
	result, err := s.repo.List(ctx, activeOnly, qp)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list categories", err)
	}
	return result, nil
}

// Update renames and reprices a category. The slug follows the name, so a
// rename colliding with another category's slug is rejected.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req *dto.CategoryRequest) (*entity.ServiceCategory, *errors.AppError) {
	category, appErr := s.GetByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	newSlug := slug.Make(req.Name)
	if newSlug != category.Slug {
		existing, err := s.repo.GetBySlug(ctx, newSlug)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check category slug", err)
		}
		if existing != nil {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "a category with this name already exists", nil)
		}
	}

	category.Name = req.Name
	category.Slug = newSlug
	category.Description = req.Description
	category.HourlyRateCents = req.HourlyRateCents
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update category", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	if _, appErr := s.GetByID(ctx, id); appErr != nil {
		return appErr
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete category", err)
	}
	return nil
}
