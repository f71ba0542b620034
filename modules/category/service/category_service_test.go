package service

import (
	"context"
	"testing"

	"careconnect-api/core/errors"
	"careconnect-api/core/params"
	"careconnect-api/modules/category/dto"
	"careconnect-api/modules/category/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	categories []entity.ServiceCategory
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.ServiceCategory) error {
	category.ID = uuid.New()
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			category := f.categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, categorySlug string) (*entity.ServiceCategory, error) {
	for i := range f.categories {
		if f.categories[i].Slug == categorySlug {
			category := f.categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context, activeOnly bool, qp params.QueryParams) (*entity.PaginatedCategoryEntity, error) {
	var items []entity.ServiceCategory
	for _, category := range f.categories {
		if activeOnly && !category.IsActive {
			continue
		}
		items = append(items, category)
	}
	return &entity.PaginatedCategoryEntity{
		Items:      items,
		TotalItems: len(items),
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.ServiceCategory) error {
	for i := range f.categories {
		if f.categories[i].ID == category.ID {
			f.categories[i] = *category
			return nil
		}
	}
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestCategoryCreateSlugifiesName(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{})

	category, appErr := svc.Create(context.Background(), &dto.CategoryRequest{
		Name:            "Personal Care & Hygiene",
		HourlyRateCents: 3500,
	})
	require.Nil(t, appErr)

	assert.Equal(t, "personal-care-and-hygiene", category.Slug)
	assert.True(t, category.IsActive)
	assert.Equal(t, 3500, category.HourlyRateCents)
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)
	ctx := context.Background()

	_, appErr := svc.Create(ctx, &dto.CategoryRequest{Name: "Meal Preparation"})
	require.Nil(t, appErr)

	_, appErr = svc.Create(ctx, &dto.CategoryRequest{Name: "Meal Preparation"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
	assert.Len(t, repo.categories, 1)
}

func TestCategoryUpdateRegeneratesSlug(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)
	ctx := context.Background()

	created, appErr := svc.Create(ctx, &dto.CategoryRequest{Name: "Light Housekeeping"})
	require.Nil(t, appErr)

	updated, appErr := svc.Update(ctx, created.ID, &dto.CategoryRequest{Name: "Deep Housekeeping"})
	require.Nil(t, appErr)
	assert.Equal(t, "deep-housekeeping", updated.Slug)
}

func TestCategoryUpdateRenameCollision(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)
	ctx := context.Background()

	_, appErr := svc.Create(ctx, &dto.CategoryRequest{Name: "Companionship"})
	require.Nil(t, appErr)
	second, appErr := svc.Create(ctx, &dto.CategoryRequest{Name: "Transportation"})
	require.Nil(t, appErr)

	_, appErr = svc.Update(ctx, second.ID, &dto.CategoryRequest{Name: "Companionship"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestCategoryListActiveOnly(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)
	ctx := context.Background()

	inactive := false
	_, appErr := svc.Create(ctx, &dto.CategoryRequest{Name: "Retired Service", IsActive: &inactive})
	require.Nil(t, appErr)
	_, appErr = svc.Create(ctx, &dto.CategoryRequest{Name: "Active Service"})
	require.Nil(t, appErr)

	result, appErr := svc.List(ctx, true, params.QueryParams{PageNumber: 1, PageSize: 20})
	require.Nil(t, appErr)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Active Service", result.Items[0].Name)
}

func TestCategoryDeleteMissing(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{})

	appErr := svc.Delete(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
