package repository

import (
	"context"
	"database/sql"

	"careconnect-api/core/database"
	"careconnect-api/core/logger"
	"careconnect-api/core/params"
	"careconnect-api/modules/category/entity"

	"github.com/google/uuid"
)

type CategoryRepository struct {
	db database.IDatabase
}

type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *entity.ServiceCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, error)
	GetBySlug(ctx context.Context, slug string) (*entity.ServiceCategory, error)
	List(ctx context.Context, activeOnly bool, params params.QueryParams) (*entity.PaginatedCategoryEntity, error)
	Update(ctx context.Context, category *entity.ServiceCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewCategoryRepository(db database.IDatabase) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.ServiceCategory) error {
	query := `
		INSERT INTO service_categories (name, slug, description, hourly_rate_cents, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		category.Name, category.Slug, category.Description,
		category.HourlyRateCents, category.IsActive).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		logger.Error("CategoryRepository:Create", err)
		return err
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceCategory, error) {
	query := `
		SELECT id, name, slug, description, hourly_rate_cents, is_active, created_at, updated_at
		FROM service_categories WHERE id = $1
	`

	var category entity.ServiceCategory
	err := r.db.GetContext(ctx, &category, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CategoryRepository:GetByID", err)
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.ServiceCategory, error) {
	query := `
		SELECT id, name, slug, description, hourly_rate_cents, is_active, created_at, updated_at
		FROM service_categories WHERE slug = $1
	`

	var category entity.ServiceCategory
	err := r.db.GetContext(ctx, &category, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CategoryRepository:GetBySlug", err)
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context, activeOnly bool, qp params.QueryParams) (*entity.PaginatedCategoryEntity, error) {
	qp = qp.Normalized()
	offset := (qp.PageNumber - 1) * qp.PageSize

	baseQuery := `FROM service_categories`
	args := []any{}
	if activeOnly {
		baseQuery += ` WHERE is_active = true`
	}

	var totalItems int
	if err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		logger.Error("CategoryRepository:List:Count", err)
		return nil, err
	}

	query := `
		SELECT id, name, slug, description, hourly_rate_cents, is_active, created_at, updated_at ` +
		baseQuery + `
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	var categories []entity.ServiceCategory
	if err := r.db.SelectContext(ctx, &categories, query, qp.PageSize, offset); err != nil {
		logger.Error("CategoryRepository:List:Select", err)
		return nil, err
	}

	return &entity.PaginatedCategoryEntity{
		Items:      categories,
		TotalItems: totalItems,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.ServiceCategory) error {
	query := `
		UPDATE service_categories
		SET name = $2, slug = $3, description = $4, hourly_rate_cents = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1
	`

	err := r.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Slug, category.Description,
		category.HourlyRateCents, category.IsActive)
	if err != nil {
		logger.Error("CategoryRepository:Update", err)
		return err
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM service_categories WHERE id = $1`
	if err := r.db.ExecContext(ctx, query, id); err != nil {
		logger.Error("CategoryRepository:Delete", err)
		return err
	}
	return nil
}
