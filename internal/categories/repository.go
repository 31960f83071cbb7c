package categories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gameshop/catalog-api/internal/repo"
	"github.com/gameshop/catalog-api/pkg/db/models"
)

// Repository persists product categories.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// GetAll lists every category ordered by ID.
func (r *Repository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.DB(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID loads a category. A missing row returns (nil, nil).
func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.DB(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a new category row.
func (r *Repository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.DB(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Update saves the full category row. The second return reports whether a row matched.
func (r *Repository) Update(ctx context.Context, category *models.Category) (bool, error) {
	result := r.DB(ctx).Model(&models.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"description": category.Description,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a category by ID. The second return reports whether a row matched.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.DB(ctx).Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
