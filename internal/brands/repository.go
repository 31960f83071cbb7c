package brands

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gameshop/catalog-api/internal/repo"
	"github.com/gameshop/catalog-api/pkg/db/models"
)

// Repository persists product brands.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// GetAll lists every brand ordered by ID.
func (r *Repository) GetAll(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.DB(ctx).Order("id").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// GetByID loads a brand. A missing row returns (nil, nil).
func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.DB(ctx).First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

// Create inserts a new brand row.
func (r *Repository) Create(ctx context.Context, brand *models.Brand) (*models.Brand, error) {
	if err := r.DB(ctx).Create(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

// Update saves the full brand row. The second return reports whether a row matched.
func (r *Repository) Update(ctx context.Context, brand *models.Brand) (bool, error) {
	result := r.DB(ctx).Model(&models.Brand{}).
		Where("id = ?", brand.ID).
		Updates(map[string]any{
			"name":        brand.Name,
			"country":     brand.Country,
			"description": brand.Description,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a brand by ID. The second return reports whether a row matched.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.DB(ctx).Where("id = ?", id).Delete(&models.Brand{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
