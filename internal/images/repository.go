package images

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gameshop/catalog-api/internal/repo"
	"github.com/gameshop/catalog-api/pkg/db/models"
)

// Repository persists product image rows.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// GetByProductID lists the images attached to a product, oldest first.
func (r *Repository) GetByProductID(ctx context.Context, productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := r.DB(ctx).Where("product_id = ?", productID).Order("id").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// GetByID loads a single image row. A missing row returns (nil, nil).
func (r *Repository) GetByID(ctx context.Context, id uint) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.DB(ctx).First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// Create inserts a new image row.
func (r *Repository) Create(ctx context.Context, image *models.ProductImage) (*models.ProductImage, error) {
	if err := r.DB(ctx).Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

// Delete removes an image row by ID. The second return reports whether a row matched.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.DB(ctx).Where("id = ?", id).Delete(&models.ProductImage{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
