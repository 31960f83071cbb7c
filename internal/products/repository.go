package products

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gameshop/catalog-api/internal/repo"
	"github.com/gameshop/catalog-api/pkg/db/models"
)

// Repository persists catalog products.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// GetAll lists every product with its images, ordered by ID.
func (r *Repository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB(ctx).Preload("Images").Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID loads a product with its images. A missing row returns (nil, nil).
func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).Preload("Images").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Exists reports whether a product row with the given ID is present.
func (r *Repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.DB(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new product row.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.DB(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update saves the full product row. The second return reports whether a row matched.
func (r *Repository) Update(ctx context.Context, product *models.Product) (bool, error) {
	// struct-based Updates so the platforms serializer applies; Select forces
	// zero values (cleared description, price 0) to be written too
	result := r.DB(ctx).Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "platforms", "release_year", "category_id", "brand_id").
		Updates(product)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a product by ID along with its image rows. The second return
// reports whether the product existed.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	var affected int64
	err := r.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Product{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
