package products

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gameshop/catalog-api/pkg/db/models"
	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
)

// Service exposes product catalog operations.
type Service interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, input ProductInput) error
	DeleteProduct(ctx context.Context, id uint) error
}

// ProductInput holds the validated payload to create or update a product.
type ProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Platforms   []string
	ReleaseYear *int
	CategoryID  uint
	BrandID     uint
}

type categoryLoader interface {
	GetByID(ctx context.Context, id uint) (*models.Category, error)
}

type brandLoader interface {
	GetByID(ctx context.Context, id uint) (*models.Brand, error)
}

type service struct {
	repo         *Repository
	categoryRepo categoryLoader
	brandRepo    brandLoader
}

// NewService constructs a product service instance.
func NewService(repo *Repository, categoryRepo categoryLoader, brandRepo brandLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if categoryRepo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	if brandRepo == nil {
		return nil, fmt.Errorf("brand repository required")
	}
	return &service{
		repo:         repo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
	}, nil
}

func (s *service) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := s.ensureReferences(ctx, input.CategoryID, input.BrandID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Platforms:   input.Platforms,
		ReleaseYear: input.ReleaseYear,
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	return created, nil
}

// UpdateProduct resolves the target row before validating references, so an
// absent product reads as 404 even when the payload points at a bad parent.
func (s *service) UpdateProduct(ctx context.Context, id uint, input ProductInput) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if err := s.ensureReferences(ctx, input.CategoryID, input.BrandID); err != nil {
		return err
	}

	product := &models.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Platforms:   input.Platforms,
		ReleaseYear: input.ReleaseYear,
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
	}
	found, err := s.repo.Update(ctx, product)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

// ensureReferences rejects payloads pointing at a category or brand that does
// not exist. Both failures are client errors, not dependency errors.
func (s *service) ensureReferences(ctx context.Context, categoryID, brandID uint) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load category")
	}
	if category == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
	}

	brand, err := s.brandRepo.GetByID(ctx, brandID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load brand")
	}
	if brand == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "brand does not exist")
	}
	return nil
}
