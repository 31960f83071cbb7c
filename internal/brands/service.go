package brands

import (
	"context"
	"fmt"

	"github.com/gameshop/catalog-api/pkg/db/models"
	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
)

// Service exposes brand catalog operations.
type Service interface {
	ListBrands(ctx context.Context) ([]models.Brand, error)
	GetBrand(ctx context.Context, id uint) (*models.Brand, error)
	CreateBrand(ctx context.Context, input BrandInput) (*models.Brand, error)
	UpdateBrand(ctx context.Context, id uint, input BrandInput) error
	DeleteBrand(ctx context.Context, id uint) error
}

// BrandInput holds the validated payload to create or update a brand.
type BrandInput struct {
	Name        string
	Country     *string
	Description *string
}

type service struct {
	repo *Repository
}

// NewService constructs a brand service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("brand repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListBrands(ctx context.Context) ([]models.Brand, error) {
	brands, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list brands")
	}
	return brands, nil
}

func (s *service) GetBrand(ctx context.Context, id uint) (*models.Brand, error) {
	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load brand")
	}
	if brand == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
	}
	return brand, nil
}

func (s *service) CreateBrand(ctx context.Context, input BrandInput) (*models.Brand, error) {
	brand := &models.Brand{
		Name:        input.Name,
		Country:     input.Country,
		Description: input.Description,
	}
	created, err := s.repo.Create(ctx, brand)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert brand")
	}
	return created, nil
}

func (s *service) UpdateBrand(ctx context.Context, id uint, input BrandInput) error {
	brand := &models.Brand{
		ID:          id,
		Name:        input.Name,
		Country:     input.Country,
		Description: input.Description,
	}
	found, err := s.repo.Update(ctx, brand)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update brand")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
	}
	return nil
}

func (s *service) DeleteBrand(ctx context.Context, id uint) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete brand")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "brand not found")
	}
	return nil
}
