package images

import (
	"context"
	"fmt"

	"github.com/gameshop/catalog-api/internal/blob"
	"github.com/gameshop/catalog-api/pkg/db/models"
	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
	"github.com/gameshop/catalog-api/pkg/logger"
)

// Service exposes product image management operations.
type Service interface {
	ListImages(ctx context.Context, productID uint) ([]models.ProductImage, error)
	UploadImages(ctx context.Context, productID uint, files []FileUpload) ([]models.ProductImage, error)
	DeleteImage(ctx context.Context, imageID uint) error
}

// FileUpload carries one uploaded file's name and contents.
type FileUpload struct {
	Name string
	Data []byte
}

type productChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type service struct {
	repo        *Repository
	productRepo productChecker
	store       blob.Store
	logg        *logger.Logger
}

// NewService constructs a product image service instance.
func NewService(repo *Repository, productRepo productChecker, store blob.Store, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("image repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if store == nil {
		return nil, fmt.Errorf("blob store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:        repo,
		productRepo: productRepo,
		store:       store,
		logg:        logg,
	}, nil
}

// ListImages returns the images attached to a product. An unknown product
// simply has no images; the list read does not check the parent row.
func (s *service) ListImages(ctx context.Context, productID uint) ([]models.ProductImage, error) {
	imageRows, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list product images")
	}
	return imageRows, nil
}

// UploadImages stores each file and records a row for it, returning the rows
// created in this batch. The product check runs before the empty-payload check
// so a bogus product ID always reads as 404. Files are processed one by one and
// earlier successes are kept if a later file fails.
func (s *service) UploadImages(ctx context.Context, productID uint, files []FileUpload) ([]models.ProductImage, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no files uploaded")
	}

	created := make([]models.ProductImage, 0, len(files))
	for _, file := range files {
		url, err := s.store.Save(file.Data, file.Name)
		if err != nil {
			return nil, err
		}

		image := &models.ProductImage{
			ImageURL:  url,
			ProductID: productID,
		}
		if _, err := s.repo.Create(ctx, image); err != nil {
			// row insert failed after the blob landed; drop the orphan file
			if delErr := s.store.Delete(url); delErr != nil {
				s.logg.Warn(s.logg.WithField(ctx, "imageUrl", url), "failed to remove orphaned image file")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product image")
		}
		created = append(created, *image)
	}

	return created, nil
}

// DeleteImage removes the stored file and then the row. A file already missing
// from disk does not block the delete; the row is authoritative.
func (s *service) DeleteImage(ctx context.Context, imageID uint) error {
	image, err := s.repo.GetByID(ctx, imageID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product image")
	}
	if image == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "image not found")
	}

	if err := s.store.Delete(image.ImageURL); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "imageUrl", image.ImageURL), "failed to remove image file")
	}

	found, err := s.repo.Delete(ctx, imageID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product image")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "image not found")
	}
	return nil
}

func (s *service) ensureProduct(ctx context.Context, productID uint) error {
	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check product")
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}
