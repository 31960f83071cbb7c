package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/gameshop/catalog-api/api/responses"
	"github.com/gameshop/catalog-api/api/validators"
	productsvc "github.com/gameshop/catalog-api/internal/products"
	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
	"github.com/gameshop/catalog-api/pkg/logger"
)

type productRequest struct {
	ID          uint            `json:"id,omitempty"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=4000"`
	Price       decimal.Decimal `json:"price"`
	Platforms   []string        `json:"platforms,omitempty" validate:"omitempty,dive,required"`
	ReleaseYear *int            `json:"releaseYear,omitempty" validate:"omitempty,gte=1950,lte=2100"`
	CategoryID  uint            `json:"categoryId" validate:"required"`
	BrandID     uint            `json:"brandId" validate:"required"`
}

func (r productRequest) toInput() (productsvc.ProductInput, error) {
	if r.Price.IsNegative() {
		return productsvc.ProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	return productsvc.ProductInput{
		Name:        validators.SanitizeString(r.Name, 200),
		Description: r.Description,
		Price:       r.Price,
		Platforms:   r.Platforms,
		ReleaseYear: r.ReleaseYear,
		CategoryID:  r.CategoryID,
		BrandID:     r.BrandID,
	}, nil
}

// ListProducts handles GET /api/v1/products.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// GetProduct handles GET /api/v1/products/{id}.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CreateProduct handles POST /api/v1/products.
func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, responses.ResourceLocation("products", product.ID), product)
	}
}

// UpdateProduct handles PUT /api/v1/products/{id}.
func UpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.ID != 0 && payload.ID != id {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "body id does not match path id"))
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateProduct(r.Context(), id, input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// DeleteProduct handles DELETE /api/v1/products/{id}.
func DeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
