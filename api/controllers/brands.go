package controllers

import (
	"net/http"

	"github.com/gameshop/catalog-api/api/responses"
	"github.com/gameshop/catalog-api/api/validators"
	brandsvc "github.com/gameshop/catalog-api/internal/brands"
	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
	"github.com/gameshop/catalog-api/pkg/logger"
)

type brandRequest struct {
	ID          uint    `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Country     *string `json:"country,omitempty" validate:"omitempty,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

func (r brandRequest) toInput() brandsvc.BrandInput {
	return brandsvc.BrandInput{
		Name:        validators.SanitizeString(r.Name, 120),
		Country:     r.Country,
		Description: r.Description,
	}
}

// ListBrands handles GET /api/v1/brands.
func ListBrands(svc brandsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListBrands(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// GetBrand handles GET /api/v1/brands/{id}.
func GetBrand(svc brandsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		brand, err := svc.GetBrand(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, brand)
	}
}

// CreateBrand handles POST /api/v1/brands.
func CreateBrand(svc brandsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload brandRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		brand, err := svc.CreateBrand(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, responses.ResourceLocation("brands", brand.ID), brand)
	}
}

// UpdateBrand handles PUT /api/v1/brands/{id}.
func UpdateBrand(svc brandsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload brandRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.ID != 0 && payload.ID != id {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "body id does not match path id"))
			return
		}

		if err := svc.UpdateBrand(r.Context(), id, payload.toInput()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// DeleteBrand handles DELETE /api/v1/brands/{id}.
func DeleteBrand(svc brandsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteBrand(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
