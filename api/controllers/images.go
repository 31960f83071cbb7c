package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gameshop/catalog-api/api/responses"
	"github.com/gameshop/catalog-api/api/validators"
	imagesvc "github.com/gameshop/catalog-api/internal/images"
	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
	"github.com/gameshop/catalog-api/pkg/logger"
)

// multipart field carrying the uploaded images
const uploadFieldName = "files"

// ListProductImages handles GET /api/v1/products/{productId}/images.
func ListProductImages(svc imagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListImages(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// UploadProductImages handles POST /api/v1/products/{productId}/images.
// The 200 response carries the image rows created by this batch.
func UploadProductImages(svc imagesvc.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			// a bad or oversized body still reads as 404 for an unknown product;
			// an empty batch is the expected rejection when the product exists
			if _, checkErr := svc.UploadImages(r.Context(), productID, nil); checkErr != nil {
				if appErr := pkgerrors.As(checkErr); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
					responses.WriteError(r.Context(), logg, w, checkErr)
					return
				}
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body"))
			return
		}

		var headers []*multipart.FileHeader
		if r.MultipartForm != nil {
			headers = r.MultipartForm.File[uploadFieldName]
		}

		files := make([]imagesvc.FileUpload, 0, len(headers))
		for _, header := range headers {
			data, err := readUpload(header)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			files = append(files, imagesvc.FileUpload{Name: header.Filename, Data: data})
		}

		uploaded, err := svc.UploadImages(r.Context(), productID, files)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, uploaded)
	}
}

// DeleteProductImage handles DELETE /api/v1/products/images/{imageId}.
func DeleteProductImage(svc imagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := validators.ParseIDParam(r, "imageId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteImage(r.Context(), imageID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read uploaded file")
	}
	return data, nil
}
