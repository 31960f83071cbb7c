package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	categorysvc "github.com/gameshop/catalog-api/internal/categories"
	"github.com/gameshop/catalog-api/pkg/db/models"
	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
)

type stubCategoryService struct {
	category *models.Category
	err      error
	updated  []uint
	deleted  []uint
}

func (s *stubCategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Category{}, nil
}

func (s *stubCategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.category, nil
}

func (s *stubCategoryService) CreateCategory(ctx context.Context, input categorysvc.CategoryInput) (*models.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.category, nil
}

func (s *stubCategoryService) UpdateCategory(ctx context.Context, id uint, input categorysvc.CategoryInput) error {
	s.updated = append(s.updated, id)
	return s.err
}

func (s *stubCategoryService) DeleteCategory(ctx context.Context, id uint) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func TestCreateCategoryReturns201(t *testing.T) {
	stub := &stubCategoryService{category: &models.Category{ID: 3, Name: "Consoles"}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(`{"name":"Consoles"}`))
	rec := httptest.NewRecorder()
	CreateCategory(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != "/api/v1/categories/3" {
		t.Fatalf("unexpected Location %q", got)
	}
}

func TestCreateCategoryRejectsMissingName(t *testing.T) {
	stub := &stubCategoryService{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	CreateCategory(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateCategoryIDMismatch(t *testing.T) {
	stub := &stubCategoryService{}

	body := `{"id":8,"name":"Consoles"}`
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/v1/categories/2", strings.NewReader(body)), "id", "2")
	rec := httptest.NewRecorder()
	UpdateCategory(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for mismatch, got %d", rec.Code)
	}
	if len(stub.updated) != 0 {
		t.Fatalf("expected service not called, got %v", stub.updated)
	}
}

func TestUpdateCategoryMatchingBodyID(t *testing.T) {
	stub := &stubCategoryService{}

	body := `{"id":2,"name":"Consoles"}`
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/v1/categories/2", strings.NewReader(body)), "id", "2")
	rec := httptest.NewRecorder()
	UpdateCategory(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	stub := &stubCategoryService{err: pkgerrors.New(pkgerrors.CodeNotFound, "category not found")}

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/categories/9", nil), "id", "9")
	rec := httptest.NewRecorder()
	DeleteCategory(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
