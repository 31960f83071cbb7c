package brands

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gameshop/catalog-api/pkg/db/models"
	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Brand{}); err != nil {
		t.Fatalf("migrate test schema: %v", err)
	}
	return conn
}

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(openTestDB(t)))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetBrand(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBrand(ctx, BrandInput{
		Name:    "Nintendo",
		Country: strPtr("Japan"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	got, err := svc.GetBrand(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Nintendo" {
		t.Fatalf("unexpected name %q", got.Name)
	}
	if got.Country == nil || *got.Country != "Japan" {
		t.Fatalf("unexpected country %v", got.Country)
	}
}

func TestGetBrandNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetBrand(context.Background(), 321)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListBrands(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Nintendo", "Sega", "Sony"} {
		if _, err := svc.CreateBrand(ctx, BrandInput{Name: name}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	list, err := svc.ListBrands(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 brands, got %d", len(list))
	}
}

func TestUpdateBrand(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBrand(ctx, BrandInput{Name: "Sega"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.UpdateBrand(ctx, created.ID, BrandInput{
		Name:        "SEGA",
		Country:     strPtr("Japan"),
		Description: strPtr("Arcade and console maker"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.GetBrand(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "SEGA" {
		t.Fatalf("unexpected name %q", got.Name)
	}
	if got.Description == nil || *got.Description != "Arcade and console maker" {
		t.Fatalf("unexpected description %v", got.Description)
	}
}

func TestUpdateBrandNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdateBrand(context.Background(), 77, BrandInput{Name: "Ghost"})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteBrand(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBrand(ctx, BrandInput{Name: "Atari"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteBrand(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = svc.GetBrand(ctx, created.ID)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestDeleteBrandNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.DeleteBrand(context.Background(), 77)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
