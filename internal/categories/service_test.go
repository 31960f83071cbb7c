package categories

import (
	"context"
	"testing"

	pkgerrors "github.com/gameshop/catalog-api/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(openTestDB(t)))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, CategoryInput{
		Name:        "Consoles",
		Description: strPtr("Home and handheld consoles"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	got, err := svc.GetCategory(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Consoles" {
		t.Fatalf("unexpected name %q", got.Name)
	}
	if got.Description == nil || *got.Description != "Home and handheld consoles" {
		t.Fatalf("unexpected description %v", got.Description)
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetCategory(context.Background(), 999)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListCategoriesOrdersByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Consoles", "Games", "Accessories"} {
		if _, err := svc.CreateCategory(ctx, CategoryInput{Name: name}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	list, err := svc.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("expected ascending id order, got %v then %v", list[i-1].ID, list[i].ID)
		}
	}
}

func TestUpdateCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, CategoryInput{Name: "Consoles"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.UpdateCategory(ctx, created.ID, CategoryInput{
		Name:        "Retro Consoles",
		Description: strPtr("Pre-2000 hardware"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.GetCategory(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Retro Consoles" {
		t.Fatalf("unexpected name %q", got.Name)
	}
}

func TestUpdateCategoryClearsDescription(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, CategoryInput{
		Name:        "Games",
		Description: strPtr("temp"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateCategory(ctx, created.ID, CategoryInput{Name: "Games"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.GetCategory(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != nil {
		t.Fatalf("expected description cleared, got %q", *got.Description)
	}
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdateCategory(context.Background(), 42, CategoryInput{Name: "Ghost"})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, CategoryInput{Name: "Doomed"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteCategory(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = svc.GetCategory(ctx, created.ID)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.DeleteCategory(context.Background(), 42)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
