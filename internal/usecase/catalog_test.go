package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/test"
)

func newCatalogUseCase() (*CatalogUseCase, *test.CategoryRepositoryStub, *test.ProductRepositoryStub) {
	categories := test.NewCategoryRepositoryStub()
	products := test.NewProductRepositoryStub()
	return NewCatalogUseCase(categories, products), categories, products
}

func productParams(categoryID uuid.UUID) repository.ProductParams {
	return repository.ProductParams{
		Name:       "Widget",
		Price:      decimal.RequireFromString("12.50"),
		Inventory:  5,
		CategoryID: categoryID,
	}
}

func TestCategoryLifecycle(t *testing.T) {
	uc, _, _ := newCatalogUseCase()

	created, err := uc.CreateCategory(context.Background(), "Books", "paper things")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetched, err := uc.Category(context.Background(), created.ID)
	if err != nil || fetched.Name != "Books" {
		t.Fatalf("fetch failed: %v %+v", err, fetched)
	}

	updated, err := uc.UpdateCategory(context.Background(), created.ID, "Novels", "")
	if err != nil || updated.Name != "Novels" {
		t.Fatalf("update failed: %v %+v", err, updated)
	}

	if err := uc.DeleteCategory(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Category(context.Background(), created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestCreateCategoryValidatesName(t *testing.T) {
	uc, _, _ := newCatalogUseCase()
	if _, err := uc.CreateCategory(context.Background(), "", "desc"); !errors.Is(err, domainErrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestDeleteCategoryWithProductsConflicts(t *testing.T) {
	uc, categories, _ := newCatalogUseCase()

	created, err := uc.CreateCategory(context.Background(), "Books", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	categories.Referenced[created.ID] = true

	if err := uc.DeleteCategory(context.Background(), created.ID); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateProductValidation(t *testing.T) {
	uc, _, _ := newCatalogUseCase()
	categoryID := uuid.New()

	cases := []struct {
		name   string
		mutate func(*repository.ProductParams)
	}{
		{"empty name", func(p *repository.ProductParams) { p.Name = "" }},
		{"zero price", func(p *repository.ProductParams) { p.Price = decimal.Zero }},
		{"negative price", func(p *repository.ProductParams) { p.Price = decimal.RequireFromString("-1") }},
		{"negative inventory", func(p *repository.ProductParams) { p.Inventory = -1 }},
		{"nil category", func(p *repository.ProductParams) { p.CategoryID = uuid.Nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := productParams(categoryID)
			tc.mutate(&params)
			if _, err := uc.CreateProduct(context.Background(), params); !errors.Is(err, domainErrors.ErrInvalidRequest) {
				t.Fatalf("expected invalid request, got %v", err)
			}
		})
	}
}

func TestCreateProductRequiresCategory(t *testing.T) {
	uc, _, products := newCatalogUseCase()
	missing := uuid.New()
	products.MissingCategories[missing] = true

	if _, err := uc.CreateProduct(context.Background(), productParams(missing)); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProductsFilter(t *testing.T) {
	uc, _, _ := newCatalogUseCase()
	categoryID := uuid.New()

	cheap := productParams(categoryID)
	cheap.Name = "Paperback"
	cheap.Price = decimal.RequireFromString("5.00")
	if _, err := uc.CreateProduct(context.Background(), cheap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pricey := productParams(categoryID)
	pricey.Name = "Hardcover"
	pricey.Price = decimal.RequireFromString("25.00")
	if _, err := uc.CreateProduct(context.Background(), pricey); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	min := decimal.RequireFromString("10.00")
	got, err := uc.Products(context.Background(), repository.ProductFilter{MinPrice: &min})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Hardcover" {
		t.Fatalf("expected only the pricey product, got %+v", got)
	}

	got, err = uc.Products(context.Background(), repository.ProductFilter{Search: "paper"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Paperback" {
		t.Fatalf("search must be case-insensitive, got %+v", got)
	}
}

func TestProductsFilterValidation(t *testing.T) {
	uc, _, _ := newCatalogUseCase()

	min := decimal.RequireFromString("20.00")
	max := decimal.RequireFromString("10.00")
	if _, err := uc.Products(context.Background(), repository.ProductFilter{MinPrice: &min, MaxPrice: &max}); !errors.Is(err, domainErrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for inverted range, got %v", err)
	}
	if _, err := uc.Products(context.Background(), repository.ProductFilter{Limit: -1}); !errors.Is(err, domainErrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request for negative limit, got %v", err)
	}
}

func TestDeleteProductWithOrdersConflicts(t *testing.T) {
	uc, _, products := newCatalogUseCase()

	created, err := uc.CreateProduct(context.Background(), productParams(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	products.Referenced[created.ID] = true

	if err := uc.DeleteProduct(context.Background(), created.ID); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
