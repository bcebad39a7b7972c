package usecase

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CatalogUseCase manages categories and products.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, products: products}
}

// CreateCategory adds a new category.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	if !ValidateName(name) {
		return nil, domainErrors.ErrInvalidRequest
	}
	return u.categories.Create(ctx, name, description)
}

// Category fetches a category by id.
func (u *CatalogUseCase) Category(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return u.categories.GetByID(ctx, id)
}

// Categories lists all categories.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// UpdateCategory replaces name and description of a category.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, id uuid.UUID, name, description string) (*model.Category, error) {
	if !ValidateName(name) {
		return nil, domainErrors.ErrInvalidRequest
	}
	return u.categories.Update(ctx, id, name, description)
}

// DeleteCategory removes a category unless products still reference it.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return u.categories.Delete(ctx, id)
}

// CategoryProducts lists products belonging to a category.
func (u *CatalogUseCase) CategoryProducts(ctx context.Context, categoryID uuid.UUID) ([]model.Product, error) {
	return u.products.ListByCategory(ctx, categoryID)
}

func validateProductParams(params repository.ProductParams) error {
	if !ValidateName(params.Name) {
		return domainErrors.ErrInvalidRequest
	}
	if !params.Price.IsPositive() {
		return domainErrors.ErrInvalidRequest
	}
	if params.Inventory < 0 {
		return domainErrors.ErrInvalidRequest
	}
	if params.CategoryID == uuid.Nil {
		return domainErrors.ErrInvalidRequest
	}
	return nil
}

// CreateProduct adds a catalog product. The referenced category must exist.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, params repository.ProductParams) (*model.Product, error) {
	if err := validateProductParams(params); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, params)
}

// Product fetches a product by id.
func (u *CatalogUseCase) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Products lists catalog products matching the filter.
func (u *CatalogUseCase) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, domainErrors.ErrInvalidRequest
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, domainErrors.ErrInvalidRequest
	}
	return u.products.List(ctx, filter)
}

// UpdateProduct replaces all mutable fields of a product.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, id uuid.UUID, params repository.ProductParams) (*model.Product, error) {
	if err := validateProductParams(params); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, id, params)
}

// DeleteProduct removes a product unless order items still reference it.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return u.products.Delete(ctx, id)
}
