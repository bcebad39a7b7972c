package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ProductParams carries fields for creating or updating a product.
type ProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Inventory   int
	CategoryID  uuid.UUID
}

// ProductFilter narrows catalog listings. Nil fields are not applied.
type ProductFilter struct {
	CategoryID *uuid.UUID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Search     string
	Limit      int
	Offset     int
}

// ProductRepository describes persistence operations with catalog products.
type ProductRepository interface {
	Create(ctx context.Context, params ProductParams) (*model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Product, error)
	Update(ctx context.Context, id uuid.UUID, params ProductParams) (*model.Product, error)
	// Delete fails with ErrConflict while order items still reference the product.
	Delete(ctx context.Context, id uuid.UUID) error
}
