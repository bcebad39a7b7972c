package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ItemRequest is one requested line of a placement: product and quantity.
type ItemRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlacementSession groups the storage operations available inside one order
// placement transaction. Every call observes the transaction's snapshot;
// nothing is visible outside until the enclosing unit commits.
type PlacementSession interface {
	// ProductForUpdate reads price and inventory with a row lock held until
	// the transaction ends, so competing placements for the same product
	// serialize instead of reading stale stock.
	ProductForUpdate(ctx context.Context, id uuid.UUID) (*model.Product, error)
	// DecrementInventory subtracts quantity only if inventory covers it at
	// write time. Returns false when the guard fails.
	DecrementInventory(ctx context.Context, id uuid.UUID, quantity int) (bool, error)
	CreateOrder(ctx context.Context, userID uuid.UUID, status model.OrderStatus, total decimal.Decimal) (*model.Order, error)
	AddItem(ctx context.Context, orderID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*model.OrderItem, error)
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// WithinPlacement runs fn inside a single transaction; any error from fn
	// rolls back everything written through the session.
	WithinPlacement(ctx context.Context, fn func(PlacementSession) error) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	ItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
}
