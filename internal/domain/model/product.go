package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item available for purchase.
// Inventory never goes negative; the storage layer enforces this with a
// conditional decrement during order placement.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Inventory   int
	CategoryID  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
