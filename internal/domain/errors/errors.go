package errors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrAlreadyExists         = errors.New("already exists")
	ErrNotFound              = errors.New("not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrConflict              = errors.New("conflict")
	ErrForbidden             = errors.New("forbidden")
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// ErrSerialization marks a transaction aborted by a concurrency
	// conflict; the whole call is safe to retry.
	ErrSerialization = errors.New("serialization conflict")
)

// ProductNotFoundError names the missing product referenced by a request.
type ProductNotFoundError struct {
	ProductID uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// Is lets errors.Is treat the error as a generic not-found condition.
func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InsufficientInventoryError reports the product and shortfall that failed
// an order placement.
type InsufficientInventoryError struct {
	ProductID uuid.UUID
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientInventoryError) Is(target error) bool {
	return target == ErrInsufficientInventory
}
