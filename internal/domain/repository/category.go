package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// CategoryRepository describes persistence operations with categories.
type CategoryRepository interface {
	Create(ctx context.Context, name, description string) (*model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) (*model.Category, error)
	// Delete fails with ErrConflict while products still reference the category.
	Delete(ctx context.Context, id uuid.UUID) error
}
