package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
	User(ctx context.Context, id uuid.UUID) (*model.User, error)
	Users(ctx context.Context) ([]model.User, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.User, error)
}

// CatalogFacade encapsulates category and product operations exposed via HTTP.
type CatalogFacade interface {
	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)
	Category(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Categories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name, description string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CategoryProducts(ctx context.Context, categoryID uuid.UUID) ([]model.Product, error)

	CreateProduct(ctx context.Context, params repository.ProductParams) (*model.Product, error)
	Product(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params repository.ProductParams) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// OrderFacade provides order operations.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, buyerID uuid.UUID, items []repository.ItemRequest) (*model.Order, error)
	Order(ctx context.Context, id, requesterID uuid.UUID, role model.Role) (*model.Order, error)
	Orders(ctx context.Context, requesterID uuid.UUID, role model.Role) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
}
