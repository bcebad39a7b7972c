package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/usecase"
)

// StoreFacade aggregates the application use cases behind one surface
// consumed by the HTTP layer.
type StoreFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
}

func NewStoreFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase) *StoreFacade {
	return &StoreFacade{auth: auth, catalog: catalog, orders: orders}
}

func (f *StoreFacade) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password, firstName, lastName)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) User(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StoreFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.auth.List(ctx)
}

func (f *StoreFacade) UpdateUserRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.User, error) {
	return f.auth.UpdateRole(ctx, id, role)
}

func (f *StoreFacade) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, name, description)
}

func (f *StoreFacade) Category(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return f.catalog.Category(ctx, id)
}

func (f *StoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *StoreFacade) UpdateCategory(ctx context.Context, id uuid.UUID, name, description string) (*model.Category, error) {
	return f.catalog.UpdateCategory(ctx, id, name, description)
}

func (f *StoreFacade) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *StoreFacade) CategoryProducts(ctx context.Context, categoryID uuid.UUID) ([]model.Product, error) {
	return f.catalog.CategoryProducts(ctx, categoryID)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, params repository.ProductParams) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, params)
}

func (f *StoreFacade) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return f.catalog.Product(ctx, id)
}

func (f *StoreFacade) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return f.catalog.Products(ctx, filter)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, id uuid.UUID, params repository.ProductParams) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, id, params)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *StoreFacade) PlaceOrder(ctx context.Context, buyerID uuid.UUID, items []repository.ItemRequest) (*model.Order, error) {
	return f.orders.Place(ctx, buyerID, items)
}

func (f *StoreFacade) Order(ctx context.Context, id, requesterID uuid.UUID, role model.Role) (*model.Order, error) {
	return f.orders.Get(ctx, id, requesterID, role)
}

func (f *StoreFacade) Orders(ctx context.Context, requesterID uuid.UUID, role model.Role) ([]model.Order, error) {
	return f.orders.List(ctx, requesterID, role)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}
