package test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
)

// StoreFacadeStub provides controllable behaviour for HTTP handler tests.
// Nil function fields fall back to benign defaults.
type StoreFacadeStub struct {
	RegisterFn       func(context.Context, string, string, string, string) (*model.User, string, error)
	AuthenticateFn   func(context.Context, string, string) (*model.User, string, error)
	ParseTokenFn     func(string) (pkgAuth.Claims, error)
	UserFn           func(context.Context, uuid.UUID) (*model.User, error)
	UsersFn          func(context.Context) ([]model.User, error)
	UpdateUserRoleFn func(context.Context, uuid.UUID, model.Role) (*model.User, error)

	CreateCategoryFn   func(context.Context, string, string) (*model.Category, error)
	CategoryFn         func(context.Context, uuid.UUID) (*model.Category, error)
	CategoriesFn       func(context.Context) ([]model.Category, error)
	UpdateCategoryFn   func(context.Context, uuid.UUID, string, string) (*model.Category, error)
	DeleteCategoryFn   func(context.Context, uuid.UUID) error
	CategoryProductsFn func(context.Context, uuid.UUID) ([]model.Product, error)

	CreateProductFn func(context.Context, repository.ProductParams) (*model.Product, error)
	ProductFn       func(context.Context, uuid.UUID) (*model.Product, error)
	ProductsFn      func(context.Context, repository.ProductFilter) ([]model.Product, error)
	UpdateProductFn func(context.Context, uuid.UUID, repository.ProductParams) (*model.Product, error)
	DeleteProductFn func(context.Context, uuid.UUID) error

	PlaceOrderFn        func(context.Context, uuid.UUID, []repository.ItemRequest) (*model.Order, error)
	OrderFn             func(context.Context, uuid.UUID, uuid.UUID, model.Role) (*model.Order, error)
	OrdersFn            func(context.Context, uuid.UUID, model.Role) ([]model.Order, error)
	UpdateOrderStatusFn func(context.Context, uuid.UUID, model.OrderStatus) (*model.Order, error)
}

func (s *StoreFacadeStub) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, firstName, lastName)
	}
	return &model.User{ID: uuid.New(), Email: email, Role: model.RoleUser}, "token", nil
}

func (s *StoreFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: uuid.New(), Email: email, Role: model.RoleUser}, "token", nil
}

func (s *StoreFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return pkgAuth.Claims{UserID: uuid.New(), Role: model.RoleUser}, nil
}

func (s *StoreFacadeStub) User(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Email: "user@example.com", Role: model.RoleUser}, nil
}

func (s *StoreFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: uuid.New(), Email: "user@example.com"}}, nil
}

func (s *StoreFacadeStub) UpdateUserRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.User, error) {
	if s.UpdateUserRoleFn != nil {
		return s.UpdateUserRoleFn(ctx, id, role)
	}
	return &model.User{ID: id, Role: role}, nil
}

func (s *StoreFacadeStub) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name, description)
	}
	return &model.Category{ID: uuid.New(), Name: name, Description: description}, nil
}

func (s *StoreFacadeStub) Category(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	if s.CategoryFn != nil {
		return s.CategoryFn(ctx, id)
	}
	return &model.Category{ID: id, Name: "category"}, nil
}

func (s *StoreFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: uuid.New(), Name: "category"}}, nil
}

func (s *StoreFacadeStub) UpdateCategory(ctx context.Context, id uuid.UUID, name, description string) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, id, name, description)
	}
	return &model.Category{ID: id, Name: name, Description: description}, nil
}

func (s *StoreFacadeStub) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

func (s *StoreFacadeStub) CategoryProducts(ctx context.Context, categoryID uuid.UUID) ([]model.Product, error) {
	if s.CategoryProductsFn != nil {
		return s.CategoryProductsFn(ctx, categoryID)
	}
	return nil, nil
}

func (s *StoreFacadeStub) CreateProduct(ctx context.Context, params repository.ProductParams) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, params)
	}
	return &model.Product{ID: uuid.New(), Name: params.Name, Price: params.Price, Inventory: params.Inventory, CategoryID: params.CategoryID}, nil
}

func (s *StoreFacadeStub) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "product", Price: decimal.New(1000, -2), Inventory: 1}, nil
}

func (s *StoreFacadeStub) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return []model.Product{{ID: uuid.New(), Name: "product"}}, nil
}

func (s *StoreFacadeStub) UpdateProduct(ctx context.Context, id uuid.UUID, params repository.ProductParams) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, params)
	}
	return &model.Product{ID: id, Name: params.Name, Price: params.Price, Inventory: params.Inventory, CategoryID: params.CategoryID}, nil
}

func (s *StoreFacadeStub) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

func (s *StoreFacadeStub) PlaceOrder(ctx context.Context, buyerID uuid.UUID, items []repository.ItemRequest) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, buyerID, items)
	}
	return &model.Order{ID: uuid.New(), UserID: buyerID, Status: model.OrderStatusPending, Total: decimal.Zero}, nil
}

func (s *StoreFacadeStub) Order(ctx context.Context, id, requesterID uuid.UUID, role model.Role) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id, requesterID, role)
	}
	return &model.Order{ID: id, UserID: requesterID, Status: model.OrderStatusPending}, nil
}

func (s *StoreFacadeStub) Orders(ctx context.Context, requesterID uuid.UUID, role model.Role) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, requesterID, role)
	}
	return []model.Order{{ID: uuid.New(), UserID: requesterID}}, nil
}

func (s *StoreFacadeStub) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}
