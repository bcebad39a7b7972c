package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	testhelpers "github.com/polkiloo/storefront/internal/test"
	"github.com/polkiloo/storefront/internal/usecase"
)

func newFacade() (*StoreFacade, *testhelpers.UserRepositoryStub, *testhelpers.CategoryRepositoryStub, *testhelpers.ProductRepositoryStub, *testhelpers.MemoryOrderStore) {
	users := testhelpers.NewUserRepositoryStub()
	authUC := usecase.NewAuthUseCase(users, &testhelpers.HasherStub{}, &testhelpers.StrategyStub{Token: "token"})

	categories := testhelpers.NewCategoryRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	catalogUC := usecase.NewCatalogUseCase(categories, products)

	store := testhelpers.NewMemoryOrderStore()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orderUC := usecase.NewOrderUseCase(store, logger)

	facade := NewStoreFacade(authUC, catalogUC, orderUC)
	return facade, users, categories, products, store
}

func TestStoreFacadeAuth(t *testing.T) {
	facade, users, _, _, _ := newFacade()

	user, token, err := facade.Register(context.Background(), "jane@example.com", "secret123", "Jane", "Doe")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := users.GetByEmail(context.Background(), "jane@example.com")
	if err != nil || stored.ID != user.ID {
		t.Fatalf("user not stored: %v", err)
	}

	if _, _, err := facade.Authenticate(context.Background(), "jane@example.com", "secret123"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	if _, err := facade.ParseToken("anything"); err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if _, err := facade.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}

	fetched, err := facade.User(context.Background(), user.ID)
	if err != nil || fetched.Email != "jane@example.com" {
		t.Fatalf("unexpected profile: %+v err=%v", fetched, err)
	}

	list, err := facade.Users(context.Background())
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected users list: %v err=%v", list, err)
	}

	promoted, err := facade.UpdateUserRole(context.Background(), user.ID, model.RoleAdmin)
	if err != nil || promoted.Role != model.RoleAdmin {
		t.Fatalf("unexpected promotion: %+v err=%v", promoted, err)
	}
}

func TestStoreFacadeCatalog(t *testing.T) {
	facade, _, _, _, _ := newFacade()

	category, err := facade.CreateCategory(context.Background(), "Books", "")
	if err != nil {
		t.Fatalf("create category error: %v", err)
	}

	product, err := facade.CreateProduct(context.Background(), repository.ProductParams{
		Name:       "Widget",
		Price:      decimal.RequireFromString("12.50"),
		Inventory:  5,
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("create product error: %v", err)
	}

	listed, err := facade.Products(context.Background(), repository.ProductFilter{})
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected products: %v err=%v", listed, err)
	}

	inCategory, err := facade.CategoryProducts(context.Background(), category.ID)
	if err != nil || len(inCategory) != 1 {
		t.Fatalf("unexpected category products: %v err=%v", inCategory, err)
	}

	fetched, err := facade.Product(context.Background(), product.ID)
	if err != nil || fetched.Name != "Widget" {
		t.Fatalf("unexpected product: %+v err=%v", fetched, err)
	}

	if _, err := facade.UpdateCategory(context.Background(), category.ID, "Novels", ""); err != nil {
		t.Fatalf("update category error: %v", err)
	}
	if err := facade.DeleteProduct(context.Background(), product.ID); err != nil {
		t.Fatalf("delete product error: %v", err)
	}
	if err := facade.DeleteCategory(context.Background(), category.ID); err != nil {
		t.Fatalf("delete category error: %v", err)
	}
	if _, err := facade.Categories(context.Background()); err != nil {
		t.Fatalf("list categories error: %v", err)
	}
}

func TestStoreFacadeOrders(t *testing.T) {
	facade, _, _, _, store := newFacade()

	productID := uuid.New()
	store.SeedProduct(model.Product{ID: productID, Name: "Widget", Price: decimal.RequireFromString("10.00"), Inventory: 5})

	buyer := uuid.New()
	order, err := facade.PlaceOrder(context.Background(), buyer, []repository.ItemRequest{{ProductID: productID, Quantity: 2}})
	if err != nil {
		t.Fatalf("place order error: %v", err)
	}
	if !order.Total.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("unexpected total %s", order.Total)
	}

	fetched, err := facade.Order(context.Background(), order.ID, buyer, model.RoleUser)
	if err != nil || fetched.ID != order.ID {
		t.Fatalf("unexpected order: %+v err=%v", fetched, err)
	}

	listed, err := facade.Orders(context.Background(), buyer, model.RoleUser)
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected orders: %v err=%v", listed, err)
	}

	updated, err := facade.UpdateOrderStatus(context.Background(), order.ID, model.OrderStatusProcessing)
	if err != nil || updated.Status != model.OrderStatusProcessing {
		t.Fatalf("unexpected status update: %+v err=%v", updated, err)
	}

	if _, err := facade.PlaceOrder(context.Background(), buyer, []repository.ItemRequest{{ProductID: productID, Quantity: 99}}); !errors.Is(err, domainErrors.ErrInsufficientInventory) {
		t.Fatalf("expected insufficient inventory, got %v", err)
	}
}
