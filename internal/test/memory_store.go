package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// MemoryOrderStore is an in-memory repository.OrderRepository with
// transactional placement semantics: a placement either commits all of its
// writes or none, and placements serialize against each other the way row
// locks serialize them in PostgreSQL. Used for concurrency-facing tests.
type MemoryOrderStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]model.Product
	orders   map[uuid.UUID]*model.Order
	items    map[uuid.UUID][]model.OrderItem

	// PlacementErr, when set, fails every placement before fn runs.
	PlacementErr error
	// FailFirstPlacements makes that many placements fail with
	// ErrSerialization before fn runs, to exercise retry paths.
	FailFirstPlacements int
}

// NewMemoryOrderStore constructs an empty store.
func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{
		products: make(map[uuid.UUID]model.Product),
		orders:   make(map[uuid.UUID]*model.Order),
		items:    make(map[uuid.UUID][]model.OrderItem),
	}
}

// SeedProduct registers a product available for placement.
func (s *MemoryOrderStore) SeedProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// ProductInventory returns current committed inventory of a product.
func (s *MemoryOrderStore) ProductInventory(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Inventory
}

// OrderCount returns the number of committed orders.
func (s *MemoryOrderStore) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

type memorySession struct {
	store  *MemoryOrderStore
	staged map[uuid.UUID]model.Product
	order  *model.Order
	items  []model.OrderItem
}

func (s *memorySession) current(id uuid.UUID) (model.Product, bool) {
	if p, ok := s.staged[id]; ok {
		return p, true
	}
	p, ok := s.store.products[id]
	return p, ok
}

func (s *memorySession) ProductForUpdate(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := s.current(id)
	if !ok {
		return nil, &domainErrors.ProductNotFoundError{ProductID: id}
	}
	copied := p
	return &copied, nil
}

func (s *memorySession) DecrementInventory(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	p, ok := s.current(id)
	if !ok || p.Inventory < quantity {
		return false, nil
	}
	p.Inventory -= quantity
	s.staged[id] = p
	return true, nil
}

func (s *memorySession) CreateOrder(ctx context.Context, userID uuid.UUID, status model.OrderStatus, total decimal.Decimal) (*model.Order, error) {
	order := &model.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    status,
		Total:     total,
		CreatedAt: time.Now(),
	}
	s.order = order
	return order, nil
}

func (s *memorySession) AddItem(ctx context.Context, orderID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*model.OrderItem, error) {
	item := model.OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		CreatedAt: time.Now(),
	}
	s.items = append(s.items, item)
	return &item, nil
}

// WithinPlacement serializes placements with a mutex and commits staged
// writes only when fn succeeds.
func (s *MemoryOrderStore) WithinPlacement(ctx context.Context, fn func(repository.PlacementSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.PlacementErr != nil {
		return s.PlacementErr
	}
	if s.FailFirstPlacements > 0 {
		s.FailFirstPlacements--
		return domainErrors.ErrSerialization
	}

	session := &memorySession{store: s, staged: make(map[uuid.UUID]model.Product)}
	if err := fn(session); err != nil {
		return err
	}

	for id, p := range session.staged {
		s.products[id] = p
	}
	if session.order != nil {
		order := *session.order
		order.Items = append([]model.OrderItem(nil), session.items...)
		s.orders[order.ID] = &order
		s.items[order.ID] = order.Items
	}
	return nil
}

func (s *MemoryOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[id]; ok {
		return o, nil
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *MemoryOrderStore) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		result = append(result, *o)
	}
	return result, nil
}

func (s *MemoryOrderStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (s *MemoryOrderStore) ItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[orderID], nil
}

func (s *MemoryOrderStore) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	o.Status = status
	return o, nil
}
