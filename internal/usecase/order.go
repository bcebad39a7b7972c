package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// OrderUseCase implements order placement and lifecycle operations.
type OrderUseCase struct {
	orders repository.OrderRepository
	logger *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, logger: logger}
}

// Place reserves inventory and persists an order with its items in one
// transaction. On failure nothing is committed: no order without items, no
// decremented stock without an order. A transaction aborted by a concurrent
// conflict is retried once from the start.
func (u *OrderUseCase) Place(ctx context.Context, buyerID uuid.UUID, items []repository.ItemRequest) (*model.Order, error) {
	merged, err := coalesceItems(items)
	if err != nil {
		return nil, err
	}

	order, err := u.placeOnce(ctx, buyerID, merged)
	if errors.Is(err, domainErrors.ErrSerialization) {
		u.logger.Warn("order placement conflict, retrying",
			slog.String("buyer", buyerID.String()))
		order, err = u.placeOnce(ctx, buyerID, merged)
	}
	if err != nil {
		return nil, err
	}

	u.logger.Info("order placed",
		slog.String("order", order.ID.String()),
		slog.String("buyer", buyerID.String()),
		slog.String("total", order.Total.StringFixed(2)),
	)
	return order, nil
}

// coalesceItems validates the request and merges duplicate product lines so
// a single placement never locks the same row twice.
func coalesceItems(items []repository.ItemRequest) ([]repository.ItemRequest, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrInvalidRequest
	}

	index := make(map[uuid.UUID]int, len(items))
	merged := make([]repository.ItemRequest, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 || it.ProductID == uuid.Nil {
			return nil, domainErrors.ErrInvalidRequest
		}
		if pos, ok := index[it.ProductID]; ok {
			merged[pos].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, it)
	}
	return merged, nil
}

func (u *OrderUseCase) placeOnce(ctx context.Context, buyerID uuid.UUID, items []repository.ItemRequest) (*model.Order, error) {
	var placed *model.Order

	err := u.orders.WithinPlacement(ctx, func(s repository.PlacementSession) error {
		// Lock and check every product first. Locking in request order and
		// coalescing duplicates upfront keeps competing placements from
		// deadlocking against themselves.
		products := make([]*model.Product, 0, len(items))
		for _, it := range items {
			p, err := s.ProductForUpdate(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if p.Inventory < it.Quantity {
				return &domainErrors.InsufficientInventoryError{
					ProductID: p.ID,
					Requested: it.Quantity,
					Available: p.Inventory,
				}
			}
			products = append(products, p)
		}

		// Reserve stock. The write re-verifies inventory >= quantity so a
		// concurrent decrement between read and write still cannot oversell.
		total := decimal.Zero
		for i, it := range items {
			ok, err := s.DecrementInventory(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return &domainErrors.InsufficientInventoryError{
					ProductID: it.ProductID,
					Requested: it.Quantity,
					Available: products[i].Inventory,
				}
			}
			total = total.Add(products[i].Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		total = total.Round(2)

		order, err := s.CreateOrder(ctx, buyerID, model.OrderStatusPending, total)
		if err != nil {
			return err
		}

		for i, it := range items {
			// unit price snapshotted from the locked read, not re-read
			item, err := s.AddItem(ctx, order.ID, it.ProductID, it.Quantity, products[i].Price)
			if err != nil {
				return err
			}
			order.Items = append(order.Items, *item)
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// Get returns an order visible to the requester: owners see their orders,
// admins see all. A foreign order is reported as not found, not forbidden.
func (u *OrderUseCase) Get(ctx context.Context, id, requesterID uuid.UUID, role model.Role) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && order.UserID != requesterID {
		return nil, domainErrors.ErrOrderNotFound
	}
	return order, nil
}

// List returns orders visible to the requester.
func (u *OrderUseCase) List(ctx context.Context, requesterID uuid.UUID, role model.Role) ([]model.Order, error) {
	if role == model.RoleAdmin {
		return u.orders.List(ctx)
	}
	return u.orders.ListByUser(ctx, requesterID)
}

// Items returns line items of an order.
func (u *OrderUseCase) Items(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error) {
	return u.orders.ItemsByOrder(ctx, orderID)
}

// UpdateStatus sets a new status for an order. No transition graph is
// enforced; any known status may replace any other.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if _, ok := model.ParseOrderStatus(string(status)); !ok {
		return nil, domainErrors.ErrInvalidRequest
	}
	return u.orders.UpdateStatus(ctx, id, status)
}
