package ports

import (
	"context"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

// CreateOrderInput carries the data needed to place a new order. The owner
// is always the authenticated actor, never a field of the request.
type CreateOrderInput struct {
	Items []domain.OrderItem
}

// OrderService defines use-case operations for orders. Every operation
// takes the acting Principal and enforces the authorization policy before
// touching the repository.
type OrderService interface {
	// List returns the orders actor may see: their own for clients, all
	// orders for admin and employee.
	List(ctx context.Context, actor domain.Principal) ([]domain.Order, error)
	// Get returns domain.ErrOrderNotFound or domain.ErrForbidden when the
	// order is absent or not visible to actor. The two are never collapsed.
	Get(ctx context.Context, actor domain.Principal, id int64) (*domain.Order, error)
	Create(ctx context.Context, actor domain.Principal, input CreateOrderInput) (*domain.Order, error)
	// UpdateStatus applies the status change when the policy allows it.
	UpdateStatus(ctx context.Context, actor domain.Principal, id int64, target domain.OrderStatus) (*domain.Order, error)
}
