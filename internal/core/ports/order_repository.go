package ports

import (
	"context"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. The service
// layer authorizes every mutation before it reaches the repository; the
// repository itself applies no access rules.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	// FindByID returns domain.ErrOrderNotFound when no such order exists.
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
	Count(ctx context.Context) (int64, error)
	// CountOrderedPlants sums item quantities across all orders.
	CountOrderedPlants(ctx context.Context) (int64, error)
}
