package ports

import (
	"context"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

// PlantRepository defines persistence operations for the plant catalog.
type PlantRepository interface {
	Create(ctx context.Context, p *domain.Plant) (*domain.Plant, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Plant, error)
	List(ctx context.Context) ([]domain.Plant, error)
	Update(ctx context.Context, p *domain.Plant) (*domain.Plant, error)
	DeleteBySlug(ctx context.Context, slug string) error
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}
