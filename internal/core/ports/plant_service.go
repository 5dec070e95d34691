package ports

import (
	"context"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

// CreatePlantInput carries the data for a new catalog entry.
type CreatePlantInput struct {
	Name        string
	Slug        string
	Description string
	Price       float64
	Stock       int
	CategoryID  int64
	ImageURLs   []string
}

// UpdatePlantInput carries the mutable fields of a catalog entry. Nil
// pointers mean "leave unchanged".
type UpdatePlantInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	CategoryID  *int64
	ImageURLs   []string
}

// PlantService defines use-case operations for the plant catalog.
type PlantService interface {
	List(ctx context.Context) ([]domain.Plant, error)
	Get(ctx context.Context, slug string) (*domain.Plant, error)
	Create(ctx context.Context, input CreatePlantInput) (*domain.Plant, error)
	Update(ctx context.Context, slug string, input UpdatePlantInput) (*domain.Plant, error)
	Delete(ctx context.Context, slug string) error
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}
