package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/greenhouse/plants-api/internal/core/domain"
	"github.com/greenhouse/plants-api/internal/core/ports"
)

// PlantService implements catalog use cases. Route-level RBAC restricts
// mutations to admins; the service itself only validates referential data.
type PlantService struct {
	repo       ports.PlantRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewPlantService(repo ports.PlantRepository, categories ports.CategoryRepository, logger zerolog.Logger) *PlantService {
	return &PlantService{repo: repo, categories: categories, logger: logger}
}

func (s *PlantService) List(ctx context.Context) ([]domain.Plant, error) {
	return s.repo.List(ctx)
}

func (s *PlantService) Get(ctx context.Context, slug string) (*domain.Plant, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *PlantService) Create(ctx context.Context, input ports.CreatePlantInput) (*domain.Plant, error) {
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	images := make([]domain.Image, 0, len(input.ImageURLs))
	for _, url := range input.ImageURLs {
		images = append(images, domain.Image{URL: url})
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Plant{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("slug", created.Slug).Msg("plant created")
	return created, nil
}

func (s *PlantService) Update(ctx context.Context, slug string, input ports.UpdatePlantInput) (*domain.Plant, error) {
	plant, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		plant.Name = *input.Name
	}
	if input.Description != nil {
		plant.Description = *input.Description
	}
	if input.Price != nil {
		plant.Price = *input.Price
	}
	if input.Stock != nil {
		plant.Stock = *input.Stock
	}
	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		plant.CategoryID = *input.CategoryID
	}
	if input.ImageURLs != nil {
		images := make([]domain.Image, 0, len(input.ImageURLs))
		for _, url := range input.ImageURLs {
			images = append(images, domain.Image{URL: url})
		}
		plant.Images = images
	}
	plant.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, plant)
}

func (s *PlantService) Delete(ctx context.Context, slug string) error {
	return s.repo.DeleteBySlug(ctx, slug)
}
