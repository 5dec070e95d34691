package service

import (
	"context"
	"time"

	"github.com/greenhouse/plants-api/internal/core/domain"
	"github.com/greenhouse/plants-api/internal/core/ports"
)

// CategoryService implements category use cases.
type CategoryService struct {
	repo ports.CategoryRepository
}

func NewCategoryService(repo ports.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Category{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	category.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
