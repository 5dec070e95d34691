package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/greenhouse/plants-api/internal/core/domain"
	"github.com/greenhouse/plants-api/internal/core/ports"
)

// DashboardService computes the admin statistics view, with a short-lived
// cache in front of the counting queries. Cache failures are logged and
// ignored; the counts are always recomputable.
type DashboardService struct {
	plants ports.PlantRepository
	orders ports.OrderRepository
	users  ports.AuthRepository
	cache  ports.StatsCache
	logger zerolog.Logger
}

func NewDashboardService(plants ports.PlantRepository, orders ports.OrderRepository, users ports.AuthRepository, cache ports.StatsCache, logger zerolog.Logger) *DashboardService {
	return &DashboardService{plants: plants, orders: orders, users: users, cache: cache, logger: logger}
}

func (s *DashboardService) Statistics(ctx context.Context) (*ports.Statistics, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	totalPlants, err := s.plants.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrdered, err := s.orders.CountOrderedPlants(ctx)
	if err != nil {
		return nil, err
	}
	totalClients, err := s.users.CountByRole(ctx, domain.RoleClient)
	if err != nil {
		return nil, err
	}

	stats := &ports.Statistics{
		TotalPlants:        totalPlants,
		TotalOrders:        totalOrders,
		TotalOrderedPlants: totalOrdered,
		TotalClients:       totalClients,
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}
