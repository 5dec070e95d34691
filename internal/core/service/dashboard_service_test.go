package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/greenhouse/plants-api/internal/core/domain"
	"github.com/greenhouse/plants-api/internal/core/ports"
)

type stubPlantCounter struct {
	ports.PlantRepository
	count int64
}

func (s *stubPlantCounter) Count(_ context.Context) (int64, error) { return s.count, nil }

type stubStatsCache struct {
	stats  *ports.Statistics
	getErr error
	putErr error
	puts   int
}

func (s *stubStatsCache) Get(_ context.Context) (*ports.Statistics, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stats, nil
}

func (s *stubStatsCache) Put(_ context.Context, stats *ports.Statistics) error {
	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	s.stats = stats
	return nil
}

func seededDashboardService(cache ports.StatsCache) *DashboardService {
	orders := newStubOrderRepo(
		&domain.Order{ID: 1, ClientID: 7, Items: []domain.OrderItem{{PlantID: 1, Quantity: 3}}},
		&domain.Order{ID: 2, ClientID: 8, Items: []domain.OrderItem{{PlantID: 2, Quantity: 2}}},
	)
	users := &stubAuthRepo{users: map[string]*domain.User{
		"ada@plants.local": {ID: 1, Role: domain.RoleClient},
		"bob@plants.local": {ID: 2, Role: domain.RoleAdmin},
	}}
	return NewDashboardService(&stubPlantCounter{count: 5}, orders, users, cache, zerolog.Nop())
}

func TestDashboardService_Statistics_ComputesAndCaches(t *testing.T) {
	cache := &stubStatsCache{}
	svc := seededDashboardService(cache)

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics returned error: %v", err)
	}
	if stats.TotalPlants != 5 {
		t.Fatalf("TotalPlants = %d, want 5", stats.TotalPlants)
	}
	if stats.TotalOrders != 2 {
		t.Fatalf("TotalOrders = %d, want 2", stats.TotalOrders)
	}
	if stats.TotalOrderedPlants != 5 {
		t.Fatalf("TotalOrderedPlants = %d, want 5", stats.TotalOrderedPlants)
	}
	if stats.TotalClients != 1 {
		t.Fatalf("TotalClients = %d, want 1", stats.TotalClients)
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cache.puts)
	}
}

func TestDashboardService_Statistics_ServesFromCache(t *testing.T) {
	cache := &stubStatsCache{stats: &ports.Statistics{TotalPlants: 99}}
	svc := seededDashboardService(cache)

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics returned error: %v", err)
	}
	if stats.TotalPlants != 99 {
		t.Fatalf("TotalPlants = %d, want cached 99", stats.TotalPlants)
	}
	if cache.puts != 0 {
		t.Fatalf("cache hit must not write back, puts = %d", cache.puts)
	}
}

func TestDashboardService_Statistics_SurvivesCacheFailures(t *testing.T) {
	cache := &stubStatsCache{getErr: errors.New("redis down"), putErr: errors.New("redis down")}
	svc := seededDashboardService(cache)

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics returned error: %v", err)
	}
	if stats.TotalPlants != 5 {
		t.Fatalf("TotalPlants = %d, want 5", stats.TotalPlants)
	}
}
