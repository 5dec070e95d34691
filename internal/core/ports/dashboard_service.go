package ports

import "context"

// Statistics is the admin dashboard aggregate.
type Statistics struct {
	TotalPlants        int64 `json:"total_plants"`
	TotalOrders        int64 `json:"total_orders"`
	TotalOrderedPlants int64 `json:"total_ordered_plants"`
	TotalClients       int64 `json:"total_clients"`
}

// StatsCache caches computed statistics between requests.
type StatsCache interface {
	// Get returns the cached statistics, or (nil, nil) on a miss.
	Get(ctx context.Context) (*Statistics, error)
	Put(ctx context.Context, stats *Statistics) error
}

// DashboardService computes the admin statistics view.
type DashboardService interface {
	Statistics(ctx context.Context) (*Statistics, error)
}
