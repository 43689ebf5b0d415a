// Package stats assembles the admin dashboard snapshots. Each snapshot is
// computed from independent read-only queries issued concurrently and is
// cached under its fixed key until a write invalidates it.
package stats

import (
	"context"

	"github.com/jonboulle/clockwork"

	"storefront/shop/cache"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
	"storefront/shop/repository/products"
	"storefront/shop/repository/users"
)

// LatestTransactionsLimit is how many recent orders the overview lists.
const LatestTransactionsLimit = 4

type Business interface {
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
	PieCharts(ctx context.Context) (*model.PieCharts, error)
	BarCharts(ctx context.Context) (*model.BarCharts, error)
	LineCharts(ctx context.Context) (*model.LineCharts, error)
}

type business struct {
	productRepo products.Querier
	userRepo    users.Querier
	orderRepo   orders.Querier
	cache       *cache.Cache
	clock       clockwork.Clock
}

// NewStatsBusiness creates a new dashboard business layer. clock supplies
// "today" for every month window.
func NewStatsBusiness(
	productRepo products.Querier,
	userRepo users.Querier,
	orderRepo orders.Querier,
	c *cache.Cache,
	clock clockwork.Clock,
) Business {
	return &business{
		productRepo: productRepo,
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		cache:       c,
		clock:       clock,
	}
}
