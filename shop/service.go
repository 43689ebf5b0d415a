package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"storefront/shop/business/coupon"
	"storefront/shop/business/order"
	"storefront/shop/business/product"
	"storefront/shop/business/stats"
	"storefront/shop/business/user"
	"storefront/shop/cache"
	"storefront/shop/domain"
	"storefront/shop/repository"
	"storefront/shop/workflow"
)

var storefrontDB = sqldb.NewDatabase("storefront", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	products product.Business
	orders   order.Business
	users    user.Business
	coupons  coupon.Business
	stats    stats.Business

	temporal client.Client
	worker   worker.Worker

	pageSize     int
	taskQueue    string
	shipAfter    time.Duration
	deliverAfter time.Duration
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(storefrontDB)

	rlog.Info("Initializing repository")
	repo := repository.NewRepository(pgxdb)

	// One cache instance for every business layer. Writes in one layer
	// invalidate reads served by another.
	keyed := cache.New()
	clock := clockwork.NewRealClock()

	stateMachine := domain.NewOrderStateMachine(pgxdb)
	orderBusiness := order.NewOrderBusiness(repo.Orders, stateMachine, keyed)

	tc, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(orderBusiness)

	w := worker.New(tc, cfg.Temporal.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.OrderFulfilment)
	w.RegisterActivity(workflow.AdvanceOrderActivity)
	if err := w.Start(); err != nil {
		tc.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	return &Service{
		products: product.NewProductBusiness(repo.Products, keyed, int32(cfg.LatestProductsLimit)),
		orders:   orderBusiness,
		users:    user.NewUserBusiness(repo.Users, repo.Orders, keyed),
		coupons:  coupon.NewCouponBusiness(repo.Coupons),
		stats:    stats.NewStatsBusiness(repo.Products, repo.Users, repo.Orders, keyed, clock),

		temporal: tc,
		worker:   w,

		pageSize:     cfg.ProductPageSize,
		taskQueue:    cfg.Temporal.TaskQueue,
		shipAfter:    cfg.Fulfilment.ShipAfter(),
		deliverAfter: cfg.Fulfilment.DeliverAfter(),
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
