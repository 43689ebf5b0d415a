package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"storefront/shop/analytics"
	"storefront/shop/cache"
	"storefront/shop/model"
)

// BarCharts returns six months of product and user sign-ups and twelve
// months of orders.
func (b *business) BarCharts(ctx context.Context) (*model.BarCharts, error) {
	charts, err := cache.GetOrCompute(ctx, b.cache, cache.AdminBarChartsKey, b.computeBarCharts)
	if err != nil {
		return nil, err
	}
	return &charts, nil
}

func (b *business) computeBarCharts(ctx context.Context) (model.BarCharts, error) {
	today := b.clock.Now()
	sixMonths := analytics.LastMonths(today, 6)
	twelveMonths := analytics.LastMonths(today, 12)

	var (
		productList []model.Product
		userList    []model.User
		orderList   []model.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		productList, err = b.productsCreated(gctx, sixMonths)
		return err
	})
	g.Go(func() (err error) {
		userList, err = b.usersCreated(gctx, sixMonths)
		return err
	})
	g.Go(func() (err error) {
		orderList, err = b.ordersCreated(gctx, twelveMonths)
		return err
	})
	if err := g.Wait(); err != nil {
		rlog.Error("failed to load bar charts", "error", err)
		return model.BarCharts{}, &errs.Error{Code: errs.Internal, Message: "failed to load bar charts"}
	}

	return model.BarCharts{
		Users:    analytics.MonthlyCounts(6, today, userList),
		Products: analytics.MonthlyCounts(6, today, productList),
		Orders:   analytics.MonthlyCounts(12, today, orderList),
	}, nil
}
