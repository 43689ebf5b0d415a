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

// LineCharts returns twelve month trends for sign-ups, discounts and revenue.
func (b *business) LineCharts(ctx context.Context) (*model.LineCharts, error) {
	charts, err := cache.GetOrCompute(ctx, b.cache, cache.AdminLineChartKey, b.computeLineCharts)
	if err != nil {
		return nil, err
	}
	return &charts, nil
}

func (b *business) computeLineCharts(ctx context.Context) (model.LineCharts, error) {
	today := b.clock.Now()
	twelveMonths := analytics.LastMonths(today, 12)

	var (
		productList []model.Product
		userList    []model.User
		orderList   []model.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		productList, err = b.productsCreated(gctx, twelveMonths)
		return err
	})
	g.Go(func() (err error) {
		userList, err = b.usersCreated(gctx, twelveMonths)
		return err
	})
	g.Go(func() (err error) {
		orderList, err = b.ordersCreated(gctx, twelveMonths)
		return err
	})
	if err := g.Wait(); err != nil {
		rlog.Error("failed to load line charts", "error", err)
		return model.LineCharts{}, &errs.Error{Code: errs.Internal, Message: "failed to load line charts"}
	}

	return model.LineCharts{
		Users:    analytics.MonthlyCounts(12, today, userList),
		Products: analytics.MonthlyCounts(12, today, productList),
		Discount: analytics.MonthlySums(12, today, orderList, orderDiscount),
		Revenue:  analytics.MonthlySums(12, today, orderList, orderTotal),
	}, nil
}
