package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"storefront/shop/analytics"
	"storefront/shop/cache"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
)

// DashboardStats returns the overview snapshot: month over month changes,
// totals, the six month order chart, category shares, the gender ratio and
// the latest transactions.
func (b *business) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := cache.GetOrCompute(ctx, b.cache, cache.AdminStatsKey, b.computeDashboardStats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (b *business) computeDashboardStats(ctx context.Context) (model.DashboardStats, error) {
	today := b.clock.Now()
	thisMonth := analytics.ThisMonth(today)
	lastMonth := analytics.LastMonth(today)

	var (
		thisMonthProducts, lastMonthProducts []model.Product
		thisMonthUsers, lastMonthUsers       []model.User
		thisMonthOrders, lastMonthOrders     []model.Order
		lastSixMonthOrders                   []model.Order
		productsCount, usersCount            int64
		femaleUsersCount                     int64
		allOrders                            []orders.ListOrderAmountsRow
		latestOrders                         []orders.Order
		categoryCount                        []model.CategoryShare
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		thisMonthProducts, err = b.productsCreated(gctx, thisMonth)
		return err
	})
	g.Go(func() (err error) {
		lastMonthProducts, err = b.productsCreated(gctx, lastMonth)
		return err
	})
	g.Go(func() (err error) {
		thisMonthUsers, err = b.usersCreated(gctx, thisMonth)
		return err
	})
	g.Go(func() (err error) {
		lastMonthUsers, err = b.usersCreated(gctx, lastMonth)
		return err
	})
	g.Go(func() (err error) {
		thisMonthOrders, err = b.ordersCreated(gctx, thisMonth)
		return err
	})
	g.Go(func() (err error) {
		lastMonthOrders, err = b.ordersCreated(gctx, lastMonth)
		return err
	})
	g.Go(func() (err error) {
		lastSixMonthOrders, err = b.ordersCreated(gctx, analytics.LastMonths(today, 6))
		return err
	})
	g.Go(func() (err error) {
		// Category shares are relative to the product count, so both come from one goroutine
		productsCount, err = b.productRepo.CountProducts(gctx)
		if err != nil {
			return err
		}
		categoryCount, err = b.categoryDistribution(gctx, productsCount)
		return err
	})
	g.Go(func() (err error) {
		usersCount, err = b.userRepo.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		femaleUsersCount, err = b.userRepo.CountUsersByGender(gctx, string(model.GenderFemale))
		return err
	})
	g.Go(func() (err error) {
		allOrders, err = b.orderRepo.ListOrderAmounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		latestOrders, err = b.orderRepo.ListLatestOrders(gctx, LatestTransactionsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		rlog.Error("failed to load dashboard stats", "error", err)
		return model.DashboardStats{}, &errs.Error{Code: errs.Internal, Message: "failed to load dashboard stats"}
	}

	var revenue int64
	for _, o := range allOrders {
		revenue += o.Total
	}

	transactions := make([]model.Transaction, 0, len(latestOrders))
	for _, o := range latestOrders {
		transactions = append(transactions, model.Transaction{
			ID:       o.ID,
			Discount: o.Discount,
			Amount:   o.Total,
			Quantity: itemCount(o.OrderItems),
			Status:   model.OrderStatus(o.Status),
		})
	}

	return model.DashboardStats{
		CategoryCount: categoryCount,
		ChangePercent: model.MetricSet{
			Revenue: analytics.PercentageChange(sumTotals(thisMonthOrders), sumTotals(lastMonthOrders)),
			Product: analytics.PercentageChange(int64(len(thisMonthProducts)), int64(len(lastMonthProducts))),
			User:    analytics.PercentageChange(int64(len(thisMonthUsers)), int64(len(lastMonthUsers))),
			Order:   analytics.PercentageChange(int64(len(thisMonthOrders)), int64(len(lastMonthOrders))),
		},
		Count: model.MetricSet{
			Revenue: revenue,
			Product: productsCount,
			User:    usersCount,
			Order:   int64(len(allOrders)),
		},
		Chart: model.OrderChart{
			Order:   analytics.MonthlyCounts(6, today, lastSixMonthOrders),
			Revenue: analytics.MonthlySums(6, today, lastSixMonthOrders, orderTotal),
		},
		UserRatio: model.UserRatio{
			Male:   usersCount - femaleUsersCount,
			Female: femaleUsersCount,
		},
		LatestTransactions: transactions,
	}, nil
}
