package stats

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"storefront/shop/analytics"
	"storefront/shop/cache"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
)

// PieCharts returns the distribution snapshot, computing it on a cache miss.
func (b *business) PieCharts(ctx context.Context) (*model.PieCharts, error) {
	charts, err := cache.GetOrCompute(ctx, b.cache, cache.AdminPieChartsKey, b.computePieCharts)
	if err != nil {
		return nil, err
	}
	return &charts, nil
}

func (b *business) computePieCharts(ctx context.Context) (model.PieCharts, error) {
	today := b.clock.Now()

	var (
		processing, shipped, delivered int64
		productsCount, outOfStock      int64
		categories                     []model.CategoryShare
		amounts                        []orders.ListOrderAmountsRow
		admins, customers              int64
		birthdays                      []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		processing, err = b.orderRepo.CountOrdersByStatus(gctx, string(model.OrderStatusProcessing))
		return err
	})
	g.Go(func() (err error) {
		shipped, err = b.orderRepo.CountOrdersByStatus(gctx, string(model.OrderStatusShipped))
		return err
	})
	g.Go(func() (err error) {
		delivered, err = b.orderRepo.CountOrdersByStatus(gctx, string(model.OrderStatusDelivered))
		return err
	})
	g.Go(func() (err error) {
		productsCount, err = b.productRepo.CountProducts(gctx)
		if err != nil {
			return err
		}
		categories, err = b.categoryDistribution(gctx, productsCount)
		return err
	})
	g.Go(func() (err error) {
		outOfStock, err = b.productRepo.CountOutOfStockProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		amounts, err = b.orderRepo.ListOrderAmounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		admins, err = b.userRepo.CountUsersByRole(gctx, string(model.RoleAdmin))
		return err
	})
	g.Go(func() (err error) {
		customers, err = b.userRepo.CountUsersByRole(gctx, string(model.RoleUser))
		return err
	})
	g.Go(func() error {
		dates, err := b.userRepo.ListUserBirthdays(gctx)
		if err != nil {
			return err
		}
		birthdays = make([]time.Time, 0, len(dates))
		for _, d := range dates {
			if d.Valid {
				birthdays = append(birthdays, d.Time)
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		rlog.Error("failed to load pie charts", "error", err)
		return model.PieCharts{}, &errs.Error{Code: errs.Internal, Message: "failed to load pie charts"}
	}

	var gross, discount, shipping, tax int64
	for _, o := range amounts {
		gross += o.Total
		discount += o.Discount
		shipping += o.ShippingCharges
		tax += o.Tax
	}

	return model.PieCharts{
		OrderFulfillment: model.OrderFulfillment{
			Processing: processing,
			Shipped:    shipped,
			Delivered:  delivered,
		},
		ProductCategories: categories,
		StockAvailability: model.StockAvailability{
			InStock:    productsCount - outOfStock,
			OutOfStock: outOfStock,
		},
		RevenueDistribution: analytics.RevenueSplit(gross, discount, shipping, tax),
		AdminCustomer: model.AdminCustomer{
			Admin:    admins,
			Customer: customers,
		},
		UsersAgeGroup: analytics.AgeGroups(birthdays, today),
	}, nil
}
