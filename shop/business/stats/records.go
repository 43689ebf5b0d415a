package stats

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/sync/errgroup"

	"storefront/shop/analytics"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
	"storefront/shop/repository/products"
	"storefront/shop/repository/users"
)

func between(p analytics.Period) (pgtype.Timestamptz, pgtype.Timestamptz) {
	return pgtype.Timestamptz{Time: p.Start, Valid: true}, pgtype.Timestamptz{Time: p.End, Valid: true}
}

func (b *business) productsCreated(ctx context.Context, p analytics.Period) ([]model.Product, error) {
	start, end := between(p)
	rows, err := b.productRepo.ListProductsCreatedBetween(ctx, products.ListProductsCreatedBetweenParams{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	result := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.Product{ID: row.ID, Category: row.Category, CreatedAt: row.CreatedAt.Time})
	}
	return result, nil
}

func (b *business) usersCreated(ctx context.Context, p analytics.Period) ([]model.User, error) {
	start, end := between(p)
	rows, err := b.userRepo.ListUsersCreatedBetween(ctx, users.ListUsersCreatedBetweenParams{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	result := make([]model.User, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.User{ID: row.ID, CreatedAt: row.CreatedAt.Time})
	}
	return result, nil
}

// ordersCreated returns the orders placed in p. Only the amounts, the status
// and the creation time are carried over.
func (b *business) ordersCreated(ctx context.Context, p analytics.Period) ([]model.Order, error) {
	start, end := between(p)
	rows, err := b.orderRepo.ListOrdersCreatedBetween(ctx, orders.ListOrdersCreatedBetweenParams{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	result := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.Order{
			ID:        row.ID,
			Discount:  row.Discount,
			Total:     row.Total,
			Status:    model.OrderStatus(row.Status),
			CreatedAt: row.CreatedAt.Time,
		})
	}
	return result, nil
}

// categoryDistribution counts the products of every category concurrently
// and turns the counts into percentage shares of total.
func (b *business) categoryDistribution(ctx context.Context, total int64) ([]model.CategoryShare, error) {
	categories, err := b.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	counts := make([]int64, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			count, err := b.productRepo.CountProductsByCategory(gctx, category)
			if err != nil {
				return err
			}
			counts[i] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analytics.CategoryDistribution(categories, counts, total), nil
}

func orderTotal(o model.Order) int64    { return o.Total }
func orderDiscount(o model.Order) int64 { return o.Discount }

func sumTotals(list []model.Order) int64 {
	var sum int64
	for _, o := range list {
		sum += o.Total
	}
	return sum
}

// itemCount is the number of line items stored in an order's JSONB column.
func itemCount(raw []byte) int {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0
	}
	return len(items)
}
