package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
)

// GetOrder returns one order together with the name of the user who placed it.
func (b *business) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	order, err := cache.GetOrCompute(ctx, b.cache, cache.OrderKey(id), func(ctx context.Context) (model.Order, error) {
		row, err := b.orderRepo.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.Order{}, &errs.Error{Code: errs.NotFound, Message: "order not found"}
			}
			return model.Order{}, &errs.Error{Code: errs.Internal, Message: "failed to get order"}
		}

		order, err := convertDBOrderToModel(orders.Order{
			ID:              row.ID,
			UserID:          row.UserID,
			ShippingInfo:    row.ShippingInfo,
			OrderItems:      row.OrderItems,
			Subtotal:        row.Subtotal,
			Tax:             row.Tax,
			ShippingCharges: row.ShippingCharges,
			Discount:        row.Discount,
			Total:           row.Total,
			Status:          row.Status,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		}, row.UserName.String)
		if err != nil {
			return model.Order{}, &errs.Error{Code: errs.Internal, Message: "failed to decode order"}
		}
		return order, nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListUserOrders returns the orders placed by one user, newest first.
func (b *business) ListUserOrders(ctx context.Context, userID string) ([]model.Order, error) {
	return cache.GetOrCompute(ctx, b.cache, cache.UserOrdersKey(userID), func(ctx context.Context) ([]model.Order, error) {
		dbOrders, err := b.orderRepo.ListOrdersByUser(ctx, userID)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list orders"}
		}

		result, err := convertDBOrdersToModel(dbOrders)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to decode orders"}
		}
		return result, nil
	})
}

// ListOrders returns every order with its user's name for the admin views.
func (b *business) ListOrders(ctx context.Context) ([]model.Order, error) {
	return cache.GetOrCompute(ctx, b.cache, cache.AllOrdersKey, func(ctx context.Context) ([]model.Order, error) {
		rows, err := b.orderRepo.ListOrders(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list orders"}
		}

		result := make([]model.Order, 0, len(rows))
		for _, row := range rows {
			order, err := convertDBOrderToModel(orders.Order{
				ID:              row.ID,
				UserID:          row.UserID,
				ShippingInfo:    row.ShippingInfo,
				OrderItems:      row.OrderItems,
				Subtotal:        row.Subtotal,
				Tax:             row.Tax,
				ShippingCharges: row.ShippingCharges,
				Discount:        row.Discount,
				Total:           row.Total,
				Status:          row.Status,
				CreatedAt:       row.CreatedAt,
				UpdatedAt:       row.UpdatedAt,
			}, row.UserName.String)
			if err != nil {
				return nil, &errs.Error{Code: errs.Internal, Message: "failed to decode orders"}
			}
			result = append(result, order)
		}
		return result, nil
	})
}
