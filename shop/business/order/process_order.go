package order

import (
	"context"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
	"storefront/shop/domain"
	"storefront/shop/model"
	"storefront/shop/repository/orders"
)

// ProcessOrder moves the order one step along Processing, Shipped, Delivered.
// A delivered order stays delivered.
func (b *business) ProcessOrder(ctx context.Context, id string) (*model.Order, error) {
	var updated orders.Order
	err := b.stateMachine.GetOrderWithLock(ctx, id, func(tx domain.Tx, current orders.Order) error {
		next := model.OrderStatus(current.Status).Next()

		var err error
		updated, err = tx.Orders.UpdateOrderStatus(ctx, orders.UpdateOrderStatusParams{
			ID:     id,
			Status: string(next),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update order status"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.cache.Invalidate(cache.Event{Order: true, Admin: true, UserID: updated.UserID, OrderID: id})

	order, err := convertDBOrderToModel(updated, "")
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to decode order"}
	}
	return &order, nil
}

// AdvanceOrder processes the order only if it is still in status from, and
// reports whether it did. Used by the fulfilment workflow so that a manual
// transition in between turns the scheduled one into a no-op.
func (b *business) AdvanceOrder(ctx context.Context, id string, from model.OrderStatus) (bool, error) {
	var updated orders.Order
	advanced := false
	err := b.stateMachine.GetOrderWithLock(ctx, id, func(tx domain.Tx, current orders.Order) error {
		if model.OrderStatus(current.Status) != from {
			return nil
		}

		var err error
		updated, err = tx.Orders.UpdateOrderStatus(ctx, orders.UpdateOrderStatusParams{
			ID:     id,
			Status: string(from.Next()),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update order status"}
		}
		advanced = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if advanced {
		b.cache.Invalidate(cache.Event{Order: true, Admin: true, UserID: updated.UserID, OrderID: id})
	}
	return advanced, nil
}
