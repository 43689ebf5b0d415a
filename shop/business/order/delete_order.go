package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
	"storefront/shop/model"
)

// DeleteOrder removes the order and returns what was deleted.
func (b *business) DeleteOrder(ctx context.Context, id string) (*model.Order, error) {
	dbOrder, err := b.orderRepo.DeleteOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "order not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to delete order"}
	}

	b.cache.Invalidate(cache.Event{Order: true, Admin: true, UserID: dbOrder.UserID, OrderID: id})

	deleted, err := convertDBOrderToModel(dbOrder, "")
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to decode order"}
	}
	return &deleted, nil
}
