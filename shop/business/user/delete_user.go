package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
)

// DeleteUser removes the user. Their orders are kept, but cached order reads
// show the user's name and are invalidated with the dashboards.
func (b *business) DeleteUser(ctx context.Context, id string) error {
	userOrders, err := b.orderRepo.ListOrdersByUser(ctx, id)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to delete user"}
	}

	if _, err := b.userRepo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "user not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to delete user"}
	}

	b.cache.Invalidate(cache.Event{Order: true, Admin: true, UserID: id})
	for _, o := range userOrders {
		b.cache.Invalidate(cache.Event{Order: true, UserID: id, OrderID: o.ID})
	}
	return nil
}
