package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
)

func (b *business) DeleteProduct(ctx context.Context, id string) error {
	if _, err := b.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "product not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to delete product"}
	}

	b.cache.Invalidate(cache.Event{Product: true, Admin: true, ProductIDs: []string{id}})
	return nil
}
