package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
	"storefront/shop/model"
)

// GetProduct handles the business logic for retrieving a product by ID
func (b *business) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := cache.GetOrCompute(ctx, b.cache, cache.ProductKey(id), func(ctx context.Context) (model.Product, error) {
		dbProduct, err := b.productRepo.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.Product{}, &errs.Error{Code: errs.NotFound, Message: "product not found"}
			}
			return model.Product{}, &errs.Error{Code: errs.Internal, Message: "failed to get product"}
		}
		return convertDBProductToModel(dbProduct), nil
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}
