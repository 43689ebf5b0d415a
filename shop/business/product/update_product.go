package product

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
	"storefront/shop/model"
	"storefront/shop/repository/products"
)

// UpdateProduct applies a partial update. Nil fields keep their stored value.
func (b *business) UpdateProduct(ctx context.Context, id string, update *model.ProductUpdate) (*model.Product, error) {
	params := products.UpdateProductParams{ID: id}
	if update.Name != nil {
		params.Name = pgtype.Text{String: *update.Name, Valid: true}
	}
	if update.Photo != nil {
		params.Photo = pgtype.Text{String: *update.Photo, Valid: true}
	}
	if update.Price != nil {
		params.Price = pgtype.Int8{Int64: *update.Price, Valid: true}
	}
	if update.Stock != nil {
		params.Stock = pgtype.Int8{Int64: *update.Stock, Valid: true}
	}
	if update.Category != nil {
		params.Category = pgtype.Text{String: strings.ToLower(*update.Category), Valid: true}
	}

	dbProduct, err := b.productRepo.UpdateProduct(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "product not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update product"}
	}

	b.cache.Invalidate(cache.Event{Product: true, Admin: true, ProductIDs: []string{id}})

	updated := convertDBProductToModel(dbProduct)
	return &updated, nil
}
