package product

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
	"storefront/shop/model"
	"storefront/shop/repository/products"
)

// CreateProduct stores a new product. Categories are stored lower-cased.
func (b *business) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	dbProduct, err := b.productRepo.CreateProduct(ctx, products.CreateProductParams{
		ID:       uuid.NewString(),
		Name:     product.Name,
		Photo:    product.Photo,
		Price:    product.Price,
		Stock:    product.Stock,
		Category: strings.ToLower(product.Category),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create product"}
	}

	b.cache.Invalidate(cache.Event{Product: true, Admin: true})

	created := convertDBProductToModel(dbProduct)
	return &created, nil
}
