package product

import (
	"context"

	"encore.dev/beta/errs"

	"storefront/shop/cache"
	"storefront/shop/model"
)

// ListLatestProducts returns the newest products, newest first.
func (b *business) ListLatestProducts(ctx context.Context) ([]model.Product, error) {
	return cache.GetOrCompute(ctx, b.cache, cache.LatestProductsKey, func(ctx context.Context) ([]model.Product, error) {
		dbProducts, err := b.productRepo.ListLatestProducts(ctx, b.latestLimit)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list latest products"}
		}
		return convertDBProductsToModel(dbProducts), nil
	})
}

// ListCategories returns every distinct product category.
func (b *business) ListCategories(ctx context.Context) ([]string, error) {
	return cache.GetOrCompute(ctx, b.cache, cache.CategoriesKey, func(ctx context.Context) ([]string, error) {
		categories, err := b.productRepo.ListCategories(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list categories"}
		}
		if categories == nil {
			categories = []string{}
		}
		return categories, nil
	})
}

// ListAllProducts returns the full catalogue for the admin views.
func (b *business) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	return cache.GetOrCompute(ctx, b.cache, cache.AllProductsKey, func(ctx context.Context) ([]model.Product, error) {
		dbProducts, err := b.productRepo.ListProducts(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list products"}
		}
		return convertDBProductsToModel(dbProducts), nil
	})
}
