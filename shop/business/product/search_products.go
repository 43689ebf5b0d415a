package product

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/sync/errgroup"

	"encore.dev/beta/errs"

	"storefront/shop/model"
	"storefront/shop/repository/products"
)

// SearchProducts returns one page of matching products and the total number
// of pages. Search results are never cached.
func (b *business) SearchProducts(ctx context.Context, search *model.ProductSearch) ([]model.Product, int64, error) {
	page, pageSize := search.Page, search.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return nil, 0, &errs.Error{Code: errs.InvalidArgument, Message: "page size must be positive"}
	}

	var filter products.CountSearchProductsParams
	if search.Search != "" {
		filter.Search = pgtype.Text{String: search.Search, Valid: true}
	}
	if search.Category != "" {
		filter.Category = pgtype.Text{String: search.Category, Valid: true}
	}
	if search.MaxPrice > 0 {
		filter.MaxPrice = pgtype.Int8{Int64: search.MaxPrice, Valid: true}
	}

	sort := ""
	switch {
	case search.Sort == model.SortPriceAsc:
		sort = "asc"
	case search.Sort != "":
		sort = "desc"
	}

	var (
		dbProducts []products.Product
		count      int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dbProducts, err = b.productRepo.SearchProducts(gctx, products.SearchProductsParams{
			Search:   filter.Search,
			Category: filter.Category,
			MaxPrice: filter.MaxPrice,
			Sort:     sort,
			Limit:    int32(pageSize),
			Offset:   int32((page - 1) * pageSize),
		})
		return err
	})
	g.Go(func() error {
		var err error
		count, err = b.productRepo.CountSearchProducts(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to search products"}
	}

	totalPages := (count + int64(pageSize) - 1) / int64(pageSize)
	return convertDBProductsToModel(dbProducts), totalPages, nil
}
