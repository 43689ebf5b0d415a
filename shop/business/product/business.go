package product

import (
	"context"

	"storefront/shop/cache"
	"storefront/shop/model"
	"storefront/shop/repository/products"
)

type Business interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, update *model.ProductUpdate) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListLatestProducts(ctx context.Context) ([]model.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	SearchProducts(ctx context.Context, search *model.ProductSearch) ([]model.Product, int64, error)
}

// business handles catalogue reads and writes. Reads go through the shared
// cache; every write invalidates the product and dashboard keys it touches.
type business struct {
	productRepo products.Querier
	cache       *cache.Cache
	latestLimit int32
}

// NewProductBusiness creates a new product business layer
func NewProductBusiness(productRepo products.Querier, c *cache.Cache, latestLimit int32) Business {
	return &business{
		productRepo: productRepo,
		cache:       c,
		latestLimit: latestLimit,
	}
}

// convertDBProductToModel converts a database Product to a domain model Product
func convertDBProductToModel(dbProduct products.Product) model.Product {
	return model.Product{
		ID:        dbProduct.ID,
		Name:      dbProduct.Name,
		Photo:     dbProduct.Photo,
		Price:     dbProduct.Price,
		Stock:     dbProduct.Stock,
		Category:  dbProduct.Category,
		CreatedAt: dbProduct.CreatedAt.Time,
		UpdatedAt: dbProduct.UpdatedAt.Time,
	}
}

func convertDBProductsToModel(dbProducts []products.Product) []model.Product {
	result := make([]model.Product, 0, len(dbProducts))
	for _, p := range dbProducts {
		result = append(result, convertDBProductToModel(p))
	}
	return result
}
