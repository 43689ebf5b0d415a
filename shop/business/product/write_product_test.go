package product

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront/shop/cache"
	"storefront/shop/mocks/repository/product_repo"
	"storefront/shop/model"
	"storefront/shop/repository/products"
)

func seededCache() *cache.Cache {
	c := cache.New()
	for _, key := range []string{
		cache.LatestProductsKey, cache.CategoriesKey, cache.AllProductsKey,
		cache.AdminStatsKey, cache.AdminPieChartsKey, cache.AdminBarChartsKey, cache.AdminLineChartKey,
		cache.ProductKey("p1"), cache.ProductKey("p2"), cache.AllOrdersKey,
	} {
		c.Set(key, "{}")
	}
	return c
}

func TestCreateProduct(t *testing.T) {
	testCases := []struct {
		name          string
		product       *model.Product
		mockError     error
		expectedError string
		expectSuccess bool
	}{
		{
			name:          "happy_case_lowercases_category",
			product:       &model.Product{Name: "Pixel", Photo: "pixel.png", Price: 699, Stock: 10, Category: "Phone"},
			expectSuccess: true,
		},
		{
			name:          "database_error",
			product:       &model.Product{Name: "Pixel", Photo: "pixel.png", Price: 699, Stock: 10, Category: "phone"},
			mockError:     errors.New("insert failed"),
			expectedError: "failed to create product",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProductRepo := product_repo.NewMockQuerier(ctrl)
			c := seededCache()
			business := &business{productRepo: mockProductRepo, cache: c}

			mockProductRepo.EXPECT().
				CreateProduct(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, arg products.CreateProductParams) (products.Product, error) {
					assert.NotEmpty(t, arg.ID)
					assert.Equal(t, "phone", arg.Category)
					if tc.mockError != nil {
						return products.Product{}, tc.mockError
					}
					return products.Product{
						ID:       arg.ID,
						Name:     arg.Name,
						Photo:    arg.Photo,
						Price:    arg.Price,
						Stock:    arg.Stock,
						Category: arg.Category,
					}, nil
				})

			result, err := business.CreateProduct(context.Background(), tc.product)

			if !tc.expectSuccess {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				// A failed write leaves the cache alone
				assert.True(t, c.Has(cache.LatestProductsKey))
				assert.True(t, c.Has(cache.AdminStatsKey))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Pixel", result.Name)
			assert.Equal(t, "phone", result.Category)

			for _, key := range []string{cache.LatestProductsKey, cache.CategoriesKey, cache.AllProductsKey, cache.AdminStatsKey, cache.AdminLineChartKey} {
				assert.False(t, c.Has(key), key)
			}
			assert.True(t, c.Has(cache.ProductKey("p1")))
			assert.True(t, c.Has(cache.AllOrdersKey))
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	price := int64(899)
	category := "Tablet"

	testCases := []struct {
		name          string
		productID     string
		update        *model.ProductUpdate
		expectParams  products.UpdateProductParams
		mockError     error
		expectedError string
		expectSuccess bool
	}{
		{
			name:      "partial_update",
			productID: "p1",
			update:    &model.ProductUpdate{Price: &price, Category: &category},
			expectParams: products.UpdateProductParams{
				ID:       "p1",
				Price:    pgtype.Int8{Int64: 899, Valid: true},
				Category: pgtype.Text{String: "tablet", Valid: true},
			},
			expectSuccess: true,
		},
		{
			name:          "product_not_found",
			productID:     "missing",
			update:        &model.ProductUpdate{},
			expectParams:  products.UpdateProductParams{ID: "missing"},
			mockError:     pgx.ErrNoRows,
			expectedError: "product not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProductRepo := product_repo.NewMockQuerier(ctrl)
			c := seededCache()
			business := &business{productRepo: mockProductRepo, cache: c}

			mockProductRepo.EXPECT().
				UpdateProduct(gomock.Any(), tc.expectParams).
				Return(products.Product{ID: tc.productID, Price: price, Category: "tablet"}, tc.mockError)

			result, err := business.UpdateProduct(context.Background(), tc.productID, tc.update)

			if !tc.expectSuccess {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.True(t, c.Has(cache.ProductKey("p1")))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, price, result.Price)
			assert.False(t, c.Has(cache.ProductKey("p1")))
			assert.True(t, c.Has(cache.ProductKey("p2")))
			assert.False(t, c.Has(cache.AdminPieChartsKey))
		})
	}
}

func TestDeleteProduct(t *testing.T) {
	testCases := []struct {
		name          string
		productID     string
		mockError     error
		expectedError string
	}{
		{
			name:      "happy_case",
			productID: "p2",
		},
		{
			name:          "product_not_found",
			productID:     "p2",
			mockError:     pgx.ErrNoRows,
			expectedError: "product not found",
		},
		{
			name:          "database_error",
			productID:     "p2",
			mockError:     errors.New("timeout"),
			expectedError: "failed to delete product",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProductRepo := product_repo.NewMockQuerier(ctrl)
			c := seededCache()
			business := &business{productRepo: mockProductRepo, cache: c}

			mockProductRepo.EXPECT().
				DeleteProduct(gomock.Any(), tc.productID).
				Return(products.Product{ID: tc.productID}, tc.mockError)

			err := business.DeleteProduct(context.Background(), tc.productID)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.True(t, c.Has(cache.ProductKey(tc.productID)))
				return
			}

			require.NoError(t, err)
			assert.False(t, c.Has(cache.ProductKey(tc.productID)))
			assert.False(t, c.Has(cache.AllProductsKey))
			assert.True(t, c.Has(cache.ProductKey("p1")))
		})
	}
}
