package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront/shop/cache"
	"storefront/shop/mocks/repository/product_repo"
	"storefront/shop/repository/products"
)

func TestGetProduct(t *testing.T) {
	createdAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name                 string
		productID            string
		mockGetProductReturn products.Product
		mockGetProductError  error
		expectedError        string
		expectSuccess        bool
	}{
		{
			name:      "happy_case",
			productID: "p1",
			mockGetProductReturn: products.Product{
				ID:        "p1",
				Name:      "Macbook",
				Photo:     "https://cdn.example.com/macbook.png",
				Price:     1999,
				Stock:     4,
				Category:  "laptop",
				CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
				UpdatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
			},
			expectSuccess: true,
		},
		{
			name:                "product_not_found",
			productID:           "missing",
			mockGetProductError: pgx.ErrNoRows,
			expectedError:       "product not found",
		},
		{
			name:                "database_error",
			productID:           "p1",
			mockGetProductError: errors.New("connection refused"),
			expectedError:       "failed to get product",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProductRepo := product_repo.NewMockQuerier(ctrl)
			c := cache.New()
			business := &business{productRepo: mockProductRepo, cache: c}

			mockProductRepo.EXPECT().
				GetProduct(gomock.Any(), tc.productID).
				Return(tc.mockGetProductReturn, tc.mockGetProductError).
				Times(1)

			result, err := business.GetProduct(context.Background(), tc.productID)

			if !tc.expectSuccess {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.False(t, c.Has(cache.ProductKey(tc.productID)))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.mockGetProductReturn.ID, result.ID)
			assert.Equal(t, tc.mockGetProductReturn.Name, result.Name)
			assert.Equal(t, tc.mockGetProductReturn.Price, result.Price)
			assert.Equal(t, tc.mockGetProductReturn.Category, result.Category)
			assert.True(t, createdAt.Equal(result.CreatedAt))
			assert.True(t, c.Has(cache.ProductKey(tc.productID)))

			// Served from the cache, the repository expectation is Times(1)
			again, err := business.GetProduct(context.Background(), tc.productID)
			require.NoError(t, err)
			assert.Equal(t, result.ID, again.ID)
			assert.True(t, result.CreatedAt.Equal(again.CreatedAt))
		})
	}
}
