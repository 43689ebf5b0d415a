package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"storefront/shop/model"
)

func int64Ptr(v int64) *int64 { return &v }

func stringPtr(v string) *string { return &v }

func TestCreateProduct(t *testing.T) {
	testCases := []struct {
		name         string
		request      *CreateProductRequest
		admin        bool
		mockReturn   *model.Product
		mockError    error
		expectCreate bool
		expectedCode errs.ErrCode
	}{
		{
			name: "successful_creation",
			request: &CreateProductRequest{
				AdminID:  testAdminID,
				Name:     "Laptop",
				Photo:    "https://cdn.example.com/laptop.png",
				Price:    90000,
				Stock:    4,
				Category: "Electronics",
			},
			admin:        true,
			mockReturn:   &model.Product{ID: "p1", Name: "Laptop", Price: 90000, Stock: 4, Category: "electronics"},
			expectCreate: true,
		},
		{
			name:         "missing_admin_id",
			request:      &CreateProductRequest{Name: "Laptop"},
			expectedCode: errs.Unauthenticated,
		},
		{
			name: "business_failure",
			request: &CreateProductRequest{
				AdminID: testAdminID,
				Name:    "Laptop",
			},
			admin:        true,
			mockError:    &errs.Error{Code: errs.Internal, Message: "failed to create product"},
			expectCreate: true,
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, m := newTestService(t)
			if tc.admin {
				m.expectAdmin()
			}
			if tc.expectCreate {
				m.products.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p *model.Product) (*model.Product, error) {
						assert.Equal(t, tc.request.Name, p.Name)
						assert.Equal(t, tc.request.Category, p.Category)
						return tc.mockReturn, tc.mockError
					})
			}

			response, err := service.CreateProduct(context.Background(), tc.request)

			if tc.expectedCode != errs.OK {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, response)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *tc.mockReturn, response.Product)
		})
	}
}

func TestCreateProductRequest_Validate(t *testing.T) {
	valid := func() *CreateProductRequest {
		return &CreateProductRequest{
			Name:     "Phone",
			Photo:    "https://cdn.example.com/phone.png",
			Price:    500,
			Stock:    0,
			Category: "phone",
		}
	}

	testCases := []struct {
		name        string
		mutate      func(r *CreateProductRequest)
		expectError bool
	}{
		{name: "valid_request", mutate: func(r *CreateProductRequest) {}},
		{name: "missing_name", mutate: func(r *CreateProductRequest) { r.Name = "" }, expectError: true},
		{name: "photo_not_url", mutate: func(r *CreateProductRequest) { r.Photo = "phone.png" }, expectError: true},
		{name: "zero_price", mutate: func(r *CreateProductRequest) { r.Price = 0 }, expectError: true},
		{name: "negative_stock", mutate: func(r *CreateProductRequest) { r.Stock = -1 }, expectError: true},
		{name: "missing_category", mutate: func(r *CreateProductRequest) { r.Category = "" }, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)

			err := req.Validate()
			if tc.expectError {
				require.Error(t, err)
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	service, m := newTestService(t)
	m.expectAdmin()

	m.products.EXPECT().
		UpdateProduct(gomock.Any(), "p1", &model.ProductUpdate{Price: int64Ptr(1200), Stock: int64Ptr(7)}).
		Return(&model.Product{ID: "p1", Price: 1200, Stock: 7}, nil)

	response, err := service.UpdateProduct(context.Background(), "p1", &UpdateProductRequest{
		AdminID: testAdminID,
		Price:   int64Ptr(1200),
		Stock:   int64Ptr(7),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1200), response.Product.Price)
	assert.Equal(t, int64(7), response.Product.Stock)
}

func TestUpdateProductRequest_Validate(t *testing.T) {
	assert.Equal(t, errs.InvalidArgument, errs.Code((&UpdateProductRequest{}).Validate()))
	assert.Equal(t, errs.InvalidArgument, errs.Code((&UpdateProductRequest{Price: int64Ptr(0)}).Validate()))
	assert.Equal(t, errs.InvalidArgument, errs.Code((&UpdateProductRequest{Photo: stringPtr("nope")}).Validate()))
	assert.NoError(t, (&UpdateProductRequest{Name: stringPtr("Tablet")}).Validate())
	assert.NoError(t, (&UpdateProductRequest{Stock: int64Ptr(0)}).Validate())
}

func TestDeleteProduct(t *testing.T) {
	t.Run("admin_deletes", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectAdmin()
		m.products.EXPECT().DeleteProduct(gomock.Any(), "p1").Return(nil)

		assert.NoError(t, service.DeleteProduct(context.Background(), "p1", &AdminRequest{AdminID: testAdminID}))
	})

	t.Run("non_admin_rejected", func(t *testing.T) {
		service, m := newTestService(t)
		m.users.EXPECT().IsAdmin(gomock.Any(), "u1").Return(false, nil)

		err := service.DeleteProduct(context.Background(), "p1", &AdminRequest{AdminID: "u1"})
		assert.Equal(t, errs.PermissionDenied, errs.Code(err))
	})

	t.Run("unknown_product", func(t *testing.T) {
		service, m := newTestService(t)
		m.expectAdmin()
		m.products.EXPECT().DeleteProduct(gomock.Any(), "missing").
			Return(&errs.Error{Code: errs.NotFound, Message: "product not found"})

		err := service.DeleteProduct(context.Background(), "missing", &AdminRequest{AdminID: testAdminID})
		assert.Equal(t, errs.NotFound, errs.Code(err))
	})
}

func TestProductReads(t *testing.T) {
	service, m := newTestService(t)
	products := []model.Product{{ID: "p2", Name: "Camera"}, {ID: "p1", Name: "Laptop"}}

	m.products.EXPECT().ListLatestProducts(gomock.Any()).Return(products, nil)
	m.products.EXPECT().ListCategories(gomock.Any()).Return([]string{"camera", "laptop"}, nil)
	m.products.EXPECT().GetProduct(gomock.Any(), "p1").Return(&products[1], nil)
	m.products.EXPECT().GetProduct(gomock.Any(), "missing").
		Return(nil, &errs.Error{Code: errs.NotFound, Message: "product not found"})

	latest, err := service.ListLatestProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, products, latest.Products)

	categories, err := service.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"camera", "laptop"}, categories.Categories)

	product, err := service.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", product.Product.Name)

	_, err = service.GetProduct(context.Background(), "missing")
	assert.Equal(t, errs.NotFound, errs.Code(err))
}

func TestListAdminProducts(t *testing.T) {
	service, m := newTestService(t)
	m.expectAdmin()
	m.products.EXPECT().ListAllProducts(gomock.Any()).Return([]model.Product{{ID: "p1"}}, nil)

	response, err := service.ListAdminProducts(context.Background(), &AdminRequest{AdminID: testAdminID})
	require.NoError(t, err)
	assert.Len(t, response.Products, 1)
}

func TestSearchProducts(t *testing.T) {
	service, m := newTestService(t)

	m.products.EXPECT().
		SearchProducts(gomock.Any(), &model.ProductSearch{
			Search:   "mac",
			Category: "laptop",
			MaxPrice: 150000,
			Sort:     "desc",
			Page:     2,
			PageSize: 8,
		}).
		Return([]model.Product{{ID: "p9"}}, int64(3), nil)

	response, err := service.SearchProducts(context.Background(), &SearchProductsRequest{
		Search:   "mac",
		Category: "laptop",
		Price:    150000,
		Sort:     "desc",
		Page:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), response.TotalPage)
	assert.Equal(t, []model.Product{{ID: "p9"}}, response.Products)
}

func TestSearchProductsRequest_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		request     SearchProductsRequest
		expectError bool
	}{
		{name: "empty_request", request: SearchProductsRequest{}},
		{name: "ascending", request: SearchProductsRequest{Sort: "asc"}},
		{name: "descending", request: SearchProductsRequest{Sort: "desc"}},
		{name: "unknown_sort", request: SearchProductsRequest{Sort: "name"}, expectError: true},
		{name: "negative_price", request: SearchProductsRequest{Price: -1}, expectError: true},
		{name: "last_allowed_page", request: SearchProductsRequest{Page: MaxSearchPage}},
		{name: "page_too_large", request: SearchProductsRequest{Page: MaxSearchPage + 1}, expectError: true},
		{name: "huge_page", request: SearchProductsRequest{Page: 1 << 30}, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectError {
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
