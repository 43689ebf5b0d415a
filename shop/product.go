package shop

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"storefront/shop/model"
)

type CreateProductRequest struct {
	AdminID string `query:"admin_id"`

	Name     string `json:"name" validate:"required,max=255"`
	Photo    string `json:"photo" validate:"required,url"`
	Price    int64  `json:"price" validate:"required,min=1"`
	Stock    int64  `json:"stock" validate:"min=0"`
	Category string `json:"category" validate:"required,max=100"`
}

type UpdateProductRequest struct {
	AdminID string `query:"admin_id"`

	Name     *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Photo    *string `json:"photo,omitempty" validate:"omitempty,url"`
	Price    *int64  `json:"price,omitempty" validate:"omitempty,min=1"`
	Stock    *int64  `json:"stock,omitempty" validate:"omitempty,min=0"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
}

// MaxSearchPage bounds the page a search may ask for.
const MaxSearchPage = 10000

type SearchProductsRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Price    int64  `query:"price"`
	Sort     string `query:"sort"`
	Page     int    `query:"page"`
}

type ProductResponse struct {
	Product model.Product `json:"product"`
}

type ProductsResponse struct {
	Products []model.Product `json:"products"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type SearchProductsResponse struct {
	Products  []model.Product `json:"products"`
	TotalPage int64           `json:"total_page"`
}

//encore:api public path=/v1/products method=POST tag:idempotency
func (s *Service) CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.products.CreateProduct(ctx, &model.Product{
		Name:     req.Name,
		Photo:    req.Photo,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	})
	if err != nil {
		rlog.Error("failed to create product", "error", err)
		return nil, err
	}

	return &ProductResponse{Product: *result}, nil
}

//encore:api public path=/v1/products/latest method=GET
func (s *Service) ListLatestProducts(ctx context.Context) (*ProductsResponse, error) {
	result, err := s.products.ListLatestProducts(ctx)
	if err != nil {
		rlog.Error("failed to list latest products", "error", err)
		return nil, err
	}
	return &ProductsResponse{Products: result}, nil
}

//encore:api public path=/v1/products/categories method=GET
func (s *Service) ListCategories(ctx context.Context) (*CategoriesResponse, error) {
	result, err := s.products.ListCategories(ctx)
	if err != nil {
		rlog.Error("failed to list categories", "error", err)
		return nil, err
	}
	return &CategoriesResponse{Categories: result}, nil
}

//encore:api public path=/v1/products/admin method=GET
func (s *Service) ListAdminProducts(ctx context.Context, req *AdminRequest) (*ProductsResponse, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.products.ListAllProducts(ctx)
	if err != nil {
		rlog.Error("failed to list products", "error", err)
		return nil, err
	}
	return &ProductsResponse{Products: result}, nil
}

//encore:api public path=/v1/products/:id method=GET
func (s *Service) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	result, err := s.products.GetProduct(ctx, id)
	if err != nil {
		rlog.Error("failed to get product", "error", err, "id", id)
		return nil, err
	}
	return &ProductResponse{Product: *result}, nil
}

//encore:api public path=/v1/products/:id method=PUT
func (s *Service) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*ProductResponse, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.products.UpdateProduct(ctx, id, &model.ProductUpdate{
		Name:     req.Name,
		Photo:    req.Photo,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	})
	if err != nil {
		rlog.Error("failed to update product", "error", err, "id", id)
		return nil, err
	}
	return &ProductResponse{Product: *result}, nil
}

//encore:api public path=/v1/products/:id method=DELETE
func (s *Service) DeleteProduct(ctx context.Context, id string, req *AdminRequest) error {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return err
	}

	if err := s.products.DeleteProduct(ctx, id); err != nil {
		rlog.Error("failed to delete product", "error", err, "id", id)
		return err
	}
	return nil
}

//encore:api public path=/v1/products method=GET
func (s *Service) SearchProducts(ctx context.Context, req *SearchProductsRequest) (*SearchProductsResponse, error) {
	result, totalPage, err := s.products.SearchProducts(ctx, &model.ProductSearch{
		Search:   req.Search,
		Category: req.Category,
		MaxPrice: req.Price,
		Sort:     req.Sort,
		Page:     req.Page,
		PageSize: s.pageSize,
	})
	if err != nil {
		rlog.Error("failed to search products", "error", err)
		return nil, err
	}

	return &SearchProductsResponse{
		Products:  result,
		TotalPage: totalPage,
	}, nil
}

func (r *CreateProductRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

func (r *UpdateProductRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	if r.Name == nil && r.Photo == nil && r.Price == nil && r.Stock == nil && r.Category == nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "nothing to update"}
	}
	return nil
}

func (r *SearchProductsRequest) Validate() error {
	if r.Price < 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "price must not be negative"}
	}
	if r.Page > MaxSearchPage {
		return &errs.Error{Code: errs.InvalidArgument, Message: "page must not exceed 10000"}
	}
	if r.Sort != "" && r.Sort != model.SortPriceAsc && r.Sort != "desc" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "sort must be asc or desc"}
	}
	return nil
}
