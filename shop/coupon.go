package shop

import (
	"context"

	"encore.dev/rlog"

	"storefront/shop/model"
)

type CreateCouponRequest struct {
	AdminID string `query:"admin_id"`

	Code   string `json:"code" validate:"required,alphanum,max=50"`
	Amount int64  `json:"amount" validate:"required,min=1"`
}

type DiscountRequest struct {
	Coupon string `query:"coupon" validate:"required"`
}

type CouponResponse struct {
	Coupon model.Coupon `json:"coupon"`
}

type CouponsResponse struct {
	Coupons []model.Coupon `json:"coupons"`
}

type DiscountResponse struct {
	Discount int64 `json:"discount"`
}

//encore:api public path=/v1/coupons method=POST tag:idempotency
func (s *Service) CreateCoupon(ctx context.Context, req *CreateCouponRequest) (*CouponResponse, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.coupons.CreateCoupon(ctx, req.Code, req.Amount)
	if err != nil {
		rlog.Error("failed to create coupon", "error", err, "code", req.Code)
		return nil, err
	}
	return &CouponResponse{Coupon: *result}, nil
}

//encore:api public path=/v1/coupons/discount method=GET
func (s *Service) ApplyDiscount(ctx context.Context, req *DiscountRequest) (*DiscountResponse, error) {
	discount, err := s.coupons.ApplyDiscount(ctx, req.Coupon)
	if err != nil {
		rlog.Error("failed to apply discount", "error", err, "coupon", req.Coupon)
		return nil, err
	}
	return &DiscountResponse{Discount: discount}, nil
}

//encore:api public path=/v1/coupons method=GET
func (s *Service) ListCoupons(ctx context.Context, req *AdminRequest) (*CouponsResponse, error) {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return nil, err
	}

	result, err := s.coupons.ListCoupons(ctx)
	if err != nil {
		rlog.Error("failed to list coupons", "error", err)
		return nil, err
	}
	return &CouponsResponse{Coupons: result}, nil
}

//encore:api public path=/v1/coupons/:id method=DELETE
func (s *Service) DeleteCoupon(ctx context.Context, id string, req *AdminRequest) error {
	if err := s.requireAdmin(ctx, req.AdminID); err != nil {
		return err
	}

	if err := s.coupons.DeleteCoupon(ctx, id); err != nil {
		rlog.Error("failed to delete coupon", "error", err, "id", id)
		return err
	}
	return nil
}

func (r *CreateCouponRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

func (r *DiscountRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}
