package coupon

import (
	"context"

	"storefront/shop/model"
	"storefront/shop/repository/coupons"
)

type Business interface {
	CreateCoupon(ctx context.Context, code string, amount int64) (*model.Coupon, error)
	ApplyDiscount(ctx context.Context, code string) (int64, error)
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
}

// business manages discount coupons. Coupons are read straight from the
// store and never cached.
type business struct {
	couponRepo coupons.Querier
}

// NewCouponBusiness creates a new coupon business layer
func NewCouponBusiness(couponRepo coupons.Querier) Business {
	return &business{
		couponRepo: couponRepo,
	}
}

func convertDBCouponToModel(dbCoupon coupons.Coupon) model.Coupon {
	return model.Coupon{
		ID:        dbCoupon.ID,
		Code:      dbCoupon.Code,
		Amount:    dbCoupon.Amount,
		CreatedAt: dbCoupon.CreatedAt.Time,
	}
}
